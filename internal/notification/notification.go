// Package notification contains a store of viewer's notifications.
package notification

import (
	"errors"
	"sync"

	"github.com/Decentr-net/hermes/internal/entities"
	"github.com/Decentr-net/hermes/internal/projection"
)

// ErrInvalidFilter is returned when filter is unknown.
var ErrInvalidFilter = errors.New("invalid filter")

// Filter is a tab of notifications view.
type Filter string

const (
	// AllFilter passes all notifications.
	AllFilter Filter = "all"
	// UnreadFilter passes notifications which are not read yet.
	UnreadFilter Filter = "unread"
	// MentionsFilter passes mentions only.
	MentionsFilter Filter = "mentions"
)

func (f Filter) predicate() (projection.Predicate[entities.Notification], error) {
	switch f {
	case AllFilter, "":
		return nil, nil
	case UnreadFilter:
		return func(n entities.Notification) bool { return !n.Read }, nil
	case MentionsFilter:
		return func(n entities.Notification) bool { return n.Type == entities.MentionNotificationType }, nil
	default:
		return nil, ErrInvalidFilter
	}
}

// Store holds notifications in source order.
type Store struct {
	mu            sync.Mutex
	notifications []*entities.Notification
	index         map[string]*entities.Notification
}

// New creates a store owning notifications.
func New(notifications []*entities.Notification) *Store {
	s := &Store{
		notifications: make([]*entities.Notification, 0, len(notifications)),
		index:         make(map[string]*entities.Notification, len(notifications)),
	}

	for _, v := range notifications {
		if _, ok := s.index[v.ID]; ok {
			continue
		}

		s.notifications = append(s.notifications, v)
		s.index[v.ID] = v
	}

	return s
}

// MarkRead marks notification as read.
func (s *Store) MarkRead(id string) (entities.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.index[id]
	if !ok {
		return entities.Notification{}, entities.ErrNotFound
	}

	n.Read = true

	return *n, nil
}

// MarkAllRead marks every notification as read and returns count of changed ones.
func (s *Store) MarkAllRead() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var c int
	for _, v := range s.notifications {
		if !v.Read {
			v.Read = true
			c++
		}
	}

	return c
}

// Filter returns notifications passing filter in source order.
func (s *Store) Filter(f Filter) ([]entities.Notification, error) {
	p, err := f.predicate()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	all := make([]entities.Notification, len(s.notifications))
	for i, v := range s.notifications {
		all[i] = *v
	}
	s.mu.Unlock()

	return projection.Filter(all, p), nil
}

// UnreadCount returns count of notifications which are not read.
func (s *Store) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var c int
	for _, v := range s.notifications {
		if !v.Read {
			c++
		}
	}

	return c
}
