// Package conversation contains a store of conversations and their messages.
package conversation

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Decentr-net/hermes/internal/entities"
	"github.com/Decentr-net/hermes/internal/projection"
)

// TimestampLayout is a layout of labels of sent messages.
const TimestampLayout = "03:04 PM"

// Store holds conversations of a viewer.
//
// Messages are append-only and are kept in append order per conversation.
// The only transition of a conversation out of unread state is Select.
type Store struct {
	mu sync.Mutex

	conversations []*entities.Conversation
	index         map[string]*entities.Conversation
	messages      map[string][]entities.Message
	active        string

	now    func() time.Time
	nextID func() string
}

// Option configures Store.
type Option func(s *Store)

// WithClock sets clock used to label sent messages.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDs sets generator of ids of sent messages. Generated ids should be unique within a session.
func WithIDs(next func() string) Option {
	return func(s *Store) {
		s.nextID = next
	}
}

// Sequence returns a generator of monotonic ids with prefix.
func Sequence(prefix string) func() string {
	var n uint64

	return func() string {
		return fmt.Sprintf("%s%d", prefix, atomic.AddUint64(&n, 1))
	}
}

// New creates a store owning conversations and messages.
// Messages of unknown conversations are dropped.
func New(conversations []*entities.Conversation, messages []*entities.Message, opts ...Option) *Store {
	s := &Store{
		conversations: make([]*entities.Conversation, 0, len(conversations)),
		index:         make(map[string]*entities.Conversation, len(conversations)),
		messages:      make(map[string][]entities.Message, len(conversations)),
		now:           time.Now,
		nextID:        Sequence("local-msg"),
	}

	for _, o := range opts {
		o(s)
	}

	for _, v := range conversations {
		if _, ok := s.index[v.ID]; ok {
			continue
		}

		s.conversations = append(s.conversations, v)
		s.index[v.ID] = v
	}

	for _, v := range messages {
		if _, ok := s.index[v.ConversationID]; !ok {
			continue
		}

		s.messages[v.ConversationID] = append(s.messages[v.ConversationID], *v)
	}

	return s
}

// List returns conversations which peer's name contains query case-insensitively.
// Empty query returns all conversations.
func (s *Store) List(query string) []entities.Conversation {
	s.mu.Lock()
	all := make([]entities.Conversation, len(s.conversations))
	for i, v := range s.conversations {
		all[i] = *v
	}
	s.mu.Unlock()

	return projection.Filter(all, projection.Contains(query, func(c entities.Conversation) string {
		return c.Peer.Name
	}))
}

// Get returns a copy of conversation.
func (s *Store) Get(id string) (entities.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.index[id]
	if !ok {
		return entities.Conversation{}, entities.ErrNotFound
	}

	return *c, nil
}

// Select makes conversation active and marks it as read.
func (s *Store) Select(id string) (entities.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.index[id]
	if !ok {
		return entities.Conversation{}, entities.ErrNotFound
	}

	s.active = id
	c.Unread = 0
	c.LastMessage.Read = true

	return *c, nil
}

// Active returns id of active conversation.
func (s *Store) Active() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.active, s.active != ""
}

// Messages returns messages of conversation in append order.
func (s *Store) Messages(id string) ([]entities.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[id]; !ok {
		return nil, entities.ErrNotFound
	}

	return append([]entities.Message{}, s.messages[id]...), nil
}

// Send appends a message from viewer to the active conversation.
// activeID should be equal to the active conversation.
func (s *Store) Send(activeID, text string) (entities.Message, error) {
	if strings.TrimSpace(text) == "" {
		return entities.Message{}, entities.ErrEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == "" || s.active != activeID {
		return entities.Message{}, fmt.Errorf("%w: conversation %q is not active", entities.ErrNotFound, activeID)
	}

	c := s.index[s.active]

	m := entities.Message{
		ID:             s.nextID(),
		ConversationID: c.ID,
		Sender:         entities.SelfSender,
		Text:           text,
		Timestamp:      s.now().Format(TimestampLayout),
	}

	s.messages[c.ID] = append(s.messages[c.ID], m)
	c.LastMessage = entities.LastMessage{
		Text:      text,
		Timestamp: entities.JustNow,
		Read:      true,
	}

	return m, nil
}

// UnreadTotal returns sum of unread counters.
func (s *Store) UnreadTotal() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n uint32
	for _, v := range s.conversations {
		n += v.Unread
	}

	return n
}
