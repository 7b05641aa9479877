// Package session contains viewer sessions which own per-view stores.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/Decentr-net/hermes/internal/conversation"
	"github.com/Decentr-net/hermes/internal/entities"
	"github.com/Decentr-net/hermes/internal/feed"
	"github.com/Decentr-net/hermes/internal/notification"
	"github.com/Decentr-net/hermes/internal/storage"
)

var log = logrus.WithField("package", "session")

// ErrInvalidView is returned when view is unknown.
var ErrInvalidView = errors.New("invalid view")

// ErrUnmounted is returned when view was unmounted while it was being loaded.
var ErrUnmounted = errors.New("view is unmounted")

// View is a page of client which has its own state.
type View string

const (
	// FeedView is the home page.
	FeedView View = "feed"
	// ExploreView ...
	ExploreView View = "explore"
	// MessagesView ...
	MessagesView View = "messages"
	// NotificationsView ...
	NotificationsView View = "notifications"
	// ProfileView ...
	ProfileView View = "profile"
)

// ParseView validates view name.
func ParseView(s string) (View, error) {
	switch v := View(s); v {
	case FeedView, ExploreView, MessagesView, NotificationsView, ProfileView:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidView, s)
	}
}

// Explore is a state of explore view.
type Explore struct {
	Posts  *feed.Store
	Topics []entities.Topic
	Tags   []string
}

type view struct {
	gen    uint64
	cancel context.CancelFunc
	param  string
	state  interface{}
}

// Session is an authentication context of one viewer.
// It owns stores of mounted views; stores are never shared between sessions.
type Session struct {
	Token  string
	Viewer entities.User

	ctx    context.Context
	cancel context.CancelFunc
	s      storage.Storage

	nextMessageID func() string

	// implicit mounts of the same view and param share one load
	loads singleflight.Group

	mu    sync.Mutex
	gen   uint64
	views map[View]*view
}

func newSession(token string, viewer entities.User, s storage.Storage) *Session {
	ctx, cancel := context.WithCancel(context.Background())

	return &Session{
		Token:         token,
		Viewer:        viewer,
		ctx:           ctx,
		cancel:        cancel,
		s:             s,
		nextMessageID: conversation.Sequence("local-msg"),
		views:         make(map[View]*view),
	}
}

// Mount loads view's state from storage replacing current one.
// A pending load of the same view is cancelled. The loaded state is dropped
// if ctx is done, the view is unmounted or the session is closed before the load is finished.
func (s *Session) Mount(ctx context.Context, v View, param string) error {
	if _, err := ParseView(string(v)); err != nil {
		return err
	}

	if v == ProfileView && param == s.Viewer.ID {
		param = ""
	}

	ctx, gen, done := s.begin(ctx, v)
	defer done()

	state, err := s.load(ctx, v, param)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", v, err)
	}

	return s.commit(ctx, v, gen, param, state)
}

// Unmount cancels pending load of view and drops its state.
func (s *Session) Unmount(v View) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.unmount(v)
}

func (s *Session) unmount(v View) {
	if cur, ok := s.views[v]; ok && cur.cancel != nil {
		cur.cancel()
	}

	s.gen++
	delete(s.views, v)
}

// Mounted returns true if view's state is loaded.
func (s *Session) Mounted(v View) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.views[v]
	return ok && cur.state != nil
}

func (s *Session) close() {
	s.cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	for v := range s.views {
		s.unmount(v)
	}
}

func (s *Session) begin(ctx context.Context, v View) (context.Context, uint64, func()) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(s.ctx, cancel)

	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.views[v]
	if !ok {
		cur = &view{}
		s.views[v] = cur
	}

	if cur.cancel != nil {
		cur.cancel()
	}

	s.gen++
	cur.gen = s.gen
	cur.cancel = cancel

	return ctx, cur.gen, func() {
		stop()
		cancel()
	}
}

func (s *Session) commit(ctx context.Context, v View, gen uint64, param string, state interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := ctx.Err()
	if err == nil {
		err = s.ctx.Err()
	}

	cur, ok := s.views[v]
	if err != nil || !ok || cur.gen != gen {
		log.WithField("view", v).WithField("viewer", s.Viewer.ID).Debug("drop stale state")

		if err != nil {
			return err
		}
		return ErrUnmounted
	}

	cur.cancel = nil
	cur.param = param
	cur.state = state

	return nil
}

func (s *Session) load(ctx context.Context, v View, param string) (interface{}, error) {
	switch v {
	case FeedView:
		posts, err := s.s.ListPosts(ctx, &storage.ListPostsParams{Feed: storage.HomeFeed})
		if err != nil {
			return nil, err
		}

		return feed.New(posts), nil

	case ExploreView:
		return s.loadExplore(ctx)

	case MessagesView:
		return s.loadMessages(ctx, param)

	case NotificationsView:
		n, err := s.s.ListNotifications(ctx, s.Viewer.ID)
		if err != nil {
			return nil, err
		}

		return notification.New(n), nil

	case ProfileView:
		return s.loadProfile(ctx, param)

	default:
		return nil, ErrInvalidView
	}
}

func (s *Session) loadExplore(ctx context.Context) (*Explore, error) {
	var (
		posts  []*entities.Post
		topics []*entities.Topic
		tags   []string
	)

	gr, ctx := errgroup.WithContext(ctx)
	gr.Go(func() (err error) {
		posts, err = s.s.ListPosts(ctx, &storage.ListPostsParams{Feed: storage.ExploreFeed})
		return
	})
	gr.Go(func() (err error) {
		topics, err = s.s.ListTopics(ctx)
		return
	})
	gr.Go(func() (err error) {
		tags, err = s.s.ListTags(ctx)
		return
	})

	if err := gr.Wait(); err != nil {
		return nil, err
	}

	out := &Explore{
		Posts:  feed.New(posts),
		Topics: make([]entities.Topic, len(topics)),
		Tags:   tags,
	}
	for i, v := range topics {
		out.Topics[i] = *v
	}

	return out, nil
}

func (s *Session) loadMessages(ctx context.Context, conversationID string) (*conversation.Store, error) {
	var (
		conversations []*entities.Conversation
		messages      []*entities.Message
	)

	gr, ctx := errgroup.WithContext(ctx)
	gr.Go(func() (err error) {
		conversations, err = s.s.ListConversations(ctx, s.Viewer.ID)
		return
	})
	gr.Go(func() (err error) {
		messages, err = s.s.ListMessages(ctx, s.Viewer.ID)
		return
	})

	if err := gr.Wait(); err != nil {
		return nil, err
	}

	c := conversation.New(conversations, messages, conversation.WithIDs(s.nextMessageID))

	if conversationID != "" {
		if _, err := c.Select(conversationID); err != nil {
			log.WithField("conversation", conversationID).WithError(err).Debug("skip preselect")
		}
	}

	return c, nil
}

func (s *Session) loadProfile(ctx context.Context, id string) (*Profile, error) {
	if id == "" {
		id = s.Viewer.ID
	}

	var (
		profile *entities.Profile
		posts   []*entities.Post
	)

	gr, ctx := errgroup.WithContext(ctx)
	gr.Go(func() (err error) {
		profile, err = s.s.GetProfile(ctx, id)
		return
	})
	gr.Go(func() (err error) {
		posts, err = s.s.ListPosts(ctx, &storage.ListPostsParams{Feed: storage.ProfileFeed, Author: &id})
		return
	})

	if err := gr.Wait(); err != nil {
		return nil, err
	}

	return newProfile(*profile, posts, id == s.Viewer.ID), nil
}

func (s *Session) current(v View, param string, match bool) (interface{}, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.views[v]
	if !ok || cur.state == nil || (match && cur.param != param) {
		return nil, false
	}

	return cur.state, true
}

func get[T any](ctx context.Context, s *Session, v View, param string, match bool) (T, error) {
	var zero T

	if state, ok := s.current(v, param, match); ok {
		return state.(T), nil
	}

	ch := s.loads.DoChan(string(v)+"/"+param, func() (interface{}, error) {
		if _, ok := s.current(v, param, match); ok {
			return nil, nil
		}

		return nil, s.Mount(ctx, v, param)
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
	}

	state, ok := s.current(v, param, match)
	if !ok {
		return zero, ErrUnmounted
	}

	return state.(T), nil
}

// Feed returns store of home feed mounting it if needed.
func (s *Session) Feed(ctx context.Context) (*feed.Store, error) {
	return get[*feed.Store](ctx, s, FeedView, "", false)
}

// Explore returns state of explore view mounting it if needed.
func (s *Session) Explore(ctx context.Context) (*Explore, error) {
	return get[*Explore](ctx, s, ExploreView, "", false)
}

// Messages returns conversations store mounting it if needed.
func (s *Session) Messages(ctx context.Context) (*conversation.Store, error) {
	return get[*conversation.Store](ctx, s, MessagesView, "", false)
}

// Notifications returns notifications store mounting it if needed.
func (s *Session) Notifications(ctx context.Context) (*notification.Store, error) {
	return get[*notification.Store](ctx, s, NotificationsView, "", false)
}

// Profile returns state of profile view of user. Empty id means viewer.
// The view is remounted when another user is requested.
func (s *Session) Profile(ctx context.Context, id string) (*Profile, error) {
	if id == s.Viewer.ID {
		id = ""
	}

	return get[*Profile](ctx, s, ProfileView, id, true)
}

// Posts returns posts store of view: home feed, explore or the mounted profile.
func (s *Session) Posts(ctx context.Context, v View) (*feed.Store, error) {
	switch v {
	case FeedView:
		return s.Feed(ctx)
	case ExploreView:
		e, err := s.Explore(ctx)
		if err != nil {
			return nil, err
		}
		return e.Posts, nil
	case ProfileView:
		if state, ok := s.current(ProfileView, "", false); ok {
			return state.(*Profile).Posts, nil
		}

		p, err := s.Profile(ctx, "")
		if err != nil {
			return nil, err
		}
		return p.Posts, nil
	default:
		return nil, fmt.Errorf("%w: %s has no posts", ErrInvalidView, v)
	}
}
