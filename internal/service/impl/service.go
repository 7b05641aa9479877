// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/hermes/internal/entities"
	"github.com/Decentr-net/hermes/internal/notification"
	"github.com/Decentr-net/hermes/internal/projection"
	"github.com/Decentr-net/hermes/internal/service"
	"github.com/Decentr-net/hermes/internal/session"
	"github.com/Decentr-net/hermes/internal/storage"
)

var log = logrus.WithField("layer", "service").WithField("package", "impl")

// service ...
type srv struct {
	s storage.Storage
	m *session.Manager
}

// New creates new instance of service.
func New(s storage.Storage, m *session.Manager) service.Service {
	return srv{
		s: s,
		m: m,
	}
}

func (s srv) Login(ctx context.Context, viewerID string) (string, *entities.Profile, error) {
	p, err := s.s.GetProfile(ctx, viewerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil, fmt.Errorf("%w: unknown viewer %s", session.ErrUnauthorized, viewerID)
		}
		return "", nil, fmt.Errorf("failed to get viewer's profile: %w", err)
	}

	return s.m.Login(p.User).Token, p, nil
}

func (s srv) Logout(_ context.Context, token string) error {
	return s.m.Logout(token)
}

func (s srv) Mount(ctx context.Context, token string, v session.View, param string) error {
	sess, err := s.m.Get(token)
	if err != nil {
		return err
	}

	return sess.Mount(ctx, v, param)
}

func (s srv) Unmount(_ context.Context, token string, v session.View) error {
	if _, err := session.ParseView(string(v)); err != nil {
		return err
	}

	sess, err := s.m.Get(token)
	if err != nil {
		return err
	}

	sess.Unmount(v)

	return nil
}

func (s srv) Feed(ctx context.Context, token string) ([]entities.Post, error) {
	sess, err := s.m.Get(token)
	if err != nil {
		return nil, err
	}

	f, err := sess.Feed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get feed: %w", err)
	}

	return f.List(), nil
}

func (s srv) CreatePost(ctx context.Context, token string, text, image string) (entities.Post, error) {
	sess, err := s.m.Get(token)
	if err != nil {
		return entities.Post{}, err
	}

	f, err := sess.Feed(ctx)
	if err != nil {
		return entities.Post{}, fmt.Errorf("failed to get feed: %w", err)
	}

	return f.Create(sess.Viewer, text, image)
}

func (s srv) ToggleLike(ctx context.Context, token string, v session.View, postID string) (entities.Post, error) {
	sess, err := s.m.Get(token)
	if err != nil {
		return entities.Post{}, err
	}

	posts, err := sess.Posts(ctx, v)
	if err != nil {
		return entities.Post{}, fmt.Errorf("failed to get posts: %w", err)
	}

	return posts.ToggleLike(postID)
}

func (s srv) ToggleSave(ctx context.Context, token string, v session.View, postID string) (entities.Post, error) {
	sess, err := s.m.Get(token)
	if err != nil {
		return entities.Post{}, err
	}

	posts, err := sess.Posts(ctx, v)
	if err != nil {
		return entities.Post{}, fmt.Errorf("failed to get posts: %w", err)
	}

	return posts.ToggleSave(postID)
}

func (s srv) Explore(ctx context.Context, token string, p service.ExploreParams) ([]entities.Post, error) {
	sess, err := s.m.Get(token)
	if err != nil {
		return nil, err
	}

	e, err := sess.Explore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get explore: %w", err)
	}

	posts := e.Posts.Search(p.Query, p.Tag)

	switch p.Tab {
	case service.TrendingTab, "":
		return posts, nil
	case service.LatestTab:
		return projection.Reverse(posts), nil
	default:
		return nil, fmt.Errorf("%w: %s", service.ErrInvalidTab, p.Tab)
	}
}

func (s srv) Topics(ctx context.Context) ([]entities.Topic, error) {
	topics, err := s.s.ListTopics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}

	out := make([]entities.Topic, len(topics))
	for i, v := range topics {
		out[i] = *v
	}

	return out, nil
}

func (s srv) Tags(ctx context.Context) ([]string, error) {
	tags, err := s.s.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	return tags, nil
}

func (s srv) Conversations(ctx context.Context, token string, query string) (*service.Conversations, error) {
	sess, err := s.m.Get(token)
	if err != nil {
		return nil, err
	}

	c, err := sess.Messages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversations: %w", err)
	}

	active, _ := c.Active()

	return &service.Conversations{
		Conversations: c.List(query),
		Active:        active,
		Unread:        c.UnreadTotal(),
	}, nil
}

func (s srv) Messages(ctx context.Context, token string, conversationID string) ([]entities.Message, error) {
	sess, err := s.m.Get(token)
	if err != nil {
		return nil, err
	}

	c, err := sess.Messages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversations: %w", err)
	}

	return c.Messages(conversationID)
}

func (s srv) SelectConversation(ctx context.Context, token string, conversationID string) (entities.Conversation, error) {
	sess, err := s.m.Get(token)
	if err != nil {
		return entities.Conversation{}, err
	}

	c, err := sess.Messages(ctx)
	if err != nil {
		return entities.Conversation{}, fmt.Errorf("failed to get conversations: %w", err)
	}

	return c.Select(conversationID)
}

func (s srv) SendMessage(ctx context.Context, token string, conversationID, text string) (entities.Message, error) {
	sess, err := s.m.Get(token)
	if err != nil {
		return entities.Message{}, err
	}

	c, err := sess.Messages(ctx)
	if err != nil {
		return entities.Message{}, fmt.Errorf("failed to get conversations: %w", err)
	}

	m, err := c.Send(conversationID, text)
	if err != nil {
		return entities.Message{}, err
	}

	log.WithField("viewer", sess.Viewer.ID).WithField("conversation", conversationID).Debug("message sent")

	return m, nil
}

func (s srv) Notifications(ctx context.Context, token string, f notification.Filter) (*service.Notifications, error) {
	sess, err := s.m.Get(token)
	if err != nil {
		return nil, err
	}

	n, err := sess.Notifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}

	list, err := n.Filter(f)
	if err != nil {
		return nil, err
	}

	return &service.Notifications{
		Notifications: list,
		Unread:        n.UnreadCount(),
	}, nil
}

func (s srv) MarkRead(ctx context.Context, token string, id string) (entities.Notification, error) {
	sess, err := s.m.Get(token)
	if err != nil {
		return entities.Notification{}, err
	}

	n, err := sess.Notifications(ctx)
	if err != nil {
		return entities.Notification{}, fmt.Errorf("failed to get notifications: %w", err)
	}

	return n.MarkRead(id)
}

func (s srv) MarkAllRead(ctx context.Context, token string) (int, error) {
	sess, err := s.m.Get(token)
	if err != nil {
		return 0, err
	}

	n, err := sess.Notifications(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get notifications: %w", err)
	}

	return n.MarkAllRead(), nil
}

func (s srv) Profile(ctx context.Context, token string, userID string, tab service.ProfileTab) (*service.Profile, error) {
	sess, err := s.m.Get(token)
	if err != nil {
		return nil, err
	}

	p, err := sess.Profile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	profile := p.Get()
	posts := p.Posts.ByAuthor(profile.ID)

	switch tab {
	case service.PostsTab, "":
	case service.MediaTab:
		posts = projection.Filter(posts, func(v entities.Post) bool { return v.Image != "" })
	default:
		return nil, fmt.Errorf("%w: %s", service.ErrInvalidTab, tab)
	}

	return &service.Profile{
		Profile: profile,
		Posts:   posts,
	}, nil
}

func (s srv) ToggleFollow(ctx context.Context, token string, userID string) (entities.Profile, error) {
	sess, err := s.m.Get(token)
	if err != nil {
		return entities.Profile{}, err
	}

	p, err := sess.Profile(ctx, userID)
	if err != nil {
		return entities.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	return p.ToggleFollow()
}

func (s srv) SuggestedUsers(ctx context.Context, token string) ([]entities.User, error) {
	sess, err := s.m.Get(token)
	if err != nil {
		return nil, err
	}

	users, err := s.s.ListSuggestedUsers(ctx, sess.Viewer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggested users: %w", err)
	}

	out := make([]entities.User, len(users))
	for i, v := range users {
		out[i] = *v
	}

	return out, nil
}
