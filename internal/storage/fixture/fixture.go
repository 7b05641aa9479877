// Package fixture is implementation of storage interface over static snapshot.
package fixture

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/hermes/internal/entities"
	"github.com/Decentr-net/hermes/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "fixture")

// Snapshot is a complete set of data served by fixture storage.
type Snapshot struct {
	Profiles      []*entities.Profile
	Posts         map[storage.Feed][]*entities.Post
	Conversations map[string][]*entities.Conversation
	Messages      []*entities.Message
	Notifications map[string][]*entities.Notification
	Topics        []*entities.Topic
	Tags          []string
	Suggested     []string
}

type fixture struct {
	s     *Snapshot
	delay time.Duration
}

// New creates new instance of fixture storage.
// Every call is delayed by delay unless the context is done earlier.
func New(s *Snapshot, delay time.Duration) storage.Storage {
	return fixture{
		s:     s,
		delay: delay,
	}
}

func (f fixture) wait(ctx context.Context) error {
	if f.delay <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(f.delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		log.WithError(ctx.Err()).Debug("fetch cancelled")
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (f fixture) ListPosts(ctx context.Context, p *storage.ListPostsParams) ([]*entities.Post, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}

	feed, ok := f.s.Posts[p.Feed]
	if !ok {
		return nil, fmt.Errorf("%w: feed %s", storage.ErrNotFound, p.Feed)
	}

	if p.Author == nil {
		return copyPosts(feed, nil), nil
	}

	out := copyPosts(feed, p.Author)
	if len(out) == 0 && p.Feed == storage.ProfileFeed {
		// users without own profile feed are shown with their posts from other feeds
		for _, v := range []storage.Feed{storage.HomeFeed, storage.ExploreFeed} {
			out = append(out, copyPosts(f.s.Posts[v], p.Author)...)
		}
	}

	return out, nil
}

func (f fixture) GetProfile(ctx context.Context, id string) (*entities.Profile, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}

	for _, v := range f.s.Profiles {
		if v.ID == id {
			p := *v
			return &p, nil
		}
	}

	return nil, storage.ErrNotFound
}

func (f fixture) ListConversations(ctx context.Context, owner string) ([]*entities.Conversation, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}

	src := f.s.Conversations[owner]
	out := make([]*entities.Conversation, len(src))
	for i, v := range src {
		c := *v
		out[i] = &c
	}

	return out, nil
}

func (f fixture) ListMessages(ctx context.Context, owner string) ([]*entities.Message, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}

	owned := make(map[string]struct{}, len(f.s.Conversations[owner]))
	for _, v := range f.s.Conversations[owner] {
		owned[v.ID] = struct{}{}
	}

	out := make([]*entities.Message, 0, len(f.s.Messages))
	for _, v := range f.s.Messages {
		if _, ok := owned[v.ConversationID]; ok {
			m := *v
			out = append(out, &m)
		}
	}

	return out, nil
}

func (f fixture) ListNotifications(ctx context.Context, recipient string) ([]*entities.Notification, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}

	src := f.s.Notifications[recipient]
	out := make([]*entities.Notification, len(src))
	for i, v := range src {
		n := *v
		if v.Content != nil {
			c := *v.Content
			n.Content = &c
		}
		out[i] = &n
	}

	return out, nil
}

func (f fixture) ListTopics(ctx context.Context) ([]*entities.Topic, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}

	out := make([]*entities.Topic, len(f.s.Topics))
	for i, v := range f.s.Topics {
		t := *v
		out[i] = &t
	}

	return out, nil
}

func (f fixture) ListTags(ctx context.Context) ([]string, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}

	return append([]string(nil), f.s.Tags...), nil
}

func (f fixture) ListSuggestedUsers(ctx context.Context, viewer string) ([]*entities.User, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}

	out := make([]*entities.User, 0, len(f.s.Suggested))
	for _, id := range f.s.Suggested {
		if id == viewer {
			continue
		}

		for _, v := range f.s.Profiles {
			if v.ID == id {
				u := v.User
				out = append(out, &u)
				break
			}
		}
	}

	return out, nil
}

func copyPosts(src []*entities.Post, author *string) []*entities.Post {
	out := make([]*entities.Post, 0, len(src))

	for _, v := range src {
		if author != nil && v.Author.ID != *author {
			continue
		}

		p := *v
		p.Tags = append([]string(nil), v.Tags...)
		out = append(out, &p)
	}

	return out
}
