// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"

	"github.com/Decentr-net/hermes/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// Storage is a source of data snapshots. Every call returns a fresh copy
// which is owned by the caller.
type Storage interface {
	ListPosts(ctx context.Context, p *ListPostsParams) ([]*entities.Post, error)
	GetProfile(ctx context.Context, id string) (*entities.Profile, error)

	ListConversations(ctx context.Context, owner string) ([]*entities.Conversation, error)
	ListMessages(ctx context.Context, owner string) ([]*entities.Message, error)

	ListNotifications(ctx context.Context, recipient string) ([]*entities.Notification, error)

	ListTopics(ctx context.Context) ([]*entities.Topic, error)
	ListTags(ctx context.Context) ([]string, error)

	// ListSuggestedUsers returns users suggested to follow; viewer is never suggested to themselves.
	ListSuggestedUsers(ctx context.Context, viewer string) ([]*entities.User, error)
}

// Writer is used to fill storage with a snapshot.
type Writer interface {
	InTx(ctx context.Context, f func(w Writer) error) error

	SetProfile(ctx context.Context, p *entities.Profile) error
	CreatePost(ctx context.Context, feed Feed, p *entities.Post) error
	CreateConversation(ctx context.Context, owner string, c *entities.Conversation) error
	CreateMessage(ctx context.Context, m *entities.Message) error
	CreateNotification(ctx context.Context, recipient string, n *entities.Notification) error
	CreateTopic(ctx context.Context, t *entities.Topic) error
	SetTags(ctx context.Context, tags []string) error
	SetSuggestedUsers(ctx context.Context, ids []string) error
}

// Feed is a named sequence of posts.
type Feed string

const (
	// HomeFeed ...
	HomeFeed Feed = "home"
	// ExploreFeed ...
	ExploreFeed Feed = "explore"
	// ProfileFeed contains posts shown on the profile page.
	ProfileFeed Feed = "profile"
)

// ListPostsParams ...
type ListPostsParams struct {
	Feed   Feed
	Author *string
}
