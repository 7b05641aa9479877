// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Decentr-net/hermes/internal/entities"
	"github.com/Decentr-net/hermes/internal/notification"
	"github.com/Decentr-net/hermes/internal/session"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// ErrInvalidTab is returned when explore tab is unknown.
var ErrInvalidTab = errors.New("invalid tab")

// Tab is a tab of explore view.
type Tab string

const (
	// TrendingTab shows posts in source order.
	TrendingTab Tab = "trending"
	// LatestTab shows posts in reversed order.
	LatestTab Tab = "latest"
)

// ParseTab validates tab name. Empty string means TrendingTab.
func ParseTab(s string) (Tab, error) {
	switch t := Tab(s); t {
	case TrendingTab, LatestTab:
		return t, nil
	case "":
		return TrendingTab, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidTab, s)
	}
}

// ProfileTab is a tab of profile view.
type ProfileTab string

const (
	// PostsTab shows all posts of profile.
	PostsTab ProfileTab = "posts"
	// MediaTab shows posts with an image.
	MediaTab ProfileTab = "media"
)

// ParseProfileTab validates tab name. Empty string means PostsTab.
func ParseProfileTab(s string) (ProfileTab, error) {
	switch t := ProfileTab(s); t {
	case PostsTab, MediaTab:
		return t, nil
	case "":
		return PostsTab, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidTab, s)
	}
}

// ExploreParams ...
type ExploreParams struct {
	Query string
	Tag   string
	Tab   Tab
}

// Conversations is a projection of messages view.
type Conversations struct {
	Conversations []entities.Conversation
	Active        string
	Unread        uint32
}

// Notifications is a projection of notifications view.
type Notifications struct {
	Notifications []entities.Notification
	Unread        int
}

// Profile is a projection of profile view.
type Profile struct {
	entities.Profile
	Posts []entities.Post
}

// Service ...
type Service interface {
	Login(ctx context.Context, viewerID string) (string, *entities.Profile, error)
	Logout(ctx context.Context, token string) error

	Mount(ctx context.Context, token string, v session.View, param string) error
	Unmount(ctx context.Context, token string, v session.View) error

	Feed(ctx context.Context, token string) ([]entities.Post, error)
	CreatePost(ctx context.Context, token string, text, image string) (entities.Post, error)
	ToggleLike(ctx context.Context, token string, v session.View, postID string) (entities.Post, error)
	ToggleSave(ctx context.Context, token string, v session.View, postID string) (entities.Post, error)

	Explore(ctx context.Context, token string, p ExploreParams) ([]entities.Post, error)
	Topics(ctx context.Context) ([]entities.Topic, error)
	Tags(ctx context.Context) ([]string, error)

	Conversations(ctx context.Context, token string, query string) (*Conversations, error)
	Messages(ctx context.Context, token string, conversationID string) ([]entities.Message, error)
	SelectConversation(ctx context.Context, token string, conversationID string) (entities.Conversation, error)
	SendMessage(ctx context.Context, token string, conversationID, text string) (entities.Message, error)

	Notifications(ctx context.Context, token string, f notification.Filter) (*Notifications, error)
	MarkRead(ctx context.Context, token string, id string) (entities.Notification, error)
	MarkAllRead(ctx context.Context, token string) (int, error)

	Profile(ctx context.Context, token string, userID string, tab ProfileTab) (*Profile, error)
	ToggleFollow(ctx context.Context, token string, userID string) (entities.Profile, error)
	SuggestedUsers(ctx context.Context, token string) ([]entities.User, error)
}
