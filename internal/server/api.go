package server

import (
	"github.com/Decentr-net/hermes/internal/entities"
	"github.com/Decentr-net/hermes/internal/service"
)

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// LoginRequest ...
// swagger:model
type LoginRequest struct {
	ViewerID string `json:"viewerId" validate:"required,max=64"`
}

// LoginResponse ...
// swagger:model
type LoginResponse struct {
	Token   string  `json:"token"`
	Profile Profile `json:"profile"`
}

// CreatePostRequest ...
// swagger:model
type CreatePostRequest struct {
	Text  string `json:"text" validate:"max=2048"`
	Image string `json:"image" validate:"omitempty,url"`
}

// SendMessageRequest ...
// swagger:model
type SendMessageRequest struct {
	Text string `json:"text" validate:"max=2048"`
}

// User ...
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Handle string `json:"username"`
	Avatar string `json:"avatar"`
}

// Post ...
// swagger:model
type Post struct {
	ID        string   `json:"id"`
	Author    User     `json:"author"`
	Text      string   `json:"content"`
	Image     string   `json:"image,omitempty"`
	Tags      []string `json:"tags"`
	Likes     uint32   `json:"likes"`
	Comments  uint32   `json:"comments"`
	CreatedAt string   `json:"timestamp"`
	Liked     bool     `json:"liked"`
	Saved     bool     `json:"saved"`
}

// Peer ...
type Peer struct {
	User
	Online bool `json:"online"`
}

// LastMessage ...
type LastMessage struct {
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
	Read      bool   `json:"read"`
}

// Conversation ...
// swagger:model
type Conversation struct {
	ID          string      `json:"id"`
	Peer        Peer        `json:"user"`
	LastMessage LastMessage `json:"lastMessage"`
	Unread      uint32      `json:"unread"`
}

// ListConversationsResponse ...
// swagger:model
type ListConversationsResponse struct {
	Conversations []Conversation `json:"conversations"`
	Active        string         `json:"active,omitempty"`
	Unread        uint32         `json:"unread"`
}

// Message ...
// swagger:model
type Message struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversationId"`
	Sender         string `json:"senderId"`
	Text           string `json:"text"`
	Timestamp      string `json:"timestamp"`
}

// NotificationContent ...
type NotificationContent struct {
	PostID  string `json:"postId,omitempty"`
	Text    string `json:"text,omitempty"`
	Comment string `json:"comment,omitempty"`
}

// Notification ...
// swagger:model
type Notification struct {
	ID        string               `json:"id"`
	Type      string               `json:"type"`
	Category  string               `json:"category"`
	Icon      string               `json:"icon"`
	Action    string               `json:"action"`
	Actor     User                 `json:"user"`
	Content   *NotificationContent `json:"content,omitempty"`
	Timestamp string               `json:"timestamp"`
	Read      bool                 `json:"read"`
}

// ListNotificationsResponse ...
// swagger:model
type ListNotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
	Unread        int            `json:"unread"`
}

// MarkAllReadResponse ...
// swagger:model
type MarkAllReadResponse struct {
	Marked int `json:"marked"`
}

// Profile ...
// swagger:model
type Profile struct {
	User
	Cover     string `json:"coverPhoto"`
	Bio       string `json:"bio"`
	Location  string `json:"location"`
	Website   string `json:"website"`
	JoinedAt  string `json:"joinedDate"`
	Following uint32 `json:"following"`
	Followers uint32 `json:"followers"`

	IsFollowing bool `json:"isFollowing"`
}

// GetProfileResponse ...
// swagger:model
type GetProfileResponse struct {
	Profile Profile `json:"profile"`
	Posts   []Post  `json:"posts"`
}

// Topic ...
// swagger:model
type Topic struct {
	ID    string `json:"id"`
	Tag   string `json:"tag"`
	Topic string `json:"topic"`
	Posts uint32 `json:"posts"`
}

func toAPIUser(u entities.User) User {
	return User{
		ID:     u.ID,
		Name:   u.Name,
		Handle: u.Handle,
		Avatar: u.Avatar,
	}
}

func toAPIPost(p entities.Post) Post {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	return Post{
		ID:        p.ID,
		Author:    toAPIUser(p.Author),
		Text:      p.Text,
		Image:     p.Image,
		Tags:      tags,
		Likes:     p.Likes,
		Comments:  p.Comments,
		CreatedAt: p.CreatedAt,
		Liked:     p.Liked,
		Saved:     p.Saved,
	}
}

func toAPIPosts(p []entities.Post) []Post {
	out := make([]Post, len(p))
	for i, v := range p {
		out[i] = toAPIPost(v)
	}
	return out
}

func toAPIConversation(c entities.Conversation) Conversation {
	return Conversation{
		ID: c.ID,
		Peer: Peer{
			User:   toAPIUser(c.Peer.User),
			Online: c.Peer.Online,
		},
		LastMessage: LastMessage(c.LastMessage),
		Unread:      c.Unread,
	}
}

func toAPIConversations(c *service.Conversations) ListConversationsResponse {
	out := ListConversationsResponse{
		Conversations: make([]Conversation, len(c.Conversations)),
		Active:        c.Active,
		Unread:        c.Unread,
	}

	for i, v := range c.Conversations {
		out.Conversations[i] = toAPIConversation(v)
	}

	return out
}

func toAPIMessage(m entities.Message) Message {
	return Message(m)
}

func toAPIMessages(m []entities.Message) []Message {
	out := make([]Message, len(m))
	for i, v := range m {
		out[i] = toAPIMessage(v)
	}
	return out
}

func toAPINotification(n entities.Notification) Notification {
	d := n.Type.Display()

	out := Notification{
		ID:        n.ID,
		Type:      n.Type.String(),
		Category:  d.Category,
		Icon:      d.Icon,
		Action:    d.Action,
		Actor:     toAPIUser(n.Actor),
		Timestamp: n.Timestamp,
		Read:      n.Read,
	}

	if n.Content != nil {
		c := NotificationContent(*n.Content)
		out.Content = &c
	}

	return out
}

func toAPINotifications(n *service.Notifications) ListNotificationsResponse {
	out := ListNotificationsResponse{
		Notifications: make([]Notification, len(n.Notifications)),
		Unread:        n.Unread,
	}

	for i, v := range n.Notifications {
		out.Notifications[i] = toAPINotification(v)
	}

	return out
}

func toAPIProfile(p entities.Profile) Profile {
	return Profile{
		User:      toAPIUser(p.User),
		Cover:     p.Cover,
		Bio:       p.Bio,
		Location:  p.Location,
		Website:   p.Website,
		JoinedAt:  p.JoinedAt,
		Following: p.Following,
		Followers: p.Followers,

		IsFollowing: p.Followed,
	}
}

func toAPIUsers(u []entities.User) []User {
	out := make([]User, len(u))
	for i, v := range u {
		out[i] = toAPIUser(v)
	}
	return out
}

func toAPITopics(t []entities.Topic) []Topic {
	out := make([]Topic, len(t))
	for i, v := range t {
		out[i] = Topic(v)
	}
	return out
}
