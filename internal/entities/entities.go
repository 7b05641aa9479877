// Package entities contains main entities of service.
package entities

// SelfSender is a sender of messages written by the session's viewer.
const SelfSender = "self"

// JustNow is a timestamp label of locally created entities.
const JustNow = "Just now"

// User ...
type User struct {
	ID     string
	Name   string
	Handle string
	Avatar string
}

// Peer is a user on the other side of a conversation.
type Peer struct {
	User
	Online bool
}

// Post ...
type Post struct {
	ID        string
	Author    User
	Text      string
	Image     string
	Tags      []string
	Likes     uint32
	Comments  uint32
	CreatedAt string

	Liked bool
	Saved bool
}

// LastMessage is a projection of the last message of conversation.
type LastMessage struct {
	Text      string
	Timestamp string
	Read      bool
}

// Conversation ...
type Conversation struct {
	ID          string
	Peer        Peer
	LastMessage LastMessage
	Unread      uint32
}

// Message ...
type Message struct {
	ID             string
	ConversationID string
	Sender         string
	Text           string
	Timestamp      string
}

// FromSelf returns true if message was sent by viewer.
func (m Message) FromSelf() bool {
	return m.Sender == SelfSender
}

// NotificationContent is a reference to content related to notification.
type NotificationContent struct {
	PostID  string
	Text    string
	Comment string
}

// Notification ...
type Notification struct {
	ID        string
	Type      NotificationType
	Actor     User
	Content   *NotificationContent
	Timestamp string
	Read      bool
}

// Profile ...
type Profile struct {
	User
	Cover     string
	Bio       string
	Location  string
	Website   string
	JoinedAt  string
	Following uint32
	Followers uint32

	Followed bool
}

// Topic is a trending topic.
type Topic struct {
	ID    string
	Tag   string
	Topic string
	Posts uint32
}
