package entities

import "strings"

// NotificationType is a closed set of notification kinds.
type NotificationType uint8

const (
	// UnknownNotificationType is a type of notification which kind is not recognized.
	UnknownNotificationType NotificationType = iota
	// LikeNotificationType ...
	LikeNotificationType
	// CommentNotificationType ...
	CommentNotificationType
	// FollowNotificationType ...
	FollowNotificationType
	// MentionNotificationType ...
	MentionNotificationType
)

// Display describes how a notification is rendered.
type Display struct {
	Category string
	Icon     string
	Action   string
}

// ParseNotificationType converts wire name to NotificationType.
// Unrecognized names are mapped to UnknownNotificationType.
func ParseNotificationType(s string) NotificationType {
	switch strings.ToLower(s) {
	case "like":
		return LikeNotificationType
	case "comment":
		return CommentNotificationType
	case "follow":
		return FollowNotificationType
	case "mention":
		return MentionNotificationType
	default:
		return UnknownNotificationType
	}
}

func (t NotificationType) String() string {
	switch t {
	case LikeNotificationType:
		return "like"
	case CommentNotificationType:
		return "comment"
	case FollowNotificationType:
		return "follow"
	case MentionNotificationType:
		return "mention"
	case UnknownNotificationType:
		return "unknown"
	default:
		return "unknown"
	}
}

// Display returns rendering classification of type.
func (t NotificationType) Display() Display {
	switch t {
	case LikeNotificationType:
		return Display{Category: "like", Icon: "heart", Action: "liked your post"}
	case CommentNotificationType:
		return Display{Category: "comment", Icon: "message-circle", Action: "commented on your post"}
	case FollowNotificationType:
		return Display{Category: "follow", Icon: "user-plus", Action: "followed you"}
	case MentionNotificationType:
		return Display{Category: "mention", Icon: "alert-circle", Action: "mentioned you in a post"}
	case UnknownNotificationType:
		return defaultDisplay
	default:
		return defaultDisplay
	}
}

var defaultDisplay = Display{Category: "other", Icon: "alert-circle", Action: "interacted with you"}

// MarshalText ...
func (t NotificationType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText ...
func (t *NotificationType) UnmarshalText(b []byte) error {
	*t = ParseNotificationType(string(b))
	return nil
}
