package fixture

import (
	"github.com/Decentr-net/hermes/internal/entities"
	"github.com/Decentr-net/hermes/internal/storage"
)

// Viewer is an id of the user which owns fixture conversations and notifications.
const Viewer = "user1"

var (
	john = entities.User{ID: "user1", Name: "John Doe", Handle: "johndoe", Avatar: "https://i.pravatar.cc/150?img=3"}
	emma = entities.User{ID: "user2", Name: "Emma Smith", Handle: "emmasmith", Avatar: "https://i.pravatar.cc/150?img=5"}
	alex = entities.User{ID: "user3", Name: "Alex Johnson", Handle: "alexj", Avatar: "https://i.pravatar.cc/150?img=8"}
	soph = entities.User{ID: "user4", Name: "Sophie Williams", Handle: "sophiew", Avatar: "https://i.pravatar.cc/150?img=9"}
	mike = entities.User{ID: "user5", Name: "Michael Brown", Handle: "mikebrown", Avatar: "https://i.pravatar.cc/150?img=12"}
	juli = entities.User{ID: "user6", Name: "Julia Chen", Handle: "juliac", Avatar: "https://i.pravatar.cc/150?img=29"}
	rob  = entities.User{ID: "user7", Name: "Robert Taylor", Handle: "robtaylor", Avatar: "https://i.pravatar.cc/150?img=18"}
	sara = entities.User{ID: "user8", Name: "Sarah Johnson", Handle: "sarahj", Avatar: "https://i.pravatar.cc/150?img=1"}
	dave = entities.User{ID: "user9", Name: "David Chen", Handle: "dchen", Avatar: "https://i.pravatar.cc/150?img=8"}
	mia  = entities.User{ID: "user10", Name: "Mia Williams", Handle: "miaw", Avatar: "https://i.pravatar.cc/150?img=5"}
)

const unsplash = "?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80"

// Default returns the snapshot the service is shipped with.
func Default() *Snapshot {
	return &Snapshot{
		Profiles: []*entities.Profile{
			{
				User:      john,
				Cover:     "https://images.unsplash.com/photo-1500964757637-c85e8a162699" + unsplash,
				Bio:       "Frontend Developer | UI/UX Enthusiast | Coffee Lover",
				Location:  "San Francisco, CA",
				Website:   "johndoe.com",
				JoinedAt:  "January 2021",
				Following: 243,
				Followers: 1548,
			},
			{User: emma}, {User: alex}, {User: soph}, {User: mike}, {User: juli}, {User: rob},
			{User: sara}, {User: dave}, {User: mia},
		},
		Posts: map[storage.Feed][]*entities.Post{
			storage.HomeFeed: {
				{
					ID:     "1",
					Author: john,
					Text: "Just finished building my new portfolio website with React and Tailwind CSS. " +
						"Check it out and let me know what you think!",
					Image:     "https://images.unsplash.com/photo-1517180102446-f3ece451e9d8" + unsplash,
					Likes:     42,
					Comments:  8,
					CreatedAt: "2h ago",
				},
				{
					ID:     "2",
					Author: emma,
					Text: "Beautiful morning hike in the mountains. Nature is truly the best therapy. " +
						"#nature #outdoors #hiking",
					Image:     "https://images.unsplash.com/photo-1551632811-561732d1e306" + unsplash,
					Likes:     126,
					Comments:  14,
					CreatedAt: "4h ago",
				},
				{
					ID:        "3",
					Author:    alex,
					Text:      "Working on some exciting new features for our app. Can't wait to share them with you all soon!",
					Likes:     56,
					Comments:  11,
					CreatedAt: "6h ago",
				},
				{
					ID:     "4",
					Author: soph,
					Text: "Just got back from an amazing trip to Japan. The culture, food, and people are incredible. " +
						"Already planning my next visit! #travel #japan",
					Image:     "https://images.unsplash.com/photo-1526481280693-3bfa7568e0f3" + unsplash,
					Likes:     203,
					Comments:  31,
					CreatedAt: "8h ago",
				},
			},
			storage.ExploreFeed: {
				{
					ID:     "5",
					Author: mike,
					Text: "Just launched my tech startup after months of hard work. Super excited for this journey! " +
						"#startup #tech #entrepreneurship",
					Image:     "https://images.unsplash.com/photo-1522202176988-66273c2fd55f" + unsplash,
					Likes:     89,
					Comments:  12,
					CreatedAt: "1d ago",
				},
				{
					ID:     "6",
					Author: juli,
					Text: "Finished reading this amazing book on artificial intelligence. Highly recommend for anyone " +
						"interested in the future of tech. #AI #books #learning",
					Image:     "https://images.unsplash.com/photo-1532012197267-da84d127e765" + unsplash,
					Likes:     67,
					Comments:  9,
					CreatedAt: "1d ago",
				},
				{
					ID:     "7",
					Author: rob,
					Text: "Just completed my first marathon! 26.2 miles of pure determination. Thanks to everyone who " +
						"supported me along the way. #fitness #marathon #achievement",
					Image:     "https://images.unsplash.com/photo-1513593771513-7b58b6c4af38" + unsplash,
					Likes:     142,
					Comments:  28,
					CreatedAt: "2d ago",
				},
			},
			storage.ProfileFeed: {
				{
					ID:     "1",
					Author: john,
					Text: "Just finished building my new portfolio website with React and Tailwind CSS. " +
						"Check it out and let me know what you think!",
					Image:     "https://images.unsplash.com/photo-1517180102446-f3ece451e9d8" + unsplash,
					Likes:     42,
					Comments:  8,
					CreatedAt: "2h ago",
				},
				{
					ID:        "3",
					Author:    john,
					Text:      "Working on some exciting new features for our app. Can't wait to share them with you all soon!",
					Likes:     56,
					Comments:  11,
					CreatedAt: "6h ago",
				},
				{
					ID:     "8",
					Author: john,
					Text: "Happy Friday everyone! What are your weekend plans? I'm planning to catch up on some reading " +
						"and maybe do a little hiking if the weather cooperates.",
					Image:     "https://images.unsplash.com/photo-1520962880247-cfaf541c8724" + unsplash,
					Likes:     31,
					Comments:  7,
					CreatedAt: "3d ago",
				},
			},
		},
		Conversations: map[string][]*entities.Conversation{
			Viewer: {
				{
					ID:          "conv1",
					Peer:        entities.Peer{User: emma, Online: true},
					LastMessage: entities.LastMessage{Text: "Sounds great! Looking forward to it.", Timestamp: "10:32 AM", Read: true},
				},
				{
					ID:          "conv2",
					Peer:        entities.Peer{User: alex},
					LastMessage: entities.LastMessage{Text: "Did you see the latest updates to the project?", Timestamp: "Yesterday"},
					Unread:      2,
				},
				{
					ID:          "conv3",
					Peer:        entities.Peer{User: soph, Online: true},
					LastMessage: entities.LastMessage{Text: "I just shared some photos from the event", Timestamp: "Yesterday", Read: true},
				},
				{
					ID:          "conv4",
					Peer:        entities.Peer{User: mike},
					LastMessage: entities.LastMessage{Text: "Thanks for your help with the project!", Timestamp: "Monday", Read: true},
				},
			},
		},
		Messages: []*entities.Message{
			{ID: "msg1", ConversationID: "conv1", Sender: emma.ID, Text: "Hey, how are you doing?", Timestamp: "10:20 AM"},
			{ID: "msg2", ConversationID: "conv1", Sender: entities.SelfSender, Text: "I'm good! Just working on some new designs. How about you?", Timestamp: "10:22 AM"},
			{ID: "msg3", ConversationID: "conv1", Sender: emma.ID, Text: "Not bad! I've been busy with client meetings all morning.", Timestamp: "10:25 AM"},
			{ID: "msg4", ConversationID: "conv1", Sender: emma.ID, Text: "By the way, are you free for a coffee this weekend? Would love to catch up in person.", Timestamp: "10:26 AM"},
			{ID: "msg5", ConversationID: "conv1", Sender: entities.SelfSender, Text: "That sounds great! I'm free on Saturday afternoon. How about that new café downtown?", Timestamp: "10:30 AM"},
			{ID: "msg6", ConversationID: "conv1", Sender: emma.ID, Text: "Sounds great! Looking forward to it.", Timestamp: "10:32 AM"},
		},
		Notifications: map[string][]*entities.Notification{
			Viewer: {
				{
					ID:    "notif1",
					Type:  entities.LikeNotificationType,
					Actor: emma,
					Content: &entities.NotificationContent{
						PostID: "1",
						Text: "Just finished building my new portfolio website with React and Tailwind CSS. " +
							"Check it out and let me know what you think!",
					},
					Timestamp: "10 minutes ago",
				},
				{
					ID:        "notif2",
					Type:      entities.FollowNotificationType,
					Actor:     alex,
					Timestamp: "2 hours ago",
				},
				{
					ID:    "notif3",
					Type:  entities.CommentNotificationType,
					Actor: soph,
					Content: &entities.NotificationContent{
						PostID:  "3",
						Text:    "Working on some exciting new features for our app. Can't wait to share them with you all soon!",
						Comment: "Can't wait to see what you're working on! The last update was amazing.",
					},
					Timestamp: "Yesterday",
					Read:      true,
				},
				{
					ID:    "notif4",
					Type:  entities.LikeNotificationType,
					Actor: mike,
					Content: &entities.NotificationContent{
						PostID: "8",
						Text:   "Happy Friday everyone! What are your weekend plans?",
					},
					Timestamp: "2 days ago",
					Read:      true,
				},
				{
					ID:    "notif5",
					Type:  entities.MentionNotificationType,
					Actor: juli,
					Content: &entities.NotificationContent{
						PostID: "10",
						Text:   "Hey @johndoe, have you seen the new design system documentation? It looks really good!",
					},
					Timestamp: "3 days ago",
					Read:      true,
				},
			},
		},
		Topics: []*entities.Topic{
			{ID: "1", Tag: "Technology", Topic: "AI Breakthroughs", Posts: 2543},
			{ID: "2", Tag: "Sports", Topic: "Summer Olympics", Posts: 1876},
			{ID: "3", Tag: "Entertainment", Topic: "Award Season", Posts: 1234},
			{ID: "4", Tag: "Science", Topic: "Space Exploration", Posts: 945},
		},
		Tags: []string{
			"Technology", "Travel", "Food", "Fitness", "Art",
			"Music", "Photography", "Fashion", "Books", "Nature",
		},
		Suggested: []string{sara.ID, dave.ID, mia.ID},
	}
}
