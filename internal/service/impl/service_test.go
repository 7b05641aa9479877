package impl

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/hermes/internal/entities"
	"github.com/Decentr-net/hermes/internal/notification"
	"github.com/Decentr-net/hermes/internal/service"
	"github.com/Decentr-net/hermes/internal/session"
	storageinterface "github.com/Decentr-net/hermes/internal/storage"
	storage "github.com/Decentr-net/hermes/internal/storage/mock"
)

var (
	ctx     = context.Background()
	viewer  = entities.User{ID: "user1", Name: "John Doe", Handle: "johndoe"}
	emma    = entities.User{ID: "user2", Name: "Emma Smith", Handle: "emmasmith"}
	errTest = errors.New("test")
)

func login(t *testing.T, s *storage.MockStorage) (service.Service, string) {
	s.EXPECT().GetProfile(gomock.Any(), viewer.ID).Return(&entities.Profile{User: viewer}, nil)

	srv := New(s, session.NewManager(s))

	token, p, err := srv.Login(ctx, viewer.ID)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, viewer, p.User)

	return srv, token
}

func TestSrv_Login(t *testing.T) {
	tt := []struct {
		name string
		err  error

		expected error
	}{
		{
			name: "success",
		},
		{
			name:     "unknown viewer",
			err:      storageinterface.ErrNotFound,
			expected: session.ErrUnauthorized,
		},
		{
			name:     "storage error",
			err:      errTest,
			expected: errTest,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			s := storage.NewMockStorage(ctrl)
			m := session.NewManager(s)
			srv := New(s, m)

			if tc.err != nil {
				s.EXPECT().GetProfile(gomock.Any(), viewer.ID).Return(nil, tc.err)
			} else {
				s.EXPECT().GetProfile(gomock.Any(), viewer.ID).Return(&entities.Profile{User: viewer}, nil)
			}

			token, _, err := srv.Login(ctx, viewer.ID)
			if tc.expected != nil {
				require.True(t, errors.Is(err, tc.expected))
				require.Zero(t, m.Len())
				return
			}

			require.NoError(t, err)

			sess, err := m.Get(token)
			require.NoError(t, err)
			require.Equal(t, viewer, sess.Viewer)
		})
	}
}

func TestSrv_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := storage.NewMockStorage(ctrl)

	srv, token := login(t, s)

	require.NoError(t, srv.Logout(ctx, token))
	require.True(t, errors.Is(srv.Logout(ctx, token), session.ErrUnauthorized))

	_, err := srv.Feed(ctx, token)
	require.True(t, errors.Is(err, session.ErrUnauthorized))
}

func TestSrv_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := storage.NewMockStorage(ctrl)
	srv := New(s, session.NewManager(s))

	_, err := srv.Feed(ctx, "unknown")
	require.True(t, errors.Is(err, session.ErrUnauthorized))

	_, err = srv.Notifications(ctx, "unknown", notification.AllFilter)
	require.True(t, errors.Is(err, session.ErrUnauthorized))

	require.True(t, errors.Is(srv.Mount(ctx, "unknown", session.FeedView, ""), session.ErrUnauthorized))
	require.True(t, errors.Is(srv.Unmount(ctx, "unknown", session.FeedView), session.ErrUnauthorized))
}

func TestSrv_Unmount_InvalidView(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := storage.NewMockStorage(ctrl)

	srv, token := login(t, s)

	require.True(t, errors.Is(srv.Unmount(ctx, token, "login"), session.ErrInvalidView))
}

func TestSrv_Feed(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := storage.NewMockStorage(ctrl)

	srv, token := login(t, s)

	s.EXPECT().ListPosts(gomock.Any(), &storageinterface.ListPostsParams{Feed: storageinterface.HomeFeed}).Return([]*entities.Post{
		{ID: "1", Author: emma, Text: "Sunset #nature", Likes: 24},
	}, nil)

	p, err := srv.ToggleLike(ctx, token, session.FeedView, "1")
	require.NoError(t, err)
	assert.True(t, p.Liked)
	assert.EqualValues(t, 25, p.Likes)

	p, err = srv.ToggleSave(ctx, token, session.FeedView, "1")
	require.NoError(t, err)
	assert.True(t, p.Saved)

	_, err = srv.ToggleLike(ctx, token, session.FeedView, "unknown")
	require.True(t, errors.Is(err, entities.ErrNotFound))

	created, err := srv.CreatePost(ctx, token, "  hello #World ", "")
	require.NoError(t, err)
	assert.Equal(t, viewer, created.Author)
	assert.Equal(t, "hello #World", created.Text)
	assert.Equal(t, []string{"world"}, created.Tags)

	_, err = srv.CreatePost(ctx, token, " ", "")
	require.True(t, errors.Is(err, entities.ErrEmpty))

	posts, err := srv.Feed(ctx, token)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, created.ID, posts[0].ID)
	assert.True(t, posts[1].Liked)
}

func TestSrv_Feed_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := storage.NewMockStorage(ctrl)

	srv, token := login(t, s)

	s.EXPECT().ListPosts(gomock.Any(), gomock.Any()).Return(nil, errTest)

	_, err := srv.Feed(ctx, token)
	require.True(t, errors.Is(err, errTest))
}

func TestSrv_Explore(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := storage.NewMockStorage(ctrl)

	srv, token := login(t, s)

	s.EXPECT().ListPosts(gomock.Any(), &storageinterface.ListPostsParams{Feed: storageinterface.ExploreFeed}).Return([]*entities.Post{
		{ID: "5", Author: emma, Text: "Coffee #coffee #morning"},
		{ID: "6", Author: viewer, Text: "Trail #hiking"},
		{ID: "7", Author: emma, Text: "Sunday #morning"},
	}, nil)
	s.EXPECT().ListTopics(gomock.Any()).Return(nil, nil)
	s.EXPECT().ListTags(gomock.Any()).Return(nil, nil)

	tt := []struct {
		name string
		p    service.ExploreParams
		ids  []string
		err  error
	}{
		{name: "all", ids: []string{"5", "6", "7"}},
		{name: "latest", p: service.ExploreParams{Tab: service.LatestTab}, ids: []string{"7", "6", "5"}},
		{name: "query", p: service.ExploreParams{Query: "EMMA"}, ids: []string{"5", "7"}},
		{name: "hashtag query", p: service.ExploreParams{Query: "#hiking"}, ids: []string{"6"}},
		{name: "tag", p: service.ExploreParams{Tag: "Morning", Tab: service.LatestTab}, ids: []string{"7", "5"}},
		{name: "invalid tab", p: service.ExploreParams{Tab: "popular"}, err: service.ErrInvalidTab},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			posts, err := srv.Explore(ctx, token, tc.p)
			if tc.err != nil {
				require.True(t, errors.Is(err, tc.err))
				return
			}
			require.NoError(t, err)

			ids := make([]string, len(posts))
			for i, v := range posts {
				ids[i] = v.ID
			}
			assert.Equal(t, tc.ids, ids)
		})
	}

	p, err := srv.ToggleSave(ctx, token, session.ExploreView, "6")
	require.NoError(t, err)
	assert.True(t, p.Saved)
}

func TestSrv_TopicsAndTags(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := storage.NewMockStorage(ctrl)
	srv := New(s, session.NewManager(s))

	s.EXPECT().ListTopics(gomock.Any()).Return([]*entities.Topic{{ID: "1", Tag: "Technology", Topic: "AI", Posts: 2453}}, nil)
	s.EXPECT().ListTags(gomock.Any()).Return([]string{"Travel", "Food"}, nil)

	topics, err := srv.Topics(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entities.Topic{{ID: "1", Tag: "Technology", Topic: "AI", Posts: 2453}}, topics)

	tags, err := srv.Tags(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Travel", "Food"}, tags)

	s.EXPECT().ListTags(gomock.Any()).Return(nil, errTest)
	_, err = srv.Tags(ctx)
	require.True(t, errors.Is(err, errTest))
}

func TestSrv_Conversations(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := storage.NewMockStorage(ctrl)

	srv, token := login(t, s)

	s.EXPECT().ListConversations(gomock.Any(), viewer.ID).Return([]*entities.Conversation{
		{ID: "conv1", Peer: entities.Peer{User: emma, Online: true}, LastMessage: entities.LastMessage{Text: "hi", Read: true}},
		{ID: "conv2", Peer: entities.Peer{User: entities.User{ID: "user3", Name: "Alex Johnson"}}, Unread: 2},
	}, nil)
	s.EXPECT().ListMessages(gomock.Any(), viewer.ID).Return([]*entities.Message{
		{ID: "msg1", ConversationID: "conv1", Sender: emma.ID, Text: "hi"},
	}, nil)

	c, err := srv.Conversations(ctx, token, "emma")
	require.NoError(t, err)
	require.Len(t, c.Conversations, 1)
	assert.Equal(t, "conv1", c.Conversations[0].ID)
	assert.Empty(t, c.Active)
	assert.EqualValues(t, 2, c.Unread)

	_, err = srv.SendMessage(ctx, token, "conv1", "hello")
	require.True(t, errors.Is(err, entities.ErrNotFound))

	sel, err := srv.SelectConversation(ctx, token, "conv2")
	require.NoError(t, err)
	assert.Zero(t, sel.Unread)
	assert.True(t, sel.LastMessage.Read)

	_, err = srv.SelectConversation(ctx, token, "unknown")
	require.True(t, errors.Is(err, entities.ErrNotFound))

	_, err = srv.SelectConversation(ctx, token, "conv1")
	require.NoError(t, err)

	_, err = srv.SendMessage(ctx, token, "conv1", "   ")
	require.True(t, errors.Is(err, entities.ErrEmpty))

	m, err := srv.SendMessage(ctx, token, "conv1", "hello")
	require.NoError(t, err)
	assert.True(t, m.FromSelf())

	messages, err := srv.Messages(ctx, token, "conv1")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "hello", messages[1].Text)

	_, err = srv.Messages(ctx, token, "unknown")
	require.True(t, errors.Is(err, entities.ErrNotFound))

	c, err = srv.Conversations(ctx, token, "")
	require.NoError(t, err)
	assert.Equal(t, "conv1", c.Active)
	assert.Zero(t, c.Unread)
	assert.Equal(t, entities.LastMessage{Text: "hello", Timestamp: entities.JustNow, Read: true}, c.Conversations[0].LastMessage)
}

func TestSrv_Notifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := storage.NewMockStorage(ctrl)

	srv, token := login(t, s)

	s.EXPECT().ListNotifications(gomock.Any(), viewer.ID).Return([]*entities.Notification{
		{ID: "n1", Type: entities.LikeNotificationType, Actor: emma},
		{ID: "n2", Type: entities.MentionNotificationType, Actor: emma},
		{ID: "n3", Type: entities.FollowNotificationType, Actor: emma, Read: true},
	}, nil)

	n, err := srv.Notifications(ctx, token, notification.UnreadFilter)
	require.NoError(t, err)
	require.Len(t, n.Notifications, 2)
	assert.Equal(t, 2, n.Unread)

	_, err = srv.MarkRead(ctx, token, "n1")
	require.NoError(t, err)

	n, err = srv.Notifications(ctx, token, notification.UnreadFilter)
	require.NoError(t, err)
	require.Len(t, n.Notifications, 1)
	assert.Equal(t, "n2", n.Notifications[0].ID)

	_, err = srv.MarkRead(ctx, token, "unknown")
	require.True(t, errors.Is(err, entities.ErrNotFound))

	_, err = srv.Notifications(ctx, token, "archived")
	require.True(t, errors.Is(err, notification.ErrInvalidFilter))

	c, err := srv.MarkAllRead(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	n, err = srv.Notifications(ctx, token, notification.MentionsFilter)
	require.NoError(t, err)
	require.Len(t, n.Notifications, 1)
	assert.Zero(t, n.Unread)
}

func TestSrv_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := storage.NewMockStorage(ctrl)

	srv, token := login(t, s)

	id := viewer.ID
	s.EXPECT().GetProfile(gomock.Any(), id).Return(&entities.Profile{User: viewer, Bio: "bio"}, nil)
	s.EXPECT().ListPosts(gomock.Any(), &storageinterface.ListPostsParams{Feed: storageinterface.ProfileFeed, Author: &id}).Return([]*entities.Post{
		{ID: "1", Author: viewer, Text: "mine"},
		{ID: "2", Author: emma, Text: "not mine"},
	}, nil)

	p, err := srv.Profile(ctx, token, "", service.PostsTab)
	require.NoError(t, err)
	assert.Equal(t, "bio", p.Bio)
	require.Len(t, p.Posts, 1)
	assert.Equal(t, "1", p.Posts[0].ID)

	liked, err := srv.ToggleLike(ctx, token, session.ProfileView, "1")
	require.NoError(t, err)
	assert.True(t, liked.Liked)

	p, err = srv.Profile(ctx, token, viewer.ID, "")
	require.NoError(t, err)
	assert.True(t, p.Posts[0].Liked)

	_, err = srv.ToggleFollow(ctx, token, "")
	require.True(t, errors.Is(err, session.ErrFollowSelf))

	_, err = srv.Profile(ctx, token, "", "likes")
	require.True(t, errors.Is(err, service.ErrInvalidTab))
}

func TestSrv_Profile_Media(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := storage.NewMockStorage(ctrl)

	srv, token := login(t, s)

	id := emma.ID
	s.EXPECT().GetProfile(gomock.Any(), id).Return(&entities.Profile{User: emma}, nil)
	s.EXPECT().ListPosts(gomock.Any(), &storageinterface.ListPostsParams{Feed: storageinterface.ProfileFeed, Author: &id}).Return([]*entities.Post{
		{ID: "2", Author: emma, Image: "hike.jpg"},
		{ID: "5", Author: emma, Text: "no image"},
		{ID: "7", Author: emma, Image: "food.jpg"},
	}, nil)

	p, err := srv.Profile(ctx, token, id, service.MediaTab)
	require.NoError(t, err)
	require.Len(t, p.Posts, 2)
	assert.Equal(t, "2", p.Posts[0].ID)
	assert.Equal(t, "7", p.Posts[1].ID)

	p, err = srv.Profile(ctx, token, id, service.PostsTab)
	require.NoError(t, err)
	require.Len(t, p.Posts, 3)
}

func TestSrv_ToggleFollow(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := storage.NewMockStorage(ctrl)

	srv, token := login(t, s)

	id := emma.ID
	s.EXPECT().GetProfile(gomock.Any(), id).Return(&entities.Profile{User: emma, Followers: 126}, nil)
	s.EXPECT().ListPosts(gomock.Any(), gomock.Any()).Return(nil, nil)

	p, err := srv.ToggleFollow(ctx, token, id)
	require.NoError(t, err)
	assert.True(t, p.Followed)
	assert.EqualValues(t, 127, p.Followers)

	profile, err := srv.Profile(ctx, token, id, "")
	require.NoError(t, err)
	assert.True(t, profile.Followed)

	p, err = srv.ToggleFollow(ctx, token, id)
	require.NoError(t, err)
	assert.False(t, p.Followed)
	assert.EqualValues(t, 126, p.Followers)

	s.EXPECT().GetProfile(gomock.Any(), "ghost").Return(nil, storageinterface.ErrNotFound)
	s.EXPECT().ListPosts(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	_, err = srv.ToggleFollow(ctx, token, "ghost")
	require.True(t, errors.Is(err, storageinterface.ErrNotFound))

	_, err = srv.ToggleFollow(ctx, "unknown", id)
	require.True(t, errors.Is(err, session.ErrUnauthorized))
}

func TestSrv_SuggestedUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := storage.NewMockStorage(ctrl)

	srv, token := login(t, s)

	s.EXPECT().ListSuggestedUsers(gomock.Any(), viewer.ID).Return([]*entities.User{&emma}, nil)

	users, err := srv.SuggestedUsers(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, []entities.User{emma}, users)

	s.EXPECT().ListSuggestedUsers(gomock.Any(), viewer.ID).Return(nil, errTest)

	_, err = srv.SuggestedUsers(ctx, token)
	require.True(t, errors.Is(err, errTest))

	_, err = srv.SuggestedUsers(ctx, "unknown")
	require.True(t, errors.Is(err, session.ErrUnauthorized))
}
