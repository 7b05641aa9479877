package fixture

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/hermes/internal/entities"
	"github.com/Decentr-net/hermes/internal/storage"
	"github.com/Decentr-net/hermes/internal/storage/mock"
)

func TestImport(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mock.NewMockWriter(ctrl)

	s := Default()

	w.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, f func(w storage.Writer) error) error {
		return f(w)
	})

	profile := w.EXPECT().SetProfile(gomock.Any(), gomock.Any()).Return(nil).Times(len(s.Profiles))

	var posts int
	for _, v := range s.Posts {
		posts += len(v)
	}
	home := w.EXPECT().CreatePost(gomock.Any(), storage.HomeFeed, gomock.Any()).Return(nil).Times(len(s.Posts[storage.HomeFeed])).After(profile)
	w.EXPECT().CreatePost(gomock.Any(), storage.ExploreFeed, gomock.Any()).Return(nil).Times(len(s.Posts[storage.ExploreFeed])).After(home)
	w.EXPECT().CreatePost(gomock.Any(), storage.ProfileFeed, gomock.Any()).Return(nil).Times(len(s.Posts[storage.ProfileFeed])).After(home)

	w.EXPECT().CreateConversation(gomock.Any(), Viewer, gomock.Any()).Return(nil).Times(len(s.Conversations[Viewer]))
	w.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil).Times(len(s.Messages))
	w.EXPECT().CreateNotification(gomock.Any(), Viewer, gomock.Any()).Return(nil).Times(len(s.Notifications[Viewer]))
	w.EXPECT().CreateTopic(gomock.Any(), gomock.Any()).Return(nil).Times(len(s.Topics))
	w.EXPECT().SetTags(gomock.Any(), s.Tags).Return(nil)
	w.EXPECT().SetSuggestedUsers(gomock.Any(), s.Suggested).Return(nil)

	require.NoError(t, Import(context.Background(), w, s))
	require.NotZero(t, posts)
}

func TestImport_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mock.NewMockWriter(ctrl)

	errTest := errors.New("test")

	w.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, f func(w storage.Writer) error) error {
		return f(w)
	})
	w.EXPECT().SetProfile(gomock.Any(), gomock.Any()).Return(errTest)

	err := Import(context.Background(), w, &Snapshot{Profiles: []*entities.Profile{{User: entities.User{ID: "user1"}}}})
	require.True(t, errors.Is(err, errTest))
}
