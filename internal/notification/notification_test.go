package notification

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/hermes/internal/entities"
)

func newStore() *Store {
	return New([]*entities.Notification{
		{ID: "n1", Type: entities.LikeNotificationType},
		{ID: "n2", Type: entities.MentionNotificationType},
		{ID: "n3", Type: entities.FollowNotificationType, Read: true},
	})
}

func ids(n []entities.Notification) []string {
	out := make([]string, len(n))
	for i, v := range n {
		out[i] = v.ID
	}
	return out
}

func mustFilter(t *testing.T, s *Store, f Filter) []string {
	res, err := s.Filter(f)
	require.NoError(t, err)
	return ids(res)
}

func TestStore_Scenario(t *testing.T) {
	s := newStore()

	require.Equal(t, []string{"n1", "n2"}, mustFilter(t, s, UnreadFilter))

	n, err := s.MarkRead("n1")
	require.NoError(t, err)
	assert.True(t, n.Read)

	require.Equal(t, []string{"n2"}, mustFilter(t, s, UnreadFilter))
	require.Equal(t, 1, s.UnreadCount())
}

func TestStore_MarkRead(t *testing.T) {
	s := newStore()

	n, err := s.MarkRead("n3")
	require.NoError(t, err)
	assert.True(t, n.Read)
	require.Equal(t, 2, s.UnreadCount())

	_, err = s.MarkRead("unknown")
	require.True(t, errors.Is(err, entities.ErrNotFound))
	require.Equal(t, 2, s.UnreadCount())
}

func TestStore_MarkAllRead(t *testing.T) {
	s := newStore()

	require.Equal(t, 2, s.MarkAllRead())
	require.Empty(t, mustFilter(t, s, UnreadFilter))
	require.Zero(t, s.UnreadCount())

	require.Zero(t, s.MarkAllRead())
}

func TestStore_Filter(t *testing.T) {
	s := New([]*entities.Notification{
		{ID: "a", Type: entities.MentionNotificationType, Read: true},
		{ID: "b", Type: entities.LikeNotificationType},
		{ID: "c", Type: entities.MentionNotificationType},
		{ID: "d", Type: entities.UnknownNotificationType},
		{ID: "e", Type: entities.MentionNotificationType},
	})

	tt := []struct {
		filter Filter
		ids    []string
	}{
		{filter: AllFilter, ids: []string{"a", "b", "c", "d", "e"}},
		{filter: "", ids: []string{"a", "b", "c", "d", "e"}},
		{filter: UnreadFilter, ids: []string{"b", "c", "d", "e"}},
		{filter: MentionsFilter, ids: []string{"a", "c", "e"}},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(string(tc.filter), func(t *testing.T) {
			assert.Equal(t, tc.ids, mustFilter(t, s, tc.filter))
		})
	}

	_, err := s.Filter("archived")
	require.True(t, errors.Is(err, ErrInvalidFilter))
}

func TestStore_Filter_IsPure(t *testing.T) {
	s := newStore()

	_, err := s.Filter(UnreadFilter)
	require.NoError(t, err)
	_, err = s.Filter(MentionsFilter)
	require.NoError(t, err)

	require.Equal(t, 2, s.UnreadCount())
}
