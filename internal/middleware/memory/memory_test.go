package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	s := NewStorage()

	require.Nil(t, s.Get("key"))

	s.Set("key", []byte("value"), 20*time.Millisecond)
	require.Equal(t, []byte("value"), s.Get("key"))

	time.Sleep(40 * time.Millisecond)
	require.Nil(t, s.Get("key"))
}

func TestStorage_NonPositiveDuration(t *testing.T) {
	s := NewStorage()

	s.Set("key", []byte("value"), 0)
	require.Nil(t, s.Get("key"))
}
