package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_loadEnv(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, loadEnv(filepath.Join(dir, ".env")))

	path := filepath.Join(dir, "hermes.env")
	require.NoError(t, ioutil.WriteFile(path, []byte("HERMES_TEST=1\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("HERMES_TEST") })

	require.NoError(t, loadEnv(path))
	require.Equal(t, "1", os.Getenv("HERMES_TEST"))

	require.Error(t, loadEnv(dir))
}
