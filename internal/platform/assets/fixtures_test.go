package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureStoreLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chef_response.json"), []byte(`{"persona":"Chef"}`), 0o644))
	store := NewFixtureStore(dir)

	data, err := store.Load("chef_response.json")
	require.NoError(t, err)
	assert.Equal(t, `{"persona":"Chef"}`, string(data))

	_, err = store.Load("captain_response.json")
	assert.ErrorIs(t, err, ErrFixtureNotFound)

	for _, name := range []string{"", "../secret.json", "sub/x.json", ".env"} {
		_, err = store.Load(name)
		assert.ErrorIs(t, err, ErrInvalidName, "name %q", name)
	}
}
