package localstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"fashionworld/pkg/localstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMissingFileIsEmptyStore(t *testing.T) {
	s, err := localstore.Open(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	var out []string
	ok, err := s.Get(localstore.KeyCart, &out)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPutGetRoundTrip(t *testing.T) {
	s, err := localstore.Open(filepath.Join(t.TempDir(), "local.json"))
	require.NoError(t, err)

	type line struct {
		ID       string `json:"id"`
		Quantity int    `json:"quantity"`
	}
	in := []line{{ID: "p1", Quantity: 2}, {ID: "p2", Quantity: 1}}
	require.NoError(t, s.Put(localstore.KeyCart, in))

	var out []line
	ok, err := s.Get(localstore.KeyCart, &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, in, out)
}

func TestSlotsAreIndependent(t *testing.T) {
	s, err := localstore.Open(filepath.Join(t.TempDir(), "local.json"))
	require.NoError(t, err)

	require.NoError(t, s.Put(localstore.KeyCart, []string{"a"}))
	require.NoError(t, s.Put(localstore.KeyWishlist, []string{"b"}))
	require.NoError(t, s.Delete(localstore.KeyCart))

	var out []string
	ok, err := s.Get(localstore.KeyCart, &out)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.Get(localstore.KeyWishlist, &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"b"}, out)
}

func TestWritesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.json")

	s, err := localstore.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Put(localstore.KeySettings, map[string]string{"whatsapp": "916376327343"}))

	s2, err := localstore.Open(path)
	require.NoError(t, err)

	var out map[string]string
	ok, err := s2.Get(localstore.KeySettings, &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "916376327343", out["whatsapp"])
}

func TestDeleteAbsentSlotIsNoOp(t *testing.T) {
	s, err := localstore.Open(filepath.Join(t.TempDir(), "local.json"))
	require.NoError(t, err)
	assert.NoError(t, s.Delete("never_written"))
}

func TestOpenRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := localstore.Open(path)
	assert.Error(t, err)
}
