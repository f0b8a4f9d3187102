package resource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDedupByKey(t *testing.T) {
	m := NewManager()
	a, err := m.RequestTexture("a.png")
	require.NoError(t, err)
	b, err := m.RequestTexture("b.png")
	require.NoError(t, err)

	s := NewSet()
	assert.True(t, s.Insert(a))
	assert.True(t, s.Insert(b))
	assert.False(t, s.Insert(a))
	assert.False(t, s.Insert(nil))

	// same key, different handle: still the same resource
	alias := &Texture{key: a.Key(), path: "elsewhere.png"}
	assert.False(t, s.Insert(alias))

	require.Equal(t, 2, s.Len())
	assert.Equal(t, []SceneResource{a, b}, s.Items())
	assert.True(t, s.Contains(b.Key()))
}

func TestManagerSharesHandles(t *testing.T) {
	m := NewManager()
	first, err := m.RequestModel("models/crate.glb")
	require.NoError(t, err)
	second, err := m.RequestModel("models/crate.glb")
	require.NoError(t, err)
	assert.Same(t, first, second)

	key := uuid.New()
	r1, err := m.Register(KindTexture, key, "t.png")
	require.NoError(t, err)
	r2, err := m.Register(KindTexture, key, "ignored.png")
	require.NoError(t, err)
	assert.Same(t, r1, r2)
	assert.Equal(t, "t.png", r2.Path())

	got, ok := m.Get(key)
	require.True(t, ok)
	assert.IsType(t, &Texture{}, got)
	assert.Equal(t, key, got.Key())

	assert.Equal(t, 2, m.Len())
}

func TestManagerKindMismatch(t *testing.T) {
	m := NewManager()
	_, err := m.RequestModel("thing.glb")
	require.NoError(t, err)

	_, err = m.RequestTexture("thing.glb")
	assert.ErrorIs(t, err, ErrKindMismatch)
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindModel, KindTexture} {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	_, err := ParseKind("sound")
	assert.Error(t, err)
}

func TestDetectKind(t *testing.T) {
	tests := []struct {
		path string
		kind Kind
		ok   bool
	}{
		{"a/b/tree.glb", KindModel, true},
		{"tree.OBJ", KindModel, true},
		{"grass.png", KindTexture, true},
		{"grass.JPG", KindTexture, true},
		{"sky.hdr", KindTexture, true},
		{"notes.txt", 0, false},
	}
	for _, tt := range tests {
		kind, ok := DetectKind(tt.path)
		assert.Equal(t, tt.ok, ok, tt.path)
		if tt.ok {
			assert.Equal(t, tt.kind, kind, tt.path)
		}
	}
}

func TestDetectKindFromHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noext")
	png := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}
	require.NoError(t, os.WriteFile(path, png, 0o644))

	kind, ok := DetectKind(path)
	require.True(t, ok)
	assert.Equal(t, KindTexture, kind)
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "here.png")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	assert.True(t, Exists(path))
	assert.False(t, Exists(filepath.Join(dir, "gone.png")))
}

func TestSuggest(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"textures/brick.png", "textures/bricks.png", "textures/stone.png", "other/brick.jpg", "other/brick.txt", "models/brick.glb", ".cache/brick.png"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}

	got := Suggest("old/brick.png", KindTexture, []string{dir}, 2)
	require.Len(t, got, 2)
	assert.Equal(t, filepath.Join(dir, "textures", "brick.png"), got[0].Path)
	assert.Equal(t, 0, got[0].Distance)
	assert.Equal(t, filepath.Join(dir, "textures", "bricks.png"), got[1].Path)

	all := Suggest("old/brick.png", KindTexture, []string{dir, dir}, 0)
	assert.Len(t, all, 4, "hidden dirs skipped, duplicates collapsed, other kinds ignored")
}

func TestSuggestOtherImageFormat(t *testing.T) {
	dir := t.TempDir()
	jpg := filepath.Join(dir, "floor.jpg")
	require.NoError(t, os.WriteFile(jpg, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "floor.glb"), []byte("x"), 0o644))

	got := Suggest("old/floor.png", KindTexture, []string{dir}, 0)
	require.Len(t, got, 1)
	assert.Equal(t, jpg, got[0].Path)
	assert.Equal(t, 3, got[0].Distance)

	models := Suggest("old/floor.fbx", KindModel, []string{dir}, 0)
	require.Len(t, models, 1)
	assert.Equal(t, filepath.Join(dir, "floor.glb"), models[0].Path)
}
