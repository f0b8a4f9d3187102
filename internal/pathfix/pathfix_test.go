package pathfix

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"mirgo/internal/resource"
	"mirgo/internal/scene"
	"mirgo/internal/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pump(u *ui.UserInterface, p *PathFixer) {
	for {
		msg, ok := u.PollMessage()
		if !ok {
			break
		}
		p.HandleUIMessage(u, &msg)
	}
	u.Update(0)
}

func textOf(t *testing.T, u *ui.UserInterface, h ui.Handle) string {
	t.Helper()
	text, ok := ui.NodeAs[*ui.Text](u, h)
	require.True(t, ok)
	return text.Text()
}

func paths(resources []resource.SceneResource) []string {
	out := make([]string, len(resources))
	for i, r := range resources {
		out[i] = r.Path()
	}
	return out
}

// spriteScene has count sprites; sprite i uses textures[i%len(textures)].
func spriteScene(t *testing.T, count int, textures ...string) *scene.Scene {
	t.Helper()
	s := scene.New("test")
	handles := make([]*resource.Texture, len(textures))
	for i, path := range textures {
		tex, err := s.Resources.RequestTexture(path)
		require.NoError(t, err)
		handles[i] = tex
	}
	for i := range count {
		s.Graph.Add(&scene.Sprite{NodeBase: scene.NewNodeBase("sprite"), Size: 1, Texture: handles[i%len(handles)]})
	}
	return s
}

type fakeLoader map[string]*scene.Scene

func (f fakeLoader) load(path string) (*scene.Scene, error) {
	s, ok := f[path]
	if !ok {
		return nil, errors.New("bad header")
	}
	return s, nil
}

func newFixer(t *testing.T, scenes fakeLoader, present ...string) (*ui.UserInterface, *PathFixer) {
	t.Helper()
	u := ui.New(1024, 768)
	p := New(u,
		WithLoader(scenes.load),
		WithExists(func(path string) bool {
			for _, ok := range present {
				if ok == path {
					return true
				}
			}
			return false
		}))
	p.Open(u)
	pump(u, p)
	return u, p
}

func commit(u *ui.UserInterface, p *PathFixer, path string) {
	u.SendMessage(ui.FileSelectorCommitMessage(p.sceneSelector, ui.FromWidget, path))
	pump(u, p)
}

func selectResource(u *ui.UserInterface, p *PathFixer, index int) {
	u.SendMessage(ui.ListViewSelectionMessage(p.resourcesList, ui.ToWidget, index))
	pump(u, p)
}

func TestCollectResourcesDeduplicates(t *testing.T) {
	s := spriteScene(t, 5, "a.png")
	got := CollectResources(s)
	assert.Equal(t, []string{"a.png"}, paths(got))
}

func TestCollectResourcesCoversNodeKinds(t *testing.T) {
	s := scene.New("kinds")
	res := s.Resources
	tex := func(path string) *resource.Texture {
		tx, err := res.RequestTexture(path)
		require.NoError(t, err)
		return tx
	}
	model, err := res.RequestModel("crate.glb")
	require.NoError(t, err)

	mesh := &scene.Mesh{NodeBase: scene.NewNodeBase("mesh"), Surfaces: []scene.Surface{{Diffuse: tex("diffuse.png"), Normal: tex("normal.png")}}}
	mesh.Resource = model
	s.Graph.Add(mesh)
	s.Graph.Add(&scene.Light{NodeBase: scene.NewNodeBase("spot"), LightKind: scene.SpotLight, Cookie: tex("cookie.png")})
	s.Graph.Add(&scene.Light{NodeBase: scene.NewNodeBase("point"), LightKind: scene.PointLight, Cookie: tex("ignored.png")})
	s.Graph.Add(&scene.Camera{NodeBase: scene.NewNodeBase("cam"), SkyBox: &scene.SkyBox{Top: tex("sky.png")}})
	s.Graph.Add(&scene.ParticleSystem{NodeBase: scene.NewNodeBase("smoke"), Texture: tex("smoke.png")})
	s.Graph.Add(&scene.Terrain{NodeBase: scene.NewNodeBase("ground"), Chunks: []scene.Chunk{
		{Layers: []scene.Layer{{Diffuse: tex("grass.png")}}},
		{Layers: []scene.Layer{{Diffuse: tex("second_chunk.png")}}},
	}})

	assert.Equal(t, []string{
		"crate.glb", "diffuse.png", "normal.png", "cookie.png", "sky.png", "smoke.png", "grass.png",
	}, paths(CollectResources(s)))
}

func TestFilterMissing(t *testing.T) {
	s := spriteScene(t, 3, "a.png", "b.png", "c.png")
	missing := FilterMissing(CollectResources(s), func(path string) bool { return path == "b.png" })
	assert.Equal(t, []string{"a.png", "c.png"}, paths(missing))
}

func TestScanReadsSceneFromDisk(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present.png")
	require.NoError(t, os.WriteFile(present, []byte("x"), 0o644))
	absent := filepath.Join(dir, "absent.png")

	path := filepath.Join(dir, "level.json")
	require.NoError(t, scene.Save(spriteScene(t, 2, present, absent), path))

	result, err := Scan(path)
	require.NoError(t, err)
	assert.Equal(t, []string{present, absent}, paths(result.Resources))
	assert.Equal(t, []string{absent}, paths(result.Missing))

	_, err = Scan(filepath.Join(dir, "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDialogInitialState(t *testing.T) {
	u, p := newFixer(t, fakeLoader{})

	assert.Equal(t, NoSceneText, textOf(t, u, p.scenePath))
	assert.False(t, u.Node(p.fix).Base().Enabled())
	assert.Nil(t, p.Scene())
	_, selected := p.Selection()
	assert.False(t, selected)

	window, ok := ui.NodeAs[*ui.Window](u, p.Window())
	require.True(t, ok)
	assert.True(t, window.IsOpen())
}

func TestDialogListsMissingResources(t *testing.T) {
	scenes := fakeLoader{"level.json": spriteScene(t, 6, "a.png", "b.png", "c.png")}
	u, p := newFixer(t, scenes, "b.png")

	commit(u, p, "level.json")

	assert.Equal(t, "Scene: level.json", textOf(t, u, p.scenePath))
	assert.Equal(t, []string{"a.png", "c.png"}, paths(p.Resources()))
	list, ok := ui.NodeAs[*ui.ListView](u, p.resourcesList)
	require.True(t, ok)
	assert.Len(t, list.Items(), 2)
	assert.Equal(t, ui.NoSelection, list.Selection())
	assert.Same(t, scenes["level.json"], p.Scene())
}

func TestDialogSelectionDrivesFixButton(t *testing.T) {
	u, p := newFixer(t, fakeLoader{"level.json": spriteScene(t, 2, "a.png", "b.png")})
	commit(u, p, "level.json")

	selectResource(u, p, 1)
	index, selected := p.Selection()
	assert.True(t, selected)
	assert.Equal(t, 1, index)
	assert.Equal(t, "Resource: b.png", textOf(t, u, p.resourcePath))
	assert.True(t, u.Node(p.fix).Base().Enabled())

	selectResource(u, p, ui.NoSelection)
	_, selected = p.Selection()
	assert.False(t, selected)
	assert.Equal(t, NoSelectionText, textOf(t, u, p.resourcePath))
	assert.False(t, u.Node(p.fix).Base().Enabled())
}

func TestDialogReloadReplacesList(t *testing.T) {
	u, p := newFixer(t, fakeLoader{
		"first.json":  spriteScene(t, 3, "a.png", "b.png", "c.png"),
		"second.json": spriteScene(t, 1, "z.png"),
	})
	commit(u, p, "first.json")
	selectResource(u, p, 2)
	require.True(t, u.Node(p.fix).Base().Enabled())

	commit(u, p, "second.json")
	assert.Equal(t, []string{"z.png"}, paths(p.Resources()))
	_, selected := p.Selection()
	assert.False(t, selected)
	assert.False(t, u.Node(p.fix).Base().Enabled())
	assert.Equal(t, NoSelectionText, textOf(t, u, p.resourcePath))

	list, _ := ui.NodeAs[*ui.ListView](u, p.resourcesList)
	assert.Len(t, list.Items(), 1)
	assert.Equal(t, ui.NoSelection, list.Selection())
}

func TestDialogKeepsListWhenLoadFails(t *testing.T) {
	u, p := newFixer(t, fakeLoader{"level.json": spriteScene(t, 2, "a.png", "b.png")})
	commit(u, p, "level.json")
	list, _ := ui.NodeAs[*ui.ListView](u, p.resourcesList)
	items := list.Items()

	commit(u, p, "broken.json")
	assert.Equal(t, "Failed to load a scene broken.json\nReason: bad header", textOf(t, u, p.scenePath))
	assert.Equal(t, []string{"a.png", "b.png"}, paths(p.Resources()))
	assert.Equal(t, items, list.Items())
}

func TestDialogButtons(t *testing.T) {
	u, p := newFixer(t, fakeLoader{})

	u.SendMessage(ui.ButtonClickMessage(p.loadScene, ui.FromWidget))
	pump(u, p)
	selector, ok := ui.NodeAs[*ui.FileSelector](u, p.sceneSelector)
	require.True(t, ok)
	assert.True(t, selector.IsOpen())
	assert.Equal(t, p.sceneSelector, u.TopModal())

	u.SendMessage(ui.WindowCloseMessage(p.sceneSelector, ui.ToWidget))
	u.SendMessage(ui.ButtonClickMessage(p.cancel, ui.FromWidget))
	pump(u, p)
	window, _ := ui.NodeAs[*ui.Window](u, p.Window())
	assert.False(t, window.IsOpen())

	p.Open(u)
	pump(u, p)
	require.True(t, window.IsOpen())
	u.SendMessage(ui.ButtonClickMessage(p.ok, ui.FromWidget))
	pump(u, p)
	assert.False(t, window.IsOpen())
}

func TestDialogFixWithoutCandidates(t *testing.T) {
	u, p := newFixer(t, fakeLoader{"level.json": spriteScene(t, 1, "a.png")})
	commit(u, p, "level.json")
	selectResource(u, p, 0)

	u.SendMessage(ui.ButtonClickMessage(p.fix, ui.FromWidget))
	assert.NotPanics(t, func() { pump(u, p) })
	assert.Equal(t, []string{"a.png"}, paths(p.Resources()), "fixing does not rewrite the scene")
}

func TestSceneSelectorFilter(t *testing.T) {
	u := ui.New(800, 600)
	p := New(u)
	assert.True(t, p.isSceneFile("a/level.JSON"))
	assert.True(t, p.isSceneFile("level.scene"))
	assert.False(t, p.isSceneFile("level.png"))
}
