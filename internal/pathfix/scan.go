// Package pathfix finds resources whose files have gone missing from a
// scene and hosts the dialog used to repair them.
package pathfix

import (
	"fmt"

	"mirgo/internal/resource"
	"mirgo/internal/scene"
)

// CollectResources returns every resource any node of s refers to, each
// once, in the order they are first met.
func CollectResources(s *scene.Scene) []resource.SceneResource {
	set := resource.NewSet()
	addTextures := func(textures []*resource.Texture) {
		for _, t := range textures {
			set.Insert(t)
		}
	}

	for _, n := range s.Graph.LinearIter() {
		if m := n.Base().Resource; m != nil {
			set.Insert(m)
		}

		switch node := n.(type) {
		case *scene.Light:
			if node.LightKind == scene.SpotLight && node.Cookie != nil {
				set.Insert(node.Cookie)
			}
		case *scene.Camera:
			if node.SkyBox != nil {
				addTextures(node.SkyBox.Textures())
			}
		case *scene.Mesh:
			for i := range node.Surfaces {
				addTextures(node.Surfaces[i].Textures())
			}
		case *scene.Sprite:
			if node.Texture != nil {
				set.Insert(node.Texture)
			}
		case *scene.ParticleSystem:
			if node.Texture != nil {
				set.Insert(node.Texture)
			}
		case *scene.Terrain:
			if len(node.Chunks) > 0 {
				for i := range node.Chunks[0].Layers {
					addTextures(node.Chunks[0].Layers[i].Textures())
				}
			}
		}
	}
	return set.Items()
}

// FilterMissing keeps the resources whose path does not exist, in order.
func FilterMissing(resources []resource.SceneResource, exists func(path string) bool) []resource.SceneResource {
	var missing []resource.SceneResource
	for _, r := range resources {
		if !exists(r.Path()) {
			missing = append(missing, r)
		}
	}
	return missing
}

// Result is the outcome of scanning one scene file.
type Result struct {
	Scene     *scene.Scene
	Resources []resource.SceneResource
	Missing   []resource.SceneResource
}

// Scan loads the scene at path and reports which of its resources are
// missing on disk.
func Scan(path string) (*Result, error) {
	return ScanWith(path, scene.Load, resource.Exists)
}

// ScanWith is Scan with the loader and existence check supplied.
func ScanWith(path string, load func(string) (*scene.Scene, error), exists func(string) bool) (*Result, error) {
	s, err := load(path)
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", path, err)
	}
	all := CollectResources(s)
	return &Result{
		Scene:     s,
		Resources: all,
		Missing:   FilterMissing(all, exists),
	}, nil
}
