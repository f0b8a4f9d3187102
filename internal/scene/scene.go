// Package scene holds the scene graph the editor inspects and the scene
// file codec.
package scene

import "mirgo/internal/resource"

type Scene struct {
	Name      string
	Graph     *Graph
	Resources *resource.Manager
}

func New(name string) *Scene {
	return &Scene{
		Name:      name,
		Graph:     NewGraph(),
		Resources: resource.NewManager(),
	}
}
