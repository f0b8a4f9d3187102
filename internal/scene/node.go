package scene

import (
	"mirgo/internal/resource"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type NodeKind int

const (
	KindBase NodeKind = iota
	KindLight
	KindCamera
	KindMesh
	KindSprite
	KindParticleSystem
	KindTerrain
)

var nodeKindNames = [...]string{
	KindBase:           "Base",
	KindLight:          "Light",
	KindCamera:         "Camera",
	KindMesh:           "Mesh",
	KindSprite:         "Sprite",
	KindParticleSystem: "ParticleSystem",
	KindTerrain:        "Terrain",
}

func (k NodeKind) String() string {
	if k >= 0 && int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "Unknown"
}

// Node is anything stored in a Graph.
type Node interface {
	Base() *NodeBase
	Kind() NodeKind
}

// NodeBase holds what every node has: a name, a transform, its place in
// the graph and the model resource it was instantiated from, if any.
type NodeBase struct {
	Name     string
	Position rl.Vector3
	Rotation rl.Vector3
	Scale    rl.Vector3
	Resource *resource.Model

	parent   Handle
	children []Handle
}

func NewNodeBase(name string) NodeBase {
	return NodeBase{
		Name:   name,
		Scale:  rl.Vector3{X: 1, Y: 1, Z: 1},
		parent: NoHandle,
	}
}

func (b *NodeBase) Base() *NodeBase    { return b }
func (b *NodeBase) Parent() Handle     { return b.parent }
func (b *NodeBase) Children() []Handle { return b.children }

// Pivot is a plain node with no kind-specific data.
type Pivot struct {
	NodeBase
}

func NewPivot(name string) *Pivot {
	return &Pivot{NodeBase: NewNodeBase(name)}
}

func (*Pivot) Kind() NodeKind { return KindBase }

type LightKind int

const (
	PointLight LightKind = iota
	SpotLight
	DirectionalLight
)

var lightKindNames = [...]string{
	PointLight:       "point",
	SpotLight:        "spot",
	DirectionalLight: "directional",
}

func (k LightKind) String() string {
	if k >= 0 && int(k) < len(lightKindNames) {
		return lightKindNames[k]
	}
	return "unknown"
}

type Light struct {
	NodeBase
	LightKind LightKind
	Color     rl.Color
	Intensity float32
	// Cookie is projected by spot lights only.
	Cookie *resource.Texture
}

func (*Light) Kind() NodeKind { return KindLight }

// SkyBox has one optional texture per cube face.
type SkyBox struct {
	Front, Back, Left, Right, Top, Bottom *resource.Texture
}

// Textures returns the faces in front, back, left, right, top, bottom
// order, skipping empty ones.
func (s *SkyBox) Textures() []*resource.Texture {
	return compact(s.Front, s.Back, s.Left, s.Right, s.Top, s.Bottom)
}

type Camera struct {
	NodeBase
	Fov    float32
	SkyBox *SkyBox
}

func (*Camera) Kind() NodeKind { return KindCamera }

type Surface struct {
	Diffuse   *resource.Texture
	Normal    *resource.Texture
	Roughness *resource.Texture
	Height    *resource.Texture
	Specular  *resource.Texture
}

// Textures returns the surface maps in diffuse, normal, roughness, height,
// specular order, skipping empty ones.
func (s *Surface) Textures() []*resource.Texture {
	return compact(s.Diffuse, s.Normal, s.Roughness, s.Height, s.Specular)
}

type Mesh struct {
	NodeBase
	Surfaces []Surface
}

func (*Mesh) Kind() NodeKind { return KindMesh }

type Sprite struct {
	NodeBase
	Size    float32
	Texture *resource.Texture
}

func (*Sprite) Kind() NodeKind { return KindSprite }

type ParticleSystem struct {
	NodeBase
	MaxParticles int
	Texture      *resource.Texture
}

func (*ParticleSystem) Kind() NodeKind { return KindParticleSystem }

type Layer struct {
	Diffuse   *resource.Texture
	Specular  *resource.Texture
	Roughness *resource.Texture
	Height    *resource.Texture
	Normal    *resource.Texture
}

// Textures returns the layer maps in diffuse, specular, roughness, height,
// normal order, skipping empty ones.
func (l *Layer) Textures() []*resource.Texture {
	return compact(l.Diffuse, l.Specular, l.Roughness, l.Height, l.Normal)
}

type Chunk struct {
	Layers []Layer
}

// Terrain chunks share their layer set; the first chunk is authoritative.
type Terrain struct {
	NodeBase
	Chunks []Chunk
}

func (*Terrain) Kind() NodeKind { return KindTerrain }

func compact(textures ...*resource.Texture) []*resource.Texture {
	out := textures[:0]
	for _, t := range textures {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}
