package scene

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"mirgo/internal/resource"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

var (
	ErrUnknownFormat   = errors.New("unknown scene format")
	ErrUnknownResource = errors.New("unknown resource")
)

type Format int

const (
	FormatJSON Format = iota
	FormatBinary
)

// binaryMagic starts every binary scene file.
var binaryMagic = []byte("MIRGOSCN\x01")

// FormatForPath picks the codec from the file extension: .json for text
// scenes, .scene for binary ones.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".scene":
		return FormatBinary, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// --- File types ---

type SceneFile struct {
	Name      string        `json:"name"`
	Resources []ResourceDef `json:"resources"`
	Nodes     []NodeDef     `json:"nodes"`
}

type ResourceDef struct {
	UUID string `json:"uuid"`
	Kind string `json:"kind"`
	Path string `json:"path"`
}

type NodeDef struct {
	Name string `json:"name"`
	// Parent indexes Nodes; root nodes have none.
	Parent   *int       `json:"parent,omitempty"`
	Position [3]float32 `json:"position"`
	Rotation [3]float32 `json:"rotation"`
	Scale    [3]float32 `json:"scale"`
	// Resource is the uuid of the model this node was instantiated from.
	Resource  string          `json:"resource,omitempty"`
	Component json.RawMessage `json:"component"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type baseDef struct {
	Type string `json:"type"`
}

type lightDef struct {
	Type      string  `json:"type"`
	Kind      string  `json:"kind"`
	Color     string  `json:"color"`
	Intensity float32 `json:"intensity,omitempty"`
	Cookie    string  `json:"cookie,omitempty"`
}

type skyBoxDef struct {
	Front  string `json:"front,omitempty"`
	Back   string `json:"back,omitempty"`
	Left   string `json:"left,omitempty"`
	Right  string `json:"right,omitempty"`
	Top    string `json:"top,omitempty"`
	Bottom string `json:"bottom,omitempty"`
}

type cameraDef struct {
	Type   string     `json:"type"`
	Fov    float32    `json:"fov,omitempty"`
	SkyBox *skyBoxDef `json:"skybox,omitempty"`
}

type surfaceDef struct {
	Diffuse   string `json:"diffuse,omitempty"`
	Normal    string `json:"normal,omitempty"`
	Roughness string `json:"roughness,omitempty"`
	Height    string `json:"height,omitempty"`
	Specular  string `json:"specular,omitempty"`
}

type meshDef struct {
	Type     string       `json:"type"`
	Surfaces []surfaceDef `json:"surfaces"`
}

type spriteDef struct {
	Type    string  `json:"type"`
	Size    float32 `json:"size,omitempty"`
	Texture string  `json:"texture,omitempty"`
}

type particleSystemDef struct {
	Type         string `json:"type"`
	MaxParticles int    `json:"maxParticles,omitempty"`
	Texture      string `json:"texture,omitempty"`
}

type layerDef struct {
	Diffuse   string `json:"diffuse,omitempty"`
	Specular  string `json:"specular,omitempty"`
	Roughness string `json:"roughness,omitempty"`
	Height    string `json:"height,omitempty"`
	Normal    string `json:"normal,omitempty"`
}

type chunkDef struct {
	Layers []layerDef `json:"layers"`
}

type terrainDef struct {
	Type   string     `json:"type"`
	Chunks []chunkDef `json:"chunks"`
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"White":     rl.White,
	"Red":       rl.Red,
	"Green":     rl.Green,
	"Blue":      rl.Blue,
	"Yellow":    rl.Yellow,
	"Orange":    rl.Orange,
	"Purple":    rl.Purple,
	"SkyBlue":   rl.SkyBlue,
	"Gold":      rl.Gold,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"Black":     rl.Black,
}

var nameByColor map[rl.Color]string

func init() {
	nameByColor = make(map[rl.Color]string, len(colorByName))
	for name, c := range colorByName {
		nameByColor[c] = name
	}
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	var r, g, b, a uint8
	if _, err := fmt.Sscanf(name, "#%02x%02x%02x%02x", &r, &g, &b, &a); err == nil {
		return rl.Color{R: r, G: g, B: b, A: a}
	}
	return rl.White
}

func lookupColorName(c rl.Color) string {
	if name, ok := nameByColor[c]; ok {
		return name
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// --- Loading ---

// Load reads a scene file. Any problem fails the whole load; no partial
// scene is returned.
func Load(path string) (*Scene, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	defer f.Close()
	return Decode(f, format)
}

func Decode(r io.Reader, format Format) (*Scene, error) {
	var sf SceneFile
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&sf); err != nil {
			return nil, fmt.Errorf("parse scene: %w", err)
		}
	case FormatBinary:
		magic := make([]byte, len(binaryMagic))
		if _, err := io.ReadFull(r, magic); err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		if !bytes.Equal(magic, binaryMagic) {
			return nil, fmt.Errorf("%w: bad binary header", ErrUnknownFormat)
		}
		if err := gob.NewDecoder(r).Decode(&sf); err != nil {
			return nil, fmt.Errorf("parse scene: %w", err)
		}
	default:
		return nil, ErrUnknownFormat
	}
	return sf.build()
}

func (sf *SceneFile) build() (*Scene, error) {
	s := New(sf.Name)

	for _, def := range sf.Resources {
		key, err := uuid.Parse(def.UUID)
		if err != nil {
			return nil, fmt.Errorf("resource %q: %w", def.Path, err)
		}
		kind, err := resource.ParseKind(def.Kind)
		if err != nil {
			return nil, fmt.Errorf("resource %q: %w", def.Path, err)
		}
		if _, err := s.Resources.Register(kind, key, def.Path); err != nil {
			return nil, fmt.Errorf("resource %q: %w", def.Path, err)
		}
	}

	d := decoder{resources: s.Resources}
	handles := make([]Handle, len(sf.Nodes))
	for i, def := range sf.Nodes {
		n, err := d.loadNode(def)
		if err != nil {
			return nil, fmt.Errorf("node %d (%s): %w", i, def.Name, err)
		}
		handles[i] = s.Graph.Add(n)
	}
	for i, def := range sf.Nodes {
		if def.Parent == nil {
			continue
		}
		p := *def.Parent
		if p < 0 || p >= len(handles) || p == i {
			return nil, fmt.Errorf("node %d (%s): bad parent %d", i, def.Name, p)
		}
		s.Graph.Link(handles[i], handles[p])
	}
	return s, nil
}

type decoder struct {
	resources *resource.Manager
}

func (d *decoder) loadNode(def NodeDef) (Node, error) {
	var header componentHeader
	if len(def.Component) > 0 {
		if err := json.Unmarshal(def.Component, &header); err != nil {
			return nil, fmt.Errorf("parse component: %w", err)
		}
	}

	var (
		n   Node
		err error
	)
	switch header.Type {
	case "Base", "":
		n = NewPivot(def.Name)
	case "Light":
		n, err = d.loadLight(def.Component)
	case "Camera":
		n, err = d.loadCamera(def.Component)
	case "Mesh":
		n, err = d.loadMesh(def.Component)
	case "Sprite":
		n, err = d.loadSprite(def.Component)
	case "ParticleSystem":
		n, err = d.loadParticleSystem(def.Component)
	case "Terrain":
		n, err = d.loadTerrain(def.Component)
	default:
		return nil, fmt.Errorf("unknown node type %q", header.Type)
	}
	if err != nil {
		return nil, err
	}

	b := n.Base()
	b.Name = def.Name
	b.Position = rl.Vector3{X: def.Position[0], Y: def.Position[1], Z: def.Position[2]}
	b.Rotation = rl.Vector3{X: def.Rotation[0], Y: def.Rotation[1], Z: def.Rotation[2]}
	// Default scale to 1 if zero
	if def.Scale == [3]float32{} {
		b.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
	} else {
		b.Scale = rl.Vector3{X: def.Scale[0], Y: def.Scale[1], Z: def.Scale[2]}
	}
	if b.Resource, err = d.model(def.Resource); err != nil {
		return nil, err
	}
	return n, nil
}

func (d *decoder) lookup(id string) (resource.SceneResource, error) {
	key, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("resource %q: %w", id, err)
	}
	r, ok := d.resources.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownResource, id)
	}
	return r, nil
}

func (d *decoder) model(id string) (*resource.Model, error) {
	if id == "" {
		return nil, nil
	}
	r, err := d.lookup(id)
	if err != nil {
		return nil, err
	}
	m, ok := r.(*resource.Model)
	if !ok {
		return nil, fmt.Errorf("%w: %s is a %s, not a model", resource.ErrKindMismatch, id, r.Kind())
	}
	return m, nil
}

func (d *decoder) texture(id string) (*resource.Texture, error) {
	if id == "" {
		return nil, nil
	}
	r, err := d.lookup(id)
	if err != nil {
		return nil, err
	}
	t, ok := r.(*resource.Texture)
	if !ok {
		return nil, fmt.Errorf("%w: %s is a %s, not a texture", resource.ErrKindMismatch, id, r.Kind())
	}
	return t, nil
}

type textureSlot struct {
	dst **resource.Texture
	id  string
}

// textures resolves slots in order, stopping at the first error.
func (d *decoder) textures(slots []textureSlot) error {
	for _, slot := range slots {
		t, err := d.texture(slot.id)
		if err != nil {
			return err
		}
		*slot.dst = t
	}
	return nil
}

func (d *decoder) loadLight(raw json.RawMessage) (Node, error) {
	var def lightDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("parse light: %w", err)
	}
	light := &Light{NodeBase: NewNodeBase(""), Color: lookupColor(def.Color), Intensity: def.Intensity}
	switch def.Kind {
	case "point", "":
		light.LightKind = PointLight
	case "spot":
		light.LightKind = SpotLight
	case "directional":
		light.LightKind = DirectionalLight
	default:
		return nil, fmt.Errorf("unknown light kind %q", def.Kind)
	}
	if def.Color == "" {
		light.Color = rl.White
	}
	var err error
	if light.Cookie, err = d.texture(def.Cookie); err != nil {
		return nil, err
	}
	return light, nil
}

func (d *decoder) loadCamera(raw json.RawMessage) (Node, error) {
	var def cameraDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("parse camera: %w", err)
	}
	camera := &Camera{NodeBase: NewNodeBase(""), Fov: def.Fov}
	if def.SkyBox != nil {
		sb := &SkyBox{}
		err := d.textures([]textureSlot{
			{&sb.Front, def.SkyBox.Front},
			{&sb.Back, def.SkyBox.Back},
			{&sb.Left, def.SkyBox.Left},
			{&sb.Right, def.SkyBox.Right},
			{&sb.Top, def.SkyBox.Top},
			{&sb.Bottom, def.SkyBox.Bottom},
		})
		if err != nil {
			return nil, fmt.Errorf("skybox: %w", err)
		}
		camera.SkyBox = sb
	}
	return camera, nil
}

func (d *decoder) loadMesh(raw json.RawMessage) (Node, error) {
	var def meshDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("parse mesh: %w", err)
	}
	mesh := &Mesh{NodeBase: NewNodeBase(""), Surfaces: make([]Surface, len(def.Surfaces))}
	for i, sd := range def.Surfaces {
		s := &mesh.Surfaces[i]
		err := d.textures([]textureSlot{
			{&s.Diffuse, sd.Diffuse},
			{&s.Normal, sd.Normal},
			{&s.Roughness, sd.Roughness},
			{&s.Height, sd.Height},
			{&s.Specular, sd.Specular},
		})
		if err != nil {
			return nil, fmt.Errorf("surface %d: %w", i, err)
		}
	}
	return mesh, nil
}

func (d *decoder) loadSprite(raw json.RawMessage) (Node, error) {
	var def spriteDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("parse sprite: %w", err)
	}
	tex, err := d.texture(def.Texture)
	if err != nil {
		return nil, err
	}
	return &Sprite{NodeBase: NewNodeBase(""), Size: def.Size, Texture: tex}, nil
}

func (d *decoder) loadParticleSystem(raw json.RawMessage) (Node, error) {
	var def particleSystemDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("parse particle system: %w", err)
	}
	tex, err := d.texture(def.Texture)
	if err != nil {
		return nil, err
	}
	return &ParticleSystem{NodeBase: NewNodeBase(""), MaxParticles: def.MaxParticles, Texture: tex}, nil
}

func (d *decoder) loadTerrain(raw json.RawMessage) (Node, error) {
	var def terrainDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("parse terrain: %w", err)
	}
	terrain := &Terrain{NodeBase: NewNodeBase(""), Chunks: make([]Chunk, len(def.Chunks))}
	for ci, cd := range def.Chunks {
		chunk := &terrain.Chunks[ci]
		chunk.Layers = make([]Layer, len(cd.Layers))
		for li, ld := range cd.Layers {
			l := &chunk.Layers[li]
			err := d.textures([]textureSlot{
				{&l.Diffuse, ld.Diffuse},
				{&l.Specular, ld.Specular},
				{&l.Roughness, ld.Roughness},
				{&l.Height, ld.Height},
				{&l.Normal, ld.Normal},
			})
			if err != nil {
				return nil, fmt.Errorf("chunk %d layer %d: %w", ci, li, err)
			}
		}
	}
	return terrain, nil
}

// --- Saving ---

// Save writes s in the format picked by the file extension.
func Save(s *Scene, path string) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, s, format); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}

func Encode(w io.Writer, s *Scene, format Format) error {
	sf, err := toFile(s)
	if err != nil {
		return err
	}
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(sf, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal scene: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("write scene: %w", err)
		}
	case FormatBinary:
		if _, err := w.Write(binaryMagic); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		if err := gob.NewEncoder(w).Encode(sf); err != nil {
			return fmt.Errorf("encode scene: %w", err)
		}
	default:
		return ErrUnknownFormat
	}
	return nil
}

func toFile(s *Scene) (*SceneFile, error) {
	sf := &SceneFile{Name: s.Name}
	for _, r := range s.Resources.Resources() {
		sf.Resources = append(sf.Resources, ResourceDef{
			UUID: r.Key().String(),
			Kind: r.Kind().String(),
			Path: r.Path(),
		})
	}

	index := make(map[Handle]int, s.Graph.Len())
	for h := range s.Graph.LinearIter() {
		index[h] = len(index)
	}

	for _, n := range s.Graph.LinearIter() {
		b := n.Base()
		def := NodeDef{
			Name:     b.Name,
			Position: [3]float32{b.Position.X, b.Position.Y, b.Position.Z},
			Rotation: [3]float32{b.Rotation.X, b.Rotation.Y, b.Rotation.Z},
			Scale:    [3]float32{b.Scale.X, b.Scale.Y, b.Scale.Z},
		}
		if p, ok := index[b.Parent()]; ok {
			def.Parent = &p
		}
		if b.Resource != nil {
			def.Resource = b.Resource.Key().String()
		}
		raw, err := serializeComponent(n)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", b.Name, err)
		}
		def.Component = raw
		sf.Nodes = append(sf.Nodes, def)
	}
	return sf, nil
}

func ref(t *resource.Texture) string {
	if t == nil {
		return ""
	}
	return t.Key().String()
}

func serializeComponent(n Node) (json.RawMessage, error) {
	var def any

	switch node := n.(type) {
	case *Pivot:
		def = baseDef{Type: "Base"}

	case *Light:
		def = lightDef{
			Type:      "Light",
			Kind:      node.LightKind.String(),
			Color:     lookupColorName(node.Color),
			Intensity: node.Intensity,
			Cookie:    ref(node.Cookie),
		}

	case *Camera:
		d := cameraDef{Type: "Camera", Fov: node.Fov}
		if sb := node.SkyBox; sb != nil {
			d.SkyBox = &skyBoxDef{
				Front:  ref(sb.Front),
				Back:   ref(sb.Back),
				Left:   ref(sb.Left),
				Right:  ref(sb.Right),
				Top:    ref(sb.Top),
				Bottom: ref(sb.Bottom),
			}
		}
		def = d

	case *Mesh:
		d := meshDef{Type: "Mesh", Surfaces: make([]surfaceDef, len(node.Surfaces))}
		for i, s := range node.Surfaces {
			d.Surfaces[i] = surfaceDef{
				Diffuse:   ref(s.Diffuse),
				Normal:    ref(s.Normal),
				Roughness: ref(s.Roughness),
				Height:    ref(s.Height),
				Specular:  ref(s.Specular),
			}
		}
		def = d

	case *Sprite:
		def = spriteDef{Type: "Sprite", Size: node.Size, Texture: ref(node.Texture)}

	case *ParticleSystem:
		def = particleSystemDef{Type: "ParticleSystem", MaxParticles: node.MaxParticles, Texture: ref(node.Texture)}

	case *Terrain:
		d := terrainDef{Type: "Terrain", Chunks: make([]chunkDef, len(node.Chunks))}
		for ci, c := range node.Chunks {
			d.Chunks[ci].Layers = make([]layerDef, len(c.Layers))
			for li, l := range c.Layers {
				d.Chunks[ci].Layers[li] = layerDef{
					Diffuse:   ref(l.Diffuse),
					Specular:  ref(l.Specular),
					Roughness: ref(l.Roughness),
					Height:    ref(l.Height),
					Normal:    ref(l.Normal),
				}
			}
		}
		def = d

	default:
		return nil, fmt.Errorf("unsupported node type %T", n)
	}

	data, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal component: %w", err)
	}
	return data, nil
}
