package resource

import (
	"fmt"

	"github.com/google/uuid"
)

// Key identifies a resource independently of where its file lives.
type Key = uuid.UUID

type Kind int

const (
	KindModel Kind = iota
	KindTexture
)

var kindNames = map[Kind]string{
	KindModel:   "model",
	KindTexture: "texture",
}

var kindByName map[string]Kind

func init() {
	kindByName = make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		kindByName[name] = k
	}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(name string) (Kind, error) {
	if k, ok := kindByName[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("unknown resource kind %q", name)
}

// SceneResource is a model or texture referenced from a scene. Two scene
// resources are the same resource iff their keys are equal.
type SceneResource interface {
	Key() Key
	Path() string
	Kind() Kind
	sceneResource()
}

type Model struct {
	key  Key
	path string
}

func (m *Model) Key() Key       { return m.key }
func (m *Model) Path() string   { return m.path }
func (m *Model) Kind() Kind     { return KindModel }
func (m *Model) String() string { return "Model(" + m.path + ")" }
func (*Model) sceneResource()   {}

type Texture struct {
	key  Key
	path string
}

func (t *Texture) Key() Key       { return t.key }
func (t *Texture) Path() string   { return t.path }
func (t *Texture) Kind() Kind     { return KindTexture }
func (t *Texture) String() string { return "Texture(" + t.path + ")" }
func (*Texture) sceneResource()   {}

// Set holds distinct resources in first-insertion order.
type Set struct {
	index map[Key]int
	items []SceneResource
}

func NewSet() *Set {
	return &Set{index: make(map[Key]int)}
}

// Insert adds r unless a resource with the same key is present. It
// reports whether r was added.
func (s *Set) Insert(r SceneResource) bool {
	if r == nil {
		return false
	}
	if _, exists := s.index[r.Key()]; exists {
		return false
	}
	s.index[r.Key()] = len(s.items)
	s.items = append(s.items, r)
	return true
}

func (s *Set) Contains(key Key) bool {
	_, ok := s.index[key]
	return ok
}

func (s *Set) Items() []SceneResource { return s.items }
func (s *Set) Len() int               { return len(s.items) }
