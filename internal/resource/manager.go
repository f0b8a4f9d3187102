package resource

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrKindMismatch = errors.New("resource kind mismatch")

// Manager hands out shared resource handles. A key always resolves to the
// same handle, and requesting by path allocates a key once per path.
type Manager struct {
	byKey  map[Key]SceneResource
	byPath map[string]Key
	order  []SceneResource
}

func NewManager() *Manager {
	return &Manager{
		byKey:  make(map[Key]SceneResource),
		byPath: make(map[string]Key),
	}
}

// Register returns the resource for key, creating it with the given kind
// and path on first use.
func (m *Manager) Register(kind Kind, key Key, path string) (SceneResource, error) {
	if r, exists := m.byKey[key]; exists {
		if r.Kind() != kind {
			return nil, fmt.Errorf("%w: %s is a %s, not a %s", ErrKindMismatch, key, r.Kind(), kind)
		}
		return r, nil
	}

	var r SceneResource
	switch kind {
	case KindModel:
		r = &Model{key: key, path: path}
	case KindTexture:
		r = &Texture{key: key, path: path}
	default:
		return nil, fmt.Errorf("register %s: unsupported kind %s", path, kind)
	}

	m.byKey[key] = r
	if _, seen := m.byPath[path]; !seen {
		m.byPath[path] = key
	}
	m.order = append(m.order, r)
	return r, nil
}

// Request returns the resource registered for path, registering it under a
// fresh key if the path is new.
func (m *Manager) Request(kind Kind, path string) (SceneResource, error) {
	if key, exists := m.byPath[path]; exists {
		return m.Register(kind, key, path)
	}
	return m.Register(kind, uuid.New(), path)
}

func (m *Manager) RequestModel(path string) (*Model, error) {
	r, err := m.Request(KindModel, path)
	if err != nil {
		return nil, err
	}
	return r.(*Model), nil
}

func (m *Manager) RequestTexture(path string) (*Texture, error) {
	r, err := m.Request(KindTexture, path)
	if err != nil {
		return nil, err
	}
	return r.(*Texture), nil
}

func (m *Manager) Get(key Key) (SceneResource, bool) {
	r, ok := m.byKey[key]
	return r, ok
}

// Resources returns every registered resource in registration order.
func (m *Manager) Resources() []SceneResource { return m.order }
func (m *Manager) Len() int                   { return len(m.order) }
