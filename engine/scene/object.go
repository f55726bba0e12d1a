package scene

import "github.com/google/uuid"

// SceneObject carries what every object in a scene has: a name, a unique
// identity and the dirty flag the renderer polls to pick up changes.
type SceneObject struct {
	name  string
	id    uuid.UUID
	dirty bool
	// bumped on every SetDirty(true); caches compare against it
	version uint64
}

func newSceneObject() SceneObject {
	return SceneObject{
		id:    uuid.New(),
		dirty: true,
	}
}

func (o *SceneObject) Name() string {
	return o.name
}

func (o *SceneObject) SetName(name string) {
	o.name = name
}

// UniqueID is assigned at construction and never changes.
func (o *SceneObject) UniqueID() uuid.UUID {
	return o.id
}

func (o *SceneObject) IsDirty() bool {
	return o.dirty
}

// SetDirty sets the flag. Raising it also advances the mutation version,
// which invalidates derived caches; clearing it never revalidates anything.
func (o *SceneObject) SetDirty(dirty bool) {
	o.dirty = dirty
	if dirty {
		o.version++
	}
}
