package scene

import (
	"github.com/google/uuid"

	"github.com/spaghettifunk/prism/engine/math"
	"github.com/spaghettifunk/prism/engine/resources"
)

/**
 * @brief Shape is implemented by *Mesh and *Instance only. Switch on the
 * concrete type to handle each variant.
 *
 * Every setter raises the dirty flag. Bounding box queries may write
 * internal caches, so a shape must not be accessed concurrently while
 * anything mutates it.
 */
type Shape interface {
	Name() string
	SetName(name string)
	UniqueID() uuid.UUID
	IsDirty() bool
	SetDirty(dirty bool)

	Material() resources.MaterialHandle
	SetMaterial(material resources.MaterialHandle)
	Transform() math.Mat4
	SetTransform(transform math.Mat4)
	Shadow() bool
	SetShadow(shadow bool)

	/** @brief The bounding box in the shape's own space. */
	LocalAABB() math.Extents3D
	/** @brief LocalAABB transformed by the shape's transform. Not cached. */
	WorldAABB() math.Extents3D

	base() *shapeBase
}

type shapeBase struct {
	SceneObject

	material  resources.MaterialHandle
	transform math.Mat4
	shadow    bool
}

func newShapeBase() shapeBase {
	return shapeBase{
		SceneObject: newSceneObject(),
		material:    resources.NoMaterial,
		transform:   math.NewMat4Identity(),
		shadow:      true,
	}
}

func (s *shapeBase) base() *shapeBase {
	return s
}

func (s *shapeBase) Material() resources.MaterialHandle {
	return s.material
}

// SetMaterial stores the handle only; resources.NoMaterial clears it.
func (s *shapeBase) SetMaterial(material resources.MaterialHandle) {
	s.material = material
	s.SetDirty(true)
}

func (s *shapeBase) Transform() math.Mat4 {
	return s.transform
}

// SetTransform sets the local-to-world matrix.
func (s *shapeBase) SetTransform(transform math.Mat4) {
	s.transform = transform
	s.SetDirty(true)
}

// Shadow reports whether the shape casts shadows.
func (s *shapeBase) Shadow() bool {
	return s.shadow
}

func (s *shapeBase) SetShadow(shadow bool) {
	s.shadow = shadow
	s.SetDirty(true)
}
