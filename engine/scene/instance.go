package scene

import (
	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/math"
)

// maxInstanceDepth bounds instance-of-instance chains so a cycle resolves
// to an empty box.
const maxInstanceDepth = 32

// Instance reuses the geometry of a base shape held in a Scene, with its
// own material, transform and shadow flag. It caches nothing: its bounds
// follow the base shape's cache.
type Instance struct {
	shapeBase

	scene     *Scene
	baseShape ShapeHandle
}

// NewInstance creates an instance resolving base through s. Either may be
// absent, in which case the instance has empty bounds.
func NewInstance(s *Scene, base ShapeHandle) *Instance {
	return &Instance{
		shapeBase: newShapeBase(),
		scene:     s,
		baseShape: base,
	}
}

func (i *Instance) SetBaseShape(base ShapeHandle) {
	i.baseShape = base
	i.SetDirty(true)
}

func (i *Instance) BaseShape() ShapeHandle {
	return i.baseShape
}

// LocalAABB is the base shape's local box, not its world box: the
// instance applies its own transform.
func (i *Instance) LocalAABB() math.Extents3D {
	return i.localAABB(0)
}

func (i *Instance) localAABB(depth int) math.Extents3D {
	if i.scene == nil {
		return math.NewExtents3DEmpty()
	}
	shape, ok := i.scene.Shape(i.baseShape)
	if !ok {
		return math.NewExtents3DEmpty()
	}

	switch s := shape.(type) {
	case *Mesh:
		return s.LocalAABB()
	case *Instance:
		if depth >= maxInstanceDepth {
			core.LogWarn("instance '%s' exceeds %d levels of nesting", i.Name(), maxInstanceDepth)
			return math.NewExtents3DEmpty()
		}
		return s.localAABB(depth + 1)
	}
	return math.NewExtents3DEmpty()
}

func (i *Instance) WorldAABB() math.Extents3D {
	return i.LocalAABB().Transform(i.transform)
}
