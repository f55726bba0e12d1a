package scene

import (
	"fmt"

	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/math"
)

// ShapeHandle refers to a shape attached to a Scene. A handle outlives
// nothing: once the shape is detached the handle stops resolving, even if
// the slot is reused.
type ShapeHandle struct {
	Index      uint32
	Generation uint32
}

// NoShape resolves to nothing in every scene.
var NoShape = ShapeHandle{Index: core.InvalidID, Generation: core.InvalidID}

func (h ShapeHandle) String() string {
	if h == NoShape {
		return "shape(none)"
	}
	return fmt.Sprintf("shape(%d:%d)", h.Index, h.Generation)
}

/**
 * @brief Scene is the registry that owns shape lifetimes. Instances and
 * renderers refer to shapes through handles issued here.
 * Not safe for concurrent use.
 */
type Scene struct {
	shapes *core.IdentifierPool[Shape]
}

// NewScene creates a scene holding at most maxShapes shapes; 0 means unbounded.
func NewScene(maxShapes uint32) *Scene {
	return &Scene{
		shapes: core.NewIdentifierPool[Shape](maxShapes),
	}
}

// Attach registers shape and returns its handle. A shape can be attached once.
func (s *Scene) Attach(shape Shape) (ShapeHandle, error) {
	if shape == nil {
		return NoShape, fmt.Errorf("cannot attach a nil shape: %w", core.ErrInvalidHandle)
	}
	attached := false
	s.shapes.Each(func(_, _ uint32, owner Shape) {
		if owner == shape {
			attached = true
		}
	})
	if attached {
		return NoShape, fmt.Errorf("shape '%s' is already attached: %w", shape.Name(), core.ErrInvalidHandle)
	}

	index, generation, err := s.shapes.Acquire(shape)
	if err != nil {
		core.LogError("failed to attach shape '%s': %s", shape.Name(), err)
		return NoShape, err
	}
	h := ShapeHandle{Index: index, Generation: generation}
	core.LogDebug("attached shape '%s' as %s", shape.Name(), h)
	return h, nil
}

// Detach removes the shape behind h. Every instance whose chain of base
// shapes passes through it is marked dirty, since its bounds collapse to empty.
func (s *Scene) Detach(h ShapeHandle) error {
	if err := s.shapes.Release(h.Index, h.Generation); err != nil {
		return fmt.Errorf("detach %s: %w", h, err)
	}

	collapsed := map[ShapeHandle]struct{}{h: {}}
	for grew := true; grew; {
		grew = false
		s.ForEach(func(ih ShapeHandle, owner Shape) {
			inst, ok := owner.(*Instance)
			if !ok || inst.scene != s {
				return
			}
			if _, seen := collapsed[ih]; seen {
				return
			}
			if _, hit := collapsed[inst.baseShape]; hit {
				inst.SetDirty(true)
				collapsed[ih] = struct{}{}
				grew = true
			}
		})
	}
	return nil
}

// Shape resolves h.
func (s *Scene) Shape(h ShapeHandle) (Shape, bool) {
	return s.shapes.Get(h.Index, h.Generation)
}

// Len returns the number of attached shapes.
func (s *Scene) Len() int {
	return s.shapes.Len()
}

// ForEach visits attached shapes in slot order.
func (s *Scene) ForEach(fn func(h ShapeHandle, shape Shape)) {
	s.shapes.Each(func(index, generation uint32, owner Shape) {
		fn(ShapeHandle{Index: index, Generation: generation}, owner)
	})
}

// WorldAABB returns the union of every attached shape's world box.
func (s *Scene) WorldAABB() math.Extents3D {
	out := math.NewExtents3DEmpty()
	s.ForEach(func(_ ShapeHandle, shape Shape) {
		out = out.Union(shape.WorldAABB())
	})
	return out
}

/**
 * @brief Returns the handles of every dirty shape in slot order and clears
 * their dirty flags. This is the consumer side of the dirty protocol: a
 * renderer calls it once per frame to learn what to re-upload.
 */
func (s *Scene) CollectDirty() []ShapeHandle {
	var dirty []ShapeHandle
	s.ForEach(func(h ShapeHandle, shape Shape) {
		if shape.IsDirty() {
			dirty = append(dirty, h)
			shape.SetDirty(false)
		}
	})
	return dirty
}
