package scene

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/math"
)

/**
 * @brief Mesh is a collection of indexed triangles. It exclusively owns its
 * vertex, normal, UV and index buffers.
 *
 * The local bounding box is computed from the vertex positions on first
 * request and cached until the next time the mesh is marked dirty.
 * Buffer lengths are not cross-checked when set; see Validate.
 */
type Mesh struct {
	shapeBase

	vertices []math.Vec3
	normals  []math.Vec3
	uvs      []math.Vec2
	indices  []uint32

	aabb        math.Extents3D
	aabbCached  bool
	aabbVersion uint64
	// number of times the local bounding box was rebuilt
	aabbComputations int
}

func NewMesh() *Mesh {
	return &Mesh{shapeBase: newShapeBase()}
}

// aabbValid reports whether the cached box reflects the current buffers.
// Keyed on the mutation version so copies and zero-value meshes stay correct.
func (m *Mesh) aabbValid() bool {
	return m.aabbCached && m.aabbVersion == m.version
}

// SetIndices adopts indices; the caller must not modify the slice afterwards.
func (m *Mesh) SetIndices(indices []uint32) {
	m.indices = indices
	m.SetDirty(true)
}

// CopyIndices replaces the index buffer with a copy of indices.
func (m *Mesh) CopyIndices(indices []uint32) {
	m.SetIndices(append([]uint32(nil), indices...))
}

func (m *Mesh) NumIndices() int {
	return len(m.indices)
}

// Indices returns the index buffer. Callers must treat it as read-only.
func (m *Mesh) Indices() []uint32 {
	return m.indices
}

// SetVertices adopts vertices; the caller must not modify the slice afterwards.
func (m *Mesh) SetVertices(vertices []math.Vec3) {
	m.vertices = vertices
	m.SetDirty(true)
}

// CopyVertices replaces the vertex buffer with a copy of vertices.
func (m *Mesh) CopyVertices(vertices []math.Vec3) {
	m.SetVertices(append([]math.Vec3(nil), vertices...))
}

// SetVerticesFlat reads three floats per vertex. A trailing partial vertex is dropped.
func (m *Mesh) SetVerticesFlat(vertices []float32) {
	m.SetVertices(unpackVec3(vertices))
}

func (m *Mesh) NumVertices() int {
	return len(m.vertices)
}

// Vertices returns the vertex buffer. Callers must treat it as read-only.
func (m *Mesh) Vertices() []math.Vec3 {
	return m.vertices
}

// SetNormals adopts normals; the caller must not modify the slice afterwards.
func (m *Mesh) SetNormals(normals []math.Vec3) {
	m.normals = normals
	m.SetDirty(true)
}

// CopyNormals replaces the normal buffer with a copy of normals.
func (m *Mesh) CopyNormals(normals []math.Vec3) {
	m.SetNormals(append([]math.Vec3(nil), normals...))
}

// SetNormalsFlat reads three floats per normal. A trailing partial normal is dropped.
func (m *Mesh) SetNormalsFlat(normals []float32) {
	m.SetNormals(unpackVec3(normals))
}

func (m *Mesh) NumNormals() int {
	return len(m.normals)
}

// Normals returns the normal buffer. Callers must treat it as read-only.
func (m *Mesh) Normals() []math.Vec3 {
	return m.normals
}

// SetUVs adopts uvs; the caller must not modify the slice afterwards.
func (m *Mesh) SetUVs(uvs []math.Vec2) {
	m.uvs = uvs
	m.SetDirty(true)
}

// CopyUVs replaces the UV buffer with a copy of uvs.
func (m *Mesh) CopyUVs(uvs []math.Vec2) {
	m.SetUVs(append([]math.Vec2(nil), uvs...))
}

// SetUVsFlat reads two floats per coordinate. A trailing partial coordinate is dropped.
func (m *Mesh) SetUVsFlat(uvs []float32) {
	out := make([]math.Vec2, len(uvs)/2)
	for i := range out {
		out[i] = math.NewVec2(uvs[2*i], uvs[2*i+1])
	}
	m.SetUVs(out)
}

func (m *Mesh) NumUVs() int {
	return len(m.uvs)
}

// UVs returns the UV buffer. Callers must treat it as read-only.
func (m *Mesh) UVs() []math.Vec2 {
	return m.uvs
}

// GenerateNormals replaces the normals with face normals derived from the
// vertices and indices.
func (m *Mesh) GenerateNormals() {
	m.SetNormals(math.GeometryGenerateNormals(m.vertices, m.indices))
}

/**
 * @brief Returns the smallest box enclosing every vertex position. Only
 * the vertices contribute. A mesh without vertices yields the empty
 * extents.
 */
func (m *Mesh) LocalAABB() math.Extents3D {
	if !m.aabbValid() {
		m.aabb = math.NewExtents3DFromPoints(m.vertices)
		m.aabbCached = true
		m.aabbVersion = m.version
		m.aabbComputations++
	}
	return m.aabb
}

func (m *Mesh) WorldAABB() math.Extents3D {
	return m.LocalAABB().Transform(m.transform)
}

/**
 * @brief Checks the buffers for consistency: index count a multiple of 3,
 * every index inside the vertex buffer, and normals and UVs either absent
 * or matching the vertex count. Returns nil for a consistent mesh, or every
 * violation joined, each wrapping core.ErrInvalidMesh.
 */
func (m *Mesh) Validate() error {
	var errs []error
	if len(m.indices)%3 != 0 {
		errs = append(errs, fmt.Errorf("%w: %d indices is not a whole number of triangles", core.ErrInvalidMesh, len(m.indices)))
	}
	for i, idx := range m.indices {
		if int(idx) >= len(m.vertices) {
			errs = append(errs, fmt.Errorf("%w: index %d references vertex %d of %d", core.ErrInvalidMesh, i, idx, len(m.vertices)))
			break
		}
	}
	if len(m.normals) != 0 && len(m.normals) != len(m.vertices) {
		errs = append(errs, fmt.Errorf("%w: %d normals for %d vertices", core.ErrInvalidMesh, len(m.normals), len(m.vertices)))
	}
	if len(m.uvs) != 0 && len(m.uvs) != len(m.vertices) {
		errs = append(errs, fmt.Errorf("%w: %d uvs for %d vertices", core.ErrInvalidMesh, len(m.uvs), len(m.vertices)))
	}
	return errors.Join(errs...)
}

func unpackVec3(flat []float32) []math.Vec3 {
	out := make([]math.Vec3, len(flat)/3)
	for i := range out {
		out[i] = math.NewVec3(flat[3*i], flat[3*i+1], flat[3*i+2])
	}
	return out
}
