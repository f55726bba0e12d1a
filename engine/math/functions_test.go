package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMat4Mul(t *testing.T) {
	id := NewMat4Identity()
	tr := NewMat4Translation(NewVec3(1, 2, 3))
	assert.Equal(t, tr, id.Mul(tr))
	assert.Equal(t, tr, tr.Mul(id))
	assert.True(t, id.IsIdentity())
	assert.False(t, tr.IsIdentity())

	// scale first, then translate
	m := NewMat4Scale(NewVec3(2, 2, 2)).Mul(tr)
	assert.Equal(t, NewVec3(3, 4, 5), NewVec3(1, 1, 1).Transform(m))
}

func TestQuaternionMatchesEuler(t *testing.T) {
	angle := DegToRad(90)
	fromQuat := NewQuatFromAxisAngle(NewVec3(0, 0, 1), angle, true).ToMat4()
	fromEuler := NewMat4EulerZ(angle)

	p := NewVec3(1, 0, 0)
	assertVec3InDelta(t, p.Transform(fromEuler), p.Transform(fromQuat), 1e-5)
	assertVec3InDelta(t, NewVec3(0, 1, 0), p.Transform(fromQuat), 1e-5)
}

func TestDegToRad(t *testing.T) {
	assert.InDelta(t, K_PI, DegToRad(180), 1e-6)
	assert.InDelta(t, K_HALF_PI, DegToRad(90), 1e-6)
	assert.Zero(t, DegToRad(0))
}

func TestVec3Normalized(t *testing.T) {
	assert.Equal(t, NewVec3Zero(), NewVec3Zero().Normalized())
	assertVec3InDelta(t, NewVec3(0, 0.6, 0.8), NewVec3(0, 3, 4).Normalized(), 1e-6)
	assert.True(t, NewVec3(1, 1, 1).Compare(NewVec3(1, 1, 1.0000001), K_FLOAT_EPSILON*2))
}

func TestGeometryGenerateNormals(t *testing.T) {
	positions := []Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {5, 5, 5}}
	normals := GeometryGenerateNormals(positions, []uint32{0, 1, 2, 0, 1})
	assert.Len(t, normals, 4)
	for i := 0; i < 3; i++ {
		assert.Equal(t, NewVec3(0, 0, 1), normals[i])
	}
	assert.Equal(t, NewVec3Zero(), normals[3])

	// out-of-range triangle is skipped
	normals = GeometryGenerateNormals(positions, []uint32{0, 1, 9})
	assert.Equal(t, NewVec3Zero(), normals[0])
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(1), Clamp(float32(3), 0, 1))
	assert.Equal(t, 0, Clamp(-4, 0, 10))
	assert.Equal(t, uint8(7), Clamp(uint8(7), 0, 255))
	assert.Equal(t, float32(0.25), Saturate(float32(0.25)))
	assert.Equal(t, 0.0, Saturate(-2.0))
	assert.Equal(t, float32(1), Saturate(float32(1.5)))
}
