package testbed

import (
	"image"
	"image/color"

	"github.com/spaghettifunk/prism/engine"
	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/math"
	"github.com/spaghettifunk/prism/engine/resources"
	"github.com/spaghettifunk/prism/engine/scene"
)

type TestGame struct {
	*engine.Game
}

type gameState struct {
	cube      scene.ShapeHandle
	instances []*scene.Instance
	spin      *math.Transform
}

func NewTestGame() *TestGame {
	tg := &TestGame{
		Game: &engine.Game{
			State: &gameState{},
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnShutdown = tg.Shutdown

	return tg
}

func (g *TestGame) state() *gameState {
	return g.State.(*gameState)
}

/**
 * @brief Populates the scene with one cube mesh and a ring of instances of
 * it, and registers one texture per supported format.
 */
func (g *TestGame) Initialize(e *engine.Engine) error {
	core.LogInfo("initializing testbed...")
	st := g.state()

	materials := e.Systems().Materials()
	red, err := materials.Acquire(resources.MaterialConfig{
		Name:           "testbed_red",
		DiffuseColour:  math.NewVec4(0.9, 0.1, 0.1, 1),
		Shininess:      32,
		DiffuseMapName: "checker",
	})
	if err != nil {
		return err
	}

	cube := NewCube(2, 2, 2)
	cube.SetName("cube")
	cube.SetMaterial(red.Handle)
	if err := cube.Validate(); err != nil {
		return err
	}
	st.cube, err = e.Scene().Attach(cube)
	if err != nil {
		return err
	}

	const ringSize = 6
	for i := 0; i < ringSize; i++ {
		angle := float32(i) * 2 * math.K_PI / ringSize
		inst := scene.NewInstance(e.Scene(), st.cube)
		inst.SetMaterial(materials.DefaultMaterial.Handle)
		inst.SetTransform(math.NewMat4Translation(math.NewVec3(10, 0, 0)).Mul(math.NewMat4EulerY(angle)))
		if i%2 == 1 {
			inst.SetShadow(false)
		}
		if _, err := e.Scene().Attach(inst); err != nil {
			return err
		}
		st.instances = append(st.instances, inst)
	}
	st.spin = math.TransformFromPosition(math.NewVec3(0, 5, 0))

	for _, t := range testTextures() {
		if err := e.Systems().Textures().Register(t); err != nil {
			return err
		}
	}
	return nil
}

// Update spins the first instance around the Y axis.
func (g *TestGame) Update(e *engine.Engine, deltaTime float64) error {
	st := g.state()
	if len(st.instances) == 0 {
		return nil
	}
	rotation := math.NewQuatFromAxisAngle(math.NewVec3(0, 1, 0), float32(0.5*deltaTime), false)
	st.spin.Rotate(rotation)
	st.instances[0].SetTransform(st.spin.GetLocal())
	return nil
}

func (g *TestGame) Shutdown(e *engine.Engine) error {
	core.LogInfo("shutting down testbed...")
	st := g.state()
	for _, inst := range st.instances {
		inst.SetBaseShape(scene.NoShape)
	}
	st.instances = nil
	return e.Scene().Detach(st.cube)
}

// NewCube builds an axis-aligned box centred on the origin with flat
// normals and per-face UVs.
func NewCube(width, height, depth float32) *scene.Mesh {
	hw, hh, hd := width*0.5, height*0.5, depth*0.5
	corners := func(face int) [4]math.Vec3 {
		switch face {
		case 0: // +Z
			return [4]math.Vec3{{X: -hw, Y: -hh, Z: hd}, {X: hw, Y: -hh, Z: hd}, {X: hw, Y: hh, Z: hd}, {X: -hw, Y: hh, Z: hd}}
		case 1: // -Z
			return [4]math.Vec3{{X: hw, Y: -hh, Z: -hd}, {X: -hw, Y: -hh, Z: -hd}, {X: -hw, Y: hh, Z: -hd}, {X: hw, Y: hh, Z: -hd}}
		case 2: // -X
			return [4]math.Vec3{{X: -hw, Y: -hh, Z: -hd}, {X: -hw, Y: -hh, Z: hd}, {X: -hw, Y: hh, Z: hd}, {X: -hw, Y: hh, Z: -hd}}
		case 3: // +X
			return [4]math.Vec3{{X: hw, Y: -hh, Z: hd}, {X: hw, Y: -hh, Z: -hd}, {X: hw, Y: hh, Z: -hd}, {X: hw, Y: hh, Z: hd}}
		case 4: // -Y
			return [4]math.Vec3{{X: -hw, Y: -hh, Z: -hd}, {X: hw, Y: -hh, Z: -hd}, {X: hw, Y: -hh, Z: hd}, {X: -hw, Y: -hh, Z: hd}}
		default: // +Y
			return [4]math.Vec3{{X: -hw, Y: hh, Z: hd}, {X: hw, Y: hh, Z: hd}, {X: hw, Y: hh, Z: -hd}, {X: -hw, Y: hh, Z: -hd}}
		}
	}

	vertices := make([]math.Vec3, 0, 24)
	uvs := make([]math.Vec2, 0, 24)
	indices := make([]uint32, 0, 36)
	for face := 0; face < 6; face++ {
		base := uint32(len(vertices))
		c := corners(face)
		vertices = append(vertices, c[:]...)
		uvs = append(uvs, math.NewVec2(0, 0), math.NewVec2(1, 0), math.NewVec2(1, 1), math.NewVec2(0, 1))
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	m := scene.NewMesh()
	m.SetVertices(vertices)
	m.SetUVs(uvs)
	m.SetIndices(indices)
	m.GenerateNormals()
	return m
}

func testTextures() []*resources.Texture {
	checker := make([][4]uint8, 0, 16)
	for i := 0; i < 16; i++ {
		if (i/4+i%4)%2 == 0 {
			checker = append(checker, [4]uint8{255, 255, 255, 255})
		} else {
			checker = append(checker, [4]uint8{0, 0, 0, 255})
		}
	}

	gradient := make([]math.Vec4, 0, 8)
	for i := 0; i < 8; i++ {
		v := float32(i) / 7
		gradient = append(gradient, math.NewVec4(v, 1-v, 0.5, 1))
	}

	hdr := []math.Vec4{
		math.NewVec4(4, 2, 1, 1),
		math.NewVec4(0.25, 0.5, 8, 1),
	}

	deep := image.NewRGBA64(image.Rect(0, 0, 2, 2))
	deep.Set(0, 0, color.RGBA64{R: 0xffff, A: 0xffff})
	deep.Set(1, 0, color.RGBA64{G: 0xffff, A: 0xffff})
	deep.Set(0, 1, color.RGBA64{B: 0xffff, A: 0xffff})
	deep.Set(1, 1, color.RGBA64{R: 0x8000, G: 0x8000, B: 0x8000, A: 0xffff})

	return []*resources.Texture{
		resources.NewTexture("checker", 4, 4, resources.TextureFormatRGBA8, resources.PackRGBA8(checker)),
		resources.NewTexture("gradient", 8, 1, resources.TextureFormatRGBA16F, resources.PackRGBA16F(gradient)),
		resources.NewTexture("hdr", 2, 1, resources.TextureFormatRGBA32F, resources.PackRGBA32F(hdr)),
		resources.NewTextureFromImage("deep", deep),
	}
}
