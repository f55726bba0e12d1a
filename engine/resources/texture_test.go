package resources

import (
	"encoding/binary"
	"image"
	"image/color"
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/prism/engine/math"
)

func TestAverageRGBA8(t *testing.T) {
	tex := NewTexture("rg", 2, 1, TextureFormatRGBA8, PackRGBA8([][4]uint8{
		{255, 0, 0, 255},
		{0, 255, 0, 255},
	}))
	assert.Equal(t, math.NewVec3(0.5, 0.5, 0), tex.ComputeAverageValue())
}

func TestAverageRGBA8IgnoresAlpha(t *testing.T) {
	opaque := NewTexture("a", 1, 1, TextureFormatRGBA8, []byte{51, 102, 204, 255})
	clear := NewTexture("b", 1, 1, TextureFormatRGBA8, []byte{51, 102, 204, 0})
	assert.Equal(t, opaque.ComputeAverageValue(), clear.ComputeAverageValue())
	assert.InDelta(t, 0.2, opaque.ComputeAverageValue().X, 1e-6)
}

func TestAverageRGBA32F(t *testing.T) {
	tex := NewTexture("f", 1, 1, TextureFormatRGBA32F, PackRGBA32F([]math.Vec4{
		{X: 0.25, Y: 0.75, Z: 1.0, W: 1.0},
	}))
	assert.Equal(t, math.NewVec3(0.25, 0.75, 1.0), tex.ComputeAverageValue())
}

func TestAverageRGBA32FMultipleTexels(t *testing.T) {
	tex := NewTexture("f", 2, 2, TextureFormatRGBA32F, PackRGBA32F([]math.Vec4{
		{X: 1, Y: 0, Z: 2, W: 0},
		{X: 3, Y: 0, Z: 2, W: 0},
		{X: 1, Y: 4, Z: 2, W: 0},
		{X: 3, Y: 0, Z: 2, W: 0},
	}))
	assert.Equal(t, math.NewVec3(2, 1, 2), tex.ComputeAverageValue())
}

func TestAverageRGBA16F(t *testing.T) {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint16(data[0:], 0x3c00) // 1.0
	binary.LittleEndian.PutUint16(data[2:], 0x0000) // 0.0
	binary.LittleEndian.PutUint16(data[4:], 0x3800) // 0.5
	binary.LittleEndian.PutUint16(data[6:], 0x3c00)
	tex := NewTexture("h", 1, 1, TextureFormatRGBA16F, data)

	avg := tex.ComputeAverageValue()
	assert.InDelta(t, 1.0, avg.X, 1e-3)
	assert.InDelta(t, 0.0, avg.Y, 1e-3)
	assert.InDelta(t, 0.5, avg.Z, 1e-3)

	packed := NewTexture("h", 1, 1, TextureFormatRGBA16F, PackRGBA16F([]math.Vec4{{X: 1, Y: 0, Z: 0.5, W: 1}}))
	assert.Equal(t, data, packed.Data)
}

func TestAverageUnknownFormat(t *testing.T) {
	tex := NewTexture("u", 1, 1, TextureFormat(42), []byte{255, 255, 255, 255, 1, 2, 3, 4})
	assert.Equal(t, math.NewVec3Zero(), tex.ComputeAverageValue())

	var zero Texture
	assert.Equal(t, math.NewVec3Zero(), zero.ComputeAverageValue())
}

func TestAverageDegenerateBuffers(t *testing.T) {
	empty := NewTexture("e", 0, 4, TextureFormatRGBA8, nil)
	assert.Equal(t, math.NewVec3Zero(), empty.ComputeAverageValue())

	short := NewTexture("s", 2, 2, TextureFormatRGBA32F, make([]byte, 16))
	assert.Equal(t, math.NewVec3Zero(), short.ComputeAverageValue())

	// width*height*4 wraps a 64-bit int to 0
	huge := NewTexture("huge", 1<<31, 1<<31, TextureFormatRGBA8, nil)
	assert.NotPanics(t, func() {
		assert.Equal(t, math.NewVec3Zero(), huge.ComputeAverageValue())
	})
	assert.Equal(t, uint64(1<<64-1), NewTexture("max", 1<<31, 1<<31, TextureFormatRGBA32F, nil).SizeInBytes())
}

func TestTextureSizes(t *testing.T) {
	tex := NewTexture("t", 3, 2, TextureFormatRGBA16F, nil)
	w, h := tex.Size()
	assert.Equal(t, uint32(3), w)
	assert.Equal(t, uint32(2), h)
	assert.Equal(t, uint64(48), tex.SizeInBytes())
	assert.Equal(t, uint64(6), tex.NumTexels())
	assert.Equal(t, 0, TextureFormatUnknown.BytesPerTexel())
	assert.Equal(t, "rgba32f", TextureFormatRGBA32F.String())

	tex.SetData(1, 1, TextureFormatRGBA8, []byte{0, 0, 0, 0})
	assert.Equal(t, uint32(1), tex.Generation)
	assert.Equal(t, uint64(4), tex.SizeInBytes())

	huge := NewTexture("huge", stdmath.MaxUint32, stdmath.MaxUint32, TextureFormatRGBA32F, nil)
	assert.Equal(t, uint64(stdmath.MaxUint64), huge.SizeInBytes())
}

func TestNewTextureFromImage(t *testing.T) {
	t.Run("8-bit", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(5, 5, 7, 6))
		img.Set(5, 5, color.RGBA{R: 255, A: 255})
		img.Set(6, 5, color.RGBA{G: 255, A: 255})

		tex := NewTextureFromImage("img", img)
		require.Equal(t, TextureFormatRGBA8, tex.Format)
		assert.Equal(t, uint32(2), tex.Width)
		assert.Equal(t, uint32(1), tex.Height)
		assert.Len(t, tex.Data, int(tex.SizeInBytes()))
		assert.Equal(t, math.NewVec3(0.5, 0.5, 0), tex.ComputeAverageValue())
	})

	t.Run("16-bit", func(t *testing.T) {
		img := image.NewNRGBA64(image.Rect(0, 0, 1, 1))
		img.Set(0, 0, color.NRGBA64{R: 65535, G: 0, B: 32768, A: 65535})

		tex := NewTextureFromImage("img16", img)
		require.Equal(t, TextureFormatRGBA16F, tex.Format)
		avg := tex.ComputeAverageValue()
		assert.InDelta(t, 1.0, avg.X, 1e-3)
		assert.InDelta(t, 0.0, avg.Y, 1e-3)
		assert.InDelta(t, 0.5, avg.Z, 1e-3)
	})
}
