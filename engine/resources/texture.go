package resources

import (
	"encoding/binary"
	stdmath "math"
	"math/bits"

	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/math"
)

/** @brief The default texture name. */
const DefaultTextureName string = "default"

/**
 * @brief Pixel layouts a texture buffer can carry. Every format stores four
 * channels per texel (R, G, B, A); multi-byte channels are little-endian.
 */
type TextureFormat int

const (
	/** @brief Unrecognised layout. Averages to zero. */
	TextureFormatUnknown TextureFormat = iota
	/** @brief 8-bit unsigned normalized channels. */
	TextureFormatRGBA8
	/** @brief 16-bit half-precision float channels. */
	TextureFormatRGBA16F
	/** @brief 32-bit float channels. */
	TextureFormatRGBA32F
)

const channelsPerTexel = 4

func (f TextureFormat) String() string {
	switch f {
	case TextureFormatRGBA8:
		return "rgba8"
	case TextureFormatRGBA16F:
		return "rgba16f"
	case TextureFormatRGBA32F:
		return "rgba32f"
	}
	return "unknown"
}

// BytesPerChannel returns the channel width of f, or 0 for unknown formats.
func (f TextureFormat) BytesPerChannel() int {
	switch f {
	case TextureFormatRGBA8:
		return 1
	case TextureFormatRGBA16F:
		return 2
	case TextureFormatRGBA32F:
		return 4
	}
	return 0
}

// BytesPerTexel returns the stride between consecutive texels.
func (f TextureFormat) BytesPerTexel() int {
	return f.BytesPerChannel() * channelsPerTexel
}

/**
 * @brief Represents a texture: a raw pixel buffer tagged with its
 * dimensions and format. The texture owns its buffer.
 */
type Texture struct {
	/** @brief The unique texture identifier. */
	ID uint32
	/** @brief The texture Generation. Incremented every time the data is replaced. */
	Generation uint32
	/** @brief The texture Name. */
	Name string
	/** @brief The texture Width. */
	Width uint32
	/** @brief The texture Height. */
	Height uint32
	/** @brief The layout of Data. */
	Format TextureFormat
	/** @brief The raw texture data (pixels). */
	Data []byte
}

func NewTexture(name string, width, height uint32, format TextureFormat, data []byte) *Texture {
	return &Texture{
		ID:     core.InvalidID,
		Name:   name,
		Width:  width,
		Height: height,
		Format: format,
		Data:   data,
	}
}

// Size returns width and height in texels.
func (t *Texture) Size() (uint32, uint32) {
	return t.Width, t.Height
}

// NumTexels returns width*height; it cannot overflow.
func (t *Texture) NumTexels() uint64 {
	return uint64(t.Width) * uint64(t.Height)
}

// SizeInBytes returns the buffer size the dimensions and format call for,
// saturating at MaxUint64.
func (t *Texture) SizeInBytes() uint64 {
	hi, lo := bits.Mul64(t.NumTexels(), uint64(t.Format.BytesPerTexel()))
	if hi != 0 {
		return stdmath.MaxUint64
	}
	return lo
}

// SetData replaces the pixel buffer and its description.
func (t *Texture) SetData(width, height uint32, format TextureFormat, data []byte) {
	t.Width = width
	t.Height = height
	t.Format = format
	t.Data = data
	t.Generation++
}

// PackRGBA8 encodes texels into an 8-bit buffer.
func PackRGBA8(texels [][4]uint8) []byte {
	out := make([]byte, 0, len(texels)*channelsPerTexel)
	for _, tx := range texels {
		out = append(out, tx[0], tx[1], tx[2], tx[3])
	}
	return out
}

// PackRGBA16F encodes texels as half floats.
func PackRGBA16F(texels []math.Vec4) []byte {
	out := make([]byte, len(texels)*channelsPerTexel*2)
	for i, tx := range texels {
		o := i * channelsPerTexel * 2
		binary.LittleEndian.PutUint16(out[o:], math.Float32ToHalf(tx.X))
		binary.LittleEndian.PutUint16(out[o+2:], math.Float32ToHalf(tx.Y))
		binary.LittleEndian.PutUint16(out[o+4:], math.Float32ToHalf(tx.Z))
		binary.LittleEndian.PutUint16(out[o+6:], math.Float32ToHalf(tx.W))
	}
	return out
}

// PackRGBA32F encodes texels as 32-bit floats.
func PackRGBA32F(texels []math.Vec4) []byte {
	out := make([]byte, len(texels)*channelsPerTexel*4)
	for i, tx := range texels {
		o := i * channelsPerTexel * 4
		binary.LittleEndian.PutUint32(out[o:], stdmath.Float32bits(tx.X))
		binary.LittleEndian.PutUint32(out[o+4:], stdmath.Float32bits(tx.Y))
		binary.LittleEndian.PutUint32(out[o+8:], stdmath.Float32bits(tx.Z))
		binary.LittleEndian.PutUint32(out[o+12:], stdmath.Float32bits(tx.W))
	}
	return out
}
