package resources

import (
	"encoding/binary"
	stdmath "math"

	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/math"
)

// texelDecoder returns the R, G and B channels of texel i.
type texelDecoder func(data []byte, i int) math.Vec3

func decodeRGBA8(data []byte, i int) math.Vec3 {
	o := i * channelsPerTexel
	return math.Vec3{
		X: float32(data[o]) / 255.0,
		Y: float32(data[o+1]) / 255.0,
		Z: float32(data[o+2]) / 255.0,
	}
}

func decodeRGBA16F(data []byte, i int) math.Vec3 {
	o := i * channelsPerTexel * 2
	return math.Vec3{
		X: math.HalfToFloat32(binary.LittleEndian.Uint16(data[o:])),
		Y: math.HalfToFloat32(binary.LittleEndian.Uint16(data[o+2:])),
		Z: math.HalfToFloat32(binary.LittleEndian.Uint16(data[o+4:])),
	}
}

func decodeRGBA32F(data []byte, i int) math.Vec3 {
	o := i * channelsPerTexel * 4
	return math.Vec3{
		X: stdmath.Float32frombits(binary.LittleEndian.Uint32(data[o:])),
		Y: stdmath.Float32frombits(binary.LittleEndian.Uint32(data[o+4:])),
		Z: stdmath.Float32frombits(binary.LittleEndian.Uint32(data[o+8:])),
	}
}

func decoderFor(format TextureFormat) texelDecoder {
	switch format {
	case TextureFormatRGBA8:
		return decodeRGBA8
	case TextureFormatRGBA16F:
		return decodeRGBA16F
	case TextureFormatRGBA32F:
		return decodeRGBA32F
	}
	return nil
}

/**
 * @brief Computes the mean of the R, G and B channels over every texel.
 * Alpha is ignored. 8-bit channels are normalized by 255, float channels
 * are used as decoded. Texels are summed in index order, then the sum is
 * scaled by 1/(width*height).
 *
 * Unknown formats, zero dimensions and buffers shorter than the dimensions
 * require all yield the zero vector. The texture is only read.
 */
func (t *Texture) ComputeAverageValue() math.Vec3 {
	avg := math.NewVec3Zero()

	decode := decoderFor(t.Format)
	if decode == nil {
		return avg
	}

	texels := t.NumTexels()
	if texels == 0 {
		return avg
	}
	// divide rather than multiply so huge dimensions cannot wrap
	if uint64(len(t.Data))/uint64(t.Format.BytesPerTexel()) < texels {
		core.LogWarn("texture '%s' holds %d bytes, %dx%d %s needs %d", t.Name, len(t.Data), t.Width, t.Height, t.Format, t.SizeInBytes())
		return avg
	}

	numElements := int(texels)
	for i := 0; i < numElements; i++ {
		avg = avg.Add(decode(t.Data, i))
	}

	return avg.MulScalar(1.0 / float32(numElements))
}
