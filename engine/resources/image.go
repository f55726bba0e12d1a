package resources

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/spaghettifunk/prism/engine/math"
)

/**
 * @brief Builds a texture from an in-memory image. 16-bit images become
 * RGBA16F with channels normalized to [0,1]; everything else is converted
 * to straight-alpha RGBA8.
 *
 * @param name The texture name.
 * @param img The source image; its bounds origin may be anywhere.
 * @return A new texture owning a fresh buffer.
 */
func NewTextureFromImage(name string, img image.Image) *Texture {
	b := img.Bounds()
	width, height := uint32(b.Dx()), uint32(b.Dy())

	switch img.ColorModel() {
	case color.RGBA64Model, color.NRGBA64Model, color.Gray16Model:
		texels := make([]math.Vec4, 0, b.Dx()*b.Dy())
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBA64Model.Convert(img.At(x, y)).(color.NRGBA64)
				texels = append(texels, math.Vec4{
					X: unit16(c.R),
					Y: unit16(c.G),
					Z: unit16(c.B),
					W: unit16(c.A),
				})
			}
		}
		return NewTexture(name, width, height, TextureFormatRGBA16F, PackRGBA16F(texels))
	}

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return NewTexture(name, width, height, TextureFormatRGBA8, dst.Pix)
}

func unit16(v uint16) float32 {
	return math.Saturate(float32(v) / 65535.0)
}
