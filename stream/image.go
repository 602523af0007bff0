package stream

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/voxely/transvox/voxel"
)

// Image is an infinitely tiling heightmap source backed by a grayscale
// reading of an image. The image is resampled once to a working resolution so
// block generation only does integer lookups.
type Image struct {
	heights []float64
	w, h    int

	// HeightStart and HeightRange map the image's [0,1] luma span to world
	// altitudes.
	HeightStart float64
	HeightRange float64
	Channel     int
}

// NewImage builds a heightmap source from img, resampled to at most maxRes
// texels per side. A zero maxRes keeps the source resolution.
func NewImage(img image.Image, heightStart, heightRange float64, maxRes int) *Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxRes > 0 && (w > maxRes || h > maxRes) {
		dst := image.NewGray16(image.Rect(0, 0, min(w, maxRes), min(h, maxRes)))
		xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
		img = dst
		b = dst.Bounds()
		w, h = b.Dx(), b.Dy()
	}
	s := &Image{
		heights:     make([]float64, w*h),
		w:           w,
		h:           h,
		HeightStart: heightStart,
		HeightRange: heightRange,
		Channel:     voxel.ChannelSDF,
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			luma := (19595*r + 38470*g + 7471*bl) >> 16
			s.heights[y*w+x] = float64(luma) / 0xFFFF
		}
	}
	return s
}

// heightAt returns the world altitude of the tiling heightmap at (x, z).
func (s *Image) heightAt(x, z int) float64 {
	ix := ((x % s.w) + s.w) % s.w
	iz := ((z % s.h) + s.h) % s.h
	return s.HeightStart + s.heights[iz*s.w+ix]*s.HeightRange
}

// GenerateBlock implements [Source] with the vertical distance mode: the
// isolevel of a voxel is its altitude minus the terrain height below it.
func (s *Image) GenerateBlock(dst *voxel.Buffer, origin voxel.Vec, lod int) {
	size := dst.Size()
	for z := 0; z < size[2]; z++ {
		for x := 0; x < size[0]; x++ {
			h := s.heightAt(origin[0]+(x<<lod), origin[2]+(z<<lod))
			for y := 0; y < size[1]; y++ {
				ly := float64(origin[1] + (y << lod))
				dst.SetFloat(x, y, z, s.Channel, float32(ly-h))
			}
		}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
