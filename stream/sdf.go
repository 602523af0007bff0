package stream

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/voxely/transvox/voxel"
)

// Field is an analytic signed distance field sampled in world units. Negative
// distances lie inside the solid.
type Field interface {
	Evaluate(q r3.Vec) float64
	Bounds() r3.Box
}

// SDF fills the SDF channel of blocks by sampling a Field at voxel centers.
type SDF struct {
	Field   Field
	Channel int
}

// NewSDF returns a source sampling field into the SDF channel.
func NewSDF(field Field) *SDF {
	return &SDF{Field: field, Channel: voxel.ChannelSDF}
}

// GenerateBlock implements [Source].
func (s *SDF) GenerateBlock(dst *voxel.Buffer, origin voxel.Vec, lod int) {
	size := dst.Size()
	step := float64(int(1) << lod)
	for z := 0; z < size[2]; z++ {
		for y := 0; y < size[1]; y++ {
			for x := 0; x < size[0]; x++ {
				q := r3.Vec{
					X: float64(origin[0]) + float64(x)*step,
					Y: float64(origin[1]) + float64(y)*step,
					Z: float64(origin[2]) + float64(z)*step,
				}
				d := s.Field.Evaluate(q) / step
				dst.SetFloat(x, y, z, s.Channel, float32(d))
			}
		}
	}
}

// Sphere is a spherical Field.
type Sphere struct {
	Center r3.Vec
	Radius float64
}

func (s Sphere) Evaluate(q r3.Vec) float64 {
	return r3.Norm(r3.Sub(q, s.Center)) - s.Radius
}

func (s Sphere) Bounds() r3.Box {
	r := r3.Vec{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return r3.Box{Min: r3.Sub(s.Center, r), Max: r3.Add(s.Center, r)}
}

// Box is a rounded axis-aligned box Field.
type Box struct {
	Center r3.Vec
	Size   r3.Vec
	Round  float64
}

func (b Box) Evaluate(q r3.Vec) float64 {
	p := r3.Sub(q, b.Center)
	d := r3.Vec{
		X: math.Abs(p.X) - b.Size.X/2,
		Y: math.Abs(p.Y) - b.Size.Y/2,
		Z: math.Abs(p.Z) - b.Size.Z/2,
	}
	outside := r3.Norm(r3.Vec{
		X: math.Max(d.X, 0),
		Y: math.Max(d.Y, 0),
		Z: math.Max(d.Z, 0),
	})
	inside := math.Min(math.Max(d.X, math.Max(d.Y, d.Z)), 0)
	return outside + inside - b.Round
}

func (b Box) Bounds() r3.Box {
	h := r3.Scale(0.5, b.Size)
	pad := r3.Vec{X: b.Round, Y: b.Round, Z: b.Round}
	return r3.Box{
		Min: r3.Sub(b.Center, r3.Add(h, pad)),
		Max: r3.Add(b.Center, r3.Add(h, pad)),
	}
}
