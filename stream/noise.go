package stream

import (
	"math"

	"github.com/voxely/transvox/voxel"
)

// Noise3D is a deterministic fractal value noise sampler. Lattice values come
// from integer hashing so the same seed reproduces the same terrain on every
// platform.
type Noise3D struct {
	Seed        int64
	Period      float64 // wavelength of the first octave in world units
	Octaves     int
	Persistence float64 // amplitude falloff per octave
	Lacunarity  float64 // frequency gain per octave
}

// DefaultNoise3D returns a sampler with terrain-friendly parameters.
func DefaultNoise3D(seed int64) Noise3D {
	return Noise3D{
		Seed:        seed,
		Period:      64,
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  2,
	}
}

// Sample returns noise in [-1, 1] at the given position.
func (n Noise3D) Sample(x, y, z float64) float64 {
	period := n.Period
	if period <= 0 {
		period = 64
	}
	octaves := n.Octaves
	if octaves < 1 {
		octaves = 1
	}
	amplitude := 1.0
	frequency := 1 / period
	sum := 0.0
	norm := 0.0
	for i := 0; i < octaves; i++ {
		sum += valueNoise3D(x*frequency, y*frequency, z*frequency, n.Seed+int64(i)*131) * amplitude
		norm += amplitude
		amplitude *= n.Persistence
		frequency *= n.Lacunarity
	}
	return 2*sum/norm - 1
}

// fade is the smoothstep-like quintic 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// hash3 mixes lattice coordinates SplitMix64-style, stable across runs.
func hash3(x, y, z, seed int64) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 + uint64(y)*0x517CC1B727220A95 + uint64(z)*0x6C62272E07BB0142 + uint64(seed)
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

func latticeValue3D(x, y, z, seed int64) float64 {
	return float64(hash3(x, y, z, seed)&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

// valueNoise3D interpolates lattice values at the 8 surrounding corners.
// Result is in [0, 1].
func valueNoise3D(x, y, z float64, seed int64) float64 {
	x0, y0, z0 := math.Floor(x), math.Floor(y), math.Floor(z)
	fx, fy, fz := fade(x-x0), fade(y-y0), fade(z-z0)
	ix, iy, iz := int64(x0), int64(y0), int64(z0)

	v000 := latticeValue3D(ix, iy, iz, seed)
	v100 := latticeValue3D(ix+1, iy, iz, seed)
	v010 := latticeValue3D(ix, iy+1, iz, seed)
	v110 := latticeValue3D(ix+1, iy+1, iz, seed)
	v001 := latticeValue3D(ix, iy, iz+1, seed)
	v101 := latticeValue3D(ix+1, iy, iz+1, seed)
	v011 := latticeValue3D(ix, iy+1, iz+1, seed)
	v111 := latticeValue3D(ix+1, iy+1, iz+1, seed)

	bottom := lerp(lerp(v000, v100, fx), lerp(v010, v110, fx), fy)
	top := lerp(lerp(v001, v101, fx), lerp(v011, v111, fx), fy)
	return lerp(bottom, top, fz)
}

// Noise fills the SDF channel of blocks from fractal noise inside a vertical
// band. Voxels outside [HeightStart, HeightStart+HeightRange) stay air.
type Noise struct {
	Noise       Noise3D
	HeightStart float64
	HeightRange float64
	Channel     int
}

// NewNoise returns a noise source writing to the SDF channel.
func NewNoise(noise Noise3D, heightStart, heightRange float64) *Noise {
	return &Noise{
		Noise:       noise,
		HeightStart: heightStart,
		HeightRange: heightRange,
		Channel:     voxel.ChannelSDF,
	}
}

// GenerateBlock implements [Source]. The isolevel scale tracks the noise
// period so bigger features produce proportionally deeper gradients.
func (s *Noise) GenerateBlock(dst *voxel.Buffer, origin voxel.Vec, lod int) {
	dst.FillFloat(s.Channel, airLevel)

	size := dst.Size()
	isoScale := s.Noise.Period * 0.1
	if isoScale <= 0 {
		isoScale = 1
	}

	blockBottom := origin[1]
	blockTop := origin[1] + ((size[1] - 1) << lod)
	if !rangesIntersect(int(s.HeightStart), int(s.HeightStart+s.HeightRange), blockBottom, blockTop) {
		return
	}

	for z := 0; z < size[2]; z++ {
		for x := 0; x < size[0]; x++ {
			for y := 0; y < size[1]; y++ {
				lx := float64(origin[0] + (x << lod))
				ly := float64(origin[1] + (y << lod))
				lz := float64(origin[2] + (z << lod))

				if ly < s.HeightStart || ly >= s.HeightStart+s.HeightRange {
					continue
				}
				n := s.Noise.Sample(lx, ly, lz)
				dst.SetFloat(x, y, z, s.Channel, float32(n*isoScale))
			}
		}
	}
}
