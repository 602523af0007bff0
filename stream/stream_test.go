package stream_test

import (
	"image"
	"image/color"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/voxely/transvox"
	"github.com/voxely/transvox/stream"
	"github.com/voxely/transvox/voxel"
)

func TestNoiseDeterministic(t *testing.T) {
	n := stream.DefaultNoise3D(42)
	a := n.Sample(12.5, -3.25, 700)
	b := n.Sample(12.5, -3.25, 700)
	if a != b {
		t.Fatal("noise not deterministic")
	}
	if a < -1 || a > 1 {
		t.Fatalf("noise sample %v out of range", a)
	}
	other := stream.DefaultNoise3D(43).Sample(12.5, -3.25, 700)
	if other == a {
		t.Error("different seeds produced identical samples")
	}
}

func TestNoiseSourceOutOfRangeIsAir(t *testing.T) {
	src := stream.NewNoise(stream.DefaultNoise3D(1), 0, 64)
	vb, _ := voxel.New(voxel.Elem(8))
	src.GenerateBlock(vb, voxel.Vec{0, 1000, 0}, 0)
	if !vb.IsUniform(voxel.ChannelSDF) {
		t.Error("block far above the height range should stay uniform air")
	}
	if vb.GetFloat(0, 0, 0, voxel.ChannelSDF) <= 0 {
		t.Error("out of range block not air")
	}
}

func TestNoiseSourceInRangeVaries(t *testing.T) {
	src := stream.NewNoise(stream.DefaultNoise3D(1), 0, 256)
	vb, _ := voxel.New(voxel.Elem(16))
	src.GenerateBlock(vb, voxel.Vec{0, 64, 0}, 0)
	if vb.IsUniform(voxel.ChannelSDF) {
		t.Error("block inside the height range stayed uniform")
	}
}

func TestImageSourceMeshable(t *testing.T) {
	// Gradient heightmap: terrain rises along x.
	img := image.NewGray(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(x * 16)})
		}
	}
	src := stream.NewImage(img, 0, 12, 0)
	vb, _ := voxel.New(voxel.Elem(16))
	src.GenerateBlock(vb, voxel.Vec{0, 0, 0}, 0)

	if vb.IsUniform(voxel.ChannelSDF) {
		t.Fatal("heightmap block is uniform")
	}
	out := transvox.NewMesher().Build(transvox.Input{Voxels: vb})
	if len(out.Surfaces) != 1 || out.Surfaces[0].Len() == 0 {
		t.Fatal("heightmap terrain produced no mesh")
	}
}

func TestImageSourceTiles(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	img.SetGray(1, 2, color.Gray{Y: 200})
	src := stream.NewImage(img, 0, 10, 0)
	a, _ := voxel.New(voxel.Elem(4))
	b, _ := voxel.New(voxel.Elem(4))
	src.GenerateBlock(a, voxel.Vec{0, 0, 0}, 0)
	src.GenerateBlock(b, voxel.Vec{4, 0, 4}, 0)
	for y := 0; y < 4; y++ {
		for z := 0; z < 4; z++ {
			for x := 0; x < 4; x++ {
				if a.Get(x, y, z, voxel.ChannelSDF) != b.Get(x, y, z, voxel.ChannelSDF) {
					t.Fatal("heightmap does not tile with its own period")
				}
			}
		}
	}
}

func TestSDFSourceSphere(t *testing.T) {
	field := stream.Sphere{Center: r3.Vec{X: 8, Y: 8, Z: 8}, Radius: 5}
	src := stream.NewSDF(field)
	vb, _ := voxel.New(voxel.Elem(16))
	src.GenerateBlock(vb, voxel.Vec{0, 0, 0}, 0)

	if vb.GetFloat(8, 8, 8, voxel.ChannelSDF) >= 0 {
		t.Error("sphere center not solid")
	}
	if vb.GetFloat(0, 0, 0, voxel.ChannelSDF) <= 0 {
		t.Error("block corner not air")
	}
	out := transvox.NewMesher().Build(transvox.Input{Voxels: vb})
	if len(out.Surfaces) != 1 {
		t.Fatal("sphere produced no mesh")
	}
	s := out.Surfaces[0]
	// All vertices must sit near the sphere surface.
	for i, p := range s.Positions {
		d := field.Evaluate(r3.Vec{
			// Mesh space starts at the first unpadded voxel.
			X: float64(p.X) + 1,
			Y: float64(p.Y) + 1,
			Z: float64(p.Z) + 1,
		})
		if d > 1.5 || d < -1.5 {
			t.Fatalf("vertex %d at %v is %v away from the sphere surface", i, p, d)
		}
	}
}

func TestBoxField(t *testing.T) {
	b := stream.Box{Center: r3.Vec{}, Size: r3.Vec{X: 4, Y: 2, Z: 6}}
	if b.Evaluate(r3.Vec{}) >= 0 {
		t.Error("box center not inside")
	}
	if b.Evaluate(r3.Vec{X: 10}) <= 0 {
		t.Error("far point not outside")
	}
	bb := b.Bounds()
	if bb.Min.X != -2 || bb.Max.Z != 3 {
		t.Errorf("bounds %+v", bb)
	}
}
