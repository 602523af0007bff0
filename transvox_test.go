package transvox_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"

	"github.com/voxely/transvox"
	"github.com/voxely/transvox/voxel"
)

// fillBuffer writes the raw SDF byte returned by f at every voxel.
func fillBuffer(t testing.TB, size voxel.Vec, f func(x, y, z int) uint8) *voxel.Buffer {
	t.Helper()
	vb, err := voxel.New(size)
	if err != nil {
		t.Fatal(err)
	}
	for z := 0; z < size[2]; z++ {
		for y := 0; y < size[1]; y++ {
			for x := 0; x < size[0]; x++ {
				vb.Set(x, y, z, voxel.ChannelSDF, f(x, y, z))
			}
		}
	}
	return vb
}

// checkMesh asserts the structural surface invariants: parallel attribute
// arrays, in-range distinct triangle indices and unit normals.
func checkMesh(t *testing.T, s transvox.Surface) {
	t.Helper()
	if len(s.Positions) != len(s.Normals) || len(s.Positions) != len(s.Extra) {
		t.Fatalf("attribute arrays not parallel: %d positions, %d normals, %d extras",
			len(s.Positions), len(s.Normals), len(s.Extra))
	}
	if len(s.Indices)%3 != 0 {
		t.Fatalf("index count %d not a multiple of 3", len(s.Indices))
	}
	for i := 0; i < len(s.Indices); i += 3 {
		a, b, c := s.Indices[i], s.Indices[i+1], s.Indices[i+2]
		n := int32(len(s.Positions))
		if a < 0 || b < 0 || c < 0 || a >= n || b >= n || c >= n {
			t.Fatalf("triangle %d indices out of range: %d %d %d of %d", i/3, a, b, c, n)
		}
		if a == b || b == c || a == c {
			t.Fatalf("triangle %d has repeated indices: %d %d %d", i/3, a, b, c)
		}
	}
	for i, n := range s.Normals {
		if math32.Abs(ms3.Norm(n)-1) > 1e-5 {
			t.Fatalf("normal %d not unit length: %v", i, n)
		}
	}
}

func TestUniformBlockEmpty(t *testing.T) {
	vb := fillBuffer(t, voxel.Elem(5), func(x, y, z int) uint8 { return 127 })
	m := transvox.NewMesher()
	out := m.Build(transvox.Input{Voxels: vb})
	if len(out.Surfaces) != 0 {
		t.Error("uniform block produced a regular surface")
	}
	for dir := transvox.Direction(0); dir < transvox.DirCount; dir++ {
		if len(out.TransitionSurfaces[dir]) != 0 {
			t.Errorf("uniform block produced a transition surface for direction %d", dir)
		}
		s := m.BuildTransitionMesh(vb, dir)
		if s.Len() != 0 {
			t.Errorf("BuildTransitionMesh(%d) not empty on uniform block", dir)
		}
	}
}

// flatFloor returns the 5x5x5 block solid below y=3 used by several tests.
func flatFloor(t testing.TB) *voxel.Buffer {
	return fillBuffer(t, voxel.Elem(5), func(x, y, z int) uint8 {
		if y >= 3 {
			return 127
		}
		return 129
	})
}

func TestFlatFloor(t *testing.T) {
	m := transvox.NewMesher()
	out := m.Build(transvox.Input{Voxels: flatFloor(t)})
	if len(out.Surfaces) != 1 {
		t.Fatal("expected one regular surface")
	}
	s := out.Surfaces[0]
	checkMesh(t, s)
	if s.Len() != 11 || len(s.Indices) != 8*3 {
		t.Errorf("flat floor mesh has %d vertices, %d triangles; want 11, 8", s.Len(), len(s.Indices)/3)
	}
	wantY := s.Positions[0].Y
	for i, p := range s.Positions {
		if p.Y != wantY {
			t.Errorf("vertex %d not coplanar: y=%v, want %v", i, p.Y, wantY)
		}
	}
	if wantY < 1.5 || wantY > 2.5 {
		t.Errorf("floor height %v outside interior extent", wantY)
	}
	for i, n := range s.Normals {
		if math32.Abs(n.Y) <= 0.99 {
			t.Errorf("normal %d not vertical: %v", i, n)
		}
	}
	if out.PrimitiveType != transvox.PrimitiveTriangles {
		t.Error("surface not tagged as triangle list")
	}
	if out.Compression != transvox.DefaultCompressionFlags {
		t.Error("compression flags not forwarded")
	}
}

func TestSingleCornerTriangle(t *testing.T) {
	vb := fillBuffer(t, voxel.Elem(5), func(x, y, z int) uint8 { return 127 })
	// Flip one voxel that is a corner of exactly one interior cell.
	vb.Set(3, 3, 3, voxel.ChannelSDF, 129)

	m := transvox.NewMesher()
	out := m.Build(transvox.Input{Voxels: vb})
	if len(out.Surfaces) != 1 {
		t.Fatal("expected one regular surface")
	}
	s := out.Surfaces[0]
	checkMesh(t, s)
	if len(s.Indices) != 3 {
		t.Fatalf("expected exactly one triangle, got %d", len(s.Indices)/3)
	}
	if s.Indices[0] == s.Indices[1] || s.Indices[1] == s.Indices[2] || s.Indices[0] == s.Indices[2] {
		t.Error("triangle vertices not unique")
	}
}

func TestTransitionSides(t *testing.T) {
	vb := flatFloor(t)
	m := transvox.NewMesher()

	// The -X face crosses the floor surface and must stitch both resolutions.
	s := m.BuildTransitionMesh(vb, transvox.DirNegativeX)
	checkMesh(t, s)
	if len(s.Indices) == 0 {
		t.Fatal("crossing face produced no transition triangles")
	}
	var full, half int
	for _, e := range s.Extra {
		if e[3] == 0 {
			half++
		} else {
			full++
		}
	}
	if full == 0 || half == 0 {
		t.Fatalf("expected vertices on both sides: %d full-res, %d half-res", full, half)
	}

	// The -Y face lies entirely inside the solid and produces nothing.
	s = m.BuildTransitionMesh(vb, transvox.DirNegativeY)
	if s.Len() != 0 {
		t.Errorf("submerged face produced %d vertices", s.Len())
	}
}

func TestCheckerboard(t *testing.T) {
	vb := fillBuffer(t, voxel.Elem(9), func(x, y, z int) uint8 {
		if (x+y+z)%2 == 0 {
			return 127
		}
		return 129
	})
	m := transvox.NewMesher()
	out := m.Build(transvox.Input{Voxels: vb})
	if len(out.Surfaces) != 1 {
		t.Fatal("expected one regular surface")
	}
	s := out.Surfaces[0]
	checkMesh(t, s)
	if s.Len() == 0 {
		t.Fatal("checkerboard produced no vertices")
	}
	for dir := transvox.Direction(0); dir < transvox.DirCount; dir++ {
		if len(out.TransitionSurfaces[dir]) != 1 {
			t.Fatalf("direction %d: expected one transition surface", dir)
		}
		checkMesh(t, out.TransitionSurfaces[dir][0])
	}
}

func TestBuildDeterministic(t *testing.T) {
	vb := fillBuffer(t, voxel.Elem(9), func(x, y, z int) uint8 {
		if (x+y+z)%2 == 0 {
			return 127
		}
		return 129
	})
	a := transvox.NewMesher().Build(transvox.Input{Voxels: vb})
	b := transvox.NewMesher().Build(transvox.Input{Voxels: vb})
	sa, sb := a.Surfaces[0], b.Surfaces[0]
	if sa.Len() != sb.Len() || len(sa.Indices) != len(sb.Indices) {
		t.Fatal("builds differ in size")
	}
	for i := range sa.Positions {
		if sa.Positions[i] != sb.Positions[i] || sa.Normals[i] != sb.Normals[i] || sa.Extra[i] != sb.Extra[i] {
			t.Fatalf("vertex %d differs between identical builds", i)
		}
	}
	for i := range sa.Indices {
		if sa.Indices[i] != sb.Indices[i] {
			t.Fatalf("index %d differs between identical builds", i)
		}
	}
}

func TestLODScaling(t *testing.T) {
	vb := flatFloor(t)
	base := transvox.NewMesher().Build(transvox.Input{Voxels: vb})
	scaled := transvox.NewMesher().Build(transvox.Input{Voxels: vb, LOD: 2})

	s0, s2 := base.Surfaces[0], scaled.Surfaces[0]
	if s0.Len() != s2.Len() {
		t.Fatal("LOD changed topology")
	}
	const factor = 4
	for i := range s0.Positions {
		want := ms3.Scale(factor, s0.Positions[i])
		got := s2.Positions[i]
		if ms3.Norm(ms3.Sub(want, got)) > 1e-4 {
			t.Fatalf("vertex %d not scaled by %d: got %v want %v", i, factor, got, want)
		}
	}
	for i := range s0.Indices {
		if s0.Indices[i] != s2.Indices[i] {
			t.Fatal("LOD changed triangle topology")
		}
	}
}

func TestTextureIndexForwarded(t *testing.T) {
	vb := flatFloor(t)
	size := vb.Size()
	for z := 0; z < size[2]; z++ {
		for y := 0; y < size[1]; y++ {
			for x := 0; x < size[0]; x++ {
				vb.Set(x, y, z, voxel.ChannelData2, 7)
			}
		}
	}
	out := transvox.NewMesher().Build(transvox.Input{Voxels: vb})
	for i, e := range out.Surfaces[0].Extra {
		if e[0] != 0 || e[1] != 7 || e[2] != 0 {
			t.Fatalf("vertex %d extra = %v, want (0, 7, 0, mask)", i, e)
		}
	}
}

func TestUndersizedBlock(t *testing.T) {
	vb := fillBuffer(t, voxel.Vec{3, 3, 3}, func(x, y, z int) uint8 {
		if y > 1 {
			return 127
		}
		return 129
	})
	m := transvox.NewMesher()
	out := m.Build(transvox.Input{Voxels: vb})
	if len(out.Surfaces) != 0 {
		t.Error("undersized block should mesh empty")
	}
}

// TestAdjacentBlockSeam verifies that two blocks of equal LOD sampled from
// the same world field emit identical vertex positions along their shared
// face, so the meshes join without cracks. Vertex sets are compared because
// the minimal side of a block re-emits some shared-face vertices it cannot
// reuse.
func TestAdjacentBlockSeam(t *testing.T) {
	const size = 12
	height := func(x, z int) float32 {
		return 3.3 + 0.37*float32((x*7+z*3)%5)
	}
	world := func(x, y, z int) uint8 {
		return voxel.ByteFromFloat(float32(y) - height(x, z))
	}
	const offset = size - 3 // blocks overlap by the shared padding
	blockA := fillBuffer(t, voxel.Elem(size), world)
	blockB := fillBuffer(t, voxel.Elem(size), func(x, y, z int) uint8 {
		return world(x+offset, y, z)
	})

	surfA := transvox.NewMesher().Build(transvox.Input{Voxels: blockA}).Surfaces[0]
	surfB := transvox.NewMesher().Build(transvox.Input{Voxels: blockB}).Surfaces[0]
	checkMesh(t, surfA)
	checkMesh(t, surfB)

	// Shared face: x == offset in A's frame, x == 0 in B's.
	planeVerts := func(s transvox.Surface, plane float32) map[[2]float32]bool {
		verts := make(map[[2]float32]bool)
		for _, p := range s.Positions {
			if p.X == plane {
				verts[[2]float32{p.Y, p.Z}] = true
			}
		}
		return verts
	}
	va := planeVerts(surfA, offset)
	vb := planeVerts(surfB, 0)
	if len(va) == 0 {
		t.Fatal("no vertices on the shared face")
	}
	if len(va) != len(vb) {
		t.Fatalf("seam vertex sets differ in size: %d vs %d", len(va), len(vb))
	}
	for v := range va {
		if !vb[v] {
			t.Fatalf("vertex %v on A's face missing from B's face", v)
		}
	}
}

func BenchmarkBuild(b *testing.B) {
	vb := fillBuffer(b, voxel.Elem(19), func(x, y, z int) uint8 {
		dx, dy, dz := float32(x-9), float32(y-9), float32(z-9)
		d := math32.Sqrt(dx*dx+dy*dy+dz*dz) - 7
		return voxel.ByteFromFloat(d)
	})
	m := transvox.NewMesher()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out := m.Build(transvox.Input{Voxels: vb})
		if len(out.Surfaces) == 0 {
			b.Fatal("empty build")
		}
	}
}
