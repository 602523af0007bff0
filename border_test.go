package transvox

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"

	"github.com/voxely/transvox/voxel"
)

func TestBorderMaskBits(t *testing.T) {
	minPos := voxel.Elem(1)
	maxPos := voxel.Vec{4, 4, 4}
	for _, tc := range []struct {
		pos  voxel.Vec
		want uint8
	}{
		{voxel.Vec{2, 2, 2}, 0},
		{voxel.Vec{1, 2, 2}, borderNegX},
		{voxel.Vec{4, 2, 2}, borderPosX},
		{voxel.Vec{2, 1, 2}, borderNegY},
		{voxel.Vec{2, 4, 2}, borderPosY},
		{voxel.Vec{2, 2, 1}, borderNegZ},
		{voxel.Vec{2, 2, 4}, borderPosZ},
		{voxel.Vec{1, 1, 1}, borderNegX | borderNegY | borderNegZ},
		{voxel.Vec{4, 4, 4}, borderPosX | borderPosY | borderPosZ},
	} {
		if got := borderMask(tc.pos, minPos, maxPos); got != tc.want {
			t.Errorf("borderMask(%v) = %#x, want %#x", tc.pos, got, tc.want)
		}
	}
}

func TestSecondaryPositionInterior(t *testing.T) {
	// Vertices away from all boundary cells must not move.
	blockSize := voxel.Elem(16)
	minPos := voxel.Elem(1)
	p := ms3.Vec{X: 8.5, Y: 7, Z: 9.25}
	n := ms3.Vec{Y: 1}
	if got := secondaryPosition(p, n, 0, blockSize, minPos); got != p {
		t.Errorf("interior vertex moved: %v -> %v", p, got)
	}
}

func TestSecondaryPositionBoundary(t *testing.T) {
	blockSize := voxel.Elem(16)
	minPos := voxel.Elem(1)
	// A vertex inside the minimum X cell with a normal along Y moves only
	// along X: the offset projects onto the plane perpendicular to n.
	p := ms3.Vec{X: 1.5, Y: 8, Z: 8}
	n := ms3.Vec{Y: 1}
	got := secondaryPosition(p, n, 0, blockSize, minPos)
	if got.Y != p.Y || got.Z != p.Z {
		t.Errorf("offset leaked across the normal plane: %v", got)
	}
	wantX := p.X + (1-(p.X-1))*transitionCellScale
	if math32.Abs(got.X-wantX) > 1e-6 {
		t.Errorf("X offset = %v, want %v", got.X, wantX)
	}
	// With the normal along X the projection removes the whole offset.
	got = secondaryPosition(p, ms3.Vec{X: 1}, 0, blockSize, minPos)
	if got != p {
		t.Errorf("offset along the normal survived projection: %v", got)
	}
}

func TestNormalizedNotNull(t *testing.T) {
	if got := normalizedNotNull(ms3.Vec{}); got != (ms3.Vec{Y: 1}) {
		t.Errorf("zero gradient fallback = %v", got)
	}
	got := normalizedNotNull(ms3.Vec{X: 3, Y: 4})
	if math32.Abs(ms3.Norm(got)-1) > 1e-6 {
		t.Errorf("normalization not unit: %v", got)
	}
}

func TestDirToPrevVec(t *testing.T) {
	for dir, want := range map[uint8]voxel.Vec{
		1: {-1, 0, 0},
		2: {0, -1, 0},
		4: {0, 0, -1},
		5: {-1, 0, -1},
		7: {-1, -1, -1},
	} {
		if got := dirToPrevVec(dir); got != want {
			t.Errorf("dirToPrevVec(%d) = %v, want %v", dir, got, want)
		}
	}
}
