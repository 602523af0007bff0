// Package stream provides voxel sources: generators that fill voxel buffers
// with terrain data for the polygonizer to consume. Sources are pure
// capability interfaces so hosts can plug in noise, heightmaps, analytic
// fields or paged storage without the core knowing the difference.
package stream

import "github.com/voxely/transvox/voxel"

// airLevel is the isolevel written to voxels far outside any surface.
const airLevel = 100.0

// Source generates the voxel content of one block. origin is the position of
// the block's first voxel in world space; lod scales one voxel step to
// 2^lod world units. Implementations must be safe for concurrent use.
type Source interface {
	GenerateBlock(dst *voxel.Buffer, origin voxel.Vec, lod int)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(dst *voxel.Buffer, origin voxel.Vec, lod int)

func (f SourceFunc) GenerateBlock(dst *voxel.Buffer, origin voxel.Vec, lod int) {
	f(dst, origin, lod)
}

func rangesIntersect(start1, end1, start2, end2 int) bool {
	maxStart := start1
	if start2 > maxStart {
		maxStart = start2
	}
	minEnd := end1
	if end2 < minEnd {
		minEnd = end2
	}
	return minEnd >= maxStart
}
