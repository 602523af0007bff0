package transvox

import (
	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"

	"github.com/voxely/transvox/voxel"
)

// Bits of the 6-bit cell border mask. The full 16-bit vertex mask packs this
// in bits 0-5 and, in bits 6-11, the face bits common to both endpoints of
// the vertex's edge.
const (
	borderNegX = 1 << iota
	borderPosX
	borderNegY
	borderPosY
	borderNegZ
	borderPosZ
)

// borderOffset computes the per-axis displacement that shrinks boundary cells
// to make room for transition meshes. Cells are in local scale here, so the
// polygonizers always pass lod 0 and the width of the freed band is a fixed
// fraction of the cell.
func borderOffset(pos ms3.Vec, lod int, blockSize, minPos voxel.Vec) ms3.Vec {
	var delta ms3.Vec

	p2k := float32(int(1) << lod)
	p2mk := 1 / p2k
	wk := transitionCellScale * p2k

	for i := 0; i < 3; i++ {
		p := elem(pos, i) - float32(minPos[i])
		s := float32(blockSize[i])
		switch {
		case p < p2k:
			// Vertex inside the minimum cell.
			setElem(&delta, i, (1-p2mk*p)*wk)
		case p > p2k*(s-1):
			// Vertex inside the maximum cell.
			setElem(&delta, i, (p2k*s-1-p)*wk)
		}
	}
	return delta
}

// projectBorderOffset projects delta onto the plane perpendicular to the
// vertex normal: (I - n·nᵀ)·Δ.
func projectBorderOffset(delta, normal ms3.Vec) ms3.Vec {
	return ms3.Vec{
		X: (1-normal.X*normal.X)*delta.X - normal.Y*normal.X*delta.Y - normal.Z*normal.X*delta.Z,
		Y: -normal.X*normal.Y*delta.X + (1-normal.Y*normal.Y)*delta.Y - normal.Z*normal.Y*delta.Z,
		Z: -normal.X*normal.Z*delta.X - normal.Y*normal.Z*delta.Y + (1-normal.Z*normal.Z)*delta.Z,
	}
}

// secondaryPosition displaces a boundary vertex so it lines up with the
// transition patch of a coarser neighbor.
func secondaryPosition(primary, normal ms3.Vec, lod int, blockSize, minPos voxel.Vec) ms3.Vec {
	delta := borderOffset(primary, lod, blockSize, minPos)
	delta = projectBorderOffset(delta, normal)
	return ms3.Add(primary, delta)
}

// borderMask reports which block faces the position touches.
func borderMask(pos, minPos, maxPos voxel.Vec) uint8 {
	var mask uint8
	for i := 0; i < 3; i++ {
		if pos[i] == minPos[i] {
			mask |= 1 << (i * 2)
		}
		if pos[i] == maxPos[i] {
			mask |= 1 << (i*2 + 1)
		}
	}
	return mask
}

// normalizedNotNull is unit normalization with a vertical fallback for
// zero-length gradients.
func normalizedNotNull(n ms3.Vec) ms3.Vec {
	lengthSq := ms3.Dot(n, n)
	if lengthSq == 0 {
		return ms3.Vec{Y: 1}
	}
	return ms3.Scale(1/math32.Sqrt(lengthSq), n)
}

func elem(v ms3.Vec, i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func setElem(v *ms3.Vec, i int, f float32) {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	default:
		v.Z = f
	}
}
