package transvox

import (
	"github.com/soypat/geometry/ms3"

	"github.com/voxely/transvox/voxel"
)

// faceToBlock converts face-space coordinates to block space for one of the
// six directions. Configurations are chosen so X and Y map different axes at
// the same relative orientation and only Z flips in half the cases.
func faceToBlock(x, y, z int, dir Direction, bs voxel.Vec) voxel.Vec {
	switch dir {
	case DirNegativeX:
		return voxel.Vec{z, x, y}
	case DirPositiveX:
		return voxel.Vec{bs[0] - 1 - z, y, x}
	case DirNegativeY:
		return voxel.Vec{y, z, x}
	case DirPositiveY:
		return voxel.Vec{x, bs[1] - 1 - z, y}
	case DirNegativeZ:
		return voxel.Vec{x, y, z}
	case DirPositiveZ:
		return voxel.Vec{y, x, bs[2] - 1 - z}
	default:
		panic("transvox: invalid direction")
	}
}

// faceAxes returns the block axes spanned by face-space X and Y.
func faceAxes(dir Direction) (ax, ay int) {
	switch dir {
	case DirNegativeX:
		return 1, 2
	case DirPositiveX:
		return 2, 1
	case DirNegativeY:
		return 2, 0
	case DirPositiveY:
		return 0, 2
	case DirNegativeZ:
		return 0, 1
	case DirPositiveZ:
		return 1, 0
	default:
		panic("transvox: invalid direction")
	}
}

// buildTransition polygonizes the transition layer of one block face. The
// sweep works in face space, two voxels per step, over a 3x3 stencil of
// full-resolution samples; the four half-resolution samples are the stencil
// corners. Transition meshes here go from the high-resolution block toward
// its low-resolution neighbor, so the half-res samples come for free from the
// same buffer.
//
//	6---7---8    B-------C
//	|   |   |    |       |
//	3---4---5    |       |
//	|   |   |    |       |
//	0---1---2    9-------A
func (m *Mesher) buildTransition(voxels *voxel.Buffer, channel int, direction Direction) {
	if voxels.IsUniform(channel) {
		return
	}

	blockSize := voxels.Size()
	if blockSize.MinElem() < 3 {
		return
	}
	blockSizeUnpadded := blockSize.SubScalar(MinPadding + MaxPadding)

	m.resetReuseCells2D(blockSize)

	samp := sampler{vb: voxels, channel: channel}

	// Box of voxels being worked on, including the padding that lets the
	// gradient stencil reach one voxel further.
	minPos := voxel.Elem(MinPadding)
	maxPos := blockSize.SubScalar(MaxPadding)

	axisX, axisY := faceAxes(direction)
	minFposX := minPos[axisX]
	minFposY := minPos[axisY]
	// Another -1 because the 2D kernel is 3x3.
	maxFposX := maxPos[axisX] - 1
	maxFposY := maxPos[axisY] - 1

	var cellSamples [13]int8
	var cellPositions [13]voxel.Vec
	var cellGradients [13]ms3.Vec

	for fy := minFposY; fy < maxFposY; fy += 2 {
		for fx := minFposX; fx < maxFposX; fx += 2 {
			const fz = MinPadding

			// Stencil positions in block space. The half-resolution samples
			// 9..C coincide with the stencil corners.
			cellPositions[0] = faceToBlock(fx, fy, fz, direction, blockSize)
			cellPositions[1] = faceToBlock(fx+1, fy, fz, direction, blockSize)
			cellPositions[2] = faceToBlock(fx+2, fy, fz, direction, blockSize)
			cellPositions[3] = faceToBlock(fx, fy+1, fz, direction, blockSize)
			cellPositions[4] = faceToBlock(fx+1, fy+1, fz, direction, blockSize)
			cellPositions[5] = faceToBlock(fx+2, fy+1, fz, direction, blockSize)
			cellPositions[6] = faceToBlock(fx, fy+2, fz, direction, blockSize)
			cellPositions[7] = faceToBlock(fx+1, fy+2, fz, direction, blockSize)
			cellPositions[8] = faceToBlock(fx+2, fy+2, fz, direction, blockSize)
			cellPositions[0x9] = cellPositions[0]
			cellPositions[0xA] = cellPositions[2]
			cellPositions[0xB] = cellPositions[6]
			cellPositions[0xC] = cellPositions[8]

			for i := 0; i < 9; i++ {
				cellSamples[i] = samp.signedAt(cellPositions[i])
			}
			cellSamples[0x9] = cellSamples[0]
			cellSamples[0xA] = cellSamples[2]
			cellSamples[0xB] = cellSamples[6]
			cellSamples[0xC] = cellSamples[8]

			textureIdx := float32(voxels.Get(
				cellPositions[0][0], cellPositions[0][1], cellPositions[0][2], voxel.ChannelData2))

			for i := 0; i < 9; i++ {
				p := cellPositions[i]
				nx := tof(samp.signed(p[0]-1, p[1], p[2]))
				ny := tof(samp.signed(p[0], p[1]-1, p[2]))
				nz := tof(samp.signed(p[0], p[1], p[2]-1))
				px := tof(samp.signed(p[0]+1, p[1], p[2]))
				py := tof(samp.signed(p[0], p[1]+1, p[2]))
				pz := tof(samp.signed(p[0], p[1], p[2]+1))
				cellGradients[i] = ms3.Vec{X: nx - px, Y: ny - py, Z: nz - pz}
			}
			cellGradients[0x9] = cellGradients[0]
			cellGradients[0xA] = cellGradients[2]
			cellGradients[0xB] = cellGradients[6]
			cellGradients[0xC] = cellGradients[8]

			// 9-bit case code; the bit order matches the transition tables.
			caseCode := sign(cellSamples[0]) |
				sign(cellSamples[1])<<1 |
				sign(cellSamples[2])<<2 |
				sign(cellSamples[5])<<3 |
				sign(cellSamples[8])<<4 |
				sign(cellSamples[7])<<5 |
				sign(cellSamples[6])<<6 |
				sign(cellSamples[3])<<7 |
				sign(cellSamples[4])<<8

			currentReuseCell := m.reuseCell2DAt(fx, fy)
			currentReuseCell.vertices[0] = -1

			if caseCode == 0 || caseCode == 511 {
				// The cell contains no triangles.
				continue
			}

			cellClass := transitionCellClass[caseCode]
			data := &transitionCellData[cellClass&0x7f]
			flipTriangles := cellClass&0x80 != 0
			vertexCount := data.vertexCount()

			var cellVertexIndices [12]int32
			for i := range cellVertexIndices {
				cellVertexIndices[i] = -1
			}

			var directionValidityMask uint8
			if fx > minFposX {
				directionValidityMask |= 1
			}
			if fy > minFposY {
				directionValidityMask |= 2
			}

			// maxPos instead of the cell maximum: these are vertices on
			// block sides.
			cellBorderMask := borderMask(cellPositions[0], minPos, maxPos)

			for i := 0; i < vertexCount; i++ {
				edgeCode := transitionVertexData[caseCode][i]
				indexVertexA := uint8(edgeCode>>4) & 0xf
				indexVertexB := uint8(edgeCode) & 0xf

				sampleA := int(cellSamples[indexVertexA])
				sampleB := int(cellSamples[indexVertexB])
				if sampleA == sampleB {
					// Degenerate edge; leave the slot unset.
					continue
				}

				t := (sampleB << 8) / (sampleB - sampleA)
				t0 := float32(t) / 256
				t1 := float32(0x100-t) / 256

				if t&0xff != 0 {
					// Vertex lies in the interior of the edge.
					reuseVertexIndex := uint8(edgeCode>>8) & 0xf
					// Bit 0: subtract one from face X to reach the owner.
					// Bit 1: subtract one from face Y.
					// Bit 2: interior edge, never reused.
					// Bit 3: maximal edge owned by this cell, reusable.
					reuseDirection := uint8(edgeCode >> 12)

					present := reuseDirection&directionValidityMask == reuseDirection
					if present {
						prev := m.reuseCell2DAt(fx-int(reuseDirection&1), fy-int((reuseDirection>>1)&1))
						cellVertexIndices[i] = prev.vertices[reuseVertexIndex]
					}
					if !present || cellVertexIndices[i] == -1 {
						p0 := cellPositions[indexVertexA].ToMS3()
						p1 := cellPositions[indexVertexB].ToMS3()
						n0 := cellGradients[indexVertexA]
						n1 := cellGradients[indexVertexB]

						primary := ms3.Add(ms3.Scale(t0, p0), ms3.Scale(t1, p1))
						normal := normalizedNotNull(ms3.Add(ms3.Scale(t0, n0), ms3.Scale(t1, n1)))

						// Only the full-resolution side of the transition
						// mesh deforms; the half-res side stays fixed on the
						// block boundary so it meets the coarse neighbor.
						fullresSide := indexVertexA < 9 || indexVertexB < 9
						var mask uint16
						var secondary ms3.Vec
						if fullresSide {
							mask = uint16(cellBorderMask)
							secondary = secondaryPosition(primary, normal, 0, blockSizeUnpadded, minPos)
							mask |= uint16(borderMask(cellPositions[indexVertexA], minPos, maxPos)&
								borderMask(cellPositions[indexVertexB], minPos, maxPos)) << 6
						}

						cellVertexIndices[i] = m.emitVertex(primary, normal, mask, secondary, textureIdx)
						if reuseDirection&0x8 != 0 {
							r := m.reuseCell2DAt(fx, fy)
							r.vertices[reuseVertexIndex] = cellVertexIndices[i]
						}
					}
				} else {
					// The vertex is exactly on a cell node; corner data
					// carries its reuse direction and cache slot.
					indexVertex := indexVertexA
					if t == 0 {
						indexVertex = indexVertexB
					}
					cornerData := transitionCornerData[indexVertex]
					reuseVertexIndex := cornerData & 0xf
					reuseDirection := (cornerData >> 4) & 0xf

					present := reuseDirection&directionValidityMask == reuseDirection
					if present {
						prev := m.reuseCell2DAt(fx-int(reuseDirection&1), fy-int((reuseDirection>>1)&1))
						cellVertexIndices[i] = prev.vertices[reuseVertexIndex]
					}
					if !present || cellVertexIndices[i] == -1 {
						primary := cellPositions[indexVertex].ToMS3()
						normal := normalizedNotNull(cellGradients[indexVertex])

						fullresSide := indexVertex < 9
						var mask uint16
						var secondary ms3.Vec
						if fullresSide {
							mask = uint16(cellBorderMask)
							secondary = secondaryPosition(primary, normal, 0, blockSizeUnpadded, minPos)
							mask |= uint16(borderMask(cellPositions[indexVertex], minPos, maxPos)) << 6
						}

						cellVertexIndices[i] = m.emitVertex(primary, normal, mask, secondary, textureIdx)

						// Node vertices are always re-usable later.
						r := m.reuseCell2DAt(fx, fy)
						r.vertices[reuseVertexIndex] = cellVertexIndices[i]
					}
				}
			}

			triangleCount := data.triangleCount()
			for ti := 0; ti < triangleCount; ti++ {
				var a, b, c int32
				if flipTriangles {
					a = cellVertexIndices[data.vertexIndex[ti*3]]
					b = cellVertexIndices[data.vertexIndex[ti*3+1]]
					c = cellVertexIndices[data.vertexIndex[ti*3+2]]
				} else {
					a = cellVertexIndices[data.vertexIndex[ti*3+2]]
					b = cellVertexIndices[data.vertexIndex[ti*3+1]]
					c = cellVertexIndices[data.vertexIndex[ti*3]]
				}
				if a < 0 || b < 0 || c < 0 {
					panic("transvox: triangle references unset vertex slot")
				}
				m.outIndices = append(m.outIndices, a, b, c)
			}
		}
	}
}
