package transvox

import (
	"github.com/soypat/geometry/ms3"

	"github.com/voxely/transvox/voxel"
)

// buildRegular sweeps every interior cell of the block, classifies it against
// the regular tables and appends the resulting geometry to the output
// vectors. Cells are 2x2x2 voxel groups; the sweep order (z outer, y middle,
// x inner) guarantees that the cells a vertex may be reused from have already
// been polygonized.
func (m *Mesher) buildRegular(voxels *voxel.Buffer, channel int) {
	if voxels.IsUniform(channel) {
		// Constant isolevels never cross the threshold and describe no surface.
		return
	}

	blockSize := voxels.Size()
	if blockSize.MinElem() < MinPadding+MaxPadding+1 {
		return
	}
	blockSizeUnpadded := blockSize.SubScalar(MinPadding + MaxPadding)

	m.resetReuseCells(blockSize)

	samp := sampler{vb: voxels, channel: channel}

	// One voxel of padding on the negative sides and two on the positive
	// sides keep the gradient stencil of every corner in bounds.
	minPos := voxel.Elem(MinPadding)
	maxPos := blockSize.SubScalar(MaxPadding)
	maxPosC := maxPos.SubScalar(1)

	var cellSamples [8]int8
	var cornerGradients [8]ms3.Vec
	var cornerPositions [8]voxel.Vec

	var pos voxel.Vec
	for pos[2] = minPos[2]; pos[2] < maxPos[2]; pos[2]++ {
		for pos[1] = minPos[1]; pos[1] < maxPos[1]; pos[1]++ {
			for pos[0] = minPos[0]; pos[0] < maxPos[0]; pos[0]++ {

				//    6-------7
				//   /|      /|
				//  / |     / |  Corners
				// 4-------5  |
				// |  2----|--3
				// | /     | /   z y
				// |/      |/    |/
				// 0-------1     o--x
				for i := range cornerPositions {
					cornerPositions[i] = voxel.Vec{
						pos[0] + i&1,
						pos[1] + (i>>1)&1,
						pos[2] + (i>>2)&1,
					}
					cellSamples[i] = samp.signedAt(cornerPositions[i])
				}

				textureIdx := float32(voxels.Get(pos[0], pos[1], pos[2], voxel.ChannelData2))

				// Concatenate corner sign bits; corner 0 is the least
				// significant bit.
				var caseCode uint32
				for i := range cellSamples {
					caseCode |= sign(cellSamples[i]) << i
				}

				currentReuseCell := m.reuseCellAt(pos)
				currentReuseCell.vertices[0] = -1

				if caseCode == 0 || caseCode == 255 {
					// No triangulation to do.
					continue
				}

				// Central-difference gradient at every corner; padding
				// guarantees the reads stay in bounds.
				for i := range cornerPositions {
					p := cornerPositions[i]
					nx := tof(samp.signed(p[0]-1, p[1], p[2]))
					ny := tof(samp.signed(p[0], p[1]-1, p[2]))
					nz := tof(samp.signed(p[0], p[1], p[2]-1))
					px := tof(samp.signed(p[0]+1, p[1], p[2]))
					py := tof(samp.signed(p[0], p[1]+1, p[2]))
					pz := tof(samp.signed(p[0], p[1], p[2]+1))
					cornerGradients[i] = ms3.Vec{X: nx - px, Y: ny - py, Z: nz - pz}
				}

				// Cells along the minimal block boundaries have no preceding
				// cells to reuse from; the validity mask flags which reuse
				// directions exist.
				var directionValidityMask uint8
				if pos[0] > minPos[0] {
					directionValidityMask |= 1
				}
				if pos[1] > minPos[1] {
					directionValidityMask |= 2
				}
				if pos[2] > minPos[2] {
					directionValidityMask |= 4
				}

				class := regularCellClass[caseCode]
				data := &regularCellData[class]
				triangleCount := data.triangleCount()
				vertexCount := data.vertexCount()

				var cellVertexIndices [12]int32
				for i := range cellVertexIndices {
					cellVertexIndices[i] = -1
				}

				cellBorderMask := borderMask(pos, minPos, maxPosC)

				for i := 0; i < vertexCount; i++ {
					rvd := regularVertexData[caseCode][i]
					edgeCodeLow := uint8(rvd)
					edgeCodeHigh := uint8(rvd >> 8)

					// Corner indexes of the edge endpoints, the higher last.
					v0 := (edgeCodeLow >> 4) & 0xf
					v1 := edgeCodeLow & 0xf
					if v1 <= v0 {
						panic("transvox: malformed regular vertex data")
					}

					d0 := int(cellSamples[v0])
					d1 := int(cellSamples[v1])
					if d1 == d0 {
						// Degenerate edge; leave the slot unset.
						continue
					}

					// 8-bit interpolation fraction: 257 possible positions
					// along the edge.
					t := (d1 << 8) / (d1 - d0)
					t0 := float32(t) / 256
					t1 := float32(0x100-t) / 256

					p0 := cornerPositions[v0]
					p1 := cornerPositions[v1]

					switch {
					case t&0xff != 0:
						// Vertex lies strictly inside the edge. The high
						// nibble of the mapping code leads to the preceding
						// cell allowed to own this edge.
						reuseDir := (edgeCodeHigh >> 4) & 0xf
						reuseVertexIndex := edgeCodeHigh & 0xf

						present := reuseDir&directionValidityMask == reuseDir
						if present {
							prev := m.reuseCellAt(pos.Add(dirToPrevVec(reuseDir)))
							cellVertexIndices[i] = prev.vertices[reuseVertexIndex]
						}
						if !present || cellVertexIndices[i] == -1 {
							primary := ms3.Add(ms3.Scale(t0, p0.ToMS3()), ms3.Scale(t1, p1.ToMS3()))
							normal := normalizedNotNull(ms3.Add(
								ms3.Scale(t0, cornerGradients[v0]),
								ms3.Scale(t1, cornerGradients[v1])))

							var secondary ms3.Vec
							mask := uint16(cellBorderMask)
							if cellBorderMask > 0 {
								secondary = secondaryPosition(primary, normal, 0, blockSizeUnpadded, minPos)
								mask |= uint16(borderMask(p0, minPos, maxPos)&borderMask(p1, minPos, maxPos)) << 6
							}
							cellVertexIndices[i] = m.emitVertex(primary, normal, mask, secondary, textureIdx)
							if reuseDir&8 != 0 {
								currentReuseCell.vertices[reuseVertexIndex] = cellVertexIndices[i]
							}
						}

					case t == 0 && v1 == 7:
						// The vertex coincides with corner 7, the cell's
						// maximal corner, so this cell owns and caches it.
						primary := p1.ToMS3()
						// The vertex sits exactly on the corner; the blend
						// degenerates to the corner gradient.
						normal := normalizedNotNull(cornerGradients[v1])

						var secondary ms3.Vec
						mask := uint16(cellBorderMask)
						if cellBorderMask > 0 {
							secondary = secondaryPosition(primary, normal, 0, blockSizeUnpadded, minPos)
							mask |= uint16(borderMask(p1, minPos, maxPos)) << 6
						}
						cellVertexIndices[i] = m.emitVertex(primary, normal, mask, secondary, textureIdx)
						currentReuseCell.vertices[0] = cellVertexIndices[i]

					default:
						// The vertex is on a corner owned by a preceding
						// cell; inverting the corner index yields the
						// direction code leading to it.
						var reuseDir uint8
						if t == 0 {
							reuseDir = v1 ^ 7
						} else {
							reuseDir = v0 ^ 7
						}
						present := reuseDir&directionValidityMask == reuseDir
						if present {
							prev := m.reuseCellAt(pos.Add(dirToPrevVec(reuseDir)))
							cellVertexIndices[i] = prev.vertices[0]
						}
						if !present || cellVertexIndices[i] < 0 {
							// The preceding cell does not exist on block
							// boundaries; fall back to a fresh uncached
							// vertex.
							primary := ms3.Add(ms3.Scale(t0, p0.ToMS3()), ms3.Scale(t1, p1.ToMS3()))
							normal := normalizedNotNull(ms3.Add(
								ms3.Scale(t0, cornerGradients[v0]),
								ms3.Scale(t1, cornerGradients[v1])))

							var secondary ms3.Vec
							mask := uint16(cellBorderMask)
							if cellBorderMask > 0 {
								secondary = secondaryPosition(primary, normal, 0, blockSizeUnpadded, minPos)
								corner := p0
								if t == 0 {
									corner = p1
								}
								mask |= uint16(borderMask(corner, minPos, maxPos)) << 6
							}
							cellVertexIndices[i] = m.emitVertex(primary, normal, mask, secondary, textureIdx)
						}
					}
				}

				for t := 0; t < triangleCount; t++ {
					for i := 0; i < 3; i++ {
						index := cellVertexIndices[data.vertexIndex[t*3+i]]
						if index < 0 {
							panic("transvox: triangle references unset vertex slot")
						}
						m.outIndices = append(m.outIndices, index)
					}
				}
			}
		}
	}
}
