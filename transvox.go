// Package transvox polygonizes sampled signed distance fields into triangle
// meshes using the Transvoxel algorithm (Lengyel 2010). A Mesher extracts the
// regular surface of a voxel block and, per cubic face, a transition surface
// that stitches the block to a neighbor at half resolution without cracks.
package transvox

import (
	"github.com/soypat/geometry/ms3"

	"github.com/voxely/transvox/voxel"
)

// Block padding reserved around the meshed area. One voxel on the negative
// sides and two on the positive sides keep the central-difference gradient
// stencil in bounds.
const (
	MinPadding = 1
	MaxPadding = 2
)

// transitionCellScale is the fraction of a cell that boundary cells shrink by
// to make room for a transition mesh.
const transitionCellScale = 0.25

// Direction identifies one of the six faces of a block.
type Direction uint8

const (
	DirNegativeX Direction = iota
	DirPositiveX
	DirNegativeY
	DirPositiveY
	DirNegativeZ
	DirPositiveZ
	DirCount
)

// Primitive tags the geometry kind of a surface.
type Primitive uint8

// PrimitiveTriangles marks surfaces as independent triangle lists.
const PrimitiveTriangles Primitive = 4

// CompressionFlags advertise which vertex attributes the host may store
// compressed. The mesher itself always emits full floats.
type CompressionFlags uint32

const (
	CompressNormals CompressionFlags = 1 << iota
	CompressTangents
	CompressTexUVs
	CompressTexUV2s
	CompressWeights
)

// DefaultCompressionFlags is forwarded on every build output. Color-sized
// extras stay uncompressed since they carry packed attribute bits.
const DefaultCompressionFlags = CompressNormals | CompressTangents |
	CompressTexUVs | CompressTexUV2s | CompressWeights

// Surface is one emitted triangle list. Positions, Normals and Extra always
// have equal length; Indices come in triples addressing them. Extra packs
// (0, textureIndex, 0, borderMask) per vertex.
type Surface struct {
	Positions []ms3.Vec
	Normals   []ms3.Vec
	Extra     [][4]float32
	Indices   []int32
}

// Len returns the surface vertex count.
func (s *Surface) Len() int { return len(s.Positions) }

// AppendTriangles resolves the surface's indexed triangles into dst and
// returns the extended slice.
func (s *Surface) AppendTriangles(dst []ms3.Triangle) []ms3.Triangle {
	for i := 0; i < len(s.Indices); i += 3 {
		dst = append(dst, ms3.Triangle{
			s.Positions[s.Indices[i]],
			s.Positions[s.Indices[i+1]],
			s.Positions[s.Indices[i+2]],
		})
	}
	return dst
}

// Input is one build request. Voxels is borrowed read-only for the duration
// of the build.
type Input struct {
	Voxels *voxel.Buffer
	LOD    int
}

// Output is the result of one build: at most one regular surface and, per
// face direction, at most one transition surface stitching toward a
// half-resolution neighbor.
type Output struct {
	Surfaces           []Surface
	TransitionSurfaces [DirCount][]Surface
	PrimitiveType      Primitive
	Compression        CompressionFlags
}

// Mesher owns the polygonization scratch state: four parallel output vectors
// and the vertex reuse caches. It is not safe for concurrent builds; allocate
// one Mesher per worker. Buffers retain capacity across builds.
type Mesher struct {
	outPositions []ms3.Vec
	outNormals   []ms3.Vec
	outExtra     [][4]float32
	outIndices   []int32

	cache     [2][]reuseCell
	cache2D   [2][]reuseTransitionCell
	blockSize voxel.Vec
}

// NewMesher returns a Mesher ready for builds.
func NewMesher() *Mesher {
	return &Mesher{}
}

// clearOutput empties the output vectors without releasing their memory.
func (m *Mesher) clearOutput() {
	m.outPositions = m.outPositions[:0]
	m.outNormals = m.outNormals[:0]
	m.outExtra = m.outExtra[:0]
	m.outIndices = m.outIndices[:0]
}

// fillSurface copies the output vectors into a standalone Surface so the
// mesher may be reused immediately.
func (m *Mesher) fillSurface() Surface {
	s := Surface{
		Positions: make([]ms3.Vec, len(m.outPositions)),
		Normals:   make([]ms3.Vec, len(m.outNormals)),
		Extra:     make([][4]float32, len(m.outExtra)),
		Indices:   make([]int32, len(m.outIndices)),
	}
	copy(s.Positions, m.outPositions)
	copy(s.Normals, m.outNormals)
	copy(s.Extra, m.outExtra)
	copy(s.Indices, m.outIndices)
	return s
}

// scaleOutput multiplies positions and the first three extra components by a
// LOD factor. Component 1 holds the texture index, so it is scaled as well.
func (m *Mesher) scaleOutput(factor float32) {
	for i := range m.outPositions {
		m.outPositions[i] = ms3.Scale(factor, m.outPositions[i])
	}
	for i := range m.outExtra {
		m.outExtra[i][0] *= factor
		m.outExtra[i][1] *= factor
		m.outExtra[i][2] *= factor
	}
}

// emitVertex appends one vertex with its packed extra attribute and returns
// its index. Positions are unpadded so the meshed area starts at the origin.
// The secondary position is accepted but not yet part of the vertex stream;
// TODO: emit it as a second attribute stream once hosts consume one instead
// of recomputing the offset from the border mask.
func (m *Mesher) emitVertex(primary, normal ms3.Vec, borderMask uint16, secondary ms3.Vec, textureIdx float32) int32 {
	vi := int32(len(m.outPositions))
	pad := ms3.Vec{X: MinPadding, Y: MinPadding, Z: MinPadding}
	m.outPositions = append(m.outPositions, ms3.Sub(primary, pad))
	m.outNormals = append(m.outNormals, normal)
	m.outExtra = append(m.outExtra, [4]float32{0, textureIdx, 0, float32(borderMask)})
	return vi
}

// Build polygonizes the block. The regular surface comes first; when it is
// empty the whole output is empty, since transitions stitch geometry that
// must exist on the regular side.
func (m *Mesher) Build(input Input) Output {
	var output Output

	m.clearOutput()
	m.buildRegular(input.Voxels, voxel.ChannelSDF)

	if len(m.outPositions) == 0 {
		return output
	}

	if input.LOD > 0 {
		m.scaleOutput(float32(int(1) << input.LOD))
	}
	output.Surfaces = append(output.Surfaces, m.fillSurface())

	for dir := Direction(0); dir < DirCount; dir++ {
		m.clearOutput()
		m.buildTransition(input.Voxels, voxel.ChannelSDF, dir)
		if len(m.outPositions) == 0 {
			continue
		}
		if input.LOD > 0 {
			m.scaleOutput(float32(int(1) << input.LOD))
		}
		output.TransitionSurfaces[dir] = append(output.TransitionSurfaces[dir], m.fillSurface())
	}

	output.PrimitiveType = PrimitiveTriangles
	output.Compression = DefaultCompressionFlags
	return output
}

// BuildTransitionMesh runs only the transition polygonizer for one direction.
// It exists for inspection and testing; the returned surface is empty when
// the face produces no geometry.
func (m *Mesher) BuildTransitionMesh(voxels *voxel.Buffer, dir Direction) Surface {
	m.clearOutput()
	m.buildTransition(voxels, voxel.ChannelSDF, dir)
	if len(m.outPositions) == 0 {
		return Surface{}
	}
	return m.fillSurface()
}
