package transvox

import "github.com/voxely/transvox/voxel"

// reuseCell stores the vertex indices a regular cell is allowed to share with
// its successors: slot 0 holds a vertex sitting exactly on the cell's maximal
// corner, slots 1..3 the vertices on its three maximal edges. -1 marks absent.
type reuseCell struct {
	vertices [4]int32
}

// reuseTransitionCell is the 2D analog for transition cells. Slots 0..4 hold
// corner vertices, 5..10 the vertices on maximal stencil edges.
type reuseTransitionCell struct {
	vertices [12]int32
}

// resetReuseCells sizes the two cache decks for the block and invalidates
// every slot. Decks alternate by z parity so no reallocation happens while
// sweeping planes.
func (m *Mesher) resetReuseCells(blockSize voxel.Vec) {
	m.blockSize = blockSize
	deckArea := blockSize[0] * blockSize[1]
	for i := range m.cache {
		deck := m.cache[i]
		if cap(deck) < deckArea {
			deck = make([]reuseCell, deckArea)
		}
		deck = deck[:deckArea]
		for j := range deck {
			deck[j].vertices = [4]int32{-1, -1, -1, -1}
		}
		m.cache[i] = deck
	}
}

// resetReuseCells2D sizes the two cache rows for one face sweep and
// invalidates every slot.
func (m *Mesher) resetReuseCells2D(blockSize voxel.Vec) {
	for i := range m.cache2D {
		row := m.cache2D[i]
		if cap(row) < blockSize[0] {
			row = make([]reuseTransitionCell, blockSize[0])
		}
		row = row[:blockSize[0]]
		for j := range row {
			for k := range row[j].vertices {
				row[j].vertices[k] = -1
			}
		}
		m.cache2D[i] = row
	}
}

func (m *Mesher) reuseCellAt(pos voxel.Vec) *reuseCell {
	j := pos[2] & 1
	i := pos[1]*m.blockSize[1] + pos[0]
	return &m.cache[j][i]
}

func (m *Mesher) reuseCell2DAt(x, y int) *reuseTransitionCell {
	return &m.cache2D[y&1][x]
}

// dirToPrevVec decodes a reuse direction nibble into the offset of the owning
// cell: bits 1, 2 and 4 subtract one from x, y and z.
func dirToPrevVec(dir uint8) voxel.Vec {
	return voxel.Vec{
		-int(dir & 1),
		-int((dir >> 1) & 1),
		-int((dir >> 2) & 1),
	}
}
