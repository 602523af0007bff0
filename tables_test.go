package transvox

import "testing"

func TestRegularTablesConsistent(t *testing.T) {
	for class, data := range regularCellData {
		if len(data.vertexIndex) != data.triangleCount()*3 {
			t.Errorf("class %d: %d indices for %d triangles", class, len(data.vertexIndex), data.triangleCount())
		}
		for _, vi := range data.vertexIndex {
			if int(vi) >= data.vertexCount() {
				t.Errorf("class %d references vertex %d of %d", class, vi, data.vertexCount())
			}
		}
	}
	for caseCode := 0; caseCode < 256; caseCode++ {
		class := regularCellClass[caseCode]
		if class >= 16 {
			t.Fatalf("case %#x: class %d out of range", caseCode, class)
		}
		data := &regularCellData[class]
		row := regularVertexData[caseCode]
		if len(row) != data.vertexCount() {
			t.Errorf("case %#x: %d vertex codes for class with %d vertices", caseCode, len(row), data.vertexCount())
		}
		if (caseCode == 0 || caseCode == 255) && len(row) != 0 {
			t.Errorf("case %#x must be empty", caseCode)
		}
		for _, code := range row {
			v0 := (code >> 4) & 0xf
			v1 := code & 0xf
			if v0 >= v1 {
				t.Errorf("case %#x: edge endpoints not ordered in %#04x", caseCode, code)
			}
			// The edge must separate an inside corner from an outside one.
			if (caseCode>>v0)&1 == (caseCode>>v1)&1 {
				t.Errorf("case %#x: vertex code %#04x on a non-crossing edge", caseCode, code)
			}
		}
	}
}

func TestTransitionTablesConsistent(t *testing.T) {
	for class := range transitionCellData {
		data := &transitionCellData[class]
		if len(data.vertexIndex) != data.triangleCount()*3 {
			t.Errorf("class %d: %d indices for %d triangles", class, len(data.vertexIndex), data.triangleCount())
		}
		for _, vi := range data.vertexIndex {
			if int(vi) >= data.vertexCount() {
				t.Errorf("class %d references vertex %d of %d", class, vi, data.vertexCount())
			}
		}
	}
	for caseCode := 0; caseCode < 512; caseCode++ {
		class := transitionCellClass[caseCode] & 0x7f
		if int(class) >= len(transitionCellData) {
			t.Fatalf("case %#x: class %d out of range", caseCode, class)
		}
		row := transitionVertexData[caseCode]
		if caseCode == 0 || caseCode == 511 {
			if len(row) != 0 {
				t.Errorf("case %#x must be empty", caseCode)
			}
			continue
		}
		if len(row) != transitionCellData[class].vertexCount() {
			t.Errorf("case %#x: %d vertex codes for class with %d vertices",
				caseCode, len(row), transitionCellData[class].vertexCount())
		}
		if len(row) > 12 {
			t.Errorf("case %#x: %d vertices exceed the reuse cache width", caseCode, len(row))
		}
		// Complementary cases share geometry with mirrored winding.
		comp := 511 - caseCode
		if transitionCellClass[comp]&0x7f != class {
			t.Errorf("case %#x and complement disagree on class", caseCode)
		}
		if transitionCellClass[comp]&0x80 == transitionCellClass[caseCode]&0x80 {
			t.Errorf("case %#x and complement agree on winding", caseCode)
		}
	}
	for i, cd := range transitionCornerData {
		slot := cd & 0xf
		if slot >= 12 {
			t.Errorf("corner %d: slot %d out of cache range", i, slot)
		}
	}
}
