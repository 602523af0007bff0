package tvaux

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
)

const stlTriangleSize = 50

var errEmptyModel = errors.New("empty triangle slice")

// WriteBinarySTL writes triangles to w in binary STL format and returns the
// number of bytes written.
func WriteBinarySTL(w io.Writer, model []ms3.Triangle) (int, error) {
	if len(model) == 0 {
		return 0, errEmptyModel
	}
	if int64(len(model)) > math.MaxUint32 {
		return 0, errors.New("triangle count exceeds STL design limits")
	}

	var buf [84]byte
	binary.LittleEndian.PutUint32(buf[80:], uint32(len(model)))
	n, err := w.Write(buf[:84])
	if err != nil {
		return n, err
	}
	for _, tri := range model {
		putTriangle(buf[:stlTriangleSize], tri)
		ngot, err := w.Write(buf[:stlTriangleSize])
		n += ngot
		if err != nil {
			return n, err
		} else if ngot != stlTriangleSize {
			return n, io.ErrShortWrite
		}
	}
	return n, nil
}

// ReadBinarySTL parses a binary STL stream back into triangles. Stored facet
// normals are discarded; they are recomputed from vertices on write.
func ReadBinarySTL(r io.Reader) ([]ms3.Triangle, error) {
	var header [84]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("reading STL header: %w", err)
	}
	count := binary.LittleEndian.Uint32(header[80:])
	if count == 0 {
		return nil, errors.New("STL header indicates 0 triangles")
	}
	output := make([]ms3.Triangle, 0, count)
	var buf [stlTriangleSize]byte
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, fmt.Errorf("%d/%d STL triangles read: %w", i, count, err)
		}
		tri, err := getTriangle(buf[:])
		if err != nil {
			return nil, fmt.Errorf("triangle %d: %w", i, err)
		}
		output = append(output, tri)
	}
	return output, nil
}

func putTriangle(b []byte, tri ms3.Triangle) {
	_ = b[stlTriangleSize-1]
	putVec(b, ms3.Unit(tri.Normal()))
	putVec(b[12:], tri[0])
	putVec(b[24:], tri[1])
	putVec(b[36:], tri[2])
	binary.LittleEndian.PutUint16(b[48:], 0) // Zero out attributes.
}

func getTriangle(b []byte) (ms3.Triangle, error) {
	tri := ms3.Triangle{getVec(b[12:]), getVec(b[24:]), getVec(b[36:])}
	for _, v := range tri {
		if badVec(v) {
			return tri, errors.New("inf/NaN STL vertex")
		}
	}
	return tri, nil
}

func putVec(b []byte, v ms3.Vec) {
	_ = b[11] // early bounds check
	binary.LittleEndian.PutUint32(b, math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(v.Z))
}

func getVec(b []byte) ms3.Vec {
	_ = b[11] // early bounds check
	return ms3.Vec{
		X: math.Float32frombits(binary.LittleEndian.Uint32(b)),
		Y: math.Float32frombits(binary.LittleEndian.Uint32(b[4:])),
		Z: math.Float32frombits(binary.LittleEndian.Uint32(b[8:])),
	}
}

func badVec(v ms3.Vec) bool {
	return math32.IsNaN(v.X) || math32.IsInf(v.X, 0) ||
		math32.IsNaN(v.Y) || math32.IsInf(v.Y, 0) ||
		math32.IsNaN(v.Z) || math32.IsInf(v.Z, 0)
}
