package voxel

import "github.com/soypat/geometry/ms3"

// Vec is a 3D integer vector addressing voxels within a block.
type Vec [3]int

// Elem returns a vector with all components set to v.
func Elem(v int) Vec {
	return Vec{v, v, v}
}

// Add adds two vectors. Returns a + b.
func (a Vec) Add(b Vec) Vec {
	return Vec{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub subtracts two vectors. Returns a - b.
func (a Vec) Sub(b Vec) Vec {
	return Vec{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// AddScalar adds a scalar to each component of the vector.
func (a Vec) AddScalar(b int) Vec {
	return Vec{a[0] + b, a[1] + b, a[2] + b}
}

// SubScalar subtracts a scalar from each component of the vector.
func (a Vec) SubScalar(b int) Vec {
	return Vec{a[0] - b, a[1] - b, a[2] - b}
}

// MinElem returns the smallest component of the vector.
func (a Vec) MinElem() int {
	m := a[0]
	if a[1] < m {
		m = a[1]
	}
	if a[2] < m {
		m = a[2]
	}
	return m
}

// Volume returns the product of the vector's components.
func (a Vec) Volume() int {
	return a[0] * a[1] * a[2]
}

// ToMS3 converts the integer vector to a float32 ms3.Vec.
func (a Vec) ToMS3() ms3.Vec {
	return ms3.Vec{X: float32(a[0]), Y: float32(a[1]), Z: float32(a[2])}
}
