package transvox

import "github.com/voxely/transvox/voxel"

// sampler reads a voxel buffer channel with the sign convention the tables
// expect. The raw SDF byte is inverted before the signed offset so that
// negative samples land inside the solid. If the buffer layer ever writes
// inverted data itself this would cancel out; keep the conventions aligned
// with [voxel.ByteFromFloat].
type sampler struct {
	vb      *voxel.Buffer
	channel int
}

// raw returns the inverted byte at (x,y,z).
func (s sampler) raw(x, y, z int) uint8 {
	return 255 - s.vb.Get(x, y, z, s.channel)
}

// signed returns the inverted sample as a signed 8-bit value.
func (s sampler) signed(x, y, z int) int8 {
	return tos(s.raw(x, y, z))
}

func (s sampler) signedAt(p voxel.Vec) int8 {
	return s.signed(p[0], p[1], p[2])
}

// tos reinterprets a raw byte as a signed sample centered on 128.
func tos(v uint8) int8 {
	return int8(v - 128)
}

// tof scales a signed sample to the float range used for gradients.
func tof(v int8) float32 {
	return float32(v) / 256
}

// sign extracts the sign bit of a sample; negative values report 1.
func sign(v int8) uint32 {
	return uint32(uint8(v)) >> 7
}
