// Package voxel implements dense storage of voxel blocks as per-channel byte
// grids. A Buffer is the unit of terrain data handed to the polygonizer: it
// stores one byte per voxel per channel, keeps unwritten channels as an
// implicit uniform fill, and converts between float isolevels and the byte
// encoding used on the SDF channel.
package voxel

import "errors"

// Channel identifiers of a Buffer. ChannelSDF holds the sampled signed
// distance field and ChannelData2 carries the per-vertex texture index
// forwarded by the mesher.
const (
	ChannelType = iota
	ChannelSDF
	ChannelData2
	ChannelData3
	MaxChannels
)

// isoScale is the fixed-point scale of the SDF byte encoding: one byte step
// represents 1/16th of a voxel of signed distance.
const isoScale = 16.0

var errBadSize = errors.New("voxel: buffer axes must be positive")

type channel struct {
	data []uint8
	fill uint8
}

// Buffer is a dense block of voxels. Channels are allocated lazily: a channel
// with no writes stays an implicit uniform fill value and reports uniform
// without scanning. The zero fill of the SDF channel decodes to a positive
// isolevel, so a fresh buffer is all air.
type Buffer struct {
	size     Vec
	channels [MaxChannels]channel
}

// New allocates a buffer of the given size with all channels uniform zero.
func New(size Vec) (*Buffer, error) {
	if size[0] < 1 || size[1] < 1 || size[2] < 1 {
		return nil, errBadSize
	}
	return &Buffer{size: size}, nil
}

// Size returns the buffer dimensions in voxels.
func (b *Buffer) Size() Vec {
	return b.size
}

func (b *Buffer) index(x, y, z int) int {
	return (z*b.size[1]+y)*b.size[0] + x
}

func (b *Buffer) inBounds(x, y, z int) bool {
	return x >= 0 && y >= 0 && z >= 0 && x < b.size[0] && y < b.size[1] && z < b.size[2]
}

// Get returns the raw byte at (x,y,z) on the given channel.
// Out of range positions panic.
func (b *Buffer) Get(x, y, z, ch int) uint8 {
	if !b.inBounds(x, y, z) {
		panic("voxel: position out of bounds")
	}
	c := &b.channels[ch]
	if c.data == nil {
		return c.fill
	}
	return c.data[b.index(x, y, z)]
}

// Set stores the raw byte at (x,y,z) on the given channel, allocating the
// channel's backing array on first write.
func (b *Buffer) Set(x, y, z, ch int, v uint8) {
	if !b.inBounds(x, y, z) {
		panic("voxel: position out of bounds")
	}
	c := &b.channels[ch]
	if c.data == nil {
		if v == c.fill {
			return
		}
		b.allocChannel(ch)
	}
	c.data[b.index(x, y, z)] = v
}

func (b *Buffer) allocChannel(ch int) {
	c := &b.channels[ch]
	c.data = make([]uint8, b.size.Volume())
	if c.fill != 0 {
		for i := range c.data {
			c.data[i] = c.fill
		}
	}
}

// Fill sets every voxel of the channel to v and releases the backing array.
func (b *Buffer) Fill(ch int, v uint8) {
	b.channels[ch] = channel{fill: v}
}

// FillFloat fills the channel with the byte encoding of isolevel f.
func (b *Buffer) FillFloat(ch int, f float32) {
	b.Fill(ch, ByteFromFloat(f))
}

// IsUniform reports whether every voxel of the channel holds the same value.
func (b *Buffer) IsUniform(ch int) bool {
	c := &b.channels[ch]
	if c.data == nil {
		return true
	}
	v := c.data[0]
	for _, d := range c.data[1:] {
		if d != v {
			return false
		}
	}
	return true
}

// SetFloat stores isolevel f at (x,y,z) using the SDF byte encoding.
func (b *Buffer) SetFloat(x, y, z, ch int, f float32) {
	b.Set(x, y, z, ch, ByteFromFloat(f))
}

// GetFloat returns the isolevel decoded from the byte at (x,y,z).
func (b *Buffer) GetFloat(x, y, z, ch int) float32 {
	return FloatFromByte(b.Get(x, y, z, ch))
}

// ByteFromFloat encodes a signed isolevel as a raw SDF byte. Solid (negative
// isolevel) maps to high bytes; air saturates to 0. The polygonizer reads the
// channel through a byte inversion, landing on the paper's negative-is-inside
// convention.
func ByteFromFloat(f float32) uint8 {
	v := int(128 - f*isoScale)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// FloatFromByte decodes a raw SDF byte back to a signed isolevel.
func FloatFromByte(v uint8) float32 {
	return float32(128-int(v)) / isoScale
}
