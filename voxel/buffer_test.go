package voxel

import "testing"

func TestNewBufferValidation(t *testing.T) {
	if _, err := New(Vec{0, 4, 4}); err == nil {
		t.Error("expected error for zero-sized axis")
	}
	if _, err := New(Elem(4)); err != nil {
		t.Fatal(err)
	}
}

func TestUniformAndLazyChannels(t *testing.T) {
	vb, _ := New(Elem(4))
	if !vb.IsUniform(ChannelSDF) {
		t.Error("fresh buffer not uniform")
	}
	if vb.Get(1, 2, 3, ChannelSDF) != 0 {
		t.Error("fresh channel not zero filled")
	}
	vb.Fill(ChannelSDF, 200)
	if vb.Get(0, 0, 0, ChannelSDF) != 200 || !vb.IsUniform(ChannelSDF) {
		t.Error("fill not uniform")
	}
	vb.Set(1, 1, 1, ChannelSDF, 12)
	if vb.IsUniform(ChannelSDF) {
		t.Error("written buffer still reports uniform")
	}
	if vb.Get(1, 1, 1, ChannelSDF) != 12 || vb.Get(0, 1, 1, ChannelSDF) != 200 {
		t.Error("write did not preserve fill value")
	}
}

func TestSetNoAllocOnFillValue(t *testing.T) {
	vb, _ := New(Elem(4))
	vb.Set(0, 0, 0, ChannelType, 0)
	if !vb.IsUniform(ChannelType) {
		t.Error("no-op write broke uniformity")
	}
}

func TestFloatCodec(t *testing.T) {
	for _, tc := range []struct {
		f    float32
		want uint8
	}{
		{0, 128},
		{1, 112},
		{-1, 144},
		{100, 0},
		{-100, 255},
	} {
		if got := ByteFromFloat(tc.f); got != tc.want {
			t.Errorf("ByteFromFloat(%v) = %d, want %d", tc.f, got, tc.want)
		}
	}
	// Round trip within quantization error where unsaturated.
	for _, f := range []float32{-6, -1.5, -0.25, 0, 0.25, 1.5, 6} {
		got := FloatFromByte(ByteFromFloat(f))
		if diff := got - f; diff > 1.0/16 || diff < -1.0/16 {
			t.Errorf("codec round trip %v -> %v", f, got)
		}
	}
	vb, _ := New(Elem(3))
	vb.SetFloat(1, 1, 1, ChannelSDF, -2)
	if vb.GetFloat(1, 1, 1, ChannelSDF) != -2 {
		t.Error("SetFloat/GetFloat mismatch")
	}
}

func TestOutOfBoundsPanics(t *testing.T) {
	vb, _ := New(Elem(3))
	defer func() {
		if recover() == nil {
			t.Error("expected panic on out of bounds read")
		}
	}()
	vb.Get(3, 0, 0, ChannelSDF)
}

func TestVecHelpers(t *testing.T) {
	a := Vec{1, 2, 3}
	if a.Add(Vec{1, 1, 1}) != (Vec{2, 3, 4}) {
		t.Error("Add")
	}
	if a.Sub(Vec{1, 1, 1}) != (Vec{0, 1, 2}) {
		t.Error("Sub")
	}
	if a.AddScalar(2) != (Vec{3, 4, 5}) || a.SubScalar(1) != (Vec{0, 1, 2}) {
		t.Error("scalar ops")
	}
	if a.MinElem() != 1 || a.Volume() != 6 {
		t.Error("MinElem/Volume")
	}
	v := a.ToMS3()
	if v.X != 1 || v.Y != 2 || v.Z != 3 {
		t.Error("ToMS3")
	}
}
