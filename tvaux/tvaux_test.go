package tvaux_test

import (
	"bytes"
	"testing"

	"github.com/soypat/geometry/ms3"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/voxely/transvox"
	"github.com/voxely/transvox/stream"
	"github.com/voxely/transvox/tvaux"
	"github.com/voxely/transvox/voxel"
)

func sphereMesh(t testing.TB) transvox.Output {
	t.Helper()
	vb, err := voxel.New(voxel.Elem(16))
	if err != nil {
		t.Fatal(err)
	}
	src := stream.NewSDF(stream.Sphere{Center: r3.Vec{X: 8, Y: 8, Z: 8}, Radius: 5})
	src.GenerateBlock(vb, voxel.Vec{}, 0)
	out := transvox.NewMesher().Build(transvox.Input{Voxels: vb})
	if len(out.Surfaces) == 0 {
		t.Fatal("no surface to test with")
	}
	return out
}

func TestSTLWriteReadback(t *testing.T) {
	out := sphereMesh(t)
	model := tvaux.Triangles(&out, true)

	var buf bytes.Buffer
	n, err := tvaux.WriteBinarySTL(&buf, model)
	if err != nil {
		t.Fatal(err)
	}
	if n != buf.Len() {
		t.Errorf("reported %d bytes written, buffer has %d", n, buf.Len())
	}
	if want := 84 + 50*len(model); n != want {
		t.Errorf("wrote %d bytes, want %d", n, want)
	}

	back, err := tvaux.ReadBinarySTL(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != len(model) {
		t.Fatalf("read %d triangles, wrote %d", len(back), len(model))
	}
	for i := range model {
		for k := 0; k < 3; k++ {
			if ms3.Norm(ms3.Sub(model[i][k], back[i][k])) > 1e-6 {
				t.Fatalf("triangle %d vertex %d round trip mismatch", i, k)
			}
		}
	}
}

func TestSTLRejectsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if _, err := tvaux.WriteBinarySTL(&buf, nil); err == nil {
		t.Error("expected error for empty model")
	}
}

func TestPreviewPNG(t *testing.T) {
	out := sphereMesh(t)
	model := tvaux.Triangles(&out, false)
	img, err := tvaux.RenderImage(model, tvaux.DefaultView())
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	d := tvaux.DefaultView()
	if b.Dx() != d.Width || b.Dy() != d.Height {
		t.Errorf("preview size %dx%d, want %dx%d", b.Dx(), b.Dy(), d.Width, d.Height)
	}
}

func TestRenderBothOutputs(t *testing.T) {
	out := sphereMesh(t)
	var stl, preview bytes.Buffer
	err := tvaux.Render(&out, tvaux.RenderConfig{
		STLOutput:     &stl,
		PreviewOutput: &preview,
		Silent:        true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if stl.Len() == 0 || preview.Len() == 0 {
		t.Error("render skipped an output")
	}
}

func TestRenderRequiresOutput(t *testing.T) {
	out := sphereMesh(t)
	if err := tvaux.Render(&out, tvaux.RenderConfig{}); err == nil {
		t.Error("expected config error")
	}
}
