package tvaux

import (
	"bytes"
	"image"
	"image/png"
	"io"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/geometry/ms3"
)

// ViewConfig frames the software-rasterized preview.
type ViewConfig struct {
	// LookAt is the point the camera orbits; EyePos the camera position and
	// Up the camera's up direction.
	LookAt ms3.Vec
	Up     ms3.Vec
	EyePos ms3.Vec
	Near   float32
	Far    float32
	Width  int
	Height int
}

// DefaultView returns an isometric-ish view fitting a bi-unit cube.
func DefaultView() ViewConfig {
	return ViewConfig{
		Up:     ms3.Vec{Z: 1},
		EyePos: ms3.Vec{X: 2.4, Y: 2.4, Z: 2.4},
		Near:   1,
		Far:    10,
		Width:  768,
		Height: 432,
	}
}

// RenderPNG rasterizes triangles to a shaded PNG without a GPU. The model is
// recentered into a bi-unit cube so any block size fits the default camera.
func RenderPNG(w io.Writer, model []ms3.Triangle, view ViewConfig) error {
	if len(model) == 0 {
		return errEmptyModel
	}
	if view.Width <= 0 || view.Height <= 0 {
		d := DefaultView()
		view.Width, view.Height = d.Width, d.Height
	}
	const (
		scale = 2  // supersampling factor
		fovy  = 30 // vertical field of view in degrees
	)
	tris := make([]*fauxgl.Triangle, len(model))
	for i, t := range model {
		tris[i] = fauxgl.NewTriangleForPoints(fv(t[0]), fv(t[1]), fv(t[2]))
	}
	mesh := fauxgl.NewTriangleMesh(tris)
	mesh.BiUnitCube()

	eye := fv(view.EyePos)
	center := fv(view.LookAt)
	up := fv(view.Up)
	light := fauxgl.V(-0.75, 1, 0.25).Normalize()

	context := fauxgl.NewContext(view.Width*scale, view.Height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#1D1F21"))
	aspect := float64(view.Width) / float64(view.Height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, float64(view.Near), float64(view.Far))
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = fauxgl.HexColor("#7A9E7E")
	context.Shader = shader
	context.DrawMesh(mesh)

	img := context.Image()
	img = resize.Resize(uint(view.Width), uint(view.Height), img, resize.Bilinear)
	return png.Encode(w, img)
}

// RenderImage is a convenience wrapper returning the preview as an image.
func RenderImage(model []ms3.Triangle, view ViewConfig) (image.Image, error) {
	var buf bytes.Buffer
	if err := RenderPNG(&buf, model, view); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

func fv(v ms3.Vec) fauxgl.Vector {
	return fauxgl.V(float64(v.X), float64(v.Y), float64(v.Z))
}
