package tvaux

import (
	"github.com/soypat/geometry/ms3"

	"github.com/voxely/transvox"
)

// UIConfig configures the interactive mesh viewer window.
type UIConfig struct {
	Width  int
	Height int
}

// View opens an interactive window displaying a build output. Requires CGo;
// without it the call returns an error immediately.
func View(out *transvox.Output, cfg UIConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1024
	}
	if cfg.Height <= 0 {
		cfg.Height = 640
	}
	return view(Triangles(out, true), cfg)
}

// ViewTriangles is like [View] for a raw triangle soup.
func ViewTriangles(model []ms3.Triangle, cfg UIConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1024
	}
	if cfg.Height <= 0 {
		cfg.Height = 640
	}
	return view(model, cfg)
}
