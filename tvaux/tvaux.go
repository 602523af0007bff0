// Package tvaux helps hosts consume polygonizer output quickly: one-call STL
// export, software-rasterized PNG previews and an interactive mesh viewer.
// Applications with their own mesh pipelines should treat these as reference
// glue rather than building blocks.
package tvaux

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/soypat/geometry/ms3"

	"github.com/voxely/transvox"
)

// RenderConfig configures [Render]. At least one output must be set.
type RenderConfig struct {
	STLOutput     io.Writer
	PreviewOutput io.Writer
	View          ViewConfig
	// IncludeTransitions bakes the six transition surfaces into the export
	// alongside the regular surface.
	IncludeTransitions bool
	Silent             bool
}

// Render writes a build output as STL and/or a PNG preview.
func Render(out *transvox.Output, cfg RenderConfig) error {
	if cfg.STLOutput == nil && cfg.PreviewOutput == nil {
		return fmt.Errorf("Render requires an output in config")
	}
	log := func(args ...any) {
		if !cfg.Silent {
			fmt.Println(args...)
		}
	}

	watch := stopwatch()
	model := Triangles(out, cfg.IncludeTransitions)
	if len(model) == 0 {
		return errEmptyModel
	}
	log("collected", len(model), "triangles in", watch())

	if cfg.STLOutput != nil {
		watch = stopwatch()
		if _, err := WriteBinarySTL(cfg.STLOutput, model); err != nil {
			return fmt.Errorf("writing STL: %w", err)
		}
		log("wrote", outputName(cfg.STLOutput, "STL"), "in", watch())
	}
	if cfg.PreviewOutput != nil {
		watch = stopwatch()
		view := cfg.View
		if view == (ViewConfig{}) {
			view = DefaultView()
		}
		if err := RenderPNG(cfg.PreviewOutput, model, view); err != nil {
			return fmt.Errorf("rendering preview: %w", err)
		}
		log("wrote", outputName(cfg.PreviewOutput, "preview"), "in", watch())
	}
	return nil
}

// Triangles flattens a build output into one triangle soup.
func Triangles(out *transvox.Output, includeTransitions bool) []ms3.Triangle {
	var model []ms3.Triangle
	for i := range out.Surfaces {
		model = out.Surfaces[i].AppendTriangles(model)
	}
	if includeTransitions {
		for dir := range out.TransitionSurfaces {
			for i := range out.TransitionSurfaces[dir] {
				model = out.TransitionSurfaces[dir][i].AppendTriangles(model)
			}
		}
	}
	return model
}

func outputName(w io.Writer, fallback string) string {
	if fp, ok := w.(*os.File); ok {
		return fp.Name()
	}
	return fallback
}

func stopwatch() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}
