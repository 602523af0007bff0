// Command transvox generates a voxel terrain block, polygonizes it with the
// Transvoxel mesher and writes the result as STL and/or a PNG preview.
//
//	transvox -source noise -size 32 -stl terrain.stl -png terrain.png
//	transvox -source sphere -size 24 -lod 1 -view
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"runtime"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/voxely/transvox"
	"github.com/voxely/transvox/stream"
	"github.com/voxely/transvox/tvaux"
	"github.com/voxely/transvox/voxel"
)

var (
	sourceName  = "noise"
	imagePath   = ""
	size        = 32
	lod         = 0
	seed        = int64(4)
	stlPath     = "terrain.stl"
	pngPath     = ""
	transitions = false
	openViewer  = false
)

func init() {
	flag.StringVar(&sourceName, "source", sourceName, "voxel source: noise, image, sphere or box")
	flag.StringVar(&imagePath, "image", imagePath, "heightmap image for -source image")
	flag.IntVar(&size, "size", size, "block size per axis in voxels")
	flag.IntVar(&lod, "lod", lod, "level of detail; positions scale by 2^lod")
	flag.Int64Var(&seed, "seed", seed, "noise seed")
	flag.StringVar(&stlPath, "stl", stlPath, "output STL path, empty to skip")
	flag.StringVar(&pngPath, "png", pngPath, "output PNG preview path, empty to skip")
	flag.BoolVar(&transitions, "transitions", transitions, "include transition surfaces in outputs")
	flag.BoolVar(&openViewer, "view", openViewer, "open the interactive viewer")
	flag.Parse()
	if openViewer {
		runtime.LockOSThread() // The GL context needs a stable thread.
	}
}

func main() {
	src, err := makeSource()
	if err != nil {
		log.Fatal(err)
	}
	vb, err := voxel.New(voxel.Elem(size))
	if err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	src.GenerateBlock(vb, voxel.Vec{}, lod)
	genElapsed := time.Since(start)

	mesher := transvox.NewMesher()
	start = time.Now()
	out := mesher.Build(transvox.Input{Voxels: vb, LOD: lod})
	fmt.Println("generated block in", genElapsed, "and meshed it in", time.Since(start))
	if len(out.Surfaces) == 0 {
		log.Fatal("block produced no surface; try another -seed or -size")
	}

	cfg := tvaux.RenderConfig{IncludeTransitions: transitions}
	if stlPath != "" {
		fp, err := os.Create(stlPath)
		if err != nil {
			log.Fatal(err)
		}
		defer fp.Close()
		w := bufio.NewWriter(fp)
		defer w.Flush()
		cfg.STLOutput = w
	}
	if pngPath != "" {
		fp, err := os.Create(pngPath)
		if err != nil {
			log.Fatal(err)
		}
		defer fp.Close()
		cfg.PreviewOutput = fp
	}
	if cfg.STLOutput != nil || cfg.PreviewOutput != nil {
		if err := tvaux.Render(&out, cfg); err != nil {
			log.Fatal(err)
		}
	}
	if openViewer {
		if err := tvaux.View(&out, tvaux.UIConfig{}); err != nil {
			log.Fatal(err)
		}
	}
}

func makeSource() (stream.Source, error) {
	switch sourceName {
	case "noise":
		noise := stream.DefaultNoise3D(seed)
		noise.Period = float64(size)
		return stream.NewNoise(noise, 0, float64(size)), nil
	case "image":
		if imagePath == "" {
			return nil, fmt.Errorf("-source image requires -image")
		}
		fp, err := os.Open(imagePath)
		if err != nil {
			return nil, err
		}
		defer fp.Close()
		img, _, err := image.Decode(fp)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", imagePath, err)
		}
		return stream.NewImage(img, 0, float64(size)*0.75, 512), nil
	case "sphere":
		half := float64(size) / 2
		return stream.NewSDF(stream.Sphere{
			Center: r3.Vec{X: half, Y: half, Z: half},
			Radius: half * 0.6,
		}), nil
	case "box":
		half := float64(size) / 2
		return stream.NewSDF(stream.Box{
			Center: r3.Vec{X: half, Y: half, Z: half},
			Size:   r3.Vec{X: half, Y: half * 0.8, Z: half * 1.2},
			Round:  1,
		}), nil
	default:
		return nil, fmt.Errorf("unknown source %q", sourceName)
	}
}
