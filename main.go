package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/Aofusa/gemspt-go/pkg/core"
	"github.com/Aofusa/gemspt-go/pkg/integrator"
	"github.com/Aofusa/gemspt-go/pkg/renderer"
	"github.com/Aofusa/gemspt-go/pkg/scene"
)

// sceneSetup bundles a scene with its camera placement and default framing.
type sceneSetup struct {
	scene  *scene.Scene
	camera renderer.CameraConfig
	width  int
	height int
}

// createScene builds one of the built-in scenes by name.
func createScene(sceneType string) (*sceneSetup, error) {
	switch sceneType {
	case "default":
		return &sceneSetup{
			scene: scene.NewDefaultScene(),
			camera: renderer.CameraConfig{
				LookFrom: core.NewVec3(0, 2.5, 9),
				LookAt:   core.NewVec3(0, 1, 0),
				Up:       core.NewVec3(0, 1, 0),
				VFov:     35.0,
			},
			width:  400,
			height: 225,
		}, nil
	case "cornell":
		return &sceneSetup{
			scene: scene.NewCornellScene(),
			camera: renderer.CameraConfig{
				LookFrom: core.NewVec3(0, 3, 10.5),
				LookAt:   core.NewVec3(0, 3, 0),
				Up:       core.NewVec3(0, 1, 0),
				VFov:     44.0,
			},
			width:  400,
			height: 400,
		}, nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

// defaultFilename builds the timestamped output path for a scene render.
func defaultFilename(sceneType, format string) string {
	timestamp := time.Now().Format("20060102_150405")
	return filepath.Join("output", sceneType, fmt.Sprintf("render_%s.%s", timestamp, format))
}

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'cornell'")
	width := flag.Int("width", 0, "Image width (0 = scene default)")
	height := flag.Int("height", 0, "Image height (0 = scene default)")
	samples := flag.Int("samples", 64, "Samples per pixel")
	minDepth := flag.Int("min-depth", 5, "Bounces always traced before Russian roulette may stop a path")
	maxDepth := flag.Int("max-depth", 64, "Depth beyond which path survival decays sharply")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	ssaa := flag.Int("ssaa", 1, "Supersampling factor: render larger and downscale")
	nee := flag.Bool("nee", false, "Sample lights directly at diffuse and glossy hits")
	seed := flag.Int64("seed", 42, "Base random seed")
	format := flag.String("format", "png", "Output format: 'png', 'ppm', 'tiff' or 'hdr'")
	output := flag.String("o", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Path Tracer")
		fmt.Println("Usage: gemspt [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Matte, glossy and glass spheres on a ground plane under the sky")
		fmt.Println("  cornell - Cornell box with a ceiling light, a glass sphere and a glossy sphere")
		return
	}

	switch *format {
	case "png", "ppm", "tiff", "hdr":
	default:
		fmt.Printf("Unknown format: %s. Supported formats: png, ppm, tiff, hdr.\n", *format)
		os.Exit(1)
	}

	setup, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("%v. Using default scene.\n", err)
		*sceneType = "default"
		setup, _ = createScene(*sceneType)
	}
	fmt.Printf("Using %s scene...\n", *sceneType)

	if *width <= 0 {
		*width = setup.width
	}
	if *height <= 0 {
		*height = setup.height
	}
	setup.camera.AspectRatio = float64(*width) / float64(*height)

	filename := *output
	if filename == "" {
		filename = defaultFilename(*sceneType, *format)
	}
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("Error creating output directory: %v\n", err)
			os.Exit(1)
		}
	}

	camera := renderer.NewCamera(setup.camera)
	pathTracer := integrator.NewPathTracer(integrator.Config{
		MinDepth:       *minDepth,
		MaxDepth:       *maxDepth,
		DirectLighting: *nee,
	})
	config := renderer.Config{
		Width:           *width,
		Height:          *height,
		SamplesPerPixel: *samples,
		TileSize:        64,
		NumWorkers:      *workers,
		Supersample:     *ssaa,
		Gamma:           2.2,
		Seed:            *seed,
	}
	logger := log.New(os.Stdout, "", log.LstdFlags)
	r := renderer.NewRenderer(setup.scene, camera, pathTracer, config, logger)

	fmt.Printf("Rendering %dx%d at %d spp...\n", *width, *height, *samples)

	var stats renderer.RenderStats
	if *format == "hdr" {
		// HDR keeps the raw linear radiance, so it is written straight
		// from the film without gamma correction or downscaling
		var film *renderer.Film
		film, stats = r.RenderFilm()
		err = renderer.SaveHDR(filename, film)
	} else {
		var img *image.RGBA
		img, stats = r.Render()
		switch *format {
		case "png":
			err = renderer.SavePNG(filename, img)
		case "ppm":
			err = renderer.SavePPM(filename, img)
		case "tiff":
			err = renderer.SaveTIFF(filename, img)
		}
	}
	if err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render completed in %v\n", stats.Elapsed.Round(time.Millisecond))
	fmt.Printf("Render saved as %s\n", filename)
}
