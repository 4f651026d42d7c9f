package renderer

import (
	"image"
	"image/draw"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/nfnt/resize"

	"github.com/Aofusa/gemspt-go/pkg/core"
	"github.com/Aofusa/gemspt-go/pkg/integrator"
	"github.com/Aofusa/gemspt-go/pkg/scene"
)

// Config controls image size and sampling effort.
type Config struct {
	Width           int
	Height          int
	SamplesPerPixel int
	TileSize        int     // Edge length of the square work tiles
	NumWorkers      int     // Number of parallel workers, 0 = CPU count
	Supersample     int     // Render at this multiple of the size and downscale, 1 = off
	Gamma           float64 // Display gamma for 8-bit output
	Seed            int64   // Base seed for the per-tile generators
}

// DefaultConfig returns rendering defaults for the given output size.
func DefaultConfig(width, height int) Config {
	return Config{
		Width:           width,
		Height:          height,
		SamplesPerPixel: 64,
		TileSize:        64,
		NumWorkers:      0,
		Supersample:     1,
		Gamma:           2.2,
		Seed:            42,
	}
}

// RenderStats summarizes a completed render.
type RenderStats struct {
	TotalPixels  int
	TotalSamples int
	NumTiles     int
	NumWorkers   int
	Elapsed      time.Duration
}

// tile is a rectangular region of the image rendered as one unit of work.
// Each tile owns a random generator so results do not depend on worker
// scheduling.
type tile struct {
	id     int
	bounds image.Rectangle
	random *rand.Rand
}

// newTileGrid creates tiles covering the entire image.
func newTileGrid(width, height, tileSize int, seed int64) []*tile {
	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	var tiles []*tile
	id := 0
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			x0 := tx * tileSize
			y0 := ty * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &tile{
				id:     id,
				bounds: image.Rect(x0, y0, x1, y1),
				random: rand.New(rand.NewSource(seed + int64(id))),
			})
			id++
		}
	}
	return tiles
}

// tileResult carries per-tile statistics back to the coordinator.
type tileResult struct {
	id      int
	samples int
}

// Renderer renders a scene with a pool of tile workers.
type Renderer struct {
	scene      *scene.Scene
	camera     *Camera
	integrator integrator.Integrator
	config     Config
	logger     core.Logger
}

// NewRenderer creates a renderer. A nil logger disables progress output.
func NewRenderer(s *scene.Scene, camera *Camera, integ integrator.Integrator, config Config, logger core.Logger) *Renderer {
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if config.TileSize <= 0 {
		config.TileSize = 64
	}
	if config.Supersample < 1 {
		config.Supersample = 1
	}
	if config.Gamma <= 0 {
		config.Gamma = 2.2
	}

	return &Renderer{
		scene:      s,
		camera:     camera,
		integrator: integ,
		config:     config,
		logger:     logger,
	}
}

// RenderFilm renders at full resolution, including the supersampling
// factor, and returns the linear film.
func (r *Renderer) RenderFilm() (*Film, RenderStats) {
	start := time.Now()

	// Build acceleration structures before the workers start sharing the scene
	r.scene.Preprocess()

	width := r.config.Width * r.config.Supersample
	height := r.config.Height * r.config.Supersample
	film := NewFilm(width, height)

	tiles := newTileGrid(width, height, r.config.TileSize, r.config.Seed)
	tasks := make(chan *tile, len(tiles))
	results := make(chan tileResult, len(tiles))

	var wg sync.WaitGroup
	for w := 0; w < r.config.NumWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				// Tiles have disjoint bounds, so workers write to the
				// shared film without locking
				results <- tileResult{id: t.id, samples: r.renderTile(t, film, width, height)}
			}
		}()
	}

	for _, t := range tiles {
		tasks <- t
	}
	close(tasks)

	logEvery := max(1, len(tiles)/10)
	totalSamples := 0
	for i := 0; i < len(tiles); i++ {
		res := <-results
		totalSamples += res.samples
		if r.logger != nil && (i+1)%logEvery == 0 {
			r.logger.Printf("rendered %d/%d tiles", i+1, len(tiles))
		}
	}
	wg.Wait()

	stats := RenderStats{
		TotalPixels:  width * height,
		TotalSamples: totalSamples,
		NumTiles:     len(tiles),
		NumWorkers:   r.config.NumWorkers,
		Elapsed:      time.Since(start),
	}
	if r.logger != nil {
		r.logger.Printf("render complete: %d samples over %d pixels in %v",
			stats.TotalSamples, stats.TotalPixels, stats.Elapsed.Round(time.Millisecond))
	}
	return film, stats
}

// Render renders the scene and returns the final 8-bit image. When
// supersampling is enabled the oversized result is downscaled with a
// bilinear filter.
func (r *Renderer) Render() (*image.RGBA, RenderStats) {
	film, stats := r.RenderFilm()
	img := film.ToRGBA(r.config.Gamma)

	if r.config.Supersample > 1 {
		resized := resize.Resize(uint(r.config.Width), uint(r.config.Height), img, resize.Bilinear)
		rgba := image.NewRGBA(image.Rect(0, 0, r.config.Width, r.config.Height))
		draw.Draw(rgba, rgba.Bounds(), resized, image.Point{}, draw.Src)
		return rgba, stats
	}
	return img, stats
}

// renderTile renders all pixels within the tile bounds and returns the
// number of samples taken.
func (r *Renderer) renderTile(t *tile, film *Film, width, height int) int {
	sampler := core.NewRandomSampler(t.random)
	spp := r.config.SamplesPerPixel
	samples := 0

	for y := t.bounds.Min.Y; y < t.bounds.Max.Y; y++ {
		for x := t.bounds.Min.X; x < t.bounds.Max.X; x++ {
			var accum core.Color
			for s := 0; s < spp; s++ {
				// Jittered position within the pixel; film row 0 is the
				// top of the image while camera t grows upward
				u := (float64(x) + t.random.Float64()) / float64(width)
				v := (float64(height-1-y) + t.random.Float64()) / float64(height)
				accum = accum.Add(r.integrator.Li(r.camera.GetRay(u, v), r.scene, sampler))
			}
			film.SetPixel(x, y, accum.Multiply(1.0/float64(spp)))
			samples += spp
		}
	}
	return samples
}
