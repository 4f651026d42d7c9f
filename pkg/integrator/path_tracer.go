package integrator

import (
	"math"

	"github.com/Aofusa/gemspt-go/pkg/core"
	"github.com/Aofusa/gemspt-go/pkg/material"
	"github.com/Aofusa/gemspt-go/pkg/scene"
)

// shadowEpsilon pads occlusion checks so a light does not shadow its own
// sample points.
const shadowEpsilon = 0.001

// Config controls path termination and direct light sampling.
type Config struct {
	MinDepth       int  // Bounces always traced before Russian roulette may stop a path
	MaxDepth       int  // Depth beyond which survival probability halves per extra bounce
	DirectLighting bool // Sample lights explicitly at diffuse and glossy vertices
}

// DefaultConfig returns termination settings suitable for most scenes.
func DefaultConfig() Config {
	return Config{MinDepth: 5, MaxDepth: 64}
}

// Integrator defines the interface for light transport algorithms.
type Integrator interface {
	// Li computes the radiance arriving at the ray origin along the ray
	Li(ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Color
}

// PathTracer estimates radiance by tracing a single path per sample,
// terminating with Russian roulette weighted by surface reflectance.
type PathTracer struct {
	config Config
}

// NewPathTracer creates a path tracer with the given termination settings.
func NewPathTracer(config Config) *PathTracer {
	return &PathTracer{config: config}
}

// Li computes the radiance arriving at the ray origin along the ray.
func (pt *PathTracer) Li(ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Color {
	return pt.radiance(ray, s, sampler, 0, true)
}

func (pt *PathTracer) radiance(ray core.Ray, s *scene.Scene, sampler core.Sampler, depth int, includeEmission bool) core.Color {
	hit, ok := s.Intersect(ray)
	if !ok {
		return s.Background(ray)
	}

	emission := hit.Material.Emission()
	if !emission.IsZero() {
		// Paths end at light sources. When the previous vertex already
		// sampled this light directly, skip the emission so it is not
		// counted twice.
		if !includeEmission {
			return core.NewVec3(0, 0, 0)
		}
		return emission
	}

	// Russian roulette with survival probability tied to the surface
	// reflectance. Shallow paths always continue, and past MaxDepth the
	// probability halves per bounce so recursion stays bounded.
	rrProbability := hit.Material.Reflectance().MaxComponent()
	if depth > pt.config.MaxDepth {
		rrProbability *= math.Pow(0.5, float64(depth-pt.config.MaxDepth))
	}
	if depth > pt.config.MinDepth {
		if sampler.Get1D() >= rrProbability {
			return core.NewVec3(0, 0, 0)
		}
	} else {
		rrProbability = 1.0
	}

	direction, pdf, brdf := hit.Material.Sample(sampler, ray.Direction, hit.Normal)

	var direct core.Color
	nextIncludesEmission := true
	if pt.config.DirectLighting && !pdf.IsDelta {
		direct = pt.sampleLights(s, sampler, hit, ray.Direction).Multiply(1.0 / rrProbability)
		nextIncludesEmission = false
	}

	// Cosine against the geometric normal. Refraction makes this or the
	// glass brdf negative; the signs cancel across the paired entry and
	// exit interfaces of a closed object.
	cosine := hit.Normal.Dot(direction)
	weight := brdf.Multiply(cosine / (pdf.Value * rrProbability))

	next := core.NewRay(hit.Point, direction)
	indirect := weight.MultiplyVec(pt.radiance(next, s, sampler, depth+1, nextIncludesEmission))

	return direct.Add(indirect)
}

// sampleLights estimates direct illumination by sampling a point on one
// light chosen in proportion to emitted power.
func (pt *PathTracer) sampleLights(s *scene.Scene, sampler core.Sampler, hit *material.HitRecord, inputDir core.Vec3) core.Color {
	light, selectionProbability := s.SelectLight(sampler.Get1D())
	if light == nil || selectionProbability <= 0 {
		return core.NewVec3(0, 0, 0)
	}

	lightSample := light.Sample(hit.Point, sampler.Get2D())
	if lightSample.PDF <= 0 || lightSample.Emission.IsZero() {
		return core.NewVec3(0, 0, 0)
	}

	// The light must be on the outside of the surface
	cosine := hit.Normal.Dot(lightSample.Direction)
	if cosine <= 0 {
		return core.NewVec3(0, 0, 0)
	}

	// Occlusion test against everything nearer than the light
	shadowRay := core.NewRay(hit.Point, lightSample.Direction)
	if occluder, ok := s.Intersect(shadowRay); ok && occluder.T < lightSample.Distance-shadowEpsilon {
		return core.NewVec3(0, 0, 0)
	}

	brdf := hit.Material.Eval(inputDir, hit.Normal, lightSample.Direction)
	pdf := lightSample.PDF * selectionProbability

	return brdf.MultiplyVec(lightSample.Emission).Multiply(cosine / pdf)
}
