package lights

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Aofusa/gemspt-go/pkg/core"
)

func TestSphereLight_Sample(t *testing.T) {
	emission := core.NewVec3(5, 5, 5)
	light := NewSphereLight(core.NewVec3(0, 10, 0), 1.0, emission)
	point := core.NewVec3(0, 0, 0)

	// Cone geometry seen from the origin
	sinThetaMax := 1.0 / 10.0
	cosThetaMax := math.Sqrt(1.0 - sinThetaMax*sinThetaMax)
	expectedPDF := 1.0 / (2.0 * math.Pi * (1.0 - cosThetaMax))

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	up := core.NewVec3(0, 1, 0)

	numSamples := 1000
	valid := 0
	for i := 0; i < numSamples; i++ {
		ls := light.Sample(point, sampler.Get2D())
		if ls.PDF == 0 {
			// Cone edge samples may graze past the sphere
			continue
		}
		valid++

		if math.Abs(ls.Direction.Length()-1.0) > 1e-9 {
			t.Fatalf("Direction not unit length: %f", ls.Direction.Length())
		}
		if ls.Direction.Dot(up) < cosThetaMax-1e-9 {
			t.Fatalf("Direction outside the subtended cone: cos = %f", ls.Direction.Dot(up))
		}
		if ls.Distance < 9.0-1e-9 || ls.Distance > math.Sqrt(99.0)+1e-6 {
			t.Fatalf("Distance out of range: %f", ls.Distance)
		}
		if math.Abs(ls.Point.Subtract(light.Center).Length()-1.0) > 1e-6 {
			t.Fatalf("Sample point not on the sphere surface: %v", ls.Point)
		}
		if math.Abs(ls.PDF-expectedPDF) > 1e-9 {
			t.Fatalf("PDF incorrect: got %f, expected %f", ls.PDF, expectedPDF)
		}
		if ls.Emission != emission {
			t.Fatalf("Emission incorrect: got %v", ls.Emission)
		}
	}

	if valid < numSamples*95/100 {
		t.Errorf("Too many grazing misses: %d valid of %d", valid, numSamples)
	}
}

func TestSphereLight_PointInside(t *testing.T) {
	light := NewSphereLight(core.NewVec3(0, 10, 0), 1.0, core.NewVec3(5, 5, 5))

	// Inside the light there is no usable direct-light sample
	ls := light.Sample(core.NewVec3(0, 9.5, 0), core.NewVec2(0.3, 0.7))
	if ls.PDF != 0 {
		t.Errorf("Expected zero PDF inside the light, got %f", ls.PDF)
	}
}

func TestQuadLight_SampleCenter(t *testing.T) {
	// Ceiling light at y=5 with its normal facing down
	emission := core.NewVec3(10, 10, 10)
	light := NewQuadLight(
		core.NewVec3(-1, 5, -1),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 0, 2),
		emission,
	)

	const tolerance = 1e-9
	if light.Normal.Subtract(core.NewVec3(0, -1, 0)).Length() > tolerance {
		t.Fatalf("Test setup: expected downward normal, got %v", light.Normal)
	}

	// The midpoint sample lands directly overhead
	ls := light.Sample(core.NewVec3(0, 0, 0), core.NewVec2(0.5, 0.5))

	if ls.Point.Subtract(core.NewVec3(0, 5, 0)).Length() > tolerance {
		t.Errorf("Sample point incorrect: got %v", ls.Point)
	}
	if math.Abs(ls.Distance-5.0) > tolerance {
		t.Errorf("Distance incorrect: got %f", ls.Distance)
	}
	if ls.Direction.Subtract(core.NewVec3(0, 1, 0)).Length() > tolerance {
		t.Errorf("Direction incorrect: got %v", ls.Direction)
	}

	// pdf = distance²/(cosθ·area) = 25/(1·4)
	if math.Abs(ls.PDF-6.25) > tolerance {
		t.Errorf("PDF incorrect: got %f, expected 6.25", ls.PDF)
	}
	if ls.Emission != emission {
		t.Errorf("Emission incorrect: got %v", ls.Emission)
	}
}

func TestQuadLight_SolidAnglePDF(t *testing.T) {
	light := NewQuadLight(
		core.NewVec3(-1, 5, -1),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 0, 2),
		core.NewVec3(10, 10, 10),
	)
	point := core.NewVec3(0, 0, 0)

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(7)))
	for i := 0; i < 1000; i++ {
		ls := light.Sample(point, sampler.Get2D())

		// For this horizontal quad cosθ = 5/distance, so the solid-angle pdf
		// reduces to distance³/(5·area)
		expected := math.Pow(ls.Distance, 3) / (5.0 * 4.0)
		if math.Abs(ls.PDF-expected) > 1e-9 {
			t.Fatalf("Sample %d: PDF incorrect: got %f, expected %f", i, ls.PDF, expected)
		}
	}
}

func TestQuadLight_BackFaceIsDark(t *testing.T) {
	light := NewQuadLight(
		core.NewVec3(-1, 5, -1),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 0, 2),
		core.NewVec3(10, 10, 10),
	)

	// Seen from above, the light faces away
	ls := light.Sample(core.NewVec3(0, 10, 0), core.NewVec2(0.5, 0.5))

	if !ls.Emission.IsZero() {
		t.Errorf("Back face should be dark, got emission %v", ls.Emission)
	}
	if ls.PDF <= 0 {
		t.Errorf("Back-face sample still has a geometric pdf, got %f", ls.PDF)
	}
}
