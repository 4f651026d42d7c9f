package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Aofusa/gemspt-go/pkg/core"
)

func TestLambertianSimple_Eval(t *testing.T) {
	mat := NewLambertianSimple(core.NewVec3(0.75, 0.5, 0.25))

	input := core.NewVec3(1, -1, 0).Normalize()
	normal := core.NewVec3(0, 1, 0)
	output := core.NewVec3(0, 1, 0)

	// Lambertian brdf is ρ/π regardless of directions
	brdf := mat.Eval(input, normal, output)
	expected := core.NewVec3(0.75/math.Pi, 0.5/math.Pi, 0.25/math.Pi)

	const tolerance = 1e-12
	if brdf.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected %v, got %v", expected, brdf)
	}
}

func TestLambertianSimple_Sample(t *testing.T) {
	mat := NewLambertianSimple(core.NewVec3(0.8, 0.8, 0.8))
	input := core.NewVec3(1, -1, 0).Normalize()
	normal := core.NewVec3(0, 1, 0)

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	expectedPdf := 1.0 / (2.0 * math.Pi)
	expectedBrdf := mat.Reflectance().Divide(math.Pi)

	numSamples := 10000
	aboveHalf := 0
	for i := 0; i < numSamples; i++ {
		dir, pdf, brdf := mat.Sample(sampler, input, normal)

		if pdf.IsDelta {
			t.Fatal("Diffuse pdf should not carry a delta")
		}
		if math.Abs(pdf.Value-expectedPdf) > 1e-12 {
			t.Fatalf("Expected pdf %f, got %f", expectedPdf, pdf.Value)
		}
		if dir.Dot(normal) < 0 {
			t.Fatalf("Sample %d below surface: %v", i, dir)
		}
		if brdf.Subtract(expectedBrdf).Length() > 1e-12 {
			t.Fatalf("Expected brdf %v, got %v", expectedBrdf, brdf)
		}

		if dir.Dot(normal) > 0.5 {
			aboveHalf++
		}
	}

	// Uniform hemisphere: P(cos θ > 0.5) = 0.5
	fraction := float64(aboveHalf) / float64(numSamples)
	if math.Abs(fraction-0.5) > 0.02 {
		t.Errorf("Fraction above cos=0.5 incorrect: got %f, expected 0.5", fraction)
	}
}

func TestLambertian_SamplePdfMatchesCosine(t *testing.T) {
	mat := NewLambertian(core.NewVec3(0.7, 0.7, 0.7))
	input := core.NewVec3(1, -1, 0).Normalize()
	normal := core.NewVec3(0.2, 0.9, 0.1).Normalize() // Oblique normal exercises the basis

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		dir, pdf, _ := mat.Sample(sampler, input, normal)

		// The pdf must be cosθ/π for exactly the direction returned
		expected := normal.Dot(dir) / math.Pi
		if math.Abs(pdf.Value-expected) > 1e-12 {
			t.Fatalf("Sample %d: expected pdf %f, got %f", i, expected, pdf.Value)
		}
	}
}

func TestLambertian_CosineDistribution(t *testing.T) {
	mat := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	input := core.NewVec3(0, -1, 0)
	normal := core.NewVec3(0, 1, 0)

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(123)))

	numSamples := 10000
	cosSum := 0.0
	aboveHalf := 0
	for i := 0; i < numSamples; i++ {
		dir, _, _ := mat.Sample(sampler, input, normal)

		cosTheta := dir.Dot(normal)
		if cosTheta < 0 {
			t.Fatalf("Sample %d below surface: %v", i, dir)
		}
		cosSum += cosTheta
		if cosTheta > 0.5 {
			aboveHalf++
		}
	}

	// Cosine-weighted sampling: E[cos θ] = 2/3 and P(cos θ > 0.5) = 0.75
	meanCos := cosSum / float64(numSamples)
	if math.Abs(meanCos-2.0/3.0) > 0.02 {
		t.Errorf("Mean cosine incorrect: got %f, expected %f", meanCos, 2.0/3.0)
	}
	fraction := float64(aboveHalf) / float64(numSamples)
	if math.Abs(fraction-0.75) > 0.02 {
		t.Errorf("Fraction above cos=0.5 incorrect: got %f, expected 0.75", fraction)
	}
}

func TestLambertian_EstimatorWeightIsReflectance(t *testing.T) {
	// With cosine-weighted sampling, brdf·cosθ/pdf reduces to ρ for every
	// single sample, not just in expectation
	mat := NewLambertian(core.NewVec3(0.6, 0.4, 0.2))
	input := core.NewVec3(1, -1, 0).Normalize()
	normal := core.NewVec3(0, 1, 0)

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 100; i++ {
		dir, pdf, brdf := mat.Sample(sampler, input, normal)

		weight := brdf.Multiply(normal.Dot(dir) / pdf.Value)
		if weight.Subtract(mat.Reflectance()).Length() > 1e-9 {
			t.Fatalf("Sample %d: weight %v, expected %v", i, weight, mat.Reflectance())
		}
	}
}

func TestLambertianSimple_EnergyConservation(t *testing.T) {
	// The Monte Carlo estimate of the hemisphere integral of brdf·cosθ must
	// come out at the reflectance
	mat := NewLambertianSimple(core.NewVec3(0.8, 0.6, 0.4))
	input := core.NewVec3(0, -1, 0)
	normal := core.NewVec3(0, 1, 0)

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(99)))

	numSamples := 10000
	var sum core.Vec3
	for i := 0; i < numSamples; i++ {
		dir, pdf, brdf := mat.Sample(sampler, input, normal)
		sum = sum.Add(brdf.Multiply(normal.Dot(dir) / pdf.Value))
	}
	estimate := sum.Multiply(1.0 / float64(numSamples))

	expected := mat.Reflectance()
	tolerance := 0.03
	if math.Abs(estimate.X-expected.X) > tolerance ||
		math.Abs(estimate.Y-expected.Y) > tolerance ||
		math.Abs(estimate.Z-expected.Z) > tolerance {
		t.Errorf("Energy estimate %v does not match reflectance %v", estimate, expected)
	}
}

func TestLambertian_Accessors(t *testing.T) {
	reflectance := core.NewVec3(0.3, 0.6, 0.9)

	for _, mat := range []Material{NewLambertianSimple(reflectance), NewLambertian(reflectance)} {
		if mat.Reflectance() != reflectance {
			t.Errorf("Reflectance incorrect: got %v", mat.Reflectance())
		}
		if !mat.Emission().IsZero() {
			t.Errorf("Diffuse material should not emit, got %v", mat.Emission())
		}
	}
}
