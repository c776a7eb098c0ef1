package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/chaoscope/internal/dynamo"
	"github.com/san-kum/chaoscope/internal/integrators"
	"github.com/san-kum/chaoscope/internal/systems"
)

func TestPowerSpectrumConstantSignal(t *testing.T) {
	data := []float64{2, 2, 2, 2, 2, 2, 2, 2}

	spec := PowerSpectrum(data)
	if len(spec) != 4 {
		t.Fatalf("expected 4 bins, got %d", len(spec))
	}

	if math.Abs(spec[0]-16) > 1e-9 {
		t.Errorf("DC bin = %f, want 16", spec[0])
	}
	for i := 1; i < len(spec); i++ {
		if spec[i] > 1e-9 {
			t.Errorf("bin %d = %f, want 0", i, spec[i])
		}
	}
}

func TestPowerSpectrumPeakBin(t *testing.T) {
	const n = 256
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 8 * float64(i) / n)
	}

	spec := PowerSpectrum(data)

	peak := 0
	for i := range spec {
		if spec[i] > spec[peak] {
			peak = i
		}
	}
	if peak != 8 {
		t.Errorf("peak at bin %d, want 8", peak)
	}
}

func TestPowerSpectrumAnyLength(t *testing.T) {
	// The transform is not limited to power-of-two windows.
	data := []float64{3, 3, 3, 3, 3, 3}

	spec := PowerSpectrum(data)
	if len(spec) != 3 {
		t.Fatalf("expected 3 bins, got %d", len(spec))
	}
	if math.Abs(spec[0]-18) > 1e-9 {
		t.Errorf("DC bin = %f, want 18", spec[0])
	}
	for i := 1; i < len(spec); i++ {
		if spec[i] > 1e-9 {
			t.Errorf("bin %d = %f, want 0", i, spec[i])
		}
	}
}

func TestPadPow2(t *testing.T) {
	padded := PadPow2(make([]float64, 100))
	if len(padded) != 128 {
		t.Errorf("padded length = %d, want 128", len(padded))
	}
}

func TestLyapunovExponentLorenzPositive(t *testing.T) {
	if testing.Short() {
		t.Skip("long integration")
	}

	sys := systems.NewLorenz()
	lam := LyapunovExponent(sys, integrators.NewRK4(), sys.DefaultState(), 0.01, 50.0, 1e-8)

	if lam <= 0 {
		t.Errorf("Lorenz exponent = %f, want positive", lam)
	}
}

type contracting struct{}

func (c *contracting) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{-x[0], -x[1]}
}
func (c *contracting) StateDim() int { return 2 }

func TestLyapunovExponentContractingNegative(t *testing.T) {
	lam := LyapunovExponent(&contracting{}, integrators.NewRK4(), dynamo.State{1, 1}, 0.01, 20.0, 1e-8)

	if lam >= 0 {
		t.Errorf("contracting system exponent = %f, want negative", lam)
	}
}
