package rangesel

import (
	"errors"
	"math"
	"testing"
)

const testTrack = 928.0

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewConverterErrors(t *testing.T) {
	tests := []struct {
		name  string
		track float64
		n     int
		want  error
	}{
		{"zero points", testTrack, 0, ErrNoPoints},
		{"negative points", testTrack, -3, ErrNoPoints},
		{"zero track", 0, 10, ErrInvalidTrack},
		{"nan track", math.NaN(), 10, ErrInvalidTrack},
		{"inf track", math.Inf(1), 10, ErrInvalidTrack},
		{"ok", testTrack, 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConverter(tt.track, tt.n)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewConverter(%v, %d) error = %v, want %v", tt.track, tt.n, err, tt.want)
			}
		})
	}
}

func TestZeroValueConverterRejects(t *testing.T) {
	var c Converter
	if _, err := c.ToLogical(0, 0); !errors.Is(err, ErrNoPoints) {
		t.Errorf("ToLogical on zero converter error = %v, want ErrNoPoints", err)
	}
	if _, err := c.ToPixels(0, 1); !errors.Is(err, ErrNoPoints) {
		t.Errorf("ToPixels on zero converter error = %v, want ErrNoPoints", err)
	}
}

func TestToLogicalRightHandleScenario(t *testing.T) {
	c, err := NewConverter(testTrack, 200)
	if err != nil {
		t.Fatal(err)
	}

	r, err := c.ToLogical(0, 500)
	if err != nil {
		t.Fatalf("ToLogical error: %v", err)
	}
	if r.From != 0 {
		t.Errorf("From = %v, want 0", r.From)
	}
	want := 200 - 500/(testTrack/200)
	if !almostEqual(r.To, want) {
		t.Errorf("To = %v, want %v", r.To, want)
	}
	if math.Abs(r.To-92.24) > 0.01 {
		t.Errorf("To = %v, want about 92.24", r.To)
	}
}

func TestToLogicalInvalid(t *testing.T) {
	c, _ := NewConverter(testTrack, 100)
	inputs := [][2]float64{
		{-1, 0},
		{0, -1},
		{math.NaN(), 0},
		{0, math.Inf(1)},
		{600, 400},
	}
	for _, in := range inputs {
		if _, err := c.ToLogical(in[0], in[1]); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("ToLogical(%v, %v) error = %v, want ErrInvalidRange", in[0], in[1], err)
		}
	}
}

func TestToLogicalClamps(t *testing.T) {
	c, _ := NewConverter(testTrack, 100)
	r, err := c.ToLogical(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if r.From != 0 || r.To != 100 {
		t.Errorf("ToLogical(0, 0) = %v, want 0..100", r)
	}

	r, err = c.ToLogical(testTrack, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(r.From, 100) || !almostEqual(r.To, 100) {
		t.Errorf("ToLogical(track, 0) = %v, want 100..100", r)
	}
}

func TestToPixelsInvalid(t *testing.T) {
	c, _ := NewConverter(testTrack, 100)
	inputs := [][2]float64{
		{10, 5},
		{math.NaN(), 5},
		{0, math.Inf(1)},
	}
	for _, in := range inputs {
		if _, err := c.ToPixels(in[0], in[1]); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("ToPixels(%v, %v) error = %v, want ErrInvalidRange", in[0], in[1], err)
		}
	}
}

func TestLogicalRangeValidate(t *testing.T) {
	tests := []struct {
		r    LogicalRange
		want bool
	}{
		{LogicalRange{From: 0, To: 10}, true},
		{LogicalRange{From: 5, To: 5}, true},
		{LogicalRange{From: 10, To: 5}, false},
		{LogicalRange{From: math.NaN(), To: 5}, false},
		{LogicalRange{From: 0, To: math.Inf(1)}, false},
	}
	for _, tt := range tests {
		err := tt.r.Validate()
		if (err == nil) != tt.want {
			t.Errorf("%s.Validate() = %v, want valid %v", tt.r, err, tt.want)
		}
		if err != nil && !errors.Is(err, ErrInvalidRange) {
			t.Errorf("%s.Validate() = %v, want ErrInvalidRange", tt.r, err)
		}
	}
}

func TestToPixelsClampInvariant(t *testing.T) {
	counts := []int{1, 3, 200, 5000}
	values := []float64{-1e6, -50, -0.5, 0, 0.25, 1, 17.5, 199, 200, 201, 5000, 1e9}

	for _, n := range counts {
		c, _ := NewConverter(testTrack, n)
		for _, from := range values {
			for _, to := range values {
				if from > to {
					continue
				}
				s, err := c.ToPixels(from, to)
				if err != nil {
					t.Fatalf("ToPixels(%v, %v) unexpected error: %v", from, to, err)
				}
				if s.LeftInset < 0 || s.LeftInset > testTrack || s.RightInset < 0 || s.RightInset > testTrack {
					t.Errorf("n=%d ToPixels(%v, %v) = %+v, outside [0, %v]", n, from, to, s, testTrack)
				}
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	counts := []int{1, 7, 200, 5000}
	fractions := []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1}

	for _, n := range counts {
		c, _ := NewConverter(testTrack, n)
		for _, ff := range fractions {
			for _, tf := range fractions {
				if ff > tf {
					continue
				}
				from := ff * float64(n)
				to := tf * float64(n)
				s, err := c.ToPixels(from, to)
				if err != nil {
					t.Fatalf("ToPixels error: %v", err)
				}
				r, err := c.ToLogical(s.LeftInset, s.RightInset)
				if err != nil {
					t.Fatalf("ToLogical error: %v", err)
				}
				if math.Abs(r.From-from) > 1e-6 || math.Abs(r.To-to) > 1e-6 {
					t.Errorf("n=%d round trip %v..%v = %v", n, from, to, r)
				}
			}
		}
	}
}

func TestMaxWindowWidth(t *testing.T) {
	c, _ := NewConverter(testTrack, 200)
	if c.MaxWindowWidth() < testTrack {
		t.Errorf("MaxWindowWidth for 200 points = %v, want >= track width", c.MaxWindowWidth())
	}

	dense, _ := NewConverter(testTrack, 5000)
	w := dense.MaxWindowWidth()
	if w >= testTrack {
		t.Fatalf("MaxWindowWidth for 5000 points = %v, want < track width", w)
	}
	if d := dense.Density(w); !almostEqual(d, DefaultMaxPointPerPixel) {
		t.Errorf("Density at MaxWindowWidth = %v, want %v", d, DefaultMaxPointPerPixel)
	}
}

func TestWithMaxPointPerPixelIgnoresInvalid(t *testing.T) {
	c, _ := NewConverter(testTrack, 1000)
	base := c.MaxWindowWidth()
	if got := c.WithMaxPointPerPixel(-1).MaxWindowWidth(); got != base {
		t.Errorf("negative cap changed MaxWindowWidth to %v", got)
	}
	if got := c.WithMaxPointPerPixel(DefaultMaxPointPerPixel * 2).MaxWindowWidth(); !almostEqual(got, base*2) {
		t.Errorf("doubled cap MaxWindowWidth = %v, want %v", got, base*2)
	}
}
