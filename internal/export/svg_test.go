package export

import (
	"strings"
	"testing"

	"github.com/san-kum/splitsim/internal/engine"
)

func TestSnapshotToSVG(t *testing.T) {
	p := engine.DefaultParams()
	balls := []engine.Ball{
		{X: p.CenterX, Y: p.CenterY, Radius: 30, Color: engine.Red},
		{X: p.CenterX + 50, Y: p.CenterY, Radius: 15, Color: engine.Blue},
	}

	svg := SnapshotToSVG(balls, p)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML declaration")
	}
	// Boundary circle plus one circle per ball.
	if n := strings.Count(svg, "<circle"); n != 3 {
		t.Errorf("expected 3 circles, got %d", n)
	}
	if !strings.Contains(svg, "</svg>") {
		t.Error("unterminated SVG document")
	}
}

func TestSnapshotToSVGEmpty(t *testing.T) {
	svg := SnapshotToSVG(nil, engine.DefaultParams())

	// Still a valid document with just the arena.
	if n := strings.Count(svg, "<circle"); n != 1 {
		t.Errorf("expected boundary circle only, got %d circles", n)
	}
}

func TestSeriesToSVG(t *testing.T) {
	svg := SeriesToSVG([]float64{1, 2, 4, 8, 4}, 640, 240, "#00ff00")

	if !strings.Contains(svg, `stroke="#00ff00"`) {
		t.Error("stroke color not applied")
	}
	if !strings.Contains(svg, "<path") {
		t.Error("missing polyline path")
	}
}

func TestSeriesToSVGTooShort(t *testing.T) {
	if svg := SeriesToSVG([]float64{1}, 640, 240, "#fff"); svg != "" {
		t.Error("expected empty output for single-point series")
	}
}

func TestSeriesToSVGFlatSeries(t *testing.T) {
	svg := SeriesToSVG([]float64{3, 3, 3, 3}, 640, 240, "#fff")

	if !strings.Contains(svg, "<path") {
		t.Error("flat series should still render")
	}
}
