package chart

import (
	"fmt"
	"math"

	"github.com/cofipei/chart-api/internal/types/business"
	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// PanelKind says what a panel draws.
type PanelKind int

const (
	PanelPlaceholder PanelKind = iota
	PanelPie
	PanelBar
)

// PieStartAngle is where the first slice starts, in degrees counter-clockwise
// from 3 o'clock.
const PieStartAngle = 90.0

// Input is the data for one two-panel figure.
type Input struct {
	Pie        business.CategoryValues
	Bar        business.CategoryValues
	PieTitle   string
	BarTitle   string
	PiePalette []string
	BarPalette []string
}

// Figure is a resolution independent description of what will be drawn.
type Figure struct {
	WidthInches  float64
	HeightInches float64
	DPI          float64
	Title        string
	Panels       []Panel
}

// Panel is one cell of the figure.
type Panel struct {
	Kind    PanelKind
	Title   string
	Message string
	XLabel  string
	YLabel  string
	Slices  []Slice
	Bars    []Bar
}

// Slice is a pie wedge. Angles are degrees counter-clockwise from 3 o'clock.
type Slice struct {
	Label        string
	Value        float64
	Fraction     float64
	StartAngle   float64
	Sweep        float64
	PercentLabel string
	Color        drawing.Color
}

// MidAngle is the angle of the wedge bisector.
func (s Slice) MidAngle() float64 {
	return s.StartAngle + s.Sweep/2
}

// Bar is one bar with its value annotation.
type Bar struct {
	Label      string
	Value      float64
	Annotation string
	Color      drawing.Color
}

// Compose builds the two-panel figure for in. Missing titles and palettes
// come from the profile.
func Compose(in Input, p Profile) (*Figure, error) {
	if p.WidthInches <= 0 || p.HeightInches <= 0 || p.DPI <= 0 {
		return nil, ErrInvalidDimensions
	}

	pieTitle := firstNonEmpty(in.PieTitle, p.PieTitle)
	barTitle := firstNonEmpty(in.BarTitle, p.BarTitle)

	pie := Panel{Kind: PanelPlaceholder, Title: pieTitle, Message: p.PiePlaceholder}
	if len(in.Pie) > 0 {
		colors, err := ParsePalette(paletteOrDefault(in.PiePalette, p.PiePalette))
		if err != nil {
			return nil, errors.Wrap(err, "pie palette")
		}
		slices, err := PieSlices(in.Pie, colors)
		if err != nil {
			return nil, err
		}
		pie = Panel{Kind: PanelPie, Title: pieTitle, Slices: slices}
	}

	bar := Panel{Kind: PanelPlaceholder, Title: barTitle, Message: p.BarPlaceholder}
	if len(in.Bar) > 0 {
		colors, err := ParsePalette(paletteOrDefault(in.BarPalette, p.BarPalette))
		if err != nil {
			return nil, errors.Wrap(err, "bar palette")
		}
		if err := checkFinite(in.Bar); err != nil {
			return nil, err
		}
		bars := Bars(in.Bar, colors)
		if lo, hi := valueRange(bars); !isFinite(lo) || !isFinite(hi) || !isFinite(hi-lo) {
			return nil, errors.Wrapf(ErrValueOutOfRange, "bar axis spans [%g, %g]", lo, hi)
		}
		bar = Panel{
			Kind:   PanelBar,
			Title:  barTitle,
			XLabel: p.XLabel,
			YLabel: p.YLabel,
			Bars:   bars,
		}
	}

	return &Figure{
		WidthInches:  p.WidthInches,
		HeightInches: p.HeightInches,
		DPI:          p.DPI,
		Title:        p.Title,
		Panels:       []Panel{pie, bar},
	}, nil
}

// ErrorFigure is the single-panel placeholder shown when composing or drawing fails.
func ErrorFigure(p Profile, cause error) *Figure {
	return &Figure{
		WidthInches:  p.WidthInches,
		HeightInches: p.HeightInches,
		DPI:          p.DPI,
		Panels: []Panel{{
			Kind:    PanelPlaceholder,
			Message: ErrorMessagePrefix + cause.Error(),
		}},
	}
}

// PieSlices splits the circle proportionally to values, starting at
// PieStartAngle and running counter-clockwise.
func PieSlices(values business.CategoryValues, colors []drawing.Color) ([]Slice, error) {
	if err := checkFinite(values); err != nil {
		return nil, err
	}
	for _, v := range values {
		if v.Value < 0 {
			return nil, errors.Wrapf(ErrNegativePieValue, "category %q has %g", v.Label, v.Value)
		}
	}
	total := values.Sum()
	if total == 0 {
		return nil, ErrZeroPieTotal
	}
	if !isFinite(total) {
		return nil, errors.Wrapf(ErrValueOutOfRange, "pie values sum to %g", total)
	}

	slices := make([]Slice, len(values))
	angle := PieStartAngle
	for i, v := range values {
		fraction := v.Value / total
		sweep := fraction * 360
		slices[i] = Slice{
			Label:        v.Label,
			Value:        v.Value,
			Fraction:     fraction,
			StartAngle:   angle,
			Sweep:        sweep,
			PercentLabel: fmt.Sprintf("%.1f%%", fraction*100),
			Color:        colorAt(colors, i),
		}
		angle += sweep
	}
	return slices, nil
}

// Bars lays out one bar per category in order.
func Bars(values business.CategoryValues, colors []drawing.Color) []Bar {
	bars := make([]Bar, len(values))
	for i, v := range values {
		bars[i] = Bar{
			Label:      v.Label,
			Value:      v.Value,
			Annotation: fmt.Sprintf("%.2f", v.Value),
			Color:      colorAt(colors, i),
		}
	}
	return bars
}

func checkFinite(values business.CategoryValues) error {
	for i, v := range values.Values() {
		if !isFinite(v) {
			return errors.Wrapf(ErrValueOutOfRange, "category %q has %g", values[i].Label, v)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

func paletteOrDefault(palette, fallback []string) []string {
	if len(palette) == 0 {
		return fallback
	}
	return palette
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
