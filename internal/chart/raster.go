package chart

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"strconv"

	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Font sizes in points, scaled by the figure DPI.
const (
	figureTitleSize = 16.0
	panelTitleSize  = 12.0
	textSize        = 10.0
)

const (
	pieRadiusRatio     = 0.72
	pieLabelDistance   = 1.1
	piePercentDistance = 0.85
	barWidthRatio      = 0.8
	maxYTicks          = 8
)

var (
	backgroundColor = drawing.Color{R: 255, G: 255, B: 255, A: 255}
	textColor       = drawing.Color{R: 0, G: 0, B: 0, A: 255}
	axisColor       = drawing.Color{R: 0, G: 0, B: 0, A: 255}
)

type hAlign int

const (
	alignLeft hAlign = iota
	alignCenter
	alignRight
)

type vAlign int

const (
	alignBaseline vAlign = iota
	alignTop
	alignMiddle
)

// canvas wraps one go-chart raster renderer. It lives for a single figure.
type canvas struct {
	r    gochart.Renderer
	font *truetype.Font
	dpi  float64
}

// rasterize draws fig into a fresh PNG. Panics raised by the drawing backend
// are returned as errors.
func rasterize(fig *Figure, font *truetype.Font) (data []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			data = nil
			err = errors.Errorf("chart rasterization panicked: %v", rec)
		}
	}()

	width, height := int(fig.WidthInches*fig.DPI), int(fig.HeightInches*fig.DPI)
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if font == nil {
		return nil, errors.New("no font available")
	}

	r, err := gochart.PNG(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create raster renderer")
	}
	r.SetDPI(fig.DPI)

	c := &canvas{r: r, font: font, dpi: fig.DPI}
	c.fillRect(gochart.Box{Top: 0, Left: 0, Right: width, Bottom: height}, backgroundColor)

	content := gochart.Box{Top: 0, Left: 0, Right: width, Bottom: height}
	if fig.Title != "" {
		c.text(fig.Title, width/2, c.px(0.15), figureTitleSize, alignCenter, alignTop)
		content.Top = c.px(0.6)
	}

	if n := len(fig.Panels); n > 0 {
		cellWidth := content.Width() / n
		for i, panel := range fig.Panels {
			cell := gochart.Box{
				Top:    content.Top,
				Left:   content.Left + i*cellWidth,
				Right:  content.Left + (i+1)*cellWidth,
				Bottom: content.Bottom,
			}
			c.drawPanel(panel, cell)
		}
	}

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to encode png")
	}
	return buf.Bytes(), nil
}

// blankPNG is the last resort image when even the error figure cannot be drawn.
func blankPNG(width, height int) []byte {
	if width <= 0 || height <= 0 {
		width, height = 1, 1
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)

	var buf bytes.Buffer
	// Encoding an in-memory RGBA into a bytes.Buffer does not fail.
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

func (c *canvas) drawPanel(p Panel, cell gochart.Box) {
	body := cell
	if p.Title != "" {
		c.text(p.Title, cell.Left+cell.Width()/2, cell.Top+c.px(0.15), panelTitleSize, alignCenter, alignTop)
		body.Top = cell.Top + c.px(0.55)
	}

	switch p.Kind {
	case PanelPie:
		c.drawPie(p.Slices, body)
	case PanelBar:
		c.drawBars(p, body)
	default:
		cx, cy := body.Center()
		c.text(p.Message, cx, cy, textSize, alignCenter, alignMiddle)
	}
}

func (c *canvas) drawPie(slices []Slice, body gochart.Box) {
	cx, cy := body.Center()
	radius := float64(minInt(body.Width(), body.Height())) / 2 * pieRadiusRatio

	c.r.SetStrokeColor(backgroundColor)
	c.r.SetStrokeWidth(1)
	for _, s := range slices {
		if s.Sweep <= 0 {
			continue
		}
		c.r.SetFillColor(s.Color)
		if s.Sweep >= 359.999 {
			c.r.Circle(radius, cx, cy)
			c.r.FillStroke()
			continue
		}
		// Counter-clockwise wedge [a, a+sweep] is the clockwise screen arc
		// starting at -(a+sweep).
		c.r.MoveTo(cx, cy)
		c.r.ArcTo(cx, cy, radius, radius, -degreesToRadians(s.StartAngle+s.Sweep), degreesToRadians(s.Sweep))
		c.r.LineTo(cx, cy)
		c.r.Close()
		c.r.FillStroke()
	}

	for _, s := range slices {
		theta := degreesToRadians(s.MidAngle())
		cos, sin := math.Cos(theta), math.Sin(theta)

		lx := cx + int(math.Round(pieLabelDistance*radius*cos))
		ly := cy - int(math.Round(pieLabelDistance*radius*sin))
		align := alignLeft
		if cos < 0 {
			align = alignRight
		}
		c.text(s.Label, lx, ly, textSize, align, alignMiddle)

		px := cx + int(math.Round(piePercentDistance*radius*cos))
		py := cy - int(math.Round(piePercentDistance*radius*sin))
		c.text(s.PercentLabel, px, py, textSize, alignCenter, alignMiddle)
	}
}

func (c *canvas) drawBars(p Panel, body gochart.Box) {
	plot := gochart.Box{
		Top:    body.Top + c.px(0.25),
		Left:   body.Left + c.px(0.9),
		Right:  body.Right - c.px(0.25),
		Bottom: body.Bottom - c.px(1.3),
	}
	if plot.Width() <= 0 || plot.Height() <= 0 || len(p.Bars) == 0 {
		return
	}

	lo, hi := valueRange(p.Bars)
	toY := func(v float64) int {
		return plot.Bottom - int(math.Round((v-lo)/(hi-lo)*float64(plot.Height())))
	}

	slot := float64(plot.Width()) / float64(len(p.Bars))
	for i, b := range p.Bars {
		center := float64(plot.Left) + (float64(i)+0.5)*slot
		half := slot * barWidthRatio / 2
		bar := gochart.Box{
			Left:   int(math.Round(center - half)),
			Right:  int(math.Round(center + half)),
			Top:    toY(math.Max(b.Value, 0)),
			Bottom: toY(math.Min(b.Value, 0)),
		}
		c.fillRect(bar, b.Color)
		c.text(b.Annotation, int(math.Round(center)), toY(b.Value)-c.px(0.03), textSize, alignCenter, alignBaseline)
	}

	c.r.SetStrokeColor(axisColor)
	c.r.SetStrokeWidth(1)
	c.line(plot.Left, plot.Top, plot.Left, plot.Bottom)
	c.line(plot.Left, plot.Bottom, plot.Right, plot.Bottom)
	c.line(plot.Right, plot.Top, plot.Right, plot.Bottom)
	c.line(plot.Left, plot.Top, plot.Right, plot.Top)
	if lo < 0 && hi > 0 {
		c.line(plot.Left, toY(0), plot.Right, toY(0))
	}

	ticks, decimals := niceTicks(lo, hi, maxYTicks)
	tickLen := c.px(0.05)
	for _, t := range ticks {
		y := toY(t)
		c.line(plot.Left-tickLen, y, plot.Left, y)
		c.text(formatTick(t, decimals), plot.Left-tickLen-c.px(0.03), y, textSize, alignRight, alignMiddle)
	}

	for i, b := range p.Bars {
		center := plot.Left + int(math.Round((float64(i)+0.5)*slot))
		c.line(center, plot.Bottom, center, plot.Bottom+tickLen)
		c.rotatedLabel(b.Label, center, plot.Bottom+tickLen+c.px(0.03))
	}

	if p.XLabel != "" {
		c.text(p.XLabel, plot.Left+plot.Width()/2, body.Bottom-c.px(0.1), textSize, alignCenter, alignBaseline)
	}
	if p.YLabel != "" {
		c.verticalLabel(p.YLabel, body.Left+c.px(0.2), plot.Top+plot.Height()/2)
	}
}

func (c *canvas) px(inches float64) int {
	return int(math.Round(inches * c.dpi))
}

func (c *canvas) fillRect(b gochart.Box, fill drawing.Color) {
	c.r.SetFillColor(fill)
	c.r.MoveTo(b.Left, b.Top)
	c.r.LineTo(b.Right, b.Top)
	c.r.LineTo(b.Right, b.Bottom)
	c.r.LineTo(b.Left, b.Bottom)
	c.r.Close()
	c.r.Fill()
}

func (c *canvas) line(x1, y1, x2, y2 int) {
	c.r.MoveTo(x1, y1)
	c.r.LineTo(x2, y2)
	c.r.Stroke()
}

func (c *canvas) setText(size float64) {
	c.r.SetFont(c.font)
	c.r.SetFontSize(size)
	c.r.SetFontColor(textColor)
}

// text draws body with y as baseline, top or vertical middle.
func (c *canvas) text(body string, x, y int, size float64, h hAlign, v vAlign) {
	if body == "" {
		return
	}
	c.setText(size)
	box := c.r.MeasureText(body)

	switch h {
	case alignCenter:
		x -= box.Width() / 2
	case alignRight:
		x -= box.Width()
	}
	switch v {
	case alignTop:
		y += box.Height()
	case alignMiddle:
		y += box.Height() / 2
	}
	c.r.Text(body, x, y)
}

// rotatedLabel draws body rotated 45 degrees so that it ends at (x, y).
func (c *canvas) rotatedLabel(body string, x, y int) {
	if body == "" {
		return
	}
	c.setText(textSize)
	box := c.r.MeasureText(body)

	diag := math.Sqrt2 / 2
	startX := x - int(math.Round(float64(box.Width())*diag))
	startY := y + int(math.Round(float64(box.Width()+box.Height())*diag))

	c.r.SetTextRotation(-math.Pi / 4)
	c.r.Text(body, startX, startY)
	c.r.ClearTextRotation()
}

// verticalLabel draws body bottom-to-top centered on (x, centerY).
func (c *canvas) verticalLabel(body string, x, centerY int) {
	c.setText(textSize)
	box := c.r.MeasureText(body)

	c.r.SetTextRotation(-math.Pi / 2)
	c.r.Text(body, x+box.Height(), centerY+box.Width()/2)
	c.r.ClearTextRotation()
}

// valueRange spans zero and every bar, padded by 5% like matplotlib's margins.
func valueRange(bars []Bar) (lo, hi float64) {
	for _, b := range bars {
		lo = math.Min(lo, b.Value)
		hi = math.Max(hi, b.Value)
	}
	if hi == lo {
		hi = lo + 1
	}
	pad := (hi - lo) * 0.05
	if hi > 0 {
		hi += pad
	}
	if lo < 0 {
		lo -= pad
	}
	return lo, hi
}

// niceTicks returns tick values on a 1-2-5 step inside [lo, hi] and the
// number of decimals needed to print them.
func niceTicks(lo, hi float64, maxTicks int) ([]float64, int) {
	span := hi - lo
	if !(span > 0) || math.IsInf(span, 0) || maxTicks < 1 {
		return nil, 0
	}

	rough := span / float64(maxTicks)
	magnitude := math.Pow(10, math.Floor(math.Log10(rough)))
	var step float64
	switch ratio := rough / magnitude; {
	case ratio <= 1:
		step = magnitude
	case ratio <= 2:
		step = 2 * magnitude
	case ratio <= 5:
		step = 5 * magnitude
	default:
		step = 10 * magnitude
	}

	decimals := 0
	if step < 1 {
		decimals = int(math.Ceil(-math.Log10(step)))
	}

	// A 1-2-5 step never yields more than maxTicks+1 ticks in the span.
	first := math.Ceil(lo/step - 1e-9)
	var ticks []float64
	for i := 0; i <= maxTicks+1; i++ {
		v := (first + float64(i)) * step
		if v > hi+step*1e-9 {
			break
		}
		ticks = append(ticks, v)
	}
	return ticks, decimals
}

func formatTick(v float64, decimals int) string {
	if math.Abs(v) < 1e-12 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
