package chart

import (
	"encoding/base64"

	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	gochart "github.com/wcharczuk/go-chart/v2"
	"go.uber.org/zap"
)

// FontLoader supplies the font used for every label.
type FontLoader func() (*truetype.Font, error)

// Result is the outcome of one Render call. Image is always set.
type Result struct {
	Image    string
	PNG      []byte
	Degraded bool
	Cause    error
}

// Renderer turns category mappings into a two-panel PNG. Each call draws on
// its own canvas so a Renderer can be shared between goroutines.
type Renderer struct {
	profile  Profile
	logger   *zap.Logger
	loadFont FontLoader
}

// Option customises a Renderer.
type Option func(*Renderer)

// WithFontLoader replaces the bundled go-chart font.
func WithFontLoader(loader FontLoader) Option {
	return func(r *Renderer) {
		r.loadFont = loader
	}
}

// NewRenderer creates a renderer for the given profile.
func NewRenderer(profile Profile, logger *zap.Logger, opts ...Option) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Renderer{
		profile:  profile,
		logger:   logger.With(zap.String("chart_profile", profile.Name)),
		loadFont: gochart.GetDefaultFont,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws in and returns it base64 encoded. It never fails: any error is
// drawn into an error placeholder figure and reported through Result.Cause.
func (r *Renderer) Render(in Input) *Result {
	data, err := r.draw(in)
	if err == nil {
		return &Result{Image: base64.StdEncoding.EncodeToString(data), PNG: data}
	}

	r.logger.Warn("chart rendering failed, drawing error placeholder",
		zap.Error(err),
		zap.Int("pie_categories", len(in.Pie)),
		zap.Int("bar_categories", len(in.Bar)),
	)

	data, fallbackErr := r.rasterize(ErrorFigure(r.profile, err))
	if fallbackErr != nil {
		r.logger.Error("error placeholder could not be drawn, returning blank image", zap.Error(fallbackErr))
		data = blankPNG(r.profile.PixelSize())
	}
	return &Result{
		Image:    base64.StdEncoding.EncodeToString(data),
		PNG:      data,
		Degraded: true,
		Cause:    err,
	}
}

func (r *Renderer) draw(in Input) ([]byte, error) {
	fig, err := Compose(in, r.profile)
	if err != nil {
		return nil, err
	}
	return r.rasterize(fig)
}

func (r *Renderer) rasterize(fig *Figure) ([]byte, error) {
	if r.loadFont == nil {
		return nil, errors.New("no font loader configured")
	}
	font, err := r.loadFont()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load font")
	}
	return rasterize(fig, font)
}
