package requests

import (
	"github.com/cofipei/chart-api/internal/chart"
	"github.com/cofipei/chart-api/internal/types/business"
)

// GenerateChartRequest represents the request body for POST /generate-chart
type GenerateChartRequest struct {
	PieChart   business.CategoryValues `json:"pizza_chart" binding:"required" swaggertype:"object,number"`
	BarChart   business.CategoryValues `json:"bar_chart" binding:"required" swaggertype:"object,number"`
	PieTitle   string                  `json:"pizza_title,omitempty"`
	BarTitle   string                  `json:"bar_title,omitempty"`
	PiePalette []string                `json:"pizza_color_palette,omitempty"`
	BarPalette []string                `json:"bar_color_palette,omitempty"`
}

// ApplyDefaults fills titles and palettes that were left out from the chart
// profile.
func (r *GenerateChartRequest) ApplyDefaults() {
	defaults := chart.ChartProfile(0)
	if r.PieTitle == "" {
		r.PieTitle = defaults.PieTitle
	}
	if r.BarTitle == "" {
		r.BarTitle = defaults.BarTitle
	}
	if len(r.PiePalette) == 0 {
		r.PiePalette = defaults.PiePalette
	}
	if len(r.BarPalette) == 0 {
		r.BarPalette = defaults.BarPalette
	}
}
