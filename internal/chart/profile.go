package chart

// Profile fixes the per-endpoint look of a figure. Titles and palettes that a
// request leaves out come from here.
type Profile struct {
	Name string

	WidthInches  float64
	HeightInches float64
	DPI          float64

	// Title is drawn above both panels when set.
	Title string

	PieTitle       string
	BarTitle       string
	PiePlaceholder string
	BarPlaceholder string
	XLabel         string
	YLabel         string

	PiePalette []string
	BarPalette []string
}

// Figure size shared by every profile, in inches.
const (
	FigureWidthInches  = 16
	FigureHeightInches = 8
)

// ErrorMessagePrefix starts the text of the placeholder drawn when rendering fails.
const ErrorMessagePrefix = "Erro na geração do gráfico: "

// ChartProfile is used by POST /generate-chart.
func ChartProfile(dpi float64) Profile {
	return Profile{
		Name:           "chart",
		WidthInches:    FigureWidthInches,
		HeightInches:   FigureHeightInches,
		DPI:            dpi,
		PieTitle:       "Despesas",
		BarTitle:       "Receitas",
		PiePlaceholder: "Sem Dados",
		BarPlaceholder: "Sem Dados",
		XLabel:         "Categorias",
		YLabel:         "Valores",
		PiePalette: []string{
			"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0", "#9966FF",
			"#FF9F40", "#FF6384", "#C9CBCF",
		},
		BarPalette: []string{
			"#003f5c", "#2f4b7c", "#665191", "#a05195",
			"#d45087", "#ff6e54", "#ffa600",
		},
	}
}

// ReportProfile is used by POST /relatorio-financeiro.
func ReportProfile(dpi float64) Profile {
	tab10 := []string{
		"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
		"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
	}
	return Profile{
		Name:           "report",
		WidthInches:    FigureWidthInches,
		HeightInches:   FigureHeightInches,
		DPI:            dpi,
		Title:          "Relatório Financeiro - COFIPEI",
		PieTitle:       "Distribuição de Despesas por Categoria",
		BarTitle:       "Receitas por Categoria",
		PiePlaceholder: "Sem Despesas",
		BarPlaceholder: "Sem Receitas",
		XLabel:         "Categorias",
		YLabel:         "Valor (R$)",
		PiePalette:     tab10,
		BarPalette:     []string{tab10[0]},
	}
}

// PixelSize is the raster size of a figure drawn with this profile.
func (p Profile) PixelSize() (width, height int) {
	return int(p.WidthInches * p.DPI), int(p.HeightInches * p.DPI)
}
