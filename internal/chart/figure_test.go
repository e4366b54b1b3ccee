package chart

import (
	"math"
	"testing"

	"github.com/cofipei/chart-api/internal/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(pairs ...interface{}) business.CategoryValues {
	out := business.CategoryValues{}
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, business.CategoryValue{Label: pairs[i].(string), Value: pairs[i+1].(float64)})
	}
	return out
}

func TestPieSlices(t *testing.T) {
	colors, err := ParsePalette([]string{"#ff0000", "#00ff00"})
	require.NoError(t, err)

	slices, err := PieSlices(values("Food", 50.0, "Rent", 30.0, "Fun", 20.0), colors)
	require.NoError(t, err)
	require.Len(t, slices, 3)

	assert.Equal(t, "50.0%", slices[0].PercentLabel)
	assert.Equal(t, "30.0%", slices[1].PercentLabel)
	assert.Equal(t, "20.0%", slices[2].PercentLabel)

	assert.Equal(t, PieStartAngle, slices[0].StartAngle)
	assert.InDelta(t, 180.0, slices[0].Sweep, 1e-9)
	assert.InDelta(t, slices[0].StartAngle+slices[0].Sweep, slices[1].StartAngle, 1e-9)

	var percent, sweep float64
	for _, s := range slices {
		percent += s.Fraction * 100
		sweep += s.Sweep
	}
	assert.InDelta(t, 100.0, percent, 1e-9)
	assert.InDelta(t, 360.0, sweep, 1e-9)

	assert.Equal(t, colors[0], slices[2].Color, "short palettes cycle")
}

func TestPieSlices_Invalid(t *testing.T) {
	_, err := PieSlices(values("A", 10.0, "B", -1.0), nil)
	assert.ErrorIs(t, err, ErrNegativePieValue)

	_, err = PieSlices(values("A", 0.0, "B", 0.0), nil)
	assert.ErrorIs(t, err, ErrZeroPieTotal)
}

func TestBars(t *testing.T) {
	colors, err := ParsePalette([]string{"#003f5c"})
	require.NoError(t, err)

	bars := Bars(values("Salary", 1000.0, "Bonus", 250.5), colors)
	require.Len(t, bars, 2)
	assert.Equal(t, "Salary", bars[0].Label)
	assert.Equal(t, "1000.00", bars[0].Annotation)
	assert.Equal(t, "250.50", bars[1].Annotation)
	assert.Equal(t, colors[0], bars[1].Color)
}

func TestCompose(t *testing.T) {
	profile := ChartProfile(100)

	tests := []struct {
		name      string
		input     Input
		wantKinds []PanelKind
		wantErr   error
	}{
		{
			name:      "both panels",
			input:     Input{Pie: values("A", 10.0, "B", 20.0), Bar: values("C", 5.0)},
			wantKinds: []PanelKind{PanelPie, PanelBar},
		},
		{
			name:      "empty pie",
			input:     Input{Pie: business.CategoryValues{}, Bar: values("C", 5.0)},
			wantKinds: []PanelKind{PanelPlaceholder, PanelBar},
		},
		{
			name:      "nothing at all",
			input:     Input{},
			wantKinds: []PanelKind{PanelPlaceholder, PanelPlaceholder},
		},
		{
			name:    "bad pie color",
			input:   Input{Pie: values("A", 1.0), PiePalette: []string{"not-a-color"}},
			wantErr: ErrInvalidColor,
		},
		{
			name:    "bad bar color",
			input:   Input{Bar: values("A", 1.0), BarPalette: []string{"#12"}},
			wantErr: ErrInvalidColor,
		},
		{
			name:    "zero pie",
			input:   Input{Pie: values("A", 0.0)},
			wantErr: ErrZeroPieTotal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fig, err := Compose(tt.input, profile)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, fig.Panels, len(tt.wantKinds))
			for i, kind := range tt.wantKinds {
				assert.Equal(t, kind, fig.Panels[i].Kind, "panel %d", i)
			}
		})
	}
}

func TestCompose_TitlesAndPlaceholders(t *testing.T) {
	fig, err := Compose(Input{PieTitle: "Gastos"}, ChartProfile(100))
	require.NoError(t, err)

	assert.Equal(t, "Gastos", fig.Panels[0].Title)
	assert.Equal(t, "Sem Dados", fig.Panels[0].Message)
	assert.Equal(t, "Receitas", fig.Panels[1].Title)
	assert.Empty(t, fig.Title)

	fig, err = Compose(Input{}, ReportProfile(100))
	require.NoError(t, err)
	assert.Equal(t, "Relatório Financeiro - COFIPEI", fig.Title)
	assert.Equal(t, "Sem Despesas", fig.Panels[0].Message)
	assert.Equal(t, "Sem Receitas", fig.Panels[1].Message)
}

func TestCompose_BarLabels(t *testing.T) {
	fig, err := Compose(Input{Bar: values("A", 1.0)}, ReportProfile(100))
	require.NoError(t, err)
	assert.Equal(t, "Categorias", fig.Panels[1].XLabel)
	assert.Equal(t, "Valor (R$)", fig.Panels[1].YLabel)
}

func TestErrorFigure(t *testing.T) {
	fig := ErrorFigure(ChartProfile(100), ErrZeroPieTotal)
	require.Len(t, fig.Panels, 1)
	assert.Equal(t, PanelPlaceholder, fig.Panels[0].Kind)
	assert.Equal(t, ErrorMessagePrefix+ErrZeroPieTotal.Error(), fig.Panels[0].Message)
}

func TestSliceMidAngle(t *testing.T) {
	s := Slice{StartAngle: 90, Sweep: 90}
	assert.Equal(t, 135.0, s.MidAngle())
	assert.InDelta(t, -1, math.Cos(degreesToRadians(s.MidAngle()+45)), 1e-9)
}
