package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cofipei/chart-api/internal/auth"
	"github.com/cofipei/chart-api/internal/chart"
	"github.com/cofipei/chart-api/internal/mocks"
	"github.com/cofipei/chart-api/internal/testutil"
	"github.com/cofipei/chart-api/internal/types/api/responses"
	"github.com/cofipei/chart-api/internal/types/business"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestChartHandler_GenerateChart(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(r *mocks.MockChartRenderer)
		wantStatus int
		wantImage  string
	}{
		{
			name: "applies defaults and keeps category order",
			body: `{"pizza_chart": {"Rent": 1200, "Food": 300}, "bar_chart": {"Salary": 5000}}`,
			setup: func(r *mocks.MockChartRenderer) {
				r.EXPECT().Render(chart.Input{
					Pie:        business.CategoryValues{{Label: "Rent", Value: 1200}, {Label: "Food", Value: 300}},
					Bar:        business.CategoryValues{{Label: "Salary", Value: 5000}},
					PieTitle:   "Despesas",
					BarTitle:   "Receitas",
					PiePalette: chart.ChartProfile(300).PiePalette,
					BarPalette: chart.ChartProfile(300).BarPalette,
				}).Return(&chart.Result{Image: "cG5n"})
			},
			wantStatus: http.StatusOK,
			wantImage:  "cG5n",
		},
		{
			name: "custom titles and palettes",
			body: `{"pizza_chart": {}, "bar_chart": {}, "pizza_title": "Gastos", "bar_title": "Ganhos",
				"pizza_color_palette": ["#000000"], "bar_color_palette": ["#ffffff"]}`,
			setup: func(r *mocks.MockChartRenderer) {
				r.EXPECT().Render(chart.Input{
					Pie:        business.CategoryValues{},
					Bar:        business.CategoryValues{},
					PieTitle:   "Gastos",
					BarTitle:   "Ganhos",
					PiePalette: []string{"#000000"},
					BarPalette: []string{"#ffffff"},
				}).Return(&chart.Result{Image: "cG5n"})
			},
			wantStatus: http.StatusOK,
			wantImage:  "cG5n",
		},
		{
			name: "degraded image is still a success",
			body: `{"pizza_chart": {"A": -1}, "bar_chart": {}}`,
			setup: func(r *mocks.MockChartRenderer) {
				r.EXPECT().Render(gomock.Any()).
					Return(&chart.Result{Image: "ZXJy", Degraded: true, Cause: chart.ErrNegativePieValue})
			},
			wantStatus: http.StatusOK,
			wantImage:  "ZXJy",
		},
		{
			name:       "malformed JSON",
			body:       `{"pizza_chart": `,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing pizza_chart",
			body:       `{"bar_chart": {"A": 1}}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non numeric value",
			body:       `{"pizza_chart": {"A": "x"}, "bar_chart": {}}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer := mocks.NewMockChartRendererForTest(t)
			if tt.setup != nil {
				tt.setup(renderer)
			}
			handler := NewChartHandler(renderer, nil)

			c, w := testutil.TestContext(t)
			c.Request = testutil.JSONRequest(t, http.MethodPost, "/generate-chart", tt.body)

			handler.GenerateChart(c)

			testutil.AssertStatusCode(t, w, tt.wantStatus)
			if tt.wantStatus != http.StatusOK {
				var errResp responses.ErrorResponse
				testutil.DecodeJSON(t, w, &errResp)
				assert.NotEmpty(t, errResp.Error)
				return
			}
			var resp responses.ChartResponse
			testutil.DecodeJSON(t, w, &resp)
			assert.Equal(t, tt.wantImage, resp.Image)
		})
	}
}

func TestChartHandler_GetAPIKey(t *testing.T) {
	static, err := auth.NewStaticKeyVerifier("demo-key")
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-key"), bcrypt.MinCost)
	require.NoError(t, err)
	hashed, err := auth.NewHashedKeyVerifier(string(hash))
	require.NoError(t, err)

	t.Run("static verifier exposes key", func(t *testing.T) {
		c, w := testutil.TestContext(t)
		c.Request = httptest.NewRequest(http.MethodGet, "/get-api-key", nil)

		NewChartHandler(nil, static).GetAPIKey(c)

		testutil.AssertStatusCode(t, w, http.StatusOK)
		var resp responses.APIKeyResponse
		testutil.DecodeJSON(t, w, &resp)
		assert.Equal(t, "demo-key", resp.APIKey)
	})

	t.Run("hashed verifier has nothing to expose", func(t *testing.T) {
		c, w := testutil.TestContext(t)
		c.Request = httptest.NewRequest(http.MethodGet, "/get-api-key", nil)

		NewChartHandler(nil, hashed).GetAPIKey(c)

		testutil.AssertStatusCode(t, w, http.StatusNotFound)
	})
}

func TestChartHandler_GenerateChart_RealRenderer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewChartHandler(chart.NewRenderer(chart.ChartProfile(20), nil), nil)

	for _, body := range []string{
		`{"pizza_chart": {"A": 1, "B": 2}, "bar_chart": {"C": 3}}`,
		`{"pizza_chart": {"A": 1}, "bar_chart": {}, "pizza_color_palette": ["nope"]}`,
	} {
		c, w := testutil.TestContext(t)
		c.Request = testutil.JSONRequest(t, http.MethodPost, "/generate-chart", body)

		handler.GenerateChart(c)

		testutil.AssertStatusCode(t, w, http.StatusOK)
		var resp responses.ChartResponse
		testutil.DecodeJSON(t, w, &resp)
		assert.NotEmpty(t, resp.Image)
	}
}
