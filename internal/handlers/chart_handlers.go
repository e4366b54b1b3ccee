package handlers

import (
	"net/http"

	"github.com/cofipei/chart-api/internal/chart"
	"github.com/cofipei/chart-api/internal/constants"
	"github.com/cofipei/chart-api/internal/helpers"
	"github.com/cofipei/chart-api/internal/interfaces"
	"github.com/cofipei/chart-api/internal/middleware"
	"github.com/cofipei/chart-api/internal/types/api/requests"
	"github.com/cofipei/chart-api/internal/types/api/responses"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// secretHolder is implemented by verifiers that know the plain key
type secretHolder interface {
	Secret() string
}

// ChartHandler serves the chart generation endpoints
type ChartHandler struct {
	renderer interfaces.ChartRenderer
	verifier interfaces.APIKeyVerifier
}

// NewChartHandler creates a new ChartHandler instance
func NewChartHandler(renderer interfaces.ChartRenderer, verifier interfaces.APIKeyVerifier) *ChartHandler {
	return &ChartHandler{renderer: renderer, verifier: verifier}
}

// GenerateChart godoc
// @Summary      Generate pie and bar chart
// @Description  Renders a pie chart and a bar chart side by side and returns the PNG base64 encoded. Rendering problems produce an error image, never an error status.
// @Tags         charts
// @Accept       json
// @Produce      json
// @Param        request  body      requests.GenerateChartRequest  true  "Chart data"
// @Success      200      {object}  responses.ChartResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      401      {object}  responses.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /generate-chart [post]
func (h *ChartHandler) GenerateChart(c *gin.Context) {
	var req requests.GenerateChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, constants.InvalidRequestMessage, err)
		return
	}
	req.ApplyDefaults()

	result := h.renderer.Render(chart.Input{
		Pie:        req.PieChart,
		Bar:        req.BarChart,
		PieTitle:   req.PieTitle,
		BarTitle:   req.BarTitle,
		PiePalette: req.PiePalette,
		BarPalette: req.BarPalette,
	})
	if result.Degraded {
		middleware.LogWithCorrelationID(c.Request.Context()).Warn("Returning degraded chart",
			zap.Error(result.Cause),
		)
	}

	sendSuccess(c, http.StatusOK, responses.ChartResponse{Image: result.Image})
}

// GetAPIKey godoc
// @Summary      Get the API key
// @Description  Demo only. Returns the configured API key. Not registered in production.
// @Tags         charts
// @Produce      json
// @Success      200  {object}  responses.APIKeyResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /get-api-key [get]
func (h *ChartHandler) GetAPIKey(c *gin.Context) {
	holder, ok := h.verifier.(secretHolder)
	if !ok || holder.Secret() == "" {
		sendError(c, http.StatusNotFound, constants.APIKeyUnavailableMessage,
			errors.New("verifier does not expose a plain key"))
		return
	}
	middleware.LogWithCorrelationID(c.Request.Context()).Warn("Handing out API key",
		zap.String("key", helpers.MaskAPIKey(holder.Secret())),
		zap.String("client_ip", c.ClientIP()),
	)
	sendSuccess(c, http.StatusOK, responses.APIKeyResponse{APIKey: holder.Secret()})
}
