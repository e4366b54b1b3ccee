package handlers

import (
	"net/http"

	"github.com/cofipei/chart-api/internal/constants"
	"github.com/cofipei/chart-api/internal/interfaces"
	"github.com/cofipei/chart-api/internal/report"
	"github.com/cofipei/chart-api/internal/types/api/requests"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// ReportHandler serves the financial report endpoint
type ReportHandler struct {
	service interfaces.ReportService
}

// NewReportHandler creates a new ReportHandler instance
func NewReportHandler(service interfaces.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// GenerateReport godoc
// @Summary      Financial report
// @Description  Filters ledger entries by an inclusive date range, sums expenses and revenues per category and renders them as pie and bar charts.
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        request  body      requests.FinancialReportRequest  true  "Ledger and period"
// @Success      200      {object}  responses.FinancialReportResponse
// @Failure      400      {object}  responses.ErrorResponse  "Malformed body or amounts too large to sum"
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /relatorio-financeiro [post]
func (h *ReportHandler) GenerateReport(c *gin.Context) {
	var req requests.FinancialReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, constants.InvalidRequestMessage, err)
		return
	}

	resp, err := h.service.BuildReport(c.Request.Context(), &req)
	if errors.Is(err, report.ErrAmountOutOfRange) {
		sendError(c, http.StatusBadRequest, constants.AmountOutOfRangeMessage, err)
		return
	}
	if err != nil {
		sendError(c, http.StatusInternalServerError, constants.ReportFailedMessage, err)
		return
	}

	sendSuccess(c, http.StatusOK, resp)
}
