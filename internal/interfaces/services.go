package interfaces

import (
	"context"

	"github.com/cofipei/chart-api/internal/chart"
	"github.com/cofipei/chart-api/internal/types/api/requests"
	"github.com/cofipei/chart-api/internal/types/api/responses"
)

// ChartRenderer draws the two-panel pie/bar figure
type ChartRenderer interface {
	Render(in chart.Input) *chart.Result
}

// ReportService builds financial reports from ledger entries
type ReportService interface {
	BuildReport(ctx context.Context, req *requests.FinancialReportRequest) (*responses.FinancialReportResponse, error)
}

// APIKeyVerifier decides whether a presented credential grants access
type APIKeyVerifier interface {
	Verify(credential string) bool
}
