package report

import (
	"context"
	"math"

	"github.com/cofipei/chart-api/internal/chart"
	"github.com/cofipei/chart-api/internal/interfaces"
	"github.com/cofipei/chart-api/internal/types/api/requests"
	"github.com/cofipei/chart-api/internal/types/api/responses"
	"github.com/cofipei/chart-api/internal/types/business"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrAmountOutOfRange is returned when a sum does not fit in a float64
var ErrAmountOutOfRange = errors.New("ledger amounts exceed the representable range")

// Service aggregates ledgers and renders the report figure
type Service struct {
	renderer interfaces.ChartRenderer
	logger   *zap.Logger
}

// NewService creates a report service drawing with renderer, which should use
// chart.ReportProfile
func NewService(renderer interfaces.ChartRenderer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{renderer: renderer, logger: logger}
}

// BuildReport aggregates req over its date range and renders the result.
// Rendering problems never fail the report; they produce a degraded image.
func (s *Service) BuildReport(ctx context.Context, req *requests.FinancialReportRequest) (*responses.FinancialReportResponse, error) {
	if req == nil || req.StartDate == nil || req.EndDate == nil {
		return nil, errors.New("report request requires data_inicial and data_final")
	}

	summary := Aggregate(req.Entries, *req.StartDate, *req.EndDate)
	s.logger.Debug("aggregated ledger",
		zap.Int("entries", len(req.Entries)),
		zap.String("start", req.StartDate.String()),
		zap.String("end", req.EndDate.String()),
		zap.Strings("expense_categories", summary.Expenses.Labels()),
		zap.Strings("revenue_categories", summary.Revenues.Labels()),
	)

	totalExpenses := summary.TotalExpenses.InexactFloat64()
	totalRevenues := summary.TotalRevenues.InexactFloat64()
	if err := checkFinite("total_despesas", totalExpenses, summary.Expenses); err != nil {
		return nil, err
	}
	if err := checkFinite("total_receitas", totalRevenues, summary.Revenues); err != nil {
		return nil, err
	}

	result := s.renderer.Render(chart.Input{
		Pie: summary.Expenses,
		Bar: summary.Revenues,
	})
	if result.Degraded {
		s.logger.Warn("report chart degraded", zap.Error(result.Cause))
	}

	return &responses.FinancialReportResponse{
		Period: responses.ReportPeriod{
			StartDate: *req.StartDate,
			EndDate:   *req.EndDate,
		},
		TotalExpenses: totalExpenses,
		TotalRevenues: totalRevenues,
		Image:         result.Image,
	}, nil
}

func checkFinite(field string, total float64, values business.CategoryValues) error {
	if math.IsInf(total, 0) {
		return errors.Wrapf(ErrAmountOutOfRange, "%s overflows", field)
	}
	for _, v := range values {
		if math.IsInf(v.Value, 0) {
			return errors.Wrapf(ErrAmountOutOfRange, "category %q overflows", v.Label)
		}
	}
	return nil
}
