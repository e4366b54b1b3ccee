package responses

import "github.com/cofipei/chart-api/internal/types/business"

// ReportPeriod is the resolved, inclusive date range of a report
type ReportPeriod struct {
	StartDate business.Date `json:"data_inicial" swaggertype:"string" format:"date"`
	EndDate   business.Date `json:"data_final" swaggertype:"string" format:"date"`
}

// FinancialReportResponse is returned by POST /relatorio-financeiro
type FinancialReportResponse struct {
	Period        ReportPeriod `json:"periodo"`
	TotalExpenses float64      `json:"total_despesas"`
	TotalRevenues float64      `json:"total_receitas"`
	Image         string       `json:"imagem"`
}
