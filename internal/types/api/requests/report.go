package requests

import "github.com/cofipei/chart-api/internal/types/business"

// LedgerEntry is one financial transaction in a report request
type LedgerEntry struct {
	Date     *business.Date `json:"data" binding:"required" swaggertype:"string" format:"date"`
	Category string         `json:"categoria" binding:"required"`
	Type     string         `json:"tipo" binding:"required,oneof=Despesa Receita" enums:"Despesa,Receita"`
	Amount   *float64       `json:"valor" binding:"required"`
}

// FinancialReportRequest represents the request body for POST /relatorio-financeiro
type FinancialReportRequest struct {
	Entries   []LedgerEntry  `json:"lancamentos" binding:"required,dive"`
	StartDate *business.Date `json:"data_inicial" binding:"required" swaggertype:"string" format:"date"`
	EndDate   *business.Date `json:"data_final" binding:"required" swaggertype:"string" format:"date"`
}
