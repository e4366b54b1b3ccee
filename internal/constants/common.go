package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Request headers
	APIKeyHeader        = "X-API-KEY"
	CorrelationIDHeader = "X-Correlation-ID"

	// Ledger entry types
	EntryTypeExpense = "Despesa"
	EntryTypeRevenue = "Receita"

	// Service name reported in structured logs
	ServiceName = "cofipei-chart-api"
)
