package constants

// Client-facing error messages
const (
	InvalidAPIKeyMessage     = "Chave de API inválida"
	InvalidRequestMessage    = "Invalid request body"
	ReportFailedMessage      = "Failed to build financial report"
	APIKeyUnavailableMessage = "API key is not available"
	AmountOutOfRangeMessage  = "Ledger amounts are too large to report"
)
