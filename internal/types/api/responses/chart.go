package responses

// ChartResponse carries the rendered chart as a base64 encoded PNG
type ChartResponse struct {
	Image string `json:"image"`
}

// APIKeyResponse is returned by the demo key endpoint
type APIKeyResponse struct {
	APIKey string `json:"api_key"`
}
