package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockChartRendererForTest creates a new mock ChartRenderer for testing
func NewMockChartRendererForTest(t *testing.T) *MockChartRenderer {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockChartRenderer(ctrl)
}

// NewMockReportServiceForTest creates a new mock ReportService for testing
func NewMockReportServiceForTest(t *testing.T) *MockReportService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockReportService(ctrl)
}

// NewMockAPIKeyVerifierForTest creates a new mock APIKeyVerifier for testing
func NewMockAPIKeyVerifierForTest(t *testing.T) *MockAPIKeyVerifier {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockAPIKeyVerifier(ctrl)
}
