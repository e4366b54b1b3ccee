package handlers

import (
	"net/http"
	"testing"

	"github.com/cofipei/chart-api/internal/chart"
	"github.com/cofipei/chart-api/internal/mocks"
	"github.com/cofipei/chart-api/internal/report"
	"github.com/cofipei/chart-api/internal/testutil"
	"github.com/cofipei/chart-api/internal/types/api/requests"
	"github.com/cofipei/chart-api/internal/types/api/responses"
	"github.com/cofipei/chart-api/internal/types/business"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const validReportBody = `{
	"lancamentos": [
		{"data": "2024-01-05", "categoria": "Food", "tipo": "Despesa", "valor": 50},
		{"data": "2024-01-06", "categoria": "Food", "tipo": "Despesa", "valor": 30},
		{"data": "2024-01-07", "categoria": "Salary", "tipo": "Receita", "valor": 1000}
	],
	"data_inicial": "2024-01-01",
	"data_final": "2024-01-31"
}`

func TestReportHandler_GenerateReport(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(s *mocks.MockReportService)
		wantStatus int
	}{
		{
			name: "success",
			body: validReportBody,
			setup: func(s *mocks.MockReportService) {
				s.EXPECT().
					BuildReport(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, req *requests.FinancialReportRequest) (*responses.FinancialReportResponse, error) {
						require.Len(t, req.Entries, 3)
						assert.Equal(t, "Food", req.Entries[0].Category)
						assert.Equal(t, "2024-01-31", req.EndDate.String())
						return &responses.FinancialReportResponse{
							Period: responses.ReportPeriod{
								StartDate: business.NewDate(2024, 1, 1),
								EndDate:   business.NewDate(2024, 1, 31),
							},
							TotalExpenses: 80,
							TotalRevenues: 1000,
							Image:         "cG5n",
						}, nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "service failure",
			body: validReportBody,
			setup: func(s *mocks.MockReportService) {
				s.EXPECT().BuildReport(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "unknown tipo",
			body:       `{"lancamentos": [{"data": "2024-01-05", "categoria": "X", "tipo": "Transfer", "valor": 1}], "data_inicial": "2024-01-01", "data_final": "2024-01-31"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad date",
			body:       `{"lancamentos": [], "data_inicial": "01/01/2024", "data_final": "2024-01-31"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing period",
			body:       `{"lancamentos": []}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing lancamentos",
			body:       `{"data_inicial": "2024-01-01", "data_final": "2024-01-31"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "entry without valor",
			body:       `{"lancamentos": [{"data": "2024-01-05", "categoria": "X", "tipo": "Despesa"}], "data_inicial": "2024-01-01", "data_final": "2024-01-31"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "zero valor is accepted",
			body: `{"lancamentos": [{"data": "2024-01-05", "categoria": "X", "tipo": "Despesa", "valor": 0}], "data_inicial": "2024-01-01", "data_final": "2024-01-31"}`,
			setup: func(s *mocks.MockReportService) {
				s.EXPECT().BuildReport(gomock.Any(), gomock.Any()).Return(&responses.FinancialReportResponse{Image: "cG5n"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "amounts beyond float range",
			body: validReportBody,
			setup: func(s *mocks.MockReportService) {
				s.EXPECT().BuildReport(gomock.Any(), gomock.Any()).Return(nil, errors.Wrap(report.ErrAmountOutOfRange, "total_receitas"))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "entry without category",
			body:       `{"lancamentos": [{"data": "2024-01-05", "tipo": "Despesa", "valor": 1}], "data_inicial": "2024-01-01", "data_final": "2024-01-31"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := mocks.NewMockReportServiceForTest(t)
			if tt.setup != nil {
				tt.setup(service)
			}

			c, w := testutil.TestContext(t)
			c.Request = testutil.JSONRequest(t, http.MethodPost, "/relatorio-financeiro", tt.body)

			NewReportHandler(service).GenerateReport(c)

			testutil.AssertStatusCode(t, w, tt.wantStatus)
		})
	}
}

func TestReportHandler_GenerateReport_EndToEnd(t *testing.T) {
	service := report.NewService(chart.NewRenderer(chart.ReportProfile(20), nil), zap.NewNop())

	c, w := testutil.TestContext(t)
	c.Request = testutil.JSONRequest(t, http.MethodPost, "/relatorio-financeiro", validReportBody)

	NewReportHandler(service).GenerateReport(c)

	testutil.AssertStatusCode(t, w, http.StatusOK)
	var resp map[string]interface{}
	testutil.DecodeJSON(t, w, &resp)
	assert.Equal(t, map[string]interface{}{"data_inicial": "2024-01-01", "data_final": "2024-01-31"}, resp["periodo"])
	assert.Equal(t, 80.0, resp["total_despesas"])
	assert.Equal(t, 1000.0, resp["total_receitas"])
	assert.NotEmpty(t, resp["imagem"])
}

func TestReportHandler_AmountsBeyondFloatRange(t *testing.T) {
	service := report.NewService(chart.NewRenderer(chart.ReportProfile(20), nil), nil)

	c, w := testutil.TestContext(t)
	c.Request = testutil.JSONRequest(t, http.MethodPost, "/relatorio-financeiro", `{
		"lancamentos": [
			{"data": "2024-01-05", "categoria": "Salary", "tipo": "Receita", "valor": 1e308},
			{"data": "2024-01-06", "categoria": "Bonus", "tipo": "Receita", "valor": 1e308}
		],
		"data_inicial": "2024-01-01",
		"data_final": "2024-01-31"
	}`)

	NewReportHandler(service).GenerateReport(c)

	testutil.AssertStatusCode(t, w, http.StatusBadRequest)
	var resp responses.ErrorResponse
	testutil.DecodeJSON(t, w, &resp)
	assert.Equal(t, "Ledger amounts are too large to report", resp.Error)
}

func TestReportHandler_EmptyLedger(t *testing.T) {
	service := report.NewService(chart.NewRenderer(chart.ReportProfile(20), nil), nil)

	c, w := testutil.TestContext(t)
	c.Request = testutil.JSONRequest(t, http.MethodPost, "/relatorio-financeiro",
		`{"lancamentos": [], "data_inicial": "2024-01-01", "data_final": "2024-01-31"}`)

	NewReportHandler(service).GenerateReport(c)

	testutil.AssertStatusCode(t, w, http.StatusOK)
	var resp responses.FinancialReportResponse
	testutil.DecodeJSON(t, w, &resp)
	assert.Zero(t, resp.TotalExpenses)
	assert.Zero(t, resp.TotalRevenues)
	assert.NotEmpty(t, resp.Image)
}
