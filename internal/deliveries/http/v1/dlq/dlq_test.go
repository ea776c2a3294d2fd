package dlq

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/clearpath-au/go-remit/internal/common/log"
	"github.com/clearpath-au/go-remit/internal/models"
	"github.com/clearpath-au/go-remit/internal/services/mock"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func deadLetterFixture() models.DeadLetterEntry {
	return models.DeadLetterEntry{
		ID:       "dlq-0001",
		Provider: "simulator",
		Request: models.PayoutRequest{
			ABN:         "51824753556",
			TaxType:     "GST",
			PeriodID:    "2026-Q2",
			AmountCents: 250000,
			Rail:        models.RailEFT,
			Destination: models.Destination{
				BSB:           "092-009",
				AccountNumber: "123456789",
			},
			Reference:      "ATO-51824753556-GST",
			IdempotencyKey: "rel-2026q2-gst-51824753556",
		},
		Error:     "provider unavailable",
		Timestamp: time.Date(2026, 7, 30, 4, 0, 0, 0, time.UTC),
	}
}

func Test_Handler_listDeadLetters(t *testing.T) {
	testHelper := dlqTestHelper(t)

	type Expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name        string
		urlCalled   string
		expectation Expectation
		doMock      func()
	}{
		{
			name:      "parked entries",
			urlCalled: "/api/v1/dlq",
			expectation: Expectation{
				wantRes:  `{"kind":"collection","contents":[{"id":"dlq-0001","provider":"simulator","request":{"abn":"51824753556","taxType":"GST","periodId":"2026-Q2","amountCents":250000,"rail":"EFT","destination":{"bsb":"092-009","accountNumber":"123456789"},"reference":"ATO-51824753556-GST","idempotencyKey":"rel-2026q2-gst-51824753556"},"error":"provider unavailable","timestamp":"2026-07-30T04:00:00Z"}],"total_rows":1}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().
					ListDeadLetters(gomock.Any()).
					Return([]models.DeadLetterEntry{deadLetterFixture()}, nil)
			},
		},
		{
			name:      "empty queue",
			urlCalled: "/api/v1/dlq",
			expectation: Expectation{
				wantRes:  `{"kind":"collection","contents":[],"total_rows":0}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().
					ListDeadLetters(gomock.Any()).
					Return([]models.DeadLetterEntry{}, nil)
			},
		},
		{
			name:      "error service",
			urlCalled: "/api/v1/dlq",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`,
				wantCode: 500,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().
					ListDeadLetters(gomock.Any()).
					Return(nil, assert.AnError)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.doMock != nil {
				tc.doMock()
			}

			req := httptest.NewRequest(http.MethodGet, tc.urlCalled, nil)
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tc.expectation.wantCode, resp.StatusCode)
			require.Equal(t, tc.expectation.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}

func Test_Handler_discard(t *testing.T) {
	testHelper := dlqTestHelper(t)

	type Expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name        string
		urlCalled   string
		expectation Expectation
		doMock      func()
	}{
		{
			name:      "entry discarded",
			urlCalled: "/api/v1/dlq/dlq-0001",
			expectation: Expectation{
				wantRes:  `{"kind":"dead-letter","id":"dlq-0001","status":"discarded"}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().
					Discard(gomock.Any(), "dlq-0001").
					Return(nil)
			},
		},
		{
			name:      "error service",
			urlCalled: "/api/v1/dlq/dlq-0404",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`,
				wantCode: 500,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().
					Discard(gomock.Any(), "dlq-0404").
					Return(assert.AnError)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.doMock != nil {
				tc.doMock()
			}

			req := httptest.NewRequest(http.MethodDelete, tc.urlCalled, nil)
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tc.expectation.wantCode, resp.StatusCode)
			require.Equal(t, tc.expectation.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}

type testDLQHelper struct {
	router      *echo.Echo
	mockCtrl    *gomock.Controller
	mockService *mock.MockDLQService
}

func dlqTestHelper(t *testing.T) testDLQHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockSvc := mock.NewMockDLQService(mockCtrl)

	app := echo.New()
	app.Pre(echomiddleware.RemoveTrailingSlash())
	v1Group := app.Group("/api/v1")
	New(v1Group, mockSvc)

	return testDLQHelper{
		router:      app,
		mockCtrl:    mockCtrl,
		mockService: mockSvc,
	}
}

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}
