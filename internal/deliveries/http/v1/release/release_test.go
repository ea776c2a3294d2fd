package release

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/clearpath-au/go-remit/internal/common"
	"github.com/clearpath-au/go-remit/internal/common/log"
	"github.com/clearpath-au/go-remit/internal/models"
	"github.com/clearpath-au/go-remit/internal/services/mock"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func releaseRequestFixture() models.ReleaseRequest {
	return models.ReleaseRequest{
		ABN:         "51824753556",
		TaxType:     "GST",
		PeriodID:    "2026-Q2",
		AmountCents: -250000,
		Rail:        models.RailEFT,
		Destination: models.Destination{
			BSB:           "092-009",
			AccountNumber: "123456789",
		},
		IdempotencyKey: "TKT-20260728-0001",
	}
}

func Test_Handler_createRelease(t *testing.T) {
	testHelper := releaseTestHelper(t)

	releasedAt := time.Date(2026, 7, 28, 3, 4, 5, 0, time.UTC)

	type args struct {
		ctx       context.Context
		req       models.ReleaseRequest
		headerKey string
	}
	type mockData struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name      string
		urlCalled string
		args      args
		mockData  mockData
		doMock    func(args args, mockData mockData)
	}{
		{
			name:      "fresh release",
			urlCalled: "/api/v1/release",
			args: args{
				ctx: context.Background(),
				req: releaseRequestFixture(),
			},
			mockData: mockData{
				wantRes:  `{"status":"ACCEPTED","providerRef":"SIM-11AA22BB33CC","bankTxnId":"BTX-1","replayed":false,"releasedAt":"2026-07-28T03:04:05Z"}`,
				wantCode: 201,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockService.EXPECT().
					Release(gomock.Any(), args.req).
					Return(models.ReleaseOutcome{
						Status:      models.PayoutStatusAccepted,
						ProviderRef: "SIM-11AA22BB33CC",
						BankTxnID:   "BTX-1",
						ReleasedAt:  releasedAt,
					}, nil)
			},
		},
		{
			name:      "replayed outcome answers 200",
			urlCalled: "/api/v1/release",
			args: args{
				ctx: context.Background(),
				req: releaseRequestFixture(),
			},
			mockData: mockData{
				wantRes:  `{"status":"ACCEPTED","providerRef":"SIM-11AA22BB33CC","replayed":true,"releasedAt":"2026-07-28T03:04:05Z"}`,
				wantCode: 200,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockService.EXPECT().
					Release(gomock.Any(), args.req).
					Return(models.ReleaseOutcome{
						Status:      models.PayoutStatusAccepted,
						ProviderRef: "SIM-11AA22BB33CC",
						Replayed:    true,
						ReleasedAt:  releasedAt,
					}, nil)
			},
		},
		{
			name:      "idempotency key from header",
			urlCalled: "/api/v1/release",
			args: args{
				ctx: context.Background(),
				req: func() models.ReleaseRequest {
					req := releaseRequestFixture()
					req.IdempotencyKey = ""
					return req
				}(),
				headerKey: "HDR-20260728-0002",
			},
			mockData: mockData{
				wantRes:  `{"status":"ACCEPTED","providerRef":"SIM-11AA22BB33CC","replayed":false,"releasedAt":"2026-07-28T03:04:05Z"}`,
				wantCode: 201,
			},
			doMock: func(args args, mockData mockData) {
				want := args.req
				want.IdempotencyKey = args.headerKey
				testHelper.mockService.EXPECT().
					Release(gomock.Any(), want).
					Return(models.ReleaseOutcome{
						Status:      models.PayoutStatusAccepted,
						ProviderRef: "SIM-11AA22BB33CC",
						ReleasedAt:  releasedAt,
					}, nil)
			},
		},
		{
			name:      "error validating request",
			urlCalled: "/api/v1/release",
			args: args{
				ctx: context.Background(),
				req: func() models.ReleaseRequest {
					req := releaseRequestFixture()
					req.ABN = "51824753557"
					req.AmountCents = 250000
					return req
				}(),
			},
			mockData: mockData{
				wantRes:  `{"status":"error","code":"VALIDATION_FAILED","message":"validation failed","errors":[{"field":"abn","message":"abn"},{"field":"amountCents","message":"lt 0"}]}`,
				wantCode: 422,
			},
		},
		{
			name:      "fingerprint reuse answers 409",
			urlCalled: "/api/v1/release",
			args: args{
				ctx: context.Background(),
				req: releaseRequestFixture(),
			},
			mockData: mockData{
				wantRes:  `{"status":"error","code":"DUPLICATE_REQUEST","message":"idempotency key cannot be reused for different request payload"}`,
				wantCode: 409,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockService.EXPECT().
					Release(gomock.Any(), args.req).
					Return(models.ReleaseOutcome{}, common.ErrInvalidFingerprint)
			},
		},
		{
			name:      "in flight answers 409",
			urlCalled: "/api/v1/release",
			args: args{
				ctx: context.Background(),
				req: releaseRequestFixture(),
			},
			mockData: mockData{
				wantRes:  `{"status":"error","code":"CONCURRENT_IN_FLIGHT","message":"request with same idempotency key is being processed"}`,
				wantCode: 409,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockService.EXPECT().
					Release(gomock.Any(), args.req).
					Return(models.ReleaseOutcome{}, common.ErrRequestBeingProcessed)
			},
		},
		{
			name:      "destination not allowed answers 403",
			urlCalled: "/api/v1/release",
			args: args{
				ctx: context.Background(),
				req: releaseRequestFixture(),
			},
			mockData: mockData{
				wantRes:  `{"status":"error","code":"DESTINATION_NOT_ALLOWED","message":"destination not on the allow list"}`,
				wantCode: 403,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockService.EXPECT().
					Release(gomock.Any(), args.req).
					Return(models.ReleaseOutcome{}, common.ErrDestinationNotAllowed)
			},
		},
		{
			name:      "kill switch answers 503",
			urlCalled: "/api/v1/release",
			args: args{
				ctx: context.Background(),
				req: releaseRequestFixture(),
			},
			mockData: mockData{
				wantRes:  `{"status":"error","code":"KILL_SWITCH_ACTIVE","message":"release blocked by kill switch: bank maintenance window"}`,
				wantCode: 503,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockService.EXPECT().
					Release(gomock.Any(), args.req).
					Return(models.ReleaseOutcome{}, &common.KillSwitchError{Reason: "bank maintenance window"})
			},
		},
		{
			name:      "retries exhausted answers 502",
			urlCalled: "/api/v1/release",
			args: args{
				ctx: context.Background(),
				req: releaseRequestFixture(),
			},
			mockData: mockData{
				wantRes:  `{"status":"error","code":"RETRY_EXHAUSTED","message":"payout retries exhausted"}`,
				wantCode: 502,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockService.EXPECT().
					Release(gomock.Any(), args.req).
					Return(models.ReleaseOutcome{}, common.ErrRetryExhausted)
			},
		},
		{
			name:      "missing idempotency key answers 400",
			urlCalled: "/api/v1/release",
			args: args{
				ctx: context.Background(),
				req: func() models.ReleaseRequest {
					req := releaseRequestFixture()
					req.IdempotencyKey = ""
					return req
				}(),
			},
			mockData: mockData{
				wantRes:  `{"status":"error","code":"IDEMPOTENCY_KEY_MISSING","message":"missing idempotency key. this operation requires idempotency key"}`,
				wantCode: 400,
			},
		},
		{
			name:      "provider rejection answers 502",
			urlCalled: "/api/v1/release",
			args: args{
				ctx: context.Background(),
				req: releaseRequestFixture(),
			},
			mockData: mockData{
				wantRes:  `{"status":"error","code":"PROVIDER_REJECTED","message":"provider rejected the payout"}`,
				wantCode: 502,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockService.EXPECT().
					Release(gomock.Any(), args.req).
					Return(models.ReleaseOutcome{}, common.ErrProviderRejected)
			},
		},
		{
			name:      "idempotency store down answers 503",
			urlCalled: "/api/v1/release",
			args: args{
				ctx: context.Background(),
				req: releaseRequestFixture(),
			},
			mockData: mockData{
				wantRes:  `{"status":"error","code":"IDEMPOTENCY_STORE_UNAVAILABLE","message":"idempotency store unavailable, refusing to release, root cause: assert.AnError general error for testing"}`,
				wantCode: 503,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockService.EXPECT().
					Release(gomock.Any(), args.req).
					Return(models.ReleaseOutcome{}, common.WrapError{
						Causer: common.ErrIdempotencyUnavailable,
						Err:    assert.AnError,
					})
			},
		},
		{
			name:      "error service",
			urlCalled: "/api/v1/release",
			args: args{
				ctx: context.Background(),
				req: releaseRequestFixture(),
			},
			mockData: mockData{
				wantRes:  `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`,
				wantCode: 500,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockService.EXPECT().
					Release(gomock.Any(), args.req).
					Return(models.ReleaseOutcome{}, assert.AnError)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args, tt.mockData)
			}

			var b bytes.Buffer
			err := json.NewEncoder(&b).Encode(tt.args.req)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, tt.urlCalled, &b)
			req.Header.Set("Content-Type", "application/json")
			if tt.args.headerKey != "" {
				req.Header.Set("X-Idempotency-Key", tt.args.headerKey)
			}

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.mockData.wantCode, resp.StatusCode)
			require.Equal(t, tt.mockData.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}

func Test_Handler_getRelease(t *testing.T) {
	testHelper := releaseTestHelper(t)

	releasedAt := time.Date(2026, 7, 28, 3, 4, 5, 0, time.UTC)

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
			name:      "recorded outcome",
			urlCalled: "/api/v1/release/TKT-20260728-0001",
			expectation: Expectation{
				wantRes:  `{"status":"ACCEPTED","providerRef":"SIM-11AA22BB33CC","replayed":true,"releasedAt":"2026-07-28T03:04:05Z"}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().
					GetRelease(gomock.Any(), "TKT-20260728-0001").
					Return(models.ReleaseOutcome{
						Status:      models.PayoutStatusAccepted,
						ProviderRef: "SIM-11AA22BB33CC",
						Replayed:    true,
						ReleasedAt:  releasedAt,
					}, nil)
			},
		},
		{
			name:      "unknown key answers 404",
			urlCalled: "/api/v1/release/TKT-unknown",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":404,"message":"data not found"}`,
				wantCode: 404,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().
					GetRelease(gomock.Any(), "TKT-unknown").
					Return(models.ReleaseOutcome{}, common.ErrDataNotFound)
			},
		},
		{
			name:      "still in flight answers 409",
			urlCalled: "/api/v1/release/TKT-20260728-0001",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":"CONCURRENT_IN_FLIGHT","message":"request with same idempotency key is being processed"}`,
				wantCode: 409,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().
					GetRelease(gomock.Any(), "TKT-20260728-0001").
					Return(models.ReleaseOutcome{}, common.ErrRequestBeingProcessed)
			},
		},
		{
			name:      "error service",
			urlCalled: "/api/v1/release/TKT-20260728-0001",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`,
				wantCode: 500,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().
					GetRelease(gomock.Any(), "TKT-20260728-0001").
					Return(models.ReleaseOutcome{}, assert.AnError)
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

type testReleaseHelper struct {
	router      *echo.Echo
	mockCtrl    *gomock.Controller
	mockService *mock.MockReleaseService
}

func releaseTestHelper(t *testing.T) testReleaseHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockSvc := mock.NewMockReleaseService(mockCtrl)

	app := echo.New()
	app.Pre(echomiddleware.RemoveTrailingSlash())
	v1Group := app.Group("/api/v1")
	New(v1Group, mockSvc)

	return testReleaseHelper{
		router:      app,
		mockCtrl:    mockCtrl,
		mockService: mockSvc,
	}
}

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}
