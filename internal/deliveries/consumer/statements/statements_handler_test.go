package statements

import (
	"context"
	"os"
	"testing"

	dlqmock "github.com/clearpath-au/go-remit/internal/common/dlq/mock"
	"github.com/clearpath-au/go-remit/internal/common/log"
	"github.com/clearpath-au/go-remit/internal/models"
	"github.com/clearpath-au/go-remit/internal/services/mock"

	"github.com/Shopify/sarama"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

type statementsHandlerHelper struct {
	mockCtrl *gomock.Controller
	rc       *mock.MockReconciliationService
	notifier *dlqmock.MockNotifier

	payload []byte
}

func newStatementsHandlerHelper(t *testing.T) statementsHandlerHelper {
	t.Helper()
	t.Parallel()

	mockCtrl := gomock.NewController(t)

	rc := mock.NewMockReconciliationService(mockCtrl)
	notifier := dlqmock.NewMockNotifier(mockCtrl)

	payload := []byte(`{
	    "provider": "mock",
	    "cutoff": "2026-07-29T06:00:00Z",
	    "entries": [
	        {
	            "bank_txn_id": "BTX-1",
	            "provider_ref": "SIM-11AA22BB33CC",
	            "posted_at": "2026-07-29T01:00:00Z",
	            "amount_cents": 250000
	        }
	    ]
	}`)

	return statementsHandlerHelper{
		mockCtrl: mockCtrl,
		rc:       rc,
		notifier: notifier,
		payload:  payload,
	}
}

func TestNewStatementsHandler(t *testing.T) {
	th := newStatementsHandlerHelper(t)
	defer th.mockCtrl.Finish()

	got := NewStatementsHandler("client-1", th.rc, th.notifier, nil)
	assert.Equal(t, &StatementsHandler{
		clientID: "client-1",
		rc:       th.rc,
		notifier: th.notifier,
	}, got)
}

func TestStatementsHandler_SetupCleanup(t *testing.T) {
	th := newStatementsHandlerHelper(t)
	defer th.mockCtrl.Finish()

	h := StatementsHandler{rc: th.rc}
	assert.NoError(t, h.Setup(nil))
	assert.NoError(t, h.Cleanup(nil))
}

func TestStatementsHandler_processMessage(t *testing.T) {
	th := newStatementsHandlerHelper(t)
	defer th.mockCtrl.Finish()

	tests := []struct {
		name    string
		message *sarama.ConsumerMessage
		doMock  func()
		wantErr bool
	}{
		{
			name:    "batch ingested",
			message: &sarama.ConsumerMessage{Value: th.payload},
			doMock: func() {
				th.rc.EXPECT().
					Ingest(gomock.AssignableToTypeOf(context.Background()), gomock.AssignableToTypeOf(models.BankStatementBatch{})).
					Return(models.IngestSummary{Provider: "mock", Received: 1, Linked: 1}, nil)
			},
			wantErr: false,
		},
		{
			name:    "error unmarshal message",
			message: &sarama.ConsumerMessage{Value: []byte("{__INVALID_JSON_HERE")},
			wantErr: true,
		},
		{
			name:    "error ingest",
			message: &sarama.ConsumerMessage{Value: th.payload},
			doMock: func() {
				th.rc.EXPECT().
					Ingest(gomock.AssignableToTypeOf(context.Background()), gomock.AssignableToTypeOf(models.BankStatementBatch{})).
					Return(models.IngestSummary{}, assert.AnError)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock()
			}

			h := StatementsHandler{rc: th.rc, notifier: th.notifier}
			err := h.processMessage(context.Background(), tt.message)
			assert.Equal(t, tt.wantErr, err != nil, err)
		})
	}
}
