package services_test

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/clearpath-au/go-remit/internal/common"
	"github.com/clearpath-au/go-remit/internal/models"
)

func ledgerPeriodFixture() *models.LedgerPeriod {
	return &models.LedgerPeriod{
		ABN:          "51824753556",
		TaxType:      "GST",
		PeriodID:     "2026-Q2",
		BalanceCents: 0,
		RunningHash:  models.ChainHash("", "51824753556|GST|2026-Q2|250000|SIM-11AA22BB33CC"),
	}
}

func approvalsFixture() []models.Approval {
	return []models.Approval{
		{
			Approver:   "j.nguyen",
			Role:       "finance-controller",
			ApprovedAt: time.Date(2026, 7, 27, 10, 0, 0, 0, time.UTC),
			TicketRef:  "APPR-3321",
		},
	}
}

// evidenceChainFixture holds what the chain store returns after filtering on
// the quoted period id.
func evidenceChainFixture() []models.AuditLogEntry {
	return chainFixture(
		`{"abn":"51824753556","periodId":"2026-Q2","status":"ACCEPTED"}`,
		`{"periodId":"2026-Q2","providerRef":"SIM-11AA22BB33CC"}`,
	)
}

func TestEvidenceService_Build(t *testing.T) {
	testHelper := serviceTestHelper(t)
	ctx := context.Background()

	expectStores := func(times int) {
		testHelper.mockLedgerRepository.EXPECT().
			GetPeriod(gomock.Any(), "51824753556", "GST", "2026-Q2").
			Times(times).
			Return(ledgerPeriodFixture(), nil)
		testHelper.mockReceiptRepository.EXPECT().
			GetByPeriod(gomock.Any(), "51824753556", "GST", "2026-Q2").
			Times(times).
			Return(receiptFixture(), nil)
		testHelper.mockEvidenceRepository.EXPECT().
			ListApprovals(gomock.Any(), "51824753556", "GST", "2026-Q2").
			Times(times).
			Return(approvalsFixture(), nil)
		testHelper.mockEvidenceRepository.EXPECT().
			GetRulesManifest(gomock.Any(), "manifest-2026.07").
			Times(times).
			Return(&models.RulesManifest{ID: "manifest-2026.07", Hash: "ab12cd34"}, nil)
		testHelper.mockAuditRepository.EXPECT().
			ListMatching(gomock.Any(), `"2026-Q2"`, gomock.Any()).
			Times(times).
			Return(evidenceChainFixture(), nil)
		testHelper.mockEvidenceRepository.EXPECT().
			GetReleaseTicket(gomock.Any(), "51824753556", "GST", "2026-Q2").
			Times(times).
			Return(nil, common.ErrDataNotFound)
		testHelper.mockKmsPort.EXPECT().
			Sign(gomock.Any(), gomock.Any(), "evidence-key-1").
			Times(times).
			Return([]byte("fixed-signature"), nil)
		testHelper.mockAuditRepository.EXPECT().
			Append(gomock.Any(), models.AuditCategoryEvidenceBuilt, gomock.Any()).
			Times(times).
			Return(models.AppendReceipt{Seq: 90}, nil)
	}

	t.Run("bundle carries settlement, approvals and the period trail", func(t *testing.T) {
		expectStores(1)

		bundle, err := testHelper.services.Evidence.Build(ctx, "51824753556", "GST", "2026-Q2")

		assert.NoError(t, err)
		assert.Equal(t, "2026-Q2", bundle.PeriodID)
		assert.Equal(t, "ab12cd34", bundle.RulesManifestHash)
		assert.NotNil(t, bundle.Settlement)
		assert.Equal(t, int64(250000), bundle.Settlement.AmountCents)
		assert.Len(t, bundle.Approvals, 1)

		assert.Len(t, bundle.AuditTrail, 2)
		for _, row := range bundle.AuditTrail {
			assert.Contains(t, row.Message, `"2026-Q2"`)
		}

		assert.Nil(t, bundle.TicketVerified)
		assert.NotEmpty(t, bundle.BundleHash)
		assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("fixed-signature")), bundle.Signature)
		assert.Contains(t, bundle.Narrative, "No release ticket was supplied")
	})

	t.Run("identical inputs produce identical bundles", func(t *testing.T) {
		expectStores(2)

		first, err := testHelper.services.Evidence.Build(ctx, "51824753556", "GST", "2026-Q2")
		assert.NoError(t, err)
		second, err := testHelper.services.Evidence.Build(ctx, "51824753556", "GST", "2026-Q2")
		assert.NoError(t, err)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("bundles differ between builds (-first +second):\n%s", diff)
		}
		assert.Equal(t, first.BundleHash, second.BundleHash)
	})
}

func TestEvidenceService_Build_NoSettlement(t *testing.T) {
	testHelper := serviceTestHelper(t)
	ctx := context.Background()

	testHelper.mockLedgerRepository.EXPECT().
		GetPeriod(gomock.Any(), "51824753556", "GST", "2026-Q2").
		Return(ledgerPeriodFixture(), nil)
	testHelper.mockReceiptRepository.EXPECT().
		GetByPeriod(gomock.Any(), "51824753556", "GST", "2026-Q2").
		Return(nil, common.ErrReceiptNotFound)
	testHelper.mockEvidenceRepository.EXPECT().
		ListApprovals(gomock.Any(), "51824753556", "GST", "2026-Q2").
		Return(nil, nil)
	testHelper.mockEvidenceRepository.EXPECT().
		GetRulesManifest(gomock.Any(), "manifest-2026.07").
		Return(&models.RulesManifest{ID: "manifest-2026.07", Hash: "ab12cd34"}, nil)
	testHelper.mockAuditRepository.EXPECT().
		ListMatching(gomock.Any(), `"2026-Q2"`, gomock.Any()).
		Return(nil, nil)
	testHelper.mockEvidenceRepository.EXPECT().
		GetReleaseTicket(gomock.Any(), "51824753556", "GST", "2026-Q2").
		Return(nil, common.ErrDataNotFound)
	testHelper.mockKmsPort.EXPECT().
		Sign(gomock.Any(), gomock.Any(), "evidence-key-1").
		Return([]byte("sig"), nil)
	testHelper.mockAuditRepository.EXPECT().
		Append(gomock.Any(), models.AuditCategoryEvidenceBuilt, gomock.Any()).
		Return(models.AppendReceipt{Seq: 91}, nil)

	bundle, err := testHelper.services.Evidence.Build(ctx, "51824753556", "GST", "2026-Q2")

	assert.NoError(t, err)
	assert.Nil(t, bundle.Settlement)
	assert.NotNil(t, bundle.Approvals)
	assert.Empty(t, bundle.Approvals)
	assert.Contains(t, bundle.Narrative, "No settlement recorded")
}

func TestEvidenceService_Build_Ticket(t *testing.T) {
	testHelper := serviceTestHelper(t)
	ctx := context.Background()

	ticket := &models.ReleaseTicket{
		Payload:   []byte(`{"periodId":"2026-Q2"}`),
		Signature: []byte("ticket-sig"),
		KeyID:     "release-key-1",
	}

	expectCommon := func() {
		testHelper.mockLedgerRepository.EXPECT().
			GetPeriod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(ledgerPeriodFixture(), nil)
		testHelper.mockReceiptRepository.EXPECT().
			GetByPeriod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(receiptFixture(), nil)
		testHelper.mockEvidenceRepository.EXPECT().
			ListApprovals(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(approvalsFixture(), nil)
		testHelper.mockEvidenceRepository.EXPECT().
			GetRulesManifest(gomock.Any(), gomock.Any()).
			Return(&models.RulesManifest{Hash: "ab12cd34"}, nil)
		testHelper.mockAuditRepository.EXPECT().
			ListMatching(gomock.Any(), `"2026-Q2"`, gomock.Any()).
			Return(nil, nil)
	}

	t.Run("failed signature check is surfaced, not swallowed", func(t *testing.T) {
		expectCommon()
		testHelper.mockEvidenceRepository.EXPECT().
			GetReleaseTicket(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(ticket, nil)
		testHelper.mockKmsPort.EXPECT().
			Verify(gomock.Any(), ticket.Payload, ticket.Signature, ticket.KeyID).
			Return(false, nil)
		testHelper.mockKmsPort.EXPECT().
			Sign(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]byte("sig"), nil)
		testHelper.mockAuditRepository.EXPECT().
			Append(gomock.Any(), models.AuditCategoryEvidenceBuilt, gomock.Any()).
			Return(models.AppendReceipt{Seq: 92}, nil)

		bundle, err := testHelper.services.Evidence.Build(ctx, "51824753556", "GST", "2026-Q2")

		assert.NoError(t, err)
		assert.NotNil(t, bundle.TicketVerified)
		assert.False(t, *bundle.TicketVerified)
		assert.Contains(t, bundle.Narrative, "did NOT verify")
	})

	t.Run("verifier outage fails the build", func(t *testing.T) {
		expectCommon()
		testHelper.mockEvidenceRepository.EXPECT().
			GetReleaseTicket(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(ticket, nil)
		testHelper.mockKmsPort.EXPECT().
			Verify(gomock.Any(), ticket.Payload, ticket.Signature, ticket.KeyID).
			Return(false, assert.AnError)

		_, err := testHelper.services.Evidence.Build(ctx, "51824753556", "GST", "2026-Q2")

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestEvidenceService_Build_SigningFailureNonFatal(t *testing.T) {
	testHelper := serviceTestHelper(t)
	ctx := context.Background()

	testHelper.mockLedgerRepository.EXPECT().
		GetPeriod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(ledgerPeriodFixture(), nil)
	testHelper.mockReceiptRepository.EXPECT().
		GetByPeriod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(receiptFixture(), nil)
	testHelper.mockEvidenceRepository.EXPECT().
		ListApprovals(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	testHelper.mockEvidenceRepository.EXPECT().
		GetRulesManifest(gomock.Any(), gomock.Any()).
		Return(&models.RulesManifest{Hash: "ab12cd34"}, nil)
	testHelper.mockAuditRepository.EXPECT().
		ListMatching(gomock.Any(), `"2026-Q2"`, gomock.Any()).
		Return(nil, nil)
	testHelper.mockEvidenceRepository.EXPECT().
		GetReleaseTicket(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, common.ErrDataNotFound)
	testHelper.mockKmsPort.EXPECT().
		Sign(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)
	testHelper.mockAuditRepository.EXPECT().
		Append(gomock.Any(), models.AuditCategoryEvidenceBuilt, gomock.Any()).
		Return(models.AppendReceipt{Seq: 93}, nil)

	bundle, err := testHelper.services.Evidence.Build(ctx, "51824753556", "GST", "2026-Q2")

	assert.NoError(t, err)
	assert.Empty(t, bundle.Signature)
	assert.NotEmpty(t, bundle.BundleHash)
}

func TestEvidenceService_Build_UnknownPeriod(t *testing.T) {
	testHelper := serviceTestHelper(t)
	ctx := context.Background()

	testHelper.mockLedgerRepository.EXPECT().
		GetPeriod(gomock.Any(), "51824753556", "GST", "2031-Q4").
		Return(nil, common.ErrLedgerPeriodGone)

	_, err := testHelper.services.Evidence.Build(ctx, "51824753556", "GST", "2031-Q4")

	assert.ErrorIs(t, err, common.ErrLedgerPeriodGone)
}
