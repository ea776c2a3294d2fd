package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/clearpath-au/go-remit/internal/config"
	"github.com/clearpath-au/go-remit/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestReconciliationRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(reconciliationTestSuite))
}

type reconciliationTestSuite struct {
	suite.Suite
	writeDB *sql.DB
	mock    sqlmock.Sqlmock
	repo    ReconciliationRepository
}

func (suite *reconciliationTestSuite) SetupTest() {
	var err error
	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.repo = NewSQLRepository(suite.writeDB, suite.writeDB, config.Config{}).GetReconciliationRepository()
}

func (suite *reconciliationTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
}

func (suite *reconciliationTestSuite) TestRepository_CreateRecord() {
	suite.Run("linked record stores the period id", func() {
		rec := models.ReconciliationRecord{
			ProviderRef:       "SIM-11AA22BB33CC",
			PostedAmountCents: -250000,
			PaidAt:            time.Date(2026, 7, 28, 4, 30, 0, 0, time.UTC),
			LinkedPeriodID:    "2026-Q2",
			Status:            models.StatementLineStatusLinked,
		}

		suite.mock.
			ExpectQuery(regexp.QuoteMeta(createReconRecordQuery)).
			WithArgs(rec.ProviderRef, rec.PostedAmountCents, rec.PaidAt,
				sql.NullString{String: "2026-Q2", Valid: true}, rec.Status).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, time.Now()))

		out, err := suite.repo.CreateRecord(context.TODO(), &rec)
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), uint64(7), out.ID)
	})

	suite.Run("mismatch record with no period writes NULL", func() {
		rec := models.ReconciliationRecord{
			ProviderRef:       "SIM-11AA22BB33CC",
			PostedAmountCents: -240000,
			PaidAt:            time.Now(),
			Status:            models.StatementLineStatusMismatch,
		}

		suite.mock.
			ExpectQuery(regexp.QuoteMeta(createReconRecordQuery)).
			WithArgs(rec.ProviderRef, rec.PostedAmountCents, rec.PaidAt,
				sql.NullString{}, rec.Status).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(8, time.Now()))

		_, err := suite.repo.CreateRecord(context.TODO(), &rec)
		assert.NoError(suite.T(), err)
	})
}

func (suite *reconciliationTestSuite) TestRepository_SaveUnmatched() {
	line := models.StatementLine{
		BankTxnID:   "BTX-001",
		ProviderRef: "SIM-FFEE00112233",
		PostedAt:    time.Now(),
		AmountCents: -9900,
		Currency:    "AUD",
	}

	suite.mock.
		ExpectExec(regexp.QuoteMeta(saveUnmatchedQuery)).
		WithArgs("simulator", line.ProviderRef, line.BankTxnID, line.AmountCents,
			line.PostedAt, line.Reference, line.ProviderCode, line.Currency).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := suite.repo.SaveUnmatched(context.TODO(), "simulator", line)
	assert.NoError(suite.T(), err)
}

func (suite *reconciliationTestSuite) TestRepository_ListUnmatched() {
	columns := []string{"id", "provider", "provider_ref", "bank_txn_id", "amount_cents", "posted_at", "reference", "provider_code", "currency", "attempts", "first_seen_at", "last_tried_at"}

	suite.Run("scans retained lines", func() {
		opts := models.UnmatchedFilterOptions{MaxAttempts: 5}
		listQuery, _, err := buildListUnmatchedQuery(opts)
		require.NoError(suite.T(), err)

		now := time.Now()
		suite.mock.
			ExpectQuery(regexp.QuoteMeta(listQuery)).
			WithArgs(models.StatementLineStatusUnmatched, 5).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(1, "simulator", "SIM-FFEE00112233", "BTX-001", -9900, now, "", "", "AUD", 2, now, now))

		out, err := suite.repo.ListUnmatched(context.TODO(), opts)
		require.NoError(suite.T(), err)
		require.Len(suite.T(), out, 1)
		assert.Equal(suite.T(), "SIM-FFEE00112233", out[0].Line.ProviderRef)
		assert.Equal(suite.T(), 2, out[0].Attempts)
	})

	suite.Run("provider filter narrows the listing", func() {
		opts := models.UnmatchedFilterOptions{Provider: "simulator", MaxAttempts: 5}
		listQuery, _, err := buildListUnmatchedQuery(opts)
		require.NoError(suite.T(), err)

		suite.mock.
			ExpectQuery(regexp.QuoteMeta(listQuery)).
			WithArgs(models.StatementLineStatusUnmatched, 5, "simulator").
			WillReturnRows(sqlmock.NewRows(columns))

		out, err := suite.repo.ListUnmatched(context.TODO(), opts)
		require.NoError(suite.T(), err)
		assert.Empty(suite.T(), out)
	})

	suite.Run("nothing retained returns empty", func() {
		opts := models.UnmatchedFilterOptions{MaxAttempts: 5}
		listQuery, _, err := buildListUnmatchedQuery(opts)
		require.NoError(suite.T(), err)

		suite.mock.
			ExpectQuery(regexp.QuoteMeta(listQuery)).
			WithArgs(models.StatementLineStatusUnmatched, 5).
			WillReturnRows(sqlmock.NewRows(columns))

		out, err := suite.repo.ListUnmatched(context.TODO(), opts)
		require.NoError(suite.T(), err)
		assert.Empty(suite.T(), out)
	})
}

func (suite *reconciliationTestSuite) TestRepository_ExpireUnmatched() {
	cutoff := time.Now().Add(-14 * 24 * time.Hour)

	suite.mock.
		ExpectExec(regexp.QuoteMeta(expireUnmatchedQuery)).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	affected, err := suite.repo.ExpireUnmatched(context.TODO(), cutoff)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), affected)
}

func (suite *reconciliationTestSuite) TestRepository_DeleteUnmatched() {
	suite.mock.
		ExpectExec(regexp.QuoteMeta(deleteUnmatchedQuery)).
		WithArgs("SIM-FFEE00112233").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := suite.repo.DeleteUnmatched(context.TODO(), "SIM-FFEE00112233")
	assert.NoError(suite.T(), err)
}
