package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/clearpath-au/go-remit/internal/models"
)

const (
	createReconRecordQuery = `INSERT INTO "reconciliation_record" (
		provider_ref,
		posted_amount_cents,
		paid_at,
		linked_period_id,
		status,
		created_at
	) VALUES (
		$1, $2, $3, $4, $5, NOW()
	) RETURNING id, created_at;`

	saveUnmatchedQuery = `INSERT INTO "unmatched_line" AS t (
		provider,
		provider_ref,
		bank_txn_id,
		amount_cents,
		posted_at,
		reference,
		provider_code,
		currency,
		attempts,
		status,
		first_seen_at,
		last_tried_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, 1, 'UNMATCHED', NOW(), NOW()
	) ON CONFLICT (provider_ref) DO UPDATE
	SET
		attempts = t.attempts + 1,
		last_tried_at = NOW();`

	deleteUnmatchedQuery = `
		DELETE FROM "unmatched_line"
		WHERE provider_ref = $1;`

	expireUnmatchedQuery = `
		UPDATE "unmatched_line"
		SET status = 'EXPIRED', last_tried_at = NOW()
		WHERE status = 'UNMATCHED' AND first_seen_at < $1;`
)

func buildListUnmatchedQuery(opts models.UnmatchedFilterOptions) (string, []interface{}, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.
		Select(
			"id",
			"provider",
			"provider_ref",
			"bank_txn_id",
			"amount_cents",
			"posted_at",
			"reference",
			"provider_code",
			"currency",
			"attempts",
			"first_seen_at",
			"last_tried_at",
		).
		From(`"unmatched_line"`).
		Where(sq.Eq{"status": models.StatementLineStatusUnmatched})

	if opts.MaxAttempts > 0 {
		query = query.Where(sq.LtOrEq{"attempts": opts.MaxAttempts})
	}

	if opts.Provider != "" {
		query = query.Where(sq.Eq{"provider": opts.Provider})
	}

	return query.OrderBy("first_seen_at ASC").ToSql()
}
