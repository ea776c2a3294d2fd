package repositories

const (
	getLedgerPeriodQuery = `
		SELECT abn, tax_type, period_id, balance_cents, running_hash, updated_at
		FROM "ledger_period"
		WHERE abn = $1 AND tax_type = $2 AND period_id = $3;`

	lockLedgerPeriodQuery = `
		SELECT abn, tax_type, period_id, balance_cents, running_hash, updated_at
		FROM "ledger_period"
		WHERE abn = $1 AND tax_type = $2 AND period_id = $3
		FOR UPDATE;`

	settleLedgerPeriodQuery = `
		UPDATE "ledger_period"
		SET balance_cents = $1, running_hash = $2, updated_at = NOW()
		WHERE abn = $3 AND tax_type = $4 AND period_id = $5
		RETURNING updated_at;`

	upsertLedgerPeriodQuery = `INSERT INTO "ledger_period" (
		abn,
		tax_type,
		period_id,
		balance_cents,
		running_hash,
		updated_at
	) VALUES (
		$1, $2, $3, $4, $5, NOW()
	) ON CONFLICT (abn, tax_type, period_id) DO UPDATE
	SET
		balance_cents = EXCLUDED.balance_cents,
		running_hash = EXCLUDED.running_hash,
		updated_at = EXCLUDED.updated_at;`
)
