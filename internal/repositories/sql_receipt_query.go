package repositories

const (
	createReceiptQuery = `INSERT INTO "bank_receipt" (
		provider_ref,
		abn,
		tax_type,
		period_id,
		amount_cents,
		channel,
		paid_at,
		dry_run,
		shadow_only,
		created_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, NOW()
	) RETURNING id, created_at;`

	getReceiptByProviderRefQuery = `
		SELECT id, provider_ref, abn, tax_type, period_id, amount_cents, channel, paid_at, dry_run, shadow_only, created_at
		FROM "bank_receipt"
		WHERE provider_ref = $1;`

	getReceiptByPeriodQuery = `
		SELECT id, provider_ref, abn, tax_type, period_id, amount_cents, channel, paid_at, dry_run, shadow_only, created_at
		FROM "bank_receipt"
		WHERE abn = $1 AND tax_type = $2 AND period_id = $3
		ORDER BY created_at DESC
		LIMIT 1;`
)
