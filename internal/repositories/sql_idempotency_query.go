package repositories

const (
	insertIdempotencyQuery = `INSERT INTO "idempotency_record" (
		key,
		status,
		fingerprint,
		created_at,
		updated_at
	) VALUES (
		$1, $2, $3, NOW(), NOW()
	) ON CONFLICT (key) DO NOTHING;`

	getIdempotencyQuery = `
		SELECT key, status, fingerprint, result_payload, created_at, updated_at
		FROM "idempotency_record"
		WHERE key = $1;`

	finishIdempotencyQuery = `
		UPDATE "idempotency_record"
		SET status = $1, result_payload = $2, updated_at = NOW()
		WHERE key = $3 AND status = 'PENDING';`

	releaseIdempotencyQuery = `
		DELETE FROM "idempotency_record"
		WHERE key = $1 AND status = 'PENDING';`
)
