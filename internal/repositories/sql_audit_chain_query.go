package repositories

const (
	// Transaction-scoped advisory lock. Unlike a FOR UPDATE on the tail row
	// it also serializes the genesis append, where there is no row to lock.
	lockAuditChainQuery = `SELECT pg_advisory_xact_lock($1);`

	getAuditTailHashQuery = `
		SELECT hash_this
		FROM "audit_log"
		ORDER BY seq DESC
		LIMIT 1;`

	insertAuditEntryQuery = `INSERT INTO "audit_log" (
		category,
		message,
		hash_prev,
		hash_this,
		created_at
	) VALUES (
		$1, $2, $3, $4, NOW()
	) RETURNING seq;`

	getAuditTailQuery = `
		SELECT seq, category, message, hash_prev, hash_this, created_at
		FROM "audit_log"
		ORDER BY seq DESC
		LIMIT 1;`

	listAuditAllQuery = `
		SELECT seq, category, message, hash_prev, hash_this, created_at
		FROM "audit_log"
		ORDER BY seq ASC;`

	listAuditRangeQuery = `
		SELECT seq, category, message, hash_prev, hash_this, created_at
		FROM "audit_log"
		WHERE seq >= $1 AND seq <= $2
		ORDER BY seq ASC;`

	listAuditMatchingQuery = `
		SELECT seq, category, message, hash_prev, hash_this, created_at
		FROM "audit_log"
		WHERE message LIKE $1 AND category = ANY($2)
		ORDER BY seq ASC;`
)
