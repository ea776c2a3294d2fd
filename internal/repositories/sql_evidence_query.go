package repositories

const (
	listApprovalsQuery = `
		SELECT approver, role, approved_at, ticket_ref
		FROM "release_approval"
		WHERE abn = $1 AND tax_type = $2 AND period_id = $3
		ORDER BY approved_at ASC;`

	getRulesManifestQuery = `
		SELECT id, hash
		FROM "rules_manifest"
		WHERE id = $1;`

	getReleaseTicketQuery = `
		SELECT payload, signature, key_id
		FROM "release_ticket"
		WHERE abn = $1 AND tax_type = $2 AND period_id = $3
		ORDER BY created_at DESC
		LIMIT 1;`
)
