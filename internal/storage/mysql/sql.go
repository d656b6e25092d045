package mysql

const insertActionSQL = `
INSERT INTO automation_actions
  (kind, guest_name, property, intent, urgent, subject, body, created_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, COALESCE(?, CURRENT_TIMESTAMP(3)))
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

// Newest first; matches the (created_at, id) indexes.
const listActionsSQL = `
SELECT id, kind, guest_name, property, intent, urgent, subject, body, created_at
FROM automation_actions
ORDER BY created_at DESC, id DESC
LIMIT ?
`

const listActionsByKindSQL = `
SELECT id, kind, guest_name, property, intent, urgent, subject, body, created_at
FROM automation_actions
WHERE kind = ?
ORDER BY created_at DESC, id DESC
LIMIT ?
`
