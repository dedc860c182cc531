package ports

type AuditLevel string

const (
	AuditInfo    AuditLevel = "INFO"
	AuditWarning AuditLevel = "WARNING"
	AuditError   AuditLevel = "ERROR"
)

// AuditLogger is the fire-and-forget audit collaborator. Implementations
// must never block or fail the caller.
type AuditLogger interface {
	Log(level AuditLevel, message string)
}
