package domain

import "time"

// AuditStatus enumerates the outcome of a metered consumption attempt.
type AuditStatus string

const (
	AuditSuccess AuditStatus = "SUCCESS"
	AuditFailed  AuditStatus = "FAILED"
)

// AuditEntry is the immutable record of one consumption attempt. UserName is a
// snapshot taken at the time of the action and is never backfilled when the
// account is renamed. Country is a best-effort ISO code of the request origin.
type AuditEntry struct {
	ID        string
	UserID    string
	UserName  string
	Action    string
	Cost      int
	Timestamp time.Time
	Status    AuditStatus
	Country   string
}

// TotalConsumed sums the cost of successful attempts, used for spend reporting.
func TotalConsumed(entries []AuditEntry) int {
	total := 0
	for _, e := range entries {
		if e.Status == AuditSuccess {
			total += e.Cost
		}
	}
	return total
}
