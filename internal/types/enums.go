package types

// Lead enrichment status values
const (
	StatusEnriched   = "enriched"
	StatusProcessing = "processing"
	StatusFailed     = "failed"
	StatusPending    = "pending"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Confidence bounds
const (
	ConfidenceMin = 0
	ConfidenceMax = 100
)

// SessionCookieName is the cookie carrying the session token. The name is
// shared with the frontend; changing it logs everyone out.
const SessionCookieName = "leadgrid_session"

// LeadStatuses lists every valid lead status.
var LeadStatuses = []string{StatusEnriched, StatusProcessing, StatusFailed, StatusPending}

// IsValidLeadStatus reports whether s is one of the four lead statuses.
func IsValidLeadStatus(s string) bool {
	for _, v := range LeadStatuses {
		if v == s {
			return true
		}
	}
	return false
}
