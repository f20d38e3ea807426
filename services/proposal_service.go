package services

import (
	"fmt"
	"strings"

	"github.com/mzohaibtariq/fyp_portal/models"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusRevision = "revision"
)

// CanonicalStatus validates a reviewer-supplied status against the canonical
// set. The faculty portal historically sent "accepted"; it is treated as an
// alias of approved so stored data stays canonical.
func CanonicalStatus(status string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case StatusPending:
		return StatusPending, nil
	case StatusApproved, "accepted":
		return StatusApproved, nil
	case StatusRejected:
		return StatusRejected, nil
	case StatusRevision:
		return StatusRevision, nil
	default:
		return "", fmt.Errorf("invalid status %q", status)
	}
}

// ResolveDomain returns the supervisor's research domain, or the default
// when no supervisor was matched at submission time.
func ResolveDomain(supervisor *models.FacultyMember) string {
	if supervisor == nil {
		return DefaultDomain
	}
	return supervisor.Domain
}

// NormalizeComment trims the text and reports whether anything is left.
// Whitespace-only comments are dropped without effect.
func NormalizeComment(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	return trimmed, trimmed != ""
}

// StatusCounts aggregates proposals by status for the dashboard. Keys are
// whatever statuses occur in the data.
func StatusCounts(proposals []models.Proposal) map[string]int {
	counts := make(map[string]int)
	for _, p := range proposals {
		counts[p.Status]++
	}
	return counts
}
