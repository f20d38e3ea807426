package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzohaibtariq/fyp_portal/models"
)

func TestCanonicalStatus_AcceptsCanonicalValues(t *testing.T) {
	for _, status := range []string{StatusPending, StatusApproved, StatusRejected, StatusRevision} {
		got, err := CanonicalStatus(status)
		require.NoError(t, err)
		assert.Equal(t, status, got)
	}
}

func TestCanonicalStatus_AcceptedAliasesToApproved(t *testing.T) {
	got, err := CanonicalStatus("accepted")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, got)
}

func TestCanonicalStatus_NormalizesCaseAndWhitespace(t *testing.T) {
	got, err := CanonicalStatus("  APPROVED ")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, got)
}

func TestCanonicalStatus_RejectsUnknownValues(t *testing.T) {
	for _, status := range []string{"done", "cancelled", "", "approvedd"} {
		_, err := CanonicalStatus(status)
		assert.Error(t, err, "status %q should be rejected", status)
	}
}

func TestResolveDomain_MatchedSupervisor(t *testing.T) {
	supervisor := &models.FacultyMember{Name: "Dr. Salman Irfan", Domain: "AI"}

	assert.Equal(t, "AI", ResolveDomain(supervisor))
}

func TestResolveDomain_UnmatchedSupervisorGetsDefault(t *testing.T) {
	assert.Equal(t, "General", ResolveDomain(nil))
}

func TestNormalizeComment(t *testing.T) {
	t.Run("empty is dropped", func(t *testing.T) {
		_, ok := NormalizeComment("")
		assert.False(t, ok)
	})

	t.Run("whitespace only is dropped", func(t *testing.T) {
		_, ok := NormalizeComment("   ")
		assert.False(t, ok)
	})

	t.Run("text is trimmed", func(t *testing.T) {
		text, ok := NormalizeComment("  please add hardware details  ")
		require.True(t, ok)
		assert.Equal(t, "please add hardware details", text)
	})
}

func TestStatusCounts(t *testing.T) {
	proposals := []models.Proposal{
		{Status: "pending"},
		{Status: "approved"},
		{Status: "pending"},
		{Status: "rejected"},
		{Status: "revision"},
		{Status: "pending"},
	}

	counts := StatusCounts(proposals)

	assert.Equal(t, map[string]int{
		"pending":  3,
		"approved": 1,
		"rejected": 1,
		"revision": 1,
	}, counts)
}

func TestStatusCounts_KeysAreOpenEnded(t *testing.T) {
	proposals := []models.Proposal{{Status: "archived"}}

	assert.Equal(t, map[string]int{"archived": 1}, StatusCounts(proposals))
}

func TestStatusCounts_Idempotent(t *testing.T) {
	proposals := []models.Proposal{
		{Status: "pending"},
		{Status: "approved"},
	}

	first := StatusCounts(proposals)
	second := StatusCounts(proposals)

	assert.Equal(t, first, second)
}

func TestStatusCounts_Empty(t *testing.T) {
	assert.Empty(t, StatusCounts(nil))
}
