package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleOf_Deterministic(t *testing.T) {
	a := HandleOf([]byte("ciphertext-bytes"))
	b := HandleOf([]byte("ciphertext-bytes"))
	c := HandleOf([]byte("other-bytes"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.False(t, a.IsNull())
}

func TestHandle_HexRoundTrip(t *testing.T) {
	h := HandleOf([]byte("payload"))

	parsed, err := ParseHandle(h.String())
	require.NoError(t, err)
	assert.Equal(t, h, parsed)
}

func TestParseHandle_Invalid(t *testing.T) {
	_, err := ParseHandle("not-hex")
	assert.Error(t, err)

	_, err = ParseHandle("abcd") // too short
	assert.Error(t, err)
}

func TestNullHandle_Sentinel(t *testing.T) {
	assert.True(t, NullHandle.IsNull())
	assert.Equal(t, HandleSize*2, len(NullHandle.String()))
}

func TestAccount_CurrentHandle(t *testing.T) {
	var acct *Account
	assert.Equal(t, NullHandle, acct.CurrentHandle(), "nil account reads as null sentinel")

	acct = &Account{OwnerID: uuid.New(), TotalHandle: HandleOf([]byte("x"))}
	assert.Equal(t, NullHandle, acct.CurrentHandle(), "handle suppressed until has_total")

	acct.HasTotal = true
	assert.Equal(t, acct.TotalHandle, acct.CurrentHandle())
}

func TestGrant_Covers(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	h := HandleOf([]byte("total"))

	assert.True(t, OwnerGrant(h, owner).Covers(owner))
	assert.False(t, OwnerGrant(h, owner).Covers(other))
	assert.True(t, PublicGrant(h).Covers(other))
	assert.False(t, SystemGrant(h).Covers(owner), "processing authority is not an identity grant")
}

func TestAuditEvent_Builders(t *testing.T) {
	owner := uuid.New()
	viewer := uuid.New()
	contrib := HandleOf([]byte("c1"))
	total := HandleOf([]byte("t1"))

	e := ContributionAccepted(owner, contrib, total)
	assert.Equal(t, EventContributionAccepted, e.Type)
	require.NotNil(t, e.ContributionHandle)
	assert.Equal(t, contrib, *e.ContributionHandle)
	assert.Equal(t, total, e.Handle)

	s := TotalShared(owner, viewer, total)
	assert.Equal(t, EventTotalShared, s.Type)
	require.NotNil(t, s.ViewerID)
	assert.Equal(t, viewer, *s.ViewerID)

	p := TotalMadePublic(owner, total)
	assert.Equal(t, EventTotalMadePublic, p.Type)
	assert.Nil(t, p.ViewerID)
}
