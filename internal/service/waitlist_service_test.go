package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/dto"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/model"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/repository"
)

func TestWaitlistSignupIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewWaitlistService(repository.NewWaitlistRepository(db))

	first, err := svc.Signup(ctxb(), dto.WaitlistSignupRequest{Email: "Pat@Example.com"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, first.Position)
	assert.Len(t, first.ReferralCode, 8)

	// Same address, different case and surrounding whitespace.
	second, err := svc.Signup(ctxb(), dto.WaitlistSignupRequest{Email: "  pat@example.com "})
	require.NoError(t, err)
	assert.Equal(t, first.ReferralCode, second.ReferralCode)
	assert.EqualValues(t, 1, second.Position)

	var count int64
	require.NoError(t, db.Model(&model.WaitlistEntry{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestWaitlistPositionIsFIFO(t *testing.T) {
	db := newTestDB(t)
	svc := NewWaitlistService(repository.NewWaitlistRepository(db))

	emails := []string{"a@example.com", "b@example.com", "c@example.com"}
	for i, email := range emails {
		resp, err := svc.Signup(ctxb(), dto.WaitlistSignupRequest{Email: email})
		require.NoError(t, err)
		assert.EqualValues(t, i+1, resp.Position)
	}

	// Re-checking an earlier entry still reports its original slot.
	resp, err := svc.Signup(ctxb(), dto.WaitlistSignupRequest{Email: "b@example.com"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, resp.Position)
}

func TestWaitlistReferralCreditsBothSides(t *testing.T) {
	db := newTestDB(t)
	svc := NewWaitlistService(repository.NewWaitlistRepository(db))

	referrer, err := svc.Signup(ctxb(), dto.WaitlistSignupRequest{Email: "first@example.com"})
	require.NoError(t, err)
	assert.False(t, referrer.EarlyAccess)

	referred, err := svc.Signup(ctxb(), dto.WaitlistSignupRequest{
		Email:        "second@example.com",
		ReferralCode: &referrer.ReferralCode,
	})
	require.NoError(t, err)
	assert.True(t, referred.EarlyAccess)

	var entry model.WaitlistEntry
	require.NoError(t, db.Where("email = ?", "first@example.com").First(&entry).Error)
	assert.Equal(t, 1, entry.ReferralCount)
	assert.True(t, entry.EarlyAccess)

	var referredEntry model.WaitlistEntry
	require.NoError(t, db.Where("email = ?", "second@example.com").First(&referredEntry).Error)
	require.NotNil(t, referredEntry.ReferredBy)
	assert.Equal(t, referrer.ReferralCode, *referredEntry.ReferredBy)
}

func TestWaitlistUnknownReferralCodeIsIgnored(t *testing.T) {
	db := newTestDB(t)
	svc := NewWaitlistService(repository.NewWaitlistRepository(db))

	bogus := "NOPENOPE"
	resp, err := svc.Signup(ctxb(), dto.WaitlistSignupRequest{
		Email:        "solo@example.com",
		ReferralCode: &bogus,
	})
	require.NoError(t, err)
	assert.False(t, resp.EarlyAccess)

	var entry model.WaitlistEntry
	require.NoError(t, db.Where("email = ?", "solo@example.com").First(&entry).Error)
	assert.Nil(t, entry.ReferredBy)
}

func TestWaitlistRejectsInvalidEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewWaitlistService(repository.NewWaitlistRepository(db))

	for _, email := range []string{"", "not-an-email", "missing@tld", "two words@example.com"} {
		_, err := svc.Signup(ctxb(), dto.WaitlistSignupRequest{Email: email})
		assert.Error(t, err, "email %q", email)
	}
}

func TestSubscribeIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewWaitlistService(repository.NewWaitlistRepository(db))

	require.NoError(t, svc.Subscribe(ctxb(), "news@example.com"))
	require.NoError(t, svc.Subscribe(ctxb(), "News@example.com"))

	var count int64
	require.NoError(t, db.Model(&model.EmailSubscriber{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
