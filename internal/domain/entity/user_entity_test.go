package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFullName(t *testing.T) {
	assert.Equal(t, "Ada Draper", (&User{FirstName: "Ada", LastName: "Draper"}).FullName())
	assert.Equal(t, "Ada", (&User{FirstName: "Ada"}).FullName())
	assert.Equal(t, "Draper", (&User{LastName: "Draper"}).FullName())
	assert.Equal(t, "", (&User{}).FullName())
}

func TestResetTokenLifecycle(t *testing.T) {
	now := time.Now()
	hash := "deadbeef"
	future := now.Add(10 * time.Minute)
	past := now.Add(-time.Minute)

	u := &User{}
	assert.False(t, u.HasActiveResetToken(now), "no token outstanding")

	u.ResetTokenHash = &hash
	u.ResetTokenExp = &future
	assert.True(t, u.HasActiveResetToken(now))

	u.ResetTokenExp = &past
	assert.False(t, u.HasActiveResetToken(now), "expired token is not active")

	u.ClearResetToken()
	assert.Nil(t, u.ResetTokenHash)
	assert.Nil(t, u.ResetTokenExp)
}
