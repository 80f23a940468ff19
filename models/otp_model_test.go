package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOtpExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	otp := Otp{ExpiresAt: now.Add(OtpExpiry)}

	assert.False(t, otp.Expired(now))
	assert.False(t, otp.Expired(now.Add(OtpExpiry)))
	assert.True(t, otp.Expired(now.Add(OtpExpiry+time.Second)))
}
