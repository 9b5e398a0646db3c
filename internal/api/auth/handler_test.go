package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailValid(t *testing.T) {
	valid := []string{
		"a@b.co",
		"user.name+tag@example.com",
		"x_%y@sub.domain.org",
	}
	for _, e := range valid {
		assert.True(t, isEmailValid(e), e)
	}

	invalid := []string{
		"",
		"plain",
		"a@b",
		"a b@c.de",
		"a@@b.com",
	}
	for _, e := range invalid {
		assert.False(t, isEmailValid(e), e)
	}
}

func TestIsPasswordStrong(t *testing.T) {
	assert.True(t, isPasswordStrong("abcdef12"))
	assert.False(t, isPasswordStrong("short1"))
	assert.False(t, isPasswordStrong("allletters"))
	assert.False(t, isPasswordStrong("12345678"))
}
