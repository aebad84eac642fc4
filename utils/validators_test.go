package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("player@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.in"))
	assert.False(t, IsValidEmail("player@"))
	assert.False(t, IsValidEmail("player example.com"))
}

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Secret123", true},
		{"secret12!", true},
		{"Ab1!", false},
		{"secretsecret", false},
		{"SECRET123", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidPassword(tt.password), tt.password)
	}
}

func TestParseLimit(t *testing.T) {
	assert.Equal(t, 50, ParseLimit("", 50, 200))
	assert.Equal(t, 50, ParseLimit("abc", 50, 200))
	assert.Equal(t, 50, ParseLimit("-3", 50, 200))
	assert.Equal(t, 10, ParseLimit("10", 50, 200))
	assert.Equal(t, 200, ParseLimit("1000", 50, 200))
}
