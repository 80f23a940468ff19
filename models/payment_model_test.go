package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardLast4(t *testing.T) {
	assert.Equal(t, "1111", CardLast4("4111111111111111"))
	assert.Equal(t, "4242", CardLast4("4242 4242 4242 4242"))
	assert.Equal(t, "123", CardLast4("123"))
	assert.Equal(t, "", CardLast4(""))
}

func TestNewTransactionID(t *testing.T) {
	a := NewTransactionID()
	b := NewTransactionID()

	assert.True(t, strings.HasPrefix(a, "TXN-"))
	assert.Len(t, a, 20)
	assert.Equal(t, strings.ToUpper(a), a)
	assert.NotEqual(t, a, b)
}
