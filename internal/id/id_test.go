package id

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewStatementID(t *testing.T) {
	at := time.Date(2024, 2, 1, 9, 30, 15, 0, time.UTC)
	got := NewStatementID("/tmp/Jan Statement.csv", at)

	assert.True(t, strings.HasPrefix(got, "jan_statement_20240201093015_"), got)
	parts := strings.Split(got, "_")
	assert.Len(t, parts[len(parts)-1], 8)

	// Two IDs for the same file and instant never collide.
	assert.NotEqual(t, got, NewStatementID("/tmp/Jan Statement.csv", at))
}

func TestStem(t *testing.T) {
	assert.Equal(t, "jan_statement", Stem("Jan Statement.CSV"))
	assert.Equal(t, "statement", Stem("/a/b/statement.pdf"))
}
