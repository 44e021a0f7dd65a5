package importlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendRead(t *testing.T) {
	dir := t.TempDir()

	got, err := Read(dir)
	require.NoError(t, err)
	assert.Empty(t, got)

	first := Record{
		Timestamp:    time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC),
		SourceFile:   "jan.csv",
		StatementID:  "jan_20240201093000_1a2b3c4d",
		Transactions: 12,
		Added:        10,
		Dropped:      2,
	}
	require.NoError(t, Append(dir, first))
	require.NoError(t, Append(dir, Record{SourceFile: "feb.csv", Added: 8}))

	got, err = Read(dir)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first, got[0])
	assert.Equal(t, "feb.csv", got[1].SourceFile)
}
