package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desco97/financedashboard/internal/model"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func tx(day, desc, amount, stmtID string) model.Transaction {
	return model.Transaction{
		Date:           date(day),
		Description:    desc,
		RawDescription: desc,
		Amount:         dec(amount),
		Category:       "Food",
		Subcategory:    "Groceries",
		StatementID:    stmtID,
	}
}

func batch(id string, n int) model.StatementBatch {
	return model.StatementBatch{
		ID:               id,
		SourceFile:       id + ".csv",
		ImportedAt:       date("2024-02-01"),
		TransactionCount: n,
		DateFrom:         date("2024-01-01"),
		DateTo:           date("2024-01-31"),
	}
}

func newService(t *testing.T) *Service {
	t.Helper()
	s := NewService(t.TempDir())
	require.NoError(t, s.Load())
	return s
}

func TestMergeSortsDateDescending(t *testing.T) {
	s := newService(t)

	added, err := s.Merge(batch("a", 3), []model.Transaction{
		tx("2024-01-10", "TESCO", "-10", "a"),
		tx("2024-01-20", "SAINSBURYS", "-20", "a"),
		tx("2024-01-15", "ALDI", "-15", "a"),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	got := s.Transactions()
	require.Len(t, got, 3)
	assert.Equal(t, "SAINSBURYS", got[0].Description)
	assert.Equal(t, "ALDI", got[1].Description)
	assert.Equal(t, "TESCO", got[2].Description)
}

func TestMergeDedupIdempotent(t *testing.T) {
	s := newService(t)

	rows := make([]model.Transaction, 0, 10)
	for i := 0; i < 10; i++ {
		rows = append(rows, tx("2024-01-10", "TESCO", dec("-10").Add(decimal.NewFromInt(int64(i))).String(), "a"))
	}

	added, err := s.Merge(batch("a", 10), rows)
	require.NoError(t, err)
	assert.Equal(t, 10, added)

	// Same rows under a fresh statement id: everything deduplicates away.
	reimport := make([]model.Transaction, len(rows))
	copy(reimport, rows)
	for i := range reimport {
		reimport[i].StatementID = "b"
	}
	added, err = s.Merge(batch("b", 10), reimport)
	require.NoError(t, err)
	assert.Zero(t, added)

	assert.Len(t, s.Transactions(), 10)
	// The no-op batch is not recorded.
	require.Len(t, s.Statements(), 1)
	assert.Equal(t, "a", s.Statements()[0].ID)
}

func TestMergeExistingRowsWin(t *testing.T) {
	s := newService(t)

	first := tx("2024-01-10", "TESCO", "-10", "a")
	first.Category = "Food"
	_, err := s.Merge(batch("a", 1), []model.Transaction{first})
	require.NoError(t, err)

	dup := tx("2024-01-10", "TESCO", "-10", "b")
	dup.Category = "Shopping"
	other := tx("2024-01-11", "ALDI", "-5", "b")
	added, err := s.Merge(batch("b", 2), []model.Transaction{dup, other})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	for _, got := range s.Transactions() {
		if got.Description == "TESCO" {
			assert.Equal(t, "Food", got.Category)
			assert.Equal(t, "a", got.StatementID)
		}
	}
}

func TestMergeRejectsDuplicateBatchID(t *testing.T) {
	s := newService(t)
	_, err := s.Merge(batch("a", 1), []model.Transaction{tx("2024-01-10", "TESCO", "-10", "a")})
	require.NoError(t, err)

	_, err = s.Merge(batch("a", 1), []model.Transaction{tx("2024-01-11", "ALDI", "-5", "a")})
	assert.Error(t, err)
}

func TestRemoveStatementCascade(t *testing.T) {
	s := newService(t)
	_, err := s.Merge(batch("a", 2), []model.Transaction{
		tx("2024-01-10", "TESCO", "-10", "a"),
		tx("2024-01-11", "ALDI", "-5", "a"),
	})
	require.NoError(t, err)
	_, err = s.Merge(batch("b", 1), []model.Transaction{
		tx("2024-01-12", "SAINSBURYS", "-7", "b"),
	})
	require.NoError(t, err)

	removed, err := s.RemoveStatement("a")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	got := s.Transactions()
	require.Len(t, got, 1)
	assert.Equal(t, "SAINSBURYS", got[0].Description)
	require.Len(t, s.Statements(), 1)
	assert.Equal(t, "b", s.Statements()[0].ID)

	_, err = s.RemoveStatement("a")
	assert.ErrorIs(t, err, ErrUnknownStatement)
}

func TestRecategorize(t *testing.T) {
	s := newService(t)
	_, err := s.Merge(batch("a", 3), []model.Transaction{
		tx("2024-01-10", "TESCO", "-10", "a"),
		tx("2024-01-17", "TESCO", "-12", "a"),
		tx("2024-01-11", "ALDI", "-5", "a"),
	})
	require.NoError(t, err)

	changed, err := s.Recategorize("TESCO", "Shopping", "Department Store")
	require.NoError(t, err)
	assert.Equal(t, 2, changed)

	for _, got := range s.Transactions() {
		if got.Description == "TESCO" {
			assert.Equal(t, "Shopping", got.Category)
			assert.Equal(t, "Department Store", got.Subcategory)
		}
	}

	changed, err = s.Recategorize("NO SUCH VENDOR", "X", "Y")
	require.NoError(t, err)
	assert.Zero(t, changed)
}

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewService(dir)
	require.NoError(t, s.Load())

	row := tx("2024-01-10", "TESCO", "-10.50", "a")
	row.SourceSubcat = model.Hint("Card Purchase")
	_, err := s.Merge(batch("a", 1), []model.Transaction{row})
	require.NoError(t, err)

	reloaded := NewService(dir)
	require.NoError(t, reloaded.Load())

	got := reloaded.Transactions()
	require.Len(t, got, 1)
	assert.Equal(t, "TESCO", got[0].Description)
	assert.True(t, got[0].Amount.Equal(dec("-10.50")))
	assert.True(t, got[0].SourceSubcat.Valid)
	assert.Equal(t, "Card Purchase", got[0].SourceSubcat.Label)

	batches := reloaded.Statements()
	require.Len(t, batches, 1)
	assert.Equal(t, 1, batches[0].TransactionCount)
	assert.Equal(t, date("2024-01-01"), batches[0].DateFrom)
}
