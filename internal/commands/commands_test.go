package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desco97/financedashboard/internal/config"
	"github.com/desco97/financedashboard/internal/importlog"
	"github.com/desco97/financedashboard/internal/ledger"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func initProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	out, err := run(t, "--dir", dir, "init")
	require.NoError(t, err)
	require.Contains(t, out, "Initialized financedash project")
	return dir
}

const sampleStatement = `Date,Description,Amount
2024-01-15,TESCO STORES 3142,-45.60
2024-01-16,ACME LTD SALARY,2500.00
2024-01-17,NETFLIX.COM,-9.99
`

func writeStatement(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInitCreatesProject(t *testing.T) {
	dir := initProject(t)

	assert.FileExists(t, filepath.Join(dir, config.Filename))
	assert.DirExists(t, filepath.Join(dir, "data"))
	assert.DirExists(t, filepath.Join(dir, "data", "logs"))
	assert.DirExists(t, filepath.Join(dir, "data", ".git"))
}

func TestInitRefusesExistingProject(t *testing.T) {
	dir := initProject(t)

	_, err := run(t, "--dir", dir, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestCommandsRequireInit(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "--dir", dir, "report")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "financedash init")
}

func TestImportEndToEnd(t *testing.T) {
	dir := initProject(t)
	path := writeStatement(t, dir, "january.csv", sampleStatement)

	out, err := run(t, "--dir", dir, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "3 transactions (3 new, 0 duplicate, 0 dropped)")
	assert.Contains(t, out, "Food/Groceries")
	assert.Contains(t, out, "Income/Salary/Wages")

	svc := ledger.NewService(filepath.Join(dir, "data"))
	require.NoError(t, svc.Load())
	assert.Len(t, svc.Transactions(), 3)
	require.Len(t, svc.Statements(), 1)
	assert.Equal(t, 3, svc.Statements()[0].TransactionCount)

	recs, err := importlog.Read(filepath.Join(dir, "data"))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 3, recs[0].Added)
	assert.NotEmpty(t, recs[0].CommitHash)
}

func TestImportSkipsDuplicates(t *testing.T) {
	dir := initProject(t)
	path := writeStatement(t, dir, "january.csv", sampleStatement)

	_, err := run(t, "--dir", dir, "import", path)
	require.NoError(t, err)

	out, err := run(t, "--dir", dir, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "3 transactions (0 new, 3 duplicate, 0 dropped)")

	svc := ledger.NewService(filepath.Join(dir, "data"))
	require.NoError(t, svc.Load())
	assert.Len(t, svc.Transactions(), 3)
	assert.Len(t, svc.Statements(), 1, "no-op import should not record a batch")
}

func TestImportUnknownFile(t *testing.T) {
	dir := initProject(t)

	_, err := run(t, "--dir", dir, "import", filepath.Join(dir, "missing.csv"))
	require.Error(t, err)
}

func TestStatementsListAndRemove(t *testing.T) {
	dir := initProject(t)
	path := writeStatement(t, dir, "january.csv", sampleStatement)
	_, err := run(t, "--dir", dir, "import", path)
	require.NoError(t, err)

	recs, err := importlog.Read(filepath.Join(dir, "data"))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	id := recs[0].StatementID

	out, err := run(t, "--dir", dir, "statements", "list")
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "2024-01-15 to 2024-01-17")

	out, err = run(t, "--dir", dir, "statements", "remove", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed "+id+" (3 transactions)")

	out, err = run(t, "--dir", dir, "statements", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No statements imported.")
}

func TestStatementsRemoveUnknown(t *testing.T) {
	dir := initProject(t)

	_, err := run(t, "--dir", dir, "statements", "remove", "nope")
	require.ErrorIs(t, err, ledger.ErrUnknownStatement)
}

func TestRecategorize(t *testing.T) {
	dir := initProject(t)
	path := writeStatement(t, dir, "january.csv", sampleStatement)
	_, err := run(t, "--dir", dir, "import", path)
	require.NoError(t, err)

	svc := ledger.NewService(filepath.Join(dir, "data"))
	require.NoError(t, svc.Load())
	desc := svc.Transactions()[0].Description

	out, err := run(t, "--dir", dir, "recategorize", desc, "Miscellaneous", "Other")
	require.NoError(t, err)
	assert.Contains(t, out, "Recategorized 1 transaction(s) as Miscellaneous/Other")

	require.NoError(t, svc.Load())
	var found bool
	for _, tx := range svc.Transactions() {
		if tx.Description == desc {
			found = true
			assert.Equal(t, "Miscellaneous", tx.Category)
			assert.Equal(t, "Other", tx.Subcategory)
		}
	}
	assert.True(t, found)
}

func TestRecategorizeUnknownCategoryWarns(t *testing.T) {
	dir := initProject(t)

	out, err := run(t, "--dir", dir, "recategorize", "whatever", "NotACategory", "Other")
	require.NoError(t, err)
	assert.Contains(t, out, "is not a configured category")
	assert.Contains(t, out, `No transactions match "whatever"`)
}

func TestReport(t *testing.T) {
	dir := initProject(t)
	path := writeStatement(t, dir, "january.csv", sampleStatement)
	_, err := run(t, "--dir", dir, "import", path)
	require.NoError(t, err)

	out, err := run(t, "--dir", dir, "report")
	require.NoError(t, err)
	assert.Contains(t, out, "Total income:    2500.00")
	assert.Contains(t, out, "Total outgoings: 55.59")
	assert.Contains(t, out, "Net savings:     2444.41")
	assert.Contains(t, out, "Outgoings by category:")
	assert.Contains(t, out, "2024-01")
}

func TestTax(t *testing.T) {
	dir := initProject(t)

	out, err := run(t, "--dir", dir, "tax", "50000")
	require.NoError(t, err)
	assert.Contains(t, out, "Total tax:      6307.50")
	assert.Contains(t, out, "Effective rate: 12.6%")
	assert.Contains(t, out, "After tax:      43692.50")
}

func TestTaxBadIncome(t *testing.T) {
	dir := initProject(t)

	_, err := run(t, "--dir", dir, "tax", "a-lot")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing income")
}
