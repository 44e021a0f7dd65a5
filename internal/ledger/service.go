// Package ledger owns the persistent transaction ledger: merge with
// deduplication, statement removal and manual recategorization, backed by
// ledger.csv and statements.csv in the data directory.
package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/desco97/financedashboard/internal/model"
)

// ErrUnknownStatement is returned for operations on a statement ID that was
// never imported.
var ErrUnknownStatement = errors.New("unknown statement id")

const (
	ledgerFile     = "ledger.csv"
	statementsFile = "statements.csv"
)

// Service serializes all ledger mutations behind a single writer lock.
// Readers get snapshot copies and never observe a partial write.
type Service struct {
	dataDir string

	mu      sync.RWMutex
	txs     []model.Transaction
	batches []model.StatementBatch
}

// NewService creates a ledger Service rooted at dataDir. Call Load before use.
func NewService(dataDir string) *Service {
	return &Service{dataDir: dataDir}
}

// Load reads the ledger and statement files. Missing files mean an empty
// ledger, not an error.
func (s *Service) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := readTransactionsFile(filepath.Join(s.dataDir, ledgerFile))
	if err != nil {
		return err
	}
	batches, err := readStatementsFile(filepath.Join(s.dataDir, statementsFile))
	if err != nil {
		return err
	}

	s.txs, s.batches = txs, batches
	return nil
}

// Transactions returns a snapshot copy of the ledger, date descending.
func (s *Service) Transactions() []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Transaction, len(s.txs))
	copy(out, s.txs)
	return out
}

// Statements returns a snapshot copy of the imported batch records.
func (s *Service) Statements() []model.StatementBatch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.StatementBatch, len(s.batches))
	copy(out, s.batches)
	return out
}

// Merge appends a batch to the ledger, drops incoming rows whose
// (date, description, amount) triple already exists (existing rows win),
// re-sorts date descending and persists. Returns the number of transactions
// actually added. A batch that deduplicates to nothing is not recorded.
func (s *Service) Merge(batch model.StatementBatch, txs []model.Transaction) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.batches {
		if b.ID == batch.ID {
			return 0, fmt.Errorf("statement %s already imported", batch.ID)
		}
	}

	seen := make(map[string]bool, len(s.txs)+len(txs))
	for _, tx := range s.txs {
		seen[tx.DedupKey()] = true
	}

	added := 0
	merged := make([]model.Transaction, len(s.txs), len(s.txs)+len(txs))
	copy(merged, s.txs)
	for _, tx := range txs {
		key := tx.DedupKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, tx)
		added++
	}
	if added == 0 {
		return 0, nil
	}

	sortByDateDesc(merged)

	batch.TransactionCount = added
	batches := append(s.batches, batch)

	if err := s.persist(merged, batches); err != nil {
		return 0, err
	}
	s.txs, s.batches = merged, batches
	return added, nil
}

// RemoveStatement deletes a batch record and every transaction imported under
// it. This is the only bulk deletion path.
func (s *Service) RemoveStatement(id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, b := range s.batches {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, fmt.Errorf("%w: %s", ErrUnknownStatement, id)
	}

	var kept []model.Transaction
	removed := 0
	for _, tx := range s.txs {
		if tx.StatementID == id {
			removed++
			continue
		}
		kept = append(kept, tx)
	}
	batches := append(append([]model.StatementBatch{}, s.batches[:idx]...), s.batches[idx+1:]...)

	if err := s.persist(kept, batches); err != nil {
		return 0, err
	}
	s.txs, s.batches = kept, batches
	return removed, nil
}

// Recategorize reassigns every transaction with an exactly matching cleaned
// description, returning the number of rows changed.
func (s *Service) Recategorize(description, category, subcategory string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := 0
	updated := make([]model.Transaction, len(s.txs))
	copy(updated, s.txs)
	for i := range updated {
		if updated[i].Description != description {
			continue
		}
		updated[i].Category = category
		updated[i].Subcategory = subcategory
		changed++
	}
	if changed == 0 {
		return 0, nil
	}

	if err := s.persist(updated, s.batches); err != nil {
		return 0, err
	}
	s.txs = updated
	return changed, nil
}

func (s *Service) persist(txs []model.Transaction, batches []model.StatementBatch) error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	if err := writeFile(filepath.Join(s.dataDir, ledgerFile), func(f *os.File) error {
		return WriteTransactions(f, txs)
	}); err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dataDir, statementsFile), func(f *os.File) error {
		return WriteStatements(f, batches)
	})
}

// writeFile writes through a temp file and renames, so a crash mid-write
// never leaves a truncated ledger.
func writeFile(path string, write func(*os.File) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

func sortByDateDesc(txs []model.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date)
	})
}

func readTransactionsFile(path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return ReadTransactions(f)
}

func readStatementsFile(path string) ([]model.StatementBatch, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return ReadStatements(f)
}
