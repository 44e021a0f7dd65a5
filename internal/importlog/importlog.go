// Package importlog keeps an append-only audit trail of statement imports,
// one JSON record per line under <data>/logs/imports.jsonl.
package importlog

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Record is one import event.
type Record struct {
	Timestamp    time.Time `json:"timestamp"`
	SourceFile   string    `json:"source_file"`
	StatementID  string    `json:"statement_id"`
	Transactions int       `json:"transactions"`
	Added        int       `json:"added"`
	Dropped      int       `json:"dropped"`
	CommitHash   string    `json:"commit_hash,omitempty"`
}

const (
	logDir  = "logs"
	logFile = "imports.jsonl"
)

// Append writes a record to the import log, creating the log on first use.
func Append(dataDir string, rec Record) error {
	dir := filepath.Join(dataDir, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dir, logFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding import record: %w", err)
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("writing import record: %w", err)
	}
	return nil
}

// Read returns all records in the import log, oldest first. A missing log
// reads as empty.
func Read(dataDir string) ([]Record, error) {
	f, err := os.Open(filepath.Join(dataDir, logDir, logFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	var out []Record
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if len(sc.Bytes()) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			return nil, fmt.Errorf("line %d: decoding import record: %w", len(out)+1, err)
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading import log: %w", err)
	}
	return out, nil
}
