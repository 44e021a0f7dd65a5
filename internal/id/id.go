// Package id generates statement batch identifiers.
package id

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const timestampFormat = "20060102150405"

// NewStatementID returns a batch ID like "jan_statement_20240201093015_1a2b3c4d":
// the source file stem, the import timestamp, and a short random suffix so two
// imports of the same file never collide.
func NewStatementID(filename string, at time.Time) string {
	return fmt.Sprintf("%s_%s_%s", Stem(filename), at.UTC().Format(timestampFormat), shortUUID())
}

// Stem returns the base filename without extension, lowercased, with spaces
// folded to underscores.
func Stem(filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ToLower(strings.TrimSpace(base))
	return strings.Join(strings.Fields(base), "_")
}

func shortUUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
