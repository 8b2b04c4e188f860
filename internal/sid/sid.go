// Package sid computes a stable identifier for an AST node: a short hash
// derived from its source location and kind, used as a diagnostic
// cross-reference that stays the same across re-runs even though the
// node's Go pointer does not.
package sid

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// SID is a stable identifier, printable and comparable.
type SID string

// New computes a stable ID from a node's canonical file path, its source
// span, and its syntactic kind (e.g. "Lambda", "FuncCall").
func New(path string, start, end int, kind string) SID {
	parts := []string{
		canonicalizePath(path),
		fmt.Sprintf("%d", start),
		fmt.Sprintf("%d", end),
		kind,
	}
	hash := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return SID(hex.EncodeToString(hash[:])[:16])
}

// canonicalizePath normalizes a file path so the same file always hashes
// the same way regardless of how it was referenced on the command line.
func canonicalizePath(path string) string {
	path = filepath.Clean(path)
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}
	if isCaseInsensitive() {
		path = strings.ToLower(path)
	}
	return filepath.ToSlash(path)
}

func isCaseInsensitive() bool {
	return runtime.GOOS == "windows" || runtime.GOOS == "darwin"
}
