package aliases

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	perr "munchmates/internal/platform/errors"
)

// WriteOptions names the two artifact paths and the encoding style
type WriteOptions struct {
	WordsPath   string
	AliasesPath string
	Pretty      bool
}

// WriteArtifacts serializes the word list, then the alias map.
// Each file lands atomically via rename into place, but there is no
// atomicity across the two: a failure on the alias map can leave a freshly
// written word list behind. Pre-existing outputs are overwritten without
// backup
func WriteArtifacts(t *Table, opts WriteOptions) error {
	if err := writeJSON(opts.WordsPath, t.Words, opts.Pretty); err != nil {
		return perr.Wrap(err, perr.ErrorCodeIO, "write word list")
	}
	if err := writeJSON(opts.AliasesPath, t.Aliases, opts.Pretty); err != nil {
		return perr.Wrap(err, perr.ErrorCodeIO, "write alias map")
	}
	return nil
}

func writeJSON(path string, v any, pretty bool) error {
	var (
		enc []byte
		err error
	)
	if pretty {
		enc, err = json.MarshalIndent(v, "", "  ")
	} else {
		enc, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return renameio.WriteFile(path, enc, 0o644)
}
