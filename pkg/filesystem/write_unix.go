//go:build !windows

package filesystem

import (
	"os"

	"github.com/google/renameio/v2"
)

// writeFileAtomicImpl writes a sibling temp file and renames it over filename.
func writeFileAtomicImpl(filename string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(filename, data, perm)
}
