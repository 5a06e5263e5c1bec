package filesystem

import (
	"os"

	"github.com/arthur-debert/edna/pkg/errors"
)

// WriteFileAtomic replaces path with data. On Unix readers never observe a
// partial file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if err := writeFileAtomicImpl(path, data, perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	return nil
}
