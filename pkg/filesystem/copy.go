package filesystem

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/edna/pkg/errors"
	"github.com/arthur-debert/edna/pkg/logging"
	cp "github.com/otiai10/copy"
)

// Copy recursively copies the contents of source into destination, skipping
// every visited entry whose path (source joined with the entry names) equals
// one of excluded. Both sides are compared lexically cleaned, never resolved.
// destination is created when missing. Existing files are overwritten;
// nothing is rolled back when the copy fails halfway. Symlinks to files are
// copied as files, symlinks to directories are recreated as links.
func Copy(source, destination string, excluded []string) error {
	logger := logging.GetLogger("filesystem.copy")
	done := logging.LogOperationStart(logger, "copy")
	defer done()

	srcInfo, err := os.Stat(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read source %s", source)
	}
	if !srcInfo.IsDir() {
		return errors.Newf(errors.ErrInvalidInput, "source %s is not a directory", source).
			WithDetail("source", source)
	}

	if _, err := os.Stat(destination); os.IsNotExist(err) {
		if err := os.MkdirAll(destination, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", destination)
		}
	} else if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read destination %s", destination)
	}

	dstInfo, err := os.Stat(destination)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read destination %s", destination)
	}
	if !dstInfo.IsDir() {
		return errors.New(errors.ErrDestinationIsFile,
			"the destination cannot be a file whilst the source is a directory").
			WithDetail("source", source).
			WithDetail("destination", destination)
	}

	skip := make(map[string]struct{}, len(excluded))
	for _, path := range excluded {
		skip[filepath.Clean(path)] = struct{}{}
	}

	logger.Debug().
		Str("source", source).
		Str("destination", destination).
		Strs("excluded", excluded).
		Msg("Copying template files")

	opts := cp.Options{
		OnSymlink: func(src string) cp.SymlinkAction {
			if info, err := os.Stat(src); err == nil && info.IsDir() {
				return cp.Shallow
			}
			return cp.Deep
		},
		Skip: func(_ os.FileInfo, src, _ string) (bool, error) {
			if _, ok := skip[filepath.Clean(src)]; ok {
				logger.Debug().Str("path", src).Msg("Skipping excluded path")
				return true, nil
			}
			return false, nil
		},
		PreserveTimes: false,
		PreserveOwner: false,
	}

	if err := cp.Copy(source, destination, opts); err != nil {
		return errors.Wrapf(err, errors.ErrCopy, "failed to copy %s to %s", source, destination)
	}

	return nil
}

// CreateEmptyDirectory creates path and any missing parents
func CreateEmptyDirectory(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", path)
	}
	return nil
}
