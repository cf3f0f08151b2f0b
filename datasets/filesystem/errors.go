package filesystem

import "os"

import "github.com/pkg/errors"

// Error is a sentinel error of the filesystem package.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

var (
	ErrPathNotFound       = Error{"path not found"}
	ErrNotFileOrDirectory = Error{"path is neither a file nor a directory"}
	ErrNotReadable        = Error{"file is not readable"}
	ErrShortRecord        = Error{"not enough values for a record"}
)

// FormatError reports a manifest or record source that is not in the
// expected format.
type FormatError struct {
	Format string
	Err    error
}

func (err *FormatError) Error() string {
	if err.Err == nil {
		return "unrecognized format " + err.Format
	}
	return "malformed " + err.Format + ": " + err.Err.Error()
}

func (err *FormatError) Unwrap() error {
	return err.Err
}

// CheckFile verifies that path exists, is a regular file and can be opened.
func CheckFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return errors.Wrapf(ErrPathNotFound, "%q", path)
	} else if err != nil {
		return errors.Wrapf(ErrNotReadable, "%q: %v", path, err)
	}
	if info.IsDir() {
		return errors.Wrapf(ErrNotFileOrDirectory, "%q is a directory", path)
	}
	if !info.Mode().IsRegular() {
		return errors.Wrapf(ErrNotFileOrDirectory, "%q", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(ErrNotReadable, "%q: %v", path, err)
	}
	return f.Close()
}
