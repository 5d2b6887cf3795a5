package utils

import (
	"os"

	"github.com/juju/errors"
)

// OpenLogFile opens path for appending, creating it if needed.
func OpenLogFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Annotatef(err, "opening log file %q", path)
	}
	return f, nil
}
