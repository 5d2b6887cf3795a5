package utils

import (
	"os"

	"github.com/juju/errors"
	"golang.org/x/sys/unix"
)

// RedirectFile points the descriptor of from at to, so writes to from
// (eg: panic traces on stderr) end up in to.
func RedirectFile(from, to *os.File) error {
	if err := unix.Dup3(int(to.Fd()), int(from.Fd()), 0); err != nil {
		return errors.Annotatef(err, "redirecting %s to %s", from.Name(), to.Name())
	}
	return nil
}
