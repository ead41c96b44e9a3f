// Package errs collects the sentinel errors shared by the scheduler, trap
// handler and filesystem. Kept as its own small dependency-free package
// rather than a grab-bag of package-level vars in each file, the way
// gopheros splits kfmt/sync/vmm into narrow single-purpose packages.
package errs

import "errors"

var (
	ErrTableFull      = errors.New("table full")
	ErrOutOfMemory    = errors.New("out of memory")
	ErrUnknownSyscall = errors.New("unknown syscall")
	ErrUnhandledTrap  = errors.New("unhandled trap")
	ErrNotFound       = errors.New("not found")
	ErrInvalidName    = errors.New("invalid name")
	ErrNotEmpty       = errors.New("not empty")
)
