package testutil

import (
	"github.com/light-merlin-dark/smart-find/internal/fsops"
)

// FakeMutator records filesystem mutations without performing them unless
// Passthrough is set. Errors can be injected per operation.
type FakeMutator struct {
	// Calls records every mutation in order, as "rm:<path>" or "mv:<old>-><new>".
	Calls []string

	// RemoveErr is returned by Remove when non-nil.
	RemoveErr error

	// RenameErr is returned by Rename when non-nil.
	RenameErr error

	// Passthrough performs the real mutation after recording it.
	Passthrough bool
}

var _ fsops.Mutator = (*FakeMutator)(nil)

// Remove records the call and optionally removes path.
func (f *FakeMutator) Remove(path string) error {
	f.Calls = append(f.Calls, "rm:"+path)
	if f.RemoveErr != nil {
		return f.RemoveErr
	}
	if f.Passthrough {
		return fsops.OSMutator{}.Remove(path)
	}
	return nil
}

// Rename records the call and optionally renames oldpath.
func (f *FakeMutator) Rename(oldpath, newpath string) error {
	f.Calls = append(f.Calls, "mv:"+oldpath+"->"+newpath)
	if f.RenameErr != nil {
		return f.RenameErr
	}
	if f.Passthrough {
		return fsops.OSMutator{}.Rename(oldpath, newpath)
	}
	return nil
}
