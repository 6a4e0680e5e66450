// Package fsops abstracts the mutating filesystem calls made during cleanup.
// Production code uses OSMutator; tests inject testutil.FakeMutator to prove
// which mutations happen and to simulate failures.
package fsops

import "os"

// Mutator abstracts filesystem mutations.
type Mutator interface {
	// Remove deletes a single file.
	Remove(path string) error

	// Rename moves oldpath to newpath, replacing newpath if it exists.
	Rename(oldpath, newpath string) error
}

// OSMutator performs real mutations via the os package.
type OSMutator struct{}

var _ Mutator = OSMutator{}

// Remove calls os.Remove.
func (OSMutator) Remove(path string) error {
	return os.Remove(path)
}

// Rename calls os.Rename.
func (OSMutator) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}
