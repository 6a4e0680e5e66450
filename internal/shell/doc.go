// Package shell inspects the shell rc files that smart-find-setup edits.
// It recognises the PATH entry that puts ~/.local/bin ahead of the system
// find. Those edits are never reverted by the lifecycle hooks.
package shell
