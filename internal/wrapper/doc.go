// Package wrapper classifies the find wrapper script installed by
// smart-find-setup. A file at the wrapper path is only considered ours when
// its content carries the ownership Marker; anything else is left alone.
package wrapper
