// Package storage defines the profile vault file-system abstraction.
package storage

import "github.com/starford/jyotish/internal/profile"

// Provider is the interface for vault file operations.
type Provider interface {
	// List returns metadata for every profile document under dir (relative
	// to the vault root).
	List(dir string) ([]profile.Metadata, error)
	// Read returns the raw bytes of the file at path (relative to the vault root).
	Read(path string) ([]byte, error)
	// Write atomically writes content to path (relative to the vault root).
	Write(path string, content []byte) error
	// Delete removes the file at path (relative to the vault root).
	Delete(path string) error
	// Move renames oldPath to newPath (both relative to the vault root).
	Move(oldPath, newPath string) error
}
