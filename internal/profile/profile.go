// Package profile defines the birth-profile vault document: YAML parsing,
// validation, and serialization.
package profile

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/starford/jyotish/internal/astro"
)

// ErrInvalid marks a document that failed to parse or validate.
var ErrInvalid = errors.New("invalid profile")

// Profile is one person's birth record as stored in the vault. The birth
// fields are inlined at the document's top level.
type Profile struct {
	Birth astro.BirthData `yaml:",inline" json:"birth"`
	Tags  []string        `yaml:"tags,omitempty" json:"tags,omitempty"`
	Notes string          `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// Validate checks the vault document: a profile must carry a display name
// on top of valid birth data.
func (p Profile) Validate() error {
	if err := validation.Validate(p.Birth.Name, validation.Required); err != nil {
		return fmt.Errorf("name: %w", err)
	}
	return p.Birth.Validate()
}

// Metadata is a lightweight representation returned by vault list
// operations.
type Metadata struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Parse decodes and validates a vault YAML document.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("profile: parse: %w: %w", ErrInvalid, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("profile: validate: %w: %w", ErrInvalid, err)
	}
	return &p, nil
}

// Marshal serializes a profile to its vault YAML form.
func Marshal(p Profile) ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("profile: marshal: %w", err)
	}
	return data, nil
}

// Checksum returns the hex-encoded SHA-256 digest of a vault document,
// used for optimistic concurrency and sync reconciliation.
func Checksum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
