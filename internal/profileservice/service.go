package profileservice

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/starford/jyotish/internal/apperr"
	"github.com/starford/jyotish/internal/astro"
	"github.com/starford/jyotish/internal/index"
	"github.com/starford/jyotish/internal/profile"
	"github.com/starford/jyotish/internal/storage"
)

// ProfileDetail is the full representation of a vault profile.
type ProfileDetail struct {
	Path      string          `json:"path"`
	Birth     astro.BirthData `json:"birth"`
	Tags      []string        `json:"tags"`
	Notes     string          `json:"notes,omitempty"`
	Checksum  string          `json:"checksum"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProfileListItem is a lightweight item in a list response.
type ProfileListItem struct {
	Path      string    `json:"path"`
	Name      string    `json:"name"`
	DOB       string    `json:"dob"`
	Checksum  string    `json:"checksum"`
	Tags      []string  `json:"tags"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Service coordinates storage and index operations.
type Service struct {
	store storage.Provider
	db    *index.DB
}

// NewService creates a new profile service.
func NewService(store storage.Provider, db *index.DB) *Service {
	return &Service{store: store, db: db}
}

// GetProfile reads a profile from storage and parses it.
func (s *Service) GetProfile(_ context.Context, path string) (*ProfileDetail, error) {
	data, err := s.store.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return s.buildDetail(path, data)
}

// Birth loads just the birth data of a stored profile. Chart endpoints use
// it to resolve a vault path into computation input.
func (s *Service) Birth(ctx context.Context, path string) (*astro.BirthData, error) {
	detail, err := s.GetProfile(ctx, path)
	if err != nil {
		return nil, err
	}
	return &detail.Birth, nil
}

// CreateProfile writes a new vault document and indexes it.
func (s *Service) CreateProfile(_ context.Context, path string, content []byte) (*ProfileDetail, error) {
	if _, err := s.store.Read(path); err == nil {
		return nil, apperr.ErrAlreadyExists
	}
	if _, err := profile.Parse(content); err != nil {
		return nil, err
	}
	if err := s.store.Write(path, content); err != nil {
		return nil, err
	}
	if err := index.IndexDocument(s.db, path, content, time.Now()); err != nil {
		return nil, err
	}
	return s.buildDetail(path, content)
}

// UpdateProfile writes updated content with optimistic concurrency.
func (s *Service) UpdateProfile(_ context.Context, path string, content []byte, ifMatch string) (*ProfileDetail, error) {
	existing, err := s.store.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	if ifMatch != "" && ifMatch != profile.Checksum(existing) {
		return nil, apperr.ErrConflict
	}
	if _, err := profile.Parse(content); err != nil {
		return nil, err
	}
	if err := s.store.Write(path, content); err != nil {
		return nil, err
	}
	if err := index.IndexDocument(s.db, path, content, time.Now()); err != nil {
		return nil, err
	}
	return s.buildDetail(path, content)
}

// DeleteProfile removes a profile from storage and index.
func (s *Service) DeleteProfile(_ context.Context, path string) error {
	if err := s.store.Delete(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return apperr.ErrNotFound
		}
		return err
	}
	return s.db.DeleteProfile(path)
}

// ListProfiles returns paginated profiles with an optional tag filter.
func (s *Service) ListProfiles(_ context.Context, limit, offset int, tag, sort string) ([]ProfileListItem, int, error) {
	rows, total, err := s.db.ListProfiles(limit, offset, tag, sort)
	if err != nil {
		return nil, 0, err
	}
	items := make([]ProfileListItem, len(rows))
	for i, r := range rows {
		items[i] = ProfileListItem{
			Path:      r.Path,
			Name:      r.Name,
			DOB:       r.DOB,
			Checksum:  r.Checksum,
			Tags:      nonNilSlice(r.Tags),
			UpdatedAt: r.UpdatedAt,
		}
	}
	return items, total, nil
}

// Search delegates profile search to the index.
func (s *Service) Search(_ context.Context, query string, limit int) ([]index.SearchResult, error) {
	return s.db.Search(query, limit)
}

// buildDetail constructs a ProfileDetail from raw data without re-reading
// the file.
func (s *Service) buildDetail(path string, data []byte) (*ProfileDetail, error) {
	p, err := profile.Parse(data)
	if err != nil {
		return nil, err
	}
	return &ProfileDetail{
		Path:      path,
		Birth:     p.Birth,
		Tags:      nonNilSlice(p.Tags),
		Notes:     p.Notes,
		Checksum:  profile.Checksum(data),
		UpdatedAt: time.Now(),
	}, nil
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
