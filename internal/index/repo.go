package index

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ProfileRow represents a row in the profiles table.
type ProfileRow struct {
	Path      string
	Name      string
	DOB       string
	TOB       string
	Lat       float64
	Lng       float64
	TZ        string
	Tags      []string
	Notes     string
	Checksum  string
	UpdatedAt time.Time
}

// SearchResult represents one search hit.
type SearchResult struct {
	Path string
	Name string
	DOB  string
}

// UpsertProfile inserts or replaces a profile row.
func (db *DB) UpsertProfile(row ProfileRow) error {
	tagsJSON, _ := json.Marshal(row.Tags)
	_, err := db.conn.Exec(`
		INSERT INTO profiles (path, name, dob, tob, lat, lng, tz, tags, notes, checksum, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			name       = excluded.name,
			dob        = excluded.dob,
			tob        = excluded.tob,
			lat        = excluded.lat,
			lng        = excluded.lng,
			tz         = excluded.tz,
			tags       = excluded.tags,
			notes      = excluded.notes,
			checksum   = excluded.checksum,
			updated_at = excluded.updated_at
	`, row.Path, row.Name, row.DOB, row.TOB, row.Lat, row.Lng, row.TZ,
		string(tagsJSON), row.Notes, row.Checksum, row.UpdatedAt)
	if err != nil {
		return fmt.Errorf("index: upsert profile: %w", err)
	}
	return nil
}

// DeleteProfile removes a profile row.
func (db *DB) DeleteProfile(path string) error {
	if _, err := db.conn.Exec(`DELETE FROM profiles WHERE path = ?`, path); err != nil {
		return fmt.Errorf("index: delete profile: %w", err)
	}
	return nil
}

// GetProfile returns one profile row, or nil when absent.
func (db *DB) GetProfile(path string) (*ProfileRow, error) {
	row := db.conn.QueryRow(`
		SELECT path, name, dob, tob, lat, lng, tz, tags, notes, checksum, updated_at
		FROM profiles WHERE path = ?
	`, path)
	p, err := scanProfile(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("index: get profile: %w", err)
	}
	return p, nil
}

// ListProfiles returns paginated profiles with an optional tag filter.
// sort accepts "updated_at" (default), "name", "path", or "dob".
func (db *DB) ListProfiles(limit, offset int, tag, sort string) ([]ProfileRow, int, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	orderBy := "updated_at DESC"
	switch sort {
	case "name":
		orderBy = "name ASC"
	case "path":
		orderBy = "path ASC"
	case "dob":
		orderBy = "dob ASC"
	}

	where := ""
	args := []any{}
	if tag != "" {
		// Tags are stored as a JSON array; match the quoted element.
		where = `WHERE tags LIKE ?`
		args = append(args, `%"`+tag+`"%`)
	}

	var total int
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM profiles `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("index: count profiles: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT path, name, dob, tob, lat, lng, tz, tags, notes, checksum, updated_at
		FROM profiles %s ORDER BY %s LIMIT ? OFFSET ?
	`, where, orderBy)
	rows, err := db.conn.Query(query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("index: list profiles: %w", err)
	}
	defer rows.Close()

	var out []ProfileRow
	for rows.Next() {
		p, err := scanProfile(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *p)
	}
	return out, total, rows.Err()
}

// Search matches profiles by name, tags, or notes.
func (db *DB) Search(query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 20
	}
	like := "%" + query + "%"
	rows, err := db.conn.Query(`
		SELECT path, name, dob
		FROM profiles
		WHERE name LIKE ? OR tags LIKE ? OR notes LIKE ?
		ORDER BY name ASC
		LIMIT ?
	`, like, like, like, limit)
	if err != nil {
		return nil, fmt.Errorf("index: search: %w", err)
	}
	defer rows.Close()

	var out []SearchResult
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.Path, &r.Name, &r.DOB); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// AllPaths returns every indexed profile path.
func (db *DB) AllPaths() (map[string]struct{}, error) {
	rows, err := db.conn.Query(`SELECT path FROM profiles`)
	if err != nil {
		return nil, fmt.Errorf("index: all paths: %w", err)
	}
	defer rows.Close()
	out := make(map[string]struct{})
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		out[p] = struct{}{}
	}
	return out, rows.Err()
}

// AllChecksums returns path → checksum for every indexed profile.
func (db *DB) AllChecksums() (map[string]string, error) {
	rows, err := db.conn.Query(`SELECT path, checksum FROM profiles`)
	if err != nil {
		return nil, fmt.Errorf("index: all checksums: %w", err)
	}
	defer rows.Close()
	out := make(map[string]string)
	for rows.Next() {
		var p, cs string
		if err := rows.Scan(&p, &cs); err != nil {
			return nil, err
		}
		out[p] = cs
	}
	return out, rows.Err()
}

func scanProfile(scan func(...any) error) (*ProfileRow, error) {
	var p ProfileRow
	var tagsJSON string
	if err := scan(&p.Path, &p.Name, &p.DOB, &p.TOB, &p.Lat, &p.Lng, &p.TZ,
		&tagsJSON, &p.Notes, &p.Checksum, &p.UpdatedAt); err != nil {
		return nil, err
	}
	_ = json.Unmarshal([]byte(tagsJSON), &p.Tags)
	return &p, nil
}
