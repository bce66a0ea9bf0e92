package index

import (
	"log/slog"
	"time"

	"github.com/starford/jyotish/internal/profile"
	"github.com/starford/jyotish/internal/storage"
)

// Sync walks the vault and brings the index up to date:
//   - new/changed documents are parsed and upserted
//   - files removed from disk are deleted from the index
//
// Documents that fail to parse are skipped with a warning so one broken
// file never blocks the rest of the vault.
func Sync(db *DB, store storage.Provider, logger *slog.Logger) error {
	metas, err := store.List("")
	if err != nil {
		return err
	}

	checksums, err := db.AllChecksums()
	if err != nil {
		return err
	}

	disk := make(map[string]struct{}, len(metas))
	for _, m := range metas {
		disk[m.Path] = struct{}{}

		if checksums[m.Path] == m.Checksum {
			continue
		}

		data, err := store.Read(m.Path)
		if err != nil {
			logger.Warn("sync: read failed", slog.String("path", m.Path), slog.String("error", err.Error()))
			continue
		}
		if err := IndexDocument(db, m.Path, data, m.UpdatedAt); err != nil {
			logger.Warn("sync: index failed", slog.String("path", m.Path), slog.String("error", err.Error()))
		} else {
			logger.Debug("sync: indexed", slog.String("path", m.Path))
		}
	}

	// Remove stale entries.
	for p := range checksums {
		if _, ok := disk[p]; !ok {
			if err := db.DeleteProfile(p); err != nil {
				logger.Warn("sync: delete failed", slog.String("path", p), slog.String("error", err.Error()))
			} else {
				logger.Debug("sync: removed stale", slog.String("path", p))
			}
		}
	}

	return nil
}

// IndexDocument parses a vault document and upserts it into the DB.
// Exported so that the service and watcher can reuse it.
func IndexDocument(db *DB, path string, data []byte, updatedAt time.Time) error {
	p, err := profile.Parse(data)
	if err != nil {
		return err
	}
	return db.UpsertProfile(ProfileRow{
		Path:      path,
		Name:      p.Birth.Name,
		DOB:       p.Birth.DOB,
		TOB:       p.Birth.TOB,
		Lat:       p.Birth.Lat,
		Lng:       p.Birth.Lng,
		TZ:        p.Birth.TZ,
		Tags:      p.Tags,
		Notes:     p.Notes,
		Checksum:  profile.Checksum(data),
		UpdatedAt: updatedAt,
	})
}
