package index

// ProfileIndex defines the interface for profile indexing operations.
// Consumers should depend on this interface rather than the concrete *DB
// type to facilitate testing with mocks.
type ProfileIndex interface {
	UpsertProfile(row ProfileRow) error
	DeleteProfile(path string) error
	GetProfile(path string) (*ProfileRow, error)
	ListProfiles(limit, offset int, tag, sort string) ([]ProfileRow, int, error)
	Search(query string, limit int) ([]SearchResult, error)
	AllPaths() (map[string]struct{}, error)
	AllChecksums() (map[string]string, error)
	Close() error
}

// Verify *DB satisfies ProfileIndex at compile time.
var _ ProfileIndex = (*DB)(nil)
