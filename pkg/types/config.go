package types

// Config holds the resolved startup configuration for the engine. The
// database path is resolved once (see internal/paths) and threaded into
// every engine call; nothing reads it from ambient process state.
type Config struct {
	Database string `json:"database" yaml:"database"`
}

// Validate checks that the Config names a database.
func (c Config) Validate() error {
	if c.Database == "" {
		return ErrNoDatabasePath
	}
	return nil
}
