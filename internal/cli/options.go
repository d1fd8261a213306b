package cli

// Options holds the flags shared by every command.
type Options struct {
	LogLevel string
	LogJSON  bool
	Debug    bool

	// RedisURL selects the Redis world backend, e.g. redis://localhost:6379/0.
	// Empty means worlds live in process memory.
	RedisURL    string
	RedisPrefix string

	// JSON switches command output to machine-readable JSON.
	JSON bool
}
