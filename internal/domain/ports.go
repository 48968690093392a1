package domain

// ItemStorage is the persistence boundary. The engine treats the
// on-disk representation as an opaque ordered sequence of items;
// implementations live under internal/infra.
type ItemStorage interface {
	// Load reads all stored items. A missing store is reported as
	// ErrStoreNotFound; callers treat that as an empty store.
	Load() ([]Item, error)

	// Save writes the full item list, replacing previous contents.
	Save(items []Item) error
}

// Logger is the logging port so the engine stays free of
// infrastructure concerns. Category groups related messages
// ("engine", "storage", ...).
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards all messages.
type NopLogger struct{}

func (NopLogger) Debug(string, string) {}
func (NopLogger) Info(string, string)  {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}
