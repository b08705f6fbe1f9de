package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for nap. It
// aggregates all sub-configurations and is populated by merging values from
// environment variables, command-line flags, an optional JSON file, and
// built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds configuration for the application's SQLite database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Catalog holds settings for the Paradox price catalog: seed table path,
	// text encoding, and cache lifetime.
	Catalog Catalog `envPrefix:"CATALOG_"`

	// Export holds the fixed letterhead strings rendered into the exported
	// Word document. They are deployment-specific prose, so they live in
	// configuration rather than code.
	Export Export `envPrefix:"EXPORT_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format. Defaults to "localhost:5000".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for persistence backends.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds settings for the application SQLite database that persists
// groups, group membership and settings.
type DB struct {
	// Path is the filesystem path of the SQLite database file.
	// Defaults to "app.db".
	// Env: STORAGE_DB_PATH
	Path string `env:"PATH"`
}

// Catalog holds settings for reading the Paradox price catalog.
type Catalog struct {
	// TablePath is the initial path of the Paradox table file. It only seeds
	// the persistent "db_path" setting; the runtime value is managed through
	// the settings API. Defaults to "items.DB".
	// Env: CATALOG_TABLE_PATH
	TablePath string `env:"TABLE_PATH"`

	// Encoding is the IANA name of the single-byte encoding used by Alpha
	// fields in the catalog. Defaults to "windows-1251".
	// Env: CATALOG_ENCODING
	Encoding string `env:"ENCODING"`

	// CacheTTL is how long a loaded catalog snapshot stays fresh before the
	// table file is reread. Defaults to 5m.
	// Env: CATALOG_CACHE_TTL
	CacheTTL time.Duration `env:"CACHE_TTL"`
}

// Export holds the letterhead and footer strings of the exported protocol
// appendix. All fields have defaults matching the agency template.
type Export struct {
	// Title is the top, bold, centered line of the letterhead.
	// Env: EXPORT_TITLE
	Title string `env:"TITLE"`

	// Subtitle is the second centered letterhead line.
	// Env: EXPORT_SUBTITLE
	Subtitle string `env:"SUBTITLE"`

	// Directorate is the third centered letterhead line.
	// Env: EXPORT_DIRECTORATE
	Directorate string `env:"DIRECTORATE"`

	// Address is the contact line printed under the separator.
	// Env: EXPORT_ADDRESS
	Address string `env:"ADDRESS"`

	// Appendix is the "Приложение №1 към Протокол №..." line.
	// Env: EXPORT_APPENDIX
	Appendix string `env:"APPENDIX"`

	// Obligee is the audited company line.
	// Env: EXPORT_OBLIGEE
	Obligee string `env:"OBLIGEE"`

	// EIK is the company identification number line.
	// Env: EXPORT_EIK
	EIK string `env:"EIK"`

	// Site is the commercial site line.
	// Env: EXPORT_SITE
	Site string `env:"SITE"`

	// Footer is the page footer text.
	// Env: EXPORT_FOOTER
	Footer string `env:"FOOTER"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshInterval is how often the catalog refresh job pre-warms the
	// catalog cache. Zero disables the job and the catalog is reread lazily
	// on cache expiry only.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
