// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, logging level); AppConfig is
// everything specific to the storefront.
//
// MongoURI is deliberately allowed to be empty: the process still starts and
// serves requests, and every store-dependent endpoint fails uniformly with a
// "Database not configured" server error while GET /test reports the missing
// configuration. That keeps the diagnostics endpoint useful on a broken
// deployment.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string; empty means the store is unconfigured
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Order notification mode: "log" (default) or "off"
	OrderNotify string
}
