// Package constants centralizes shared limits and timeouts.
package constants

import "time"

// API defaults.
const (
	// DefaultAPIEndpoint is the CMA base URL.
	DefaultAPIEndpoint = "https://site-api.datocms.com"

	// APIVersion is sent as the X-Api-Version header on every request.
	APIVersion = "3"

	// DefaultUserAgent identifies the client.
	DefaultUserAgent = "datocms-mcp/1.0"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits. Retries only ever apply to 429 and 5xx responses; every
// other failure surfaces immediately.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 500 * time.Millisecond

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Response shaping.
const (
	// MaxResponseLength is the maximum size in bytes of a single MCP text
	// content block. Longer payloads are split into sequential blocks.
	MaxResponseLength = 50000

	// DefaultPageLimit is the page size used when a list tool does not
	// specify one.
	DefaultPageLimit = 30

	// MaxPageLimit is the largest page size the CMA accepts.
	MaxPageLimit = 500
)

// Client manager sizing.
const (
	// DefaultClientCacheSize bounds the number of cached upstream client
	// sessions (one per token/environment/kind triple).
	DefaultClientCacheSize = 128
)
