// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, env). AppConfig is everything specific to the admin console:
// where the store backend lives, how sessions are signed, and how the
// console presents itself.
type AppConfig struct {
	// Backend API configuration
	BackendBaseURL string // Base URL of the store backend API (e.g., https://api.krishivishwa.com/api)

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: agriadmin-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Presentation
	SiteName string // Name shown in the shell header and page titles
}
