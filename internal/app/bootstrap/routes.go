// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	appointmentsfeature "github.com/krishivishwa/agriadmin/internal/app/features/appointments"
	contentfeature "github.com/krishivishwa/agriadmin/internal/app/features/content"
	dashboardfeature "github.com/krishivishwa/agriadmin/internal/app/features/dashboard"
	errorsfeature "github.com/krishivishwa/agriadmin/internal/app/features/errors"
	galleryfeature "github.com/krishivishwa/agriadmin/internal/app/features/gallery"
	healthfeature "github.com/krishivishwa/agriadmin/internal/app/features/health"
	loginfeature "github.com/krishivishwa/agriadmin/internal/app/features/login"
	logoutfeature "github.com/krishivishwa/agriadmin/internal/app/features/logout"
	messagesfeature "github.com/krishivishwa/agriadmin/internal/app/features/messages"
	productsfeature "github.com/krishivishwa/agriadmin/internal/app/features/products"
	settingsfeature "github.com/krishivishwa/agriadmin/internal/app/features/settings"
	updatesfeature "github.com/krishivishwa/agriadmin/internal/app/features/updates"
	"github.com/krishivishwa/agriadmin/internal/app/system/auth"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, backend connection, and the
// Startup hook have completed. The console boots the template engine,
// applies session middleware, and mounts a feature router per admin
// area: dashboard (orders), products, appointments, messages, gallery,
// contents, updates, and settings.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators.
	healthHandler := healthfeature.NewHandler(deps.Backend, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli).
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Authentication
	loginHandler := loginfeature.NewHandler(deps.Backend, sessionMgr, errLog, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)

	// Dashboard (orders) lives at the root.
	dashboardHandler := dashboardfeature.NewHandler(deps.Backend, sessionMgr, errLog, logger)
	r.Mount("/", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	// Catalog
	productsHandler := productsfeature.NewHandler(deps.Backend, sessionMgr, errLog, logger)
	r.Mount("/products", productsfeature.Routes(productsHandler, sessionMgr))

	// Consultancy appointments
	appointmentsHandler := appointmentsfeature.NewHandler(deps.Backend, sessionMgr, errLog, logger)
	r.Mount("/appointments", appointmentsfeature.Routes(appointmentsHandler, sessionMgr))

	// Contact messages and testimonials
	messagesHandler := messagesfeature.NewHandler(deps.Backend, sessionMgr, errLog, logger)
	r.Mount("/messages", messagesfeature.Routes(messagesHandler, sessionMgr))

	// Image gallery
	galleryHandler := galleryfeature.NewHandler(deps.Backend, sessionMgr, errLog, logger)
	r.Mount("/gallery", galleryfeature.Routes(galleryHandler, sessionMgr))

	// Site content: hero banners and timeline
	contentHandler := contentfeature.NewHandler(deps.Backend, sessionMgr, errLog, logger)
	r.Mount("/contents", contentfeature.Routes(contentHandler, sessionMgr))

	// Updates: marquee, news, videos, newsletter
	updatesHandler := updatesfeature.NewHandler(deps.Backend, sessionMgr, errLog, logger)
	r.Mount("/updates", updatesfeature.Routes(updatesHandler, sessionMgr))

	// Admin account settings
	settingsHandler := settingsfeature.NewHandler(deps.Backend, sessionMgr, errLog, logger)
	r.Mount("/settings", settingsfeature.Routes(settingsHandler, sessionMgr))

	return r, nil
}
