package api

import (
	"fmt"
	"net/http"
	"strings"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/quetzart/directory-api/docs"
	"github.com/quetzart/directory-api/internal/api/handler"
	"github.com/quetzart/directory-api/internal/api/middleware"
	"github.com/quetzart/directory-api/internal/core/domain"
	"github.com/quetzart/directory-api/internal/core/service"
	"github.com/quetzart/directory-api/internal/infrastructure/db/postgres"
	"github.com/quetzart/directory-api/internal/infrastructure/http/handlers"
	"github.com/quetzart/directory-api/internal/infrastructure/media"
	"github.com/quetzart/directory-api/internal/pkg/config"
)

// bodyLimit leaves room for several inline images in one request.
const bodyLimit = "25M"

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *gorm.DB, log zerolog.Logger) (*echo.Echo, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("router: sql.DB: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Secure())
	e.Use(requestLogger(log))
	e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType},
	}))
	e.Use(echomiddleware.BodyLimit(bodyLimit))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem: "directory",
		Skipper: func(c echo.Context) bool {
			p := c.Path()
			return p == "/metrics" || strings.HasPrefix(p, "/health") || strings.HasPrefix(p, "/swagger")
		},
	}))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	directoryRepo := postgres.NewDirectoryRepository(db)
	mediaStore := media.NewLocalStore(cfg.Media.Dir, cfg.Media.PublicBase, log.With().Str("component", "media").Logger())
	tokens := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())

	authService := service.NewAuthService(userRepo, mediaStore, tokens, log.With().Str("component", "auth").Logger())
	profileService := service.NewProfileService(userRepo, mediaStore, log.With().Str("component", "profile").Logger())
	directoryService := service.NewDirectoryService(directoryRepo, userRepo, log.With().Str("component", "directory").Logger())

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	publicHandler := handler.NewPublicHandler(directoryService)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/register-artist", authHandler.RegisterArtist)
	auth.POST("/register-establishment", authHandler.RegisterEstablishment)
	auth.POST("/login", authHandler.Login)

	// --- Profile routes (bearer token required) ---
	profile := e.Group("/profile",
		middleware.Auth(authService),
		middleware.RBAC(domain.RoleArtist, domain.RoleEstablishment),
	)
	profile.GET("/me", profileHandler.Me)
	profile.PATCH("/me", profileHandler.Update)
	profile.POST("/me/profile-image", profileHandler.SetProfileImage)
	profile.POST("/me/gallery", profileHandler.AddGallery)
	profile.DELETE("/me/gallery/:id", profileHandler.DeleteGalleryItem)

	// --- Public directory ---
	public := e.Group("/public")
	public.GET("/artists", publicHandler.Artists)
	public.GET("/establishments", publicHandler.Establishments)
	public.GET("/artworks", publicHandler.Artworks)
	public.GET("/home", publicHandler.Home)
	public.GET("/artist/:user_id", publicHandler.Artist)

	// --- Media files ---
	e.Static("/media", cfg.Media.Dir)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(sqlDB, cfg.Media.Dir)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Ops ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}

// requestLogger emits one zerolog event per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Status >= http.StatusInternalServerError {
				evt = log.Error().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
