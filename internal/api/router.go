package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/paywall-system/docs"
	"github.com/99minutos/paywall-system/internal/api/handler"
	"github.com/99minutos/paywall-system/internal/api/middleware"
	"github.com/99minutos/paywall-system/internal/core/domain"
	"github.com/99minutos/paywall-system/internal/core/ports"
)

const metricsSubsystem = "paywall"

// Dependencies is everything NewRouter needs to build the API.
type Dependencies struct {
	Articles ports.ArticleService
	Auth     ports.AuthService
	Sessions ports.SessionService
	Members  ports.MemberAuthorizer

	Session middleware.SessionConfig
	// Readiness maps dependency names to the pings behind /health/ready.
	Readiness map[string]handler.Pinger
	// Registry receives the HTTP metrics; nil uses the default Prometheus registry.
	Registry *prometheus.Registry
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))

	var metricsHandler echo.HandlerFunc
	if deps.Registry != nil {
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem:  metricsSubsystem,
			Registerer: deps.Registry,
		}))
		metricsHandler = echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: deps.Registry,
		})
	} else {
		e.Use(echoprometheus.NewMiddleware(metricsSubsystem))
		metricsHandler = echoprometheus.NewHandler()
	}

	// --- Operational routes (no session) ---
	healthHandler := handler.NewHealthHandler(deps.Readiness)
	e.GET("/health", healthHandler.Liveness)        // liveness: is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness: are dependencies up?
	e.GET("/metrics", metricsHandler)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Dependencies ---
	articleHandler := handler.NewArticleHandler(deps.Articles)
	authHandler := handler.NewAuthHandler(deps.Auth)
	sessionHandler := handler.NewSessionHandler(deps.Sessions)

	session := middleware.Session(deps.Session)

	// --- Session routes ---
	e.GET("/clear", sessionHandler.Clear, session)
	e.DELETE("/clear", sessionHandler.Clear, session)
	e.POST("/login", authHandler.Login, session)
	e.DELETE("/logout", authHandler.Logout, session)
	e.GET("/check_session", authHandler.CheckSession, session)

	// --- Article routes ---
	e.GET("/articles", articleHandler.List, session)
	e.GET("/articles/:id", articleHandler.Show, session)

	members := e.Group("/members_only_articles", session, middleware.RequireMember(deps.Members))
	members.GET("", articleHandler.MembersList)
	members.GET("/:id", articleHandler.MembersShow)

	return e
}

// requestLogger writes one zerolog event per request. Member routes also log
// the user stored by middleware.RequireMember.
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
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			if user, ok := c.Get(middleware.UserKey).(*domain.User); ok && user != nil {
				evt = evt.Int64("user_id", user.ID)
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
