package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hbomb79/Reel/internal/api/auth"
	"github.com/hbomb79/Reel/internal/api/videos"
	"github.com/hbomb79/Reel/internal/metrics"
	"github.com/hbomb79/Reel/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

var log = logger.Get("API")

const shutdownGracePeriod = 10 * time.Second

type (
	RestConfig struct {
		HostAddr    string   `yaml:"host_address" env:"API_HOST_ADDR" env-default:"0.0.0.0:8080"`
		CorsOrigins []string `yaml:"cors_origins" env:"CLIENT_ORIGINS" env-separator:"," env-default:"http://localhost:5173"`
	}

	controller interface {
		SetRoutes(*echo.Group)
	}

	// The RestGateway is a thin-wrapper around the Echo HTTP router. It's sole responsibility
	// is to create the routes Reel exposes and to enforce the authentication middleware
	// where applicable.
	RestGateway struct {
		config          *RestConfig
		ec              *echo.Echo
		videoController controller
	}
)

// NewRestGateway constructs the Echo router and populates it with all the
// routes defined by the controllers.
func NewRestGateway(config *RestConfig, authProvider *auth.Provider, videoService videos.Service, maxUploadBytes int64) *RestGateway {
	ec := echo.New()
	ec.OnAddRouteHandler = func(host string, route echo.Route, handler echo.HandlerFunc, middleware []echo.MiddlewareFunc) {
		log.Emit(logger.DEBUG, "Registered new route %s %s\n", route.Method, route.Path)
	}
	ec.HidePort = true
	ec.HideBanner = true
	ec.HTTPErrorHandler = httpErrorHandler

	gateway := &RestGateway{
		config:          config,
		ec:              ec,
		videoController: videos.New(validator.New(), videoService, maxUploadBytes),
	}

	ec.Use(middleware.Logger())
	ec.Use(middleware.Recover())
	ec.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  config.CorsOrigins,
		AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, "Range"},
		ExposeHeaders: []string{echo.HeaderContentLength, "Content-Range", echo.HeaderContentDisposition, "Accept-Ranges"},
	}))
	ec.Use(metricsMiddleware)

	ec.GET("/health", health)
	ec.GET("/api/health", health)
	ec.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	authGroup := ec.Group("/api/auth", authProvider.VerifierMiddleware())
	authProvider.SetRoutes(authGroup)

	videoGroup := ec.Group("/api/videos", authProvider.VerifierMiddleware())
	gateway.videoController.SetRoutes(videoGroup)

	return gateway
}

func (gateway *RestGateway) Run(parentCtx context.Context) error {
	ctx, ctxCancel := context.WithCancelCause(parentCtx)
	wg := &sync.WaitGroup{}

	// Start echo router
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Emit(logger.INFO, "Listening on %s\n", gateway.config.HostAddr)
		if err := gateway.ec.Start(gateway.config.HostAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ctxCancel(err)
		}
	}()

	// Start thread to listen for context cancellation
	go func(ec *echo.Echo) {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
		defer cancel()
		if err := ec.Shutdown(shutdownCtx); err != nil {
			log.Warnf("Graceful shutdown failed, closing: %v\n", err)
			ec.Close()
		}
	}(gateway.ec)

	wg.Wait()

	// Return cancellation cause if any, otherwise nil as parent context
	// cancellation is not an error case we should report.
	if cause := context.Cause(ctx); cause != ctx.Err() {
		return cause
	}

	return nil
}

// ServeHTTP allows the gateway to be driven directly, without a listener.
func (gateway *RestGateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	gateway.ec.ServeHTTP(w, r)
}

func health(ec echo.Context) error {
	return ec.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// metricsMiddleware records the outcome and duration of each request, labelled by
// route template rather than raw path.
func metricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ec echo.Context) error {
		start := time.Now()
		err := next(ec)

		status := ec.Response().Status
		if err != nil && !ec.Response().Committed {
			status = NewAPIError(err).Status
		}

		route := ec.Path()
		if route == "" {
			route = "unmatched"
		}
		method := ec.Request().Method
		metrics.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		metrics.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

		return err
	}
}
