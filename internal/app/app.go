package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tapanbhakhar27/inventory-service/config"
	"github.com/tapanbhakhar27/inventory-service/internal/controller"
	"github.com/tapanbhakhar27/inventory-service/internal/infrastructure/tracing"
	"github.com/tapanbhakhar27/inventory-service/internal/middleware"
	"github.com/tapanbhakhar27/inventory-service/internal/repository"
	"github.com/tapanbhakhar27/inventory-service/internal/service"
	"github.com/tapanbhakhar27/inventory-service/pkg/errs"
	"github.com/tapanbhakhar27/inventory-service/pkg/validation"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	DB     *mongo.Database
	Config *config.Config
	Server *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()
	e.HTTPErrorHandler = app.errorHandler

	e.Use(echomiddleware.Recover())
	e.Use(middleware.Logger)
	e.Use(echoprometheus.NewMiddleware(""))
	e.GET("/metrics", echoprometheus.NewHandler())

	if app.Config.TracingConfig.CollectorHost != "" {
		traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to initialize tracing")
		} else {
			defer func() {
				if err := traceProvider.Shutdown(context.Background()); err != nil {
					logger.Error().Err(err).Msg("Failed to shutdown tracing")
				}
			}()

			tracer := traceProvider.Tracer("inventory-service")
			e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
					defer span.End()

					c.SetRequest(c.Request().WithContext(ctx))

					return next(c)
				}
			})
		}
	}

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "hey! This is tpn's inventory server.")
	})

	g := e.Group("/api")

	productRepo := repository.CreateNewProductRepository(app.DB)
	categoryRepo := repository.CreateNewCategoryRepository(app.DB)

	productService := service.CreateProductService(productRepo, categoryRepo)
	categoryService := service.CreateCategoryService(categoryRepo)

	controller.CreateProductController(g, productService)
	controller.CreateCategoryController(g, categoryService)

	app.Server = e
	if err := e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("Server stopped unexpectedly")
	}
}

func (app *App) StopServer() error {
	if app.Server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}

// errorHandler is the dispatcher's last resort: unmatched routes become the
// fixed 404 payload, anything else is funneled through the classifier. In
// development the response carries the raw failure's kind and message.
func (app *App) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Internal == nil &&
		(httpErr.Code == http.StatusNotFound || httpErr.Code == http.StatusMethodNotAllowed) {
		c.JSON(http.StatusNotFound, map[string]interface{}{
			"success": false,
			"message": "Route not found",
		})
		return
	}

	if errors.As(err, &httpErr) {
		if httpErr.Internal != nil {
			err = httpErr.Internal
		} else {
			err = errs.New(fmt.Sprintf("%v", httpErr.Message), httpErr.Code)
		}
	}

	result := errs.Classify(err, "GlobalErrorHandler")

	body := map[string]interface{}{
		"success":    result.Success,
		"message":    result.Message,
		"statusCode": result.StatusCode,
	}
	if app.Config.IsDevelopment() {
		body["error"] = map[string]interface{}{
			"name":    fmt.Sprintf("%T", err),
			"message": err.Error(),
		}
	}

	c.JSON(result.StatusCode, body)
}
