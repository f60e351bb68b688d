package router

import (
	"net/http"

	"todo-backend/pkg/adapter/controller"
	"todo-backend/pkg/infrastructure/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Path of route
const (
	HealthCheckPath = "/health_check"
	ListPath        = "/"
	CreatePath      = "/create"
	UpdatePath      = "/update/:id"
	DeletePath      = "/:id"
)

// Options of router
type Options struct {
	Logger *zap.Logger
}

// New creates route endpoint
func New(ctrl controller.Controller, options Options) *echo.Echo {
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return ulid.Make().String()
		},
	}))
	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderXRequestedWith,
			echo.HeaderContentType,
			echo.HeaderAccept,
		},
	}))

	e.GET(HealthCheckPath, func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	todo := handler.NewTodo(ctrl.Todo)
	e.GET(ListPath, todo.List)
	e.POST(CreatePath, todo.Create)
	e.PUT(UpdatePath, todo.Update)
	e.DELETE(DeletePath, todo.Delete)

	return e
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}

			err := v.Error
			if err == nil {
				if handled, ok := c.Get(handler.ErrorKey).(error); ok {
					err = handled
				}
			}
			if err != nil {
				fields = append(fields, zap.Error(err))
			}

			switch {
			case v.Status >= http.StatusInternalServerError:
				logger.Error("request", fields...)
			case v.Status >= http.StatusBadRequest:
				logger.Warn("request", fields...)
			default:
				logger.Info("request", fields...)
			}
			return nil
		},
	})
}
