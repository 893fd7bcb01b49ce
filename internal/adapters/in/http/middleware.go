package http

import (
	"errors"
	"log/slog"
	"net/http"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const principalKey = "principal"

func requestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			s.logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}

// authenticate is the Basic auth validator. Wrong credentials yield 401; the
// principal of a successful login is kept on the context.
func (s *Server) authenticate(username, password string, c echo.Context) (bool, error) {
	query, err := queries.NewAuthenticateQuery(username, password)
	if err != nil {
		return false, nil
	}

	principal, err := s.queries.Authenticate.Handle(c.Request().Context(), query)
	if errors.Is(err, services.ErrUnauthorized) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	c.Set(principalKey, principal)
	return true, nil
}

func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !principalOf(c).IsAdmin {
			return c.JSON(http.StatusForbidden, Error{
				Code:      http.StatusForbidden,
				Message:   "admin account required",
				RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
			})
		}
		return next(c)
	}
}

func principalOf(c echo.Context) queries.AuthenticateQueryResponse {
	principal, _ := c.Get(principalKey).(queries.AuthenticateQueryResponse)
	return principal
}

func username(c echo.Context) string {
	return principalOf(c).Account.Username
}
