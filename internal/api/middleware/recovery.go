package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/listing-aggregator/pkg/logger"
)

// Recovery returns Echo middleware that recovers from panics, logs the stack
// trace with the request-scoped logger when one is present, and returns a
// 500 error envelope to the client.
func Recovery(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					buf := make([]byte, 4096)
					n := runtime.Stack(buf, false)

					logger.FromContext(c.Request().Context(), log).Error("panic recovered",
						"error", fmt.Sprint(r),
						"method", c.Request().Method,
						"path", c.Request().URL.Path,
						"stack", string(buf[:n]),
					)

					err = c.JSON(http.StatusInternalServerError, map[string]string{
						"status": "error",
						"error":  "internal server error",
					})
				}
			}()
			return next(c)
		}
	}
}
