package api

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	echo "github.com/labstack/echo/v5"
)

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			return next(c)
		}
	}
}

// requestLogger logs one line per request with method, path, status and latency.
func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			start := time.Now()
			err := next(c)

			status := 0
			if res, uerr := echo.UnwrapResponse(c.Response()); uerr == nil {
				status = res.Status
			}
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}
			slog.Info("HTTP request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds())
			return err
		}
	}
}

// recoverPanics converts handler panics into 500 responses instead of
// tearing down the connection.
func recoverPanics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("Handler panic",
						"path", c.Request().URL.Path,
						"panic", fmt.Sprint(r),
						"stack", string(debug.Stack()))
					err = echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
				}
			}()
			return next(c)
		}
	}
}

// bodyLimit rejects request bodies larger than maxBytes with 413 before the
// handler reads them.
func bodyLimit(maxBytes int64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			req := c.Request()
			if req.ContentLength > maxBytes {
				return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "request body too large")
			}
			req.Body = http.MaxBytesReader(c.Response(), req.Body, maxBytes)
			return next(c)
		}
	}
}

// ipWindow tracks one client's request count in the current fixed window.
type ipWindow struct {
	windowStart time.Time
	count       int
}

// rateLimit applies a fixed per-minute request cap per client IP. Rejections
// carry Retry-After with the seconds until the window resets. A zero or
// negative limit disables the middleware.
func rateLimit(perMinute int) echo.MiddlewareFunc {
	var (
		mu      sync.Mutex
		clients = make(map[string]*ipWindow)
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			if perMinute <= 0 {
				return next(c)
			}

			ip, _, err := net.SplitHostPort(c.Request().RemoteAddr)
			if err != nil {
				ip = c.Request().RemoteAddr
			}

			now := time.Now()
			mu.Lock()
			w, ok := clients[ip]
			if !ok || now.Sub(w.windowStart) >= time.Minute {
				w = &ipWindow{windowStart: now}
				clients[ip] = w
			}
			w.count++
			over := w.count > perMinute
			retryAfter := time.Minute - now.Sub(w.windowStart)

			// Opportunistic cleanup keeps the map from growing unbounded.
			if len(clients) > 10000 {
				for k, v := range clients {
					if now.Sub(v.windowStart) >= time.Minute {
						delete(clients, k)
					}
				}
			}
			mu.Unlock()

			if over {
				c.Response().Header().Set("Retry-After",
					fmt.Sprintf("%d", int(retryAfter.Seconds())+1))
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
