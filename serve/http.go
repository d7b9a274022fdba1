package serve

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"piper-tts/config"
	"piper-tts/domain"
	"piper-tts/pkg/log"

	"github.com/google/uuid"
	"github.com/google/wire"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

var ProviderSet = wire.NewSet(NewHttpServer)

type HttpServer struct {
	Echo   *echo.Echo
	config *config.Config
	log    *log.Logger
}

func NewHttpServer(c *config.Config, l *log.Logger) *HttpServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &HttpServer{
		Echo:   e,
		config: c,
		log:    l.WithModule("HttpServer"),
	}
	e.HTTPErrorHandler = s.handleError

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				log.String("id", v.RequestID),
				log.String("method", v.Method),
				log.String("uri", v.URI),
				log.Int("status", v.Status),
				log.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				s.log.Error("request failed", append(attrs, log.Error(v.Error))...)
				return nil
			}
			s.log.Info("request", attrs...)
			return nil
		},
	}))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			s.log.Error("panic recovered", log.Error(err), log.String("stack", string(stack)))
			return err
		},
	}))

	return s
}

// handleError renders anything that escaped a handler as a JSON error body.
func (s *HttpServer) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	body := domain.AsSpeechError(err).Response()

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		body = domain.ErrorResponse{Error: fmt.Sprint(he.Message)}
	} else {
		var se *domain.SpeechError
		if errors.As(err, &se) {
			code = se.StatusCode()
		}
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, body)
	}
	if err != nil {
		s.log.Error("failed to write error response", log.Error(err))
	}
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *HttpServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", log.String("addr", s.config.Port), log.String("service", s.config.ServeName))
		if err := s.Echo.Start(s.config.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	timeout := s.config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	s.log.Info("shutting down", log.Duration("timeout", timeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.Echo.Shutdown(shutdownCtx)
}
