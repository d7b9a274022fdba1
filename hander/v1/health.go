package V1

import (
	"piper-tts/config"
	"piper-tts/domain"
	"piper-tts/hander"
	"piper-tts/pkg/proc"
	"piper-tts/serve"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
)

type HealthHander struct {
	*hander.BaseHandler

	config *config.Config
	runner proc.Runner
}

func NewHealthHander(s *serve.HttpServer, base *hander.BaseHandler, c *config.Config, runner proc.Runner) *HealthHander {
	h := &HealthHander{
		BaseHandler: base,
		config:      c,
		runner:      runner,
	}
	s.Echo.GET("/health", h.Health)
	return h
}

// Health godoc
// @Summary Service health
// @Description Reports whether the piper and ffmpeg executables resolve on this host.
// @Tags Health
// @Produce json
// @Success 200 {object} domain.HealthResponse
// @Router /health [get]
func (h *HealthHander) Health(c echo.Context) error {
	bins := map[string]string{
		"piper":  h.config.Piper.Bin,
		"ffmpeg": h.config.Ffmpeg.Bin,
	}
	found := lo.MapValues(bins, func(bin string, _ string) bool {
		_, err := h.runner.LookPath(bin)
		return err == nil
	})
	return h.NewResponseWithData(c, domain.HealthResponse{
		Status:      "ok",
		Service:     h.config.ServeName,
		Executables: found,
	})
}
