package V1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"piper-tts/domain"
	"piper-tts/hander"
	"piper-tts/pkg/log"
	"piper-tts/serve"
	"piper-tts/usecase"

	"github.com/labstack/echo/v4"
)

type TtsHander struct {
	*hander.BaseHandler

	log         *log.Logger
	ttsUsecase  *usecase.TtsUsecase
	fileUsecase *usecase.FileUsecase
}

func NewTtsHander(s *serve.HttpServer, base *hander.BaseHandler, logger *log.Logger, tts *usecase.TtsUsecase, files *usecase.FileUsecase) *TtsHander {
	h := &TtsHander{
		BaseHandler: base,
		log:         logger.WithModule("TtsHander"),
		ttsUsecase:  tts,
		fileUsecase: files,
	}
	s.Echo.POST("/api/piper", h.Synthesize)
	return h
}

// Synthesize godoc
// @Summary Convert text to speech
// @Description Synthesizes text with piper and returns the audio as a download. mp3 is transcoded with ffmpeg.
// @Tags Speech
// @Accept json
// @Produce audio/wav,audio/mp3,json
// @Param request body domain.SynthesisRequest true "Synthesis request"
// @Success 200 {file} binary "speech.wav or speech.mp3"
// @Failure 400 {object} domain.ErrorResponse "Invalid request"
// @Failure 500 {object} domain.ErrorResponse "Synthesis, transcode or internal failure"
// @Router /api/piper [post]
func (h *TtsHander) Synthesize(c echo.Context) error {
	h.log.Info("synthesis request received", log.String("id", c.Response().Header().Get(echo.HeaderXRequestID)))

	req, err := decodeRequest(c.Request().Body)
	if err != nil {
		h.log.Error("failed to decode request", log.Error(err))
		return h.NewResponseWithError(c, err)
	}

	result, err := h.ttsUsecase.Synthesize(c.Request().Context(), req)
	if err != nil {
		h.log.Error("synthesis failed", log.Error(err))
		return h.NewResponseWithError(c, err)
	}

	if _, err := h.fileUsecase.Archive(c.Request().Context(), result); err != nil {
		h.log.Warn("audio not archived", log.Error(err))
	}
	return h.NewAudioResponse(c, result)
}

// decodeRequest treats an empty body, a JSON null or any JSON value that is not
// an object as a request without text. Only syntactically broken or mistyped
// JSON is an internal error.
func decodeRequest(body io.Reader) (*domain.SynthesisRequest, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, domain.NewInternal(fmt.Errorf("failed to read request body: %w", err))
	}
	req := &domain.SynthesisRequest{}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return req, nil
	}
	var value json.RawMessage
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, domain.NewInternal(fmt.Errorf("failed to decode request body: %w", err))
	}
	if value[0] != '{' {
		return req, nil
	}
	if err := json.Unmarshal(raw, req); err != nil {
		return nil, domain.NewInternal(fmt.Errorf("failed to decode request body: %w", err))
	}
	return req, nil
}
