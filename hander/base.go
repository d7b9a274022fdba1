package hander

import (
	"net/http"
	"strconv"

	"piper-tts/domain"

	"github.com/labstack/echo/v4"
)

type BaseHandler struct {
}

func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

func (h *BaseHandler) NewResponseWithData(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// NewResponseWithError maps err onto its status code and JSON body. Errors that
// are not a *domain.SpeechError are reported as InternalError.
func (h *BaseHandler) NewResponseWithError(c echo.Context, err error) error {
	se := domain.AsSpeechError(err)
	return c.JSON(se.StatusCode(), se.Response())
}

// NewAudioResponse sends the result as a file download.
func (h *BaseHandler) NewAudioResponse(c echo.Context, result *domain.SynthesisResult) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+strconv.Quote(result.Filename()))
	return c.Blob(http.StatusOK, result.ContentType(), result.Audio)
}
