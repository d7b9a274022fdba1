package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type Format string

const (
	FormatWav Format = "wav"
	FormatMp3 Format = "mp3"
)

var SupportedFormats = []Format{FormatWav, FormatMp3}

// SpeakerID selects a voice inside a multi-speaker model. Clients send it either
// as a JSON string or as a JSON integer.
type SpeakerID string

func (s *SpeakerID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = SpeakerID(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("piper_speaker must be a string or an integer: %w", err)
	}
	if _, err := n.Int64(); err != nil {
		return fmt.Errorf("piper_speaker must be a string or an integer, got %s", n)
	}
	*s = SpeakerID(n.String())
	return nil
}

// SynthesisRequest is the body of POST /api/piper.
type SynthesisRequest struct {
	Text     string    `json:"text" example:"नमस्ते"`
	Language string    `json:"language,omitempty" example:"ne_NP"`
	Speaker  SpeakerID `json:"piper_speaker,omitempty" swaggertype:"string" example:"0"`
	Format   Format    `json:"format,omitempty" enums:"wav,mp3" example:"wav"`
}

// SynthesisResult holds finished audio until it is written to the response.
type SynthesisResult struct {
	Audio  []byte
	Format Format
}

func (r *SynthesisResult) ContentType() string {
	return "audio/" + string(r.Format)
}

func (r *SynthesisResult) Filename() string {
	return "speech." + string(r.Format)
}

// ErrorResponse is the JSON error body. Details is present only for
// SynthesisFailed, and then always, even when stderr was empty.
type ErrorResponse struct {
	Error   string  `json:"error"`
	Details *string `json:"details,omitempty"`
}

type HealthResponse struct {
	Status      string          `json:"status"`
	Service     string          `json:"service"`
	Executables map[string]bool `json:"executables"`
}
