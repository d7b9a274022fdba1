package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"piper-tts/config"
	"piper-tts/domain"
	"piper-tts/pkg/log"
	"piper-tts/pkg/proc/proctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	wavBytes = []byte("RIFF\x24\x00\x00\x00WAVEfmt ")
	mp3Bytes = []byte("ID3\x04\x00\x00\xff\xfb")
)

func testConfig() *config.Config {
	return &config.Config{
		Piper: config.PiperConfig{
			Bin:             "piper",
			ModelDir:        "models",
			ModelSuffix:     "-google-medium.onnx",
			DefaultLanguage: "ne_NP",
			DefaultSpeaker:  "0",
		},
		Ffmpeg: config.FfmpegConfig{Bin: "ffmpeg"},
	}
}

func newTestTts(c *config.Config, runner *proctest.FakeRunner) *TtsUsecase {
	return NewTtsUsecase(log.Discard(), c, runner)
}

func TestPrepareDefaults(t *testing.T) {
	tts := newTestTts(testConfig(), proctest.NewFakeRunner())

	req := &domain.SynthesisRequest{Text: "hello"}
	require.NoError(t, tts.Prepare(req))

	assert.Equal(t, "ne_NP", req.Language)
	assert.Equal(t, domain.SpeakerID("0"), req.Speaker)
	assert.Equal(t, domain.FormatWav, req.Format)
}

func TestPrepareInvalid(t *testing.T) {
	c := testConfig()
	c.Synthesis.MaxTextLength = 5
	tts := newTestTts(c, proctest.NewFakeRunner())

	tests := []struct {
		name string
		req  *domain.SynthesisRequest
		msg  string
	}{
		{"nil request", nil, domain.MsgTextRequired},
		{"empty text", &domain.SynthesisRequest{}, domain.MsgTextRequired},
		{"ogg format", &domain.SynthesisRequest{Text: "hi", Format: "ogg"}, domain.MsgInvalidFormat},
		{"upper case format", &domain.SynthesisRequest{Text: "hi", Format: "WAV"}, domain.MsgInvalidFormat},
		{"path in language", &domain.SynthesisRequest{Text: "hi", Language: "../../etc/passwd"}, "Invalid language"},
		{"text too long", &domain.SynthesisRequest{Text: "नमस्ते संसार"}, "exceeds 5 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tts.Prepare(tt.req)
			require.Error(t, err)

			var se *domain.SpeechError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, domain.KindInvalidRequest, se.Kind)
			assert.Contains(t, se.Message, tt.msg)
		})
	}
}

func TestPiperArgs(t *testing.T) {
	tts := newTestTts(testConfig(), proctest.NewFakeRunner())

	args := tts.PiperArgs(&domain.SynthesisRequest{Language: "en_US", Speaker: "2"})
	assert.Equal(t, []string{
		"--model", "models/en_US-google-medium.onnx",
		"--speaker", "2",
		"--output_file", "-",
	}, args)
}

func TestSynthesizeWav(t *testing.T) {
	runner := proctest.NewFakeRunner().Script("piper", proctest.Response{Stdout: wavBytes})
	tts := newTestTts(testConfig(), runner)

	res, err := tts.Synthesize(context.Background(), &domain.SynthesisRequest{
		Text: "hello", Language: "en_US", Speaker: "0", Format: domain.FormatWav,
	})
	require.NoError(t, err)

	assert.Equal(t, wavBytes, res.Audio)
	assert.Equal(t, "audio/wav", res.ContentType())

	calls := runner.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "piper", calls[0].Name)
	assert.Equal(t, []byte("hello"), calls[0].Stdin)
}

func TestSynthesizeDefaultsReachPiper(t *testing.T) {
	runner := proctest.NewFakeRunner().Script("piper", proctest.Response{Stdout: wavBytes})
	tts := newTestTts(testConfig(), runner)

	_, err := tts.Synthesize(context.Background(), &domain.SynthesisRequest{Text: "नमस्ते"})
	require.NoError(t, err)

	calls := runner.CallsTo("piper")
	require.Len(t, calls, 1)
	assert.Equal(t, []string{
		"--model", "models/ne_NP-google-medium.onnx",
		"--speaker", "0",
		"--output_file", "-",
	}, calls[0].Args)
	assert.Equal(t, []byte("नमस्ते"), calls[0].Stdin)
	assert.Empty(t, runner.CallsTo("ffmpeg"))
}

func TestSynthesizeMp3(t *testing.T) {
	runner := proctest.NewFakeRunner().
		Script("piper", proctest.Response{Stdout: wavBytes}).
		Script("ffmpeg", proctest.Response{Stdout: mp3Bytes})
	tts := newTestTts(testConfig(), runner)

	res, err := tts.Synthesize(context.Background(), &domain.SynthesisRequest{Text: "hello", Format: domain.FormatMp3})
	require.NoError(t, err)

	assert.Equal(t, mp3Bytes, res.Audio)
	assert.Equal(t, "audio/mp3", res.ContentType())

	calls := runner.CallsTo("ffmpeg")
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"-i", "pipe:0", "-f", "mp3", "pipe:1"}, calls[0].Args)
	assert.Equal(t, wavBytes, calls[0].Stdin)
}

func TestSynthesizePiperFails(t *testing.T) {
	runner := proctest.NewFakeRunner().Script("piper", proctest.Response{
		Stderr:   []byte("Unable to find voice model models/xx_XX-google-medium.onnx"),
		ExitCode: 1,
	})
	tts := newTestTts(testConfig(), runner)

	_, err := tts.Synthesize(context.Background(), &domain.SynthesisRequest{Text: "hello", Language: "xx_XX", Format: domain.FormatMp3})
	require.Error(t, err)

	se := domain.AsSpeechError(err)
	assert.Equal(t, domain.KindSynthesisFailed, se.Kind)
	assert.Equal(t, domain.MsgSynthesisFailed, se.Message)
	assert.Contains(t, se.Details, "Unable to find voice model")
	assert.Empty(t, runner.CallsTo("ffmpeg"))
}

func TestSynthesizePiperMissing(t *testing.T) {
	tts := newTestTts(testConfig(), proctest.NewFakeRunner())

	_, err := tts.Synthesize(context.Background(), &domain.SynthesisRequest{Text: "hello"})
	require.Error(t, err)

	se := domain.AsSpeechError(err)
	assert.Equal(t, domain.KindInternal, se.Kind)
	assert.True(t, strings.HasPrefix(se.Message, "An error occurred: "))
	assert.ErrorIs(t, err, proctest.ErrNotFound)
}

func TestSynthesizeTranscodeFails(t *testing.T) {
	tests := []struct {
		name   string
		ffmpeg proctest.Response
	}{
		{"non-zero exit", proctest.Response{Stderr: []byte("pipe:0: Invalid data found"), ExitCode: 69}},
		{"cannot start", proctest.Response{Err: errors.New("fork/exec ffmpeg: permission denied")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := proctest.NewFakeRunner().
				Script("piper", proctest.Response{Stdout: wavBytes}).
				Script("ffmpeg", tt.ffmpeg)
			tts := newTestTts(testConfig(), runner)

			_, err := tts.Synthesize(context.Background(), &domain.SynthesisRequest{Text: "hello", Format: domain.FormatMp3})
			require.Error(t, err)

			se := domain.AsSpeechError(err)
			assert.Equal(t, domain.KindTranscodeFailed, se.Kind)
			assert.Equal(t, domain.ErrorResponse{Error: domain.MsgTranscodeFailed}, se.Response())
		})
	}
}

func TestSynthesizeIgnoresCallerCancellation(t *testing.T) {
	runner := proctest.NewFakeRunner().Script("piper", proctest.Response{Stdout: wavBytes})
	tts := newTestTts(testConfig(), runner)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := tts.Synthesize(ctx, &domain.SynthesisRequest{Text: "hello"})
	require.NoError(t, err)
	assert.Equal(t, wavBytes, res.Audio)
}

func TestSynthesizeIsDeterministic(t *testing.T) {
	runner := proctest.NewFakeRunner().
		Script("piper", proctest.Response{Echo: true}).
		Script("ffmpeg", proctest.Response{Stdout: []byte("mp3:"), Echo: true})
	c := testConfig()
	c.Synthesis.Timeout = time.Minute
	tts := newTestTts(c, runner)

	first, err := tts.Synthesize(context.Background(), &domain.SynthesisRequest{Text: "hello", Format: domain.FormatMp3})
	require.NoError(t, err)
	second, err := tts.Synthesize(context.Background(), &domain.SynthesisRequest{Text: "hello", Format: domain.FormatMp3})
	require.NoError(t, err)

	assert.Equal(t, []byte("mp3:hello"), first.Audio)
	assert.Equal(t, first.Audio, second.Audio)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "नम...", truncate("नमस्ते", 2))
}
