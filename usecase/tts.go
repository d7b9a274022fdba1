package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"piper-tts/config"
	"piper-tts/domain"
	"piper-tts/pkg/log"
	"piper-tts/pkg/proc"

	"github.com/samber/lo"
)

var languagePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// TtsUsecase turns text into audio with the piper executable, transcoding
// through ffmpeg when mp3 is requested. It holds only immutable config.
type TtsUsecase struct {
	l      *log.Logger
	config *config.Config
	runner proc.Runner
}

func NewTtsUsecase(l *log.Logger, c *config.Config, runner proc.Runner) *TtsUsecase {
	return &TtsUsecase{
		l:      l.WithModule("TtsUsecase"),
		config: c,
		runner: runner,
	}
}

// Prepare fills defaults in place and validates the request.
func (t *TtsUsecase) Prepare(req *domain.SynthesisRequest) error {
	if req == nil || req.Text == "" {
		return domain.NewInvalidRequest(domain.MsgTextRequired)
	}

	req.Language = lo.Ternary(req.Language == "", t.config.Piper.DefaultLanguage, req.Language)
	req.Speaker = lo.Ternary(req.Speaker == "", domain.SpeakerID(t.config.Piper.DefaultSpeaker), req.Speaker)
	req.Format = lo.Ternary(req.Format == "", domain.FormatWav, req.Format)

	if !lo.Contains(domain.SupportedFormats, req.Format) {
		return domain.NewInvalidRequest(domain.MsgInvalidFormat)
	}
	if !languagePattern.MatchString(req.Language) {
		return domain.NewInvalidRequest("Invalid language. Use letters, digits, '_' or '-' only.")
	}
	if limit := t.config.Synthesis.MaxTextLength; limit > 0 && utf8.RuneCountInString(req.Text) > limit {
		return domain.NewInvalidRequest(fmt.Sprintf("Invalid request, 'text' exceeds %d characters.", limit))
	}
	return nil
}

func (t *TtsUsecase) ModelPath(language string) string {
	return filepath.Join(t.config.Piper.ModelDir, language+t.config.Piper.ModelSuffix)
}

// PiperArgs builds the argv that makes piper write the WAV stream to stdout.
func (t *TtsUsecase) PiperArgs(req *domain.SynthesisRequest) []string {
	return []string{
		"--model", t.ModelPath(req.Language),
		"--speaker", string(req.Speaker),
		"--output_file", "-",
	}
}

func (t *TtsUsecase) FfmpegArgs() []string {
	return []string{"-i", "pipe:0", "-f", "mp3", "pipe:1"}
}

// Synthesize runs the whole pipeline for one request. Child processes are not
// tied to ctx cancellation; only synthesis.timeout, when set, bounds them.
func (t *TtsUsecase) Synthesize(ctx context.Context, req *domain.SynthesisRequest) (*domain.SynthesisResult, error) {
	if err := t.Prepare(req); err != nil {
		return nil, err
	}

	t.l.Info("text to convert",
		log.Int("text_length", utf8.RuneCountInString(req.Text)),
		log.String("text", truncate(req.Text, 80)))
	t.l.Info("synthesis parameters",
		log.String("language", req.Language),
		log.String("speaker", string(req.Speaker)),
		log.String("format", string(req.Format)))

	ctx = context.WithoutCancel(ctx)

	start := time.Now()
	audio, err := t.synthesize(ctx, req)
	if err != nil {
		return nil, err
	}

	if req.Format == domain.FormatMp3 {
		audio, err = t.transcode(ctx, audio)
		if err != nil {
			return nil, err
		}
	}

	t.l.Info("audio generated successfully",
		log.String("format", string(req.Format)),
		log.Int("bytes", len(audio)),
		log.Duration("elapsed", time.Since(start)))

	return &domain.SynthesisResult{Audio: audio, Format: req.Format}, nil
}

func (t *TtsUsecase) synthesize(ctx context.Context, req *domain.SynthesisRequest) ([]byte, error) {
	args := t.PiperArgs(req)
	t.l.Info("running piper command", log.String("command", commandLine(t.config.Piper.Bin, args)))

	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	res, err := t.runner.Run(ctx, []byte(req.Text), t.config.Piper.Bin, args...)
	if err != nil {
		t.l.Error("failed to run piper", log.Error(err))
		return nil, domain.NewInternal(err)
	}
	if !res.Success() {
		stderr := strings.ToValidUTF8(string(res.Stderr), "�")
		t.l.Error("error executing piper command",
			log.Int("exit_code", res.ExitCode),
			log.String("stderr", stderr))
		return nil, domain.NewSynthesisFailed(stderr, fmt.Errorf("piper exited with status %d", res.ExitCode))
	}
	return res.Stdout, nil
}

func (t *TtsUsecase) transcode(ctx context.Context, wav []byte) ([]byte, error) {
	args := t.FfmpegArgs()
	t.l.Info("converting wav to mp3", log.String("command", commandLine(t.config.Ffmpeg.Bin, args)))

	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	res, err := t.runner.Run(ctx, wav, t.config.Ffmpeg.Bin, args...)
	if err != nil {
		t.l.Error("error during mp3 conversion", log.Error(err))
		return nil, domain.NewTranscodeFailed(err)
	}
	if !res.Success() {
		t.l.Error("error converting to mp3",
			log.Int("exit_code", res.ExitCode),
			log.String("stderr", strings.ToValidUTF8(string(res.Stderr), "�")))
		return nil, domain.NewTranscodeFailed(fmt.Errorf("ffmpeg exited with status %d", res.ExitCode))
	}
	return res.Stdout, nil
}

func (t *TtsUsecase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if t.config.Synthesis.Timeout > 0 {
		return context.WithTimeout(ctx, t.config.Synthesis.Timeout)
	}
	return context.WithCancel(ctx)
}

func commandLine(bin string, args []string) string {
	return strings.Join(append([]string{bin}, args...), " ")
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
