package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// File is an explicit config file path. Empty means search "." and "./config"
// for config.yml.
type File string

type Config struct {
	Port            string          `mapstructure:"port"`
	ServeName       string          `mapstructure:"serve_name"`
	ShutdownTimeout time.Duration   `mapstructure:"shutdown_timeout"`
	Log             LogConfig       `mapstructure:"log"`
	Piper           PiperConfig     `mapstructure:"piper"`
	Ffmpeg          FfmpegConfig    `mapstructure:"ffmpeg"`
	Synthesis       SynthesisConfig `mapstructure:"synthesis"`
	Oss             OssConfig       `mapstructure:"oss"`
}

type LogConfig struct {
	Level int `mapstructure:"level"`
}

type PiperConfig struct {
	Bin             string `mapstructure:"bin"`
	ModelDir        string `mapstructure:"model_dir"`
	ModelSuffix     string `mapstructure:"model_suffix"`
	DefaultLanguage string `mapstructure:"default_language"`
	DefaultSpeaker  string `mapstructure:"default_speaker"`
}

type FfmpegConfig struct {
	Bin string `mapstructure:"bin"`
}

// SynthesisConfig bounds a single request. Zero values disable the limit.
type SynthesisConfig struct {
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxTextLength int           `mapstructure:"max_text_length"`
}

// OssConfig points at the MinIO bucket finished audio is archived to.
type OssConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	EndPoint   string `mapstructure:"end_point"`
	AccessKey  string `mapstructure:"access_key"`
	SecretKey  string `mapstructure:"secret_key"`
	BucketName string `mapstructure:"bucket_name"`
	UseSSL     bool   `mapstructure:"use_ssl"`
	Region     string `mapstructure:"region"`
	Prefix     string `mapstructure:"prefix"`
}

const EnvPrefix = "PIPER_API"

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "0.0.0.0:5000")
	v.SetDefault("serve_name", "piper-tts")
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("log.level", 0)

	v.SetDefault("piper.bin", "piper")
	v.SetDefault("piper.model_dir", "models")
	v.SetDefault("piper.model_suffix", "-google-medium.onnx")
	v.SetDefault("piper.default_language", "ne_NP")
	v.SetDefault("piper.default_speaker", "0")
	v.SetDefault("ffmpeg.bin", "ffmpeg")

	v.SetDefault("synthesis.timeout", time.Duration(0))
	v.SetDefault("synthesis.max_text_length", 0)

	v.SetDefault("oss.enabled", false)
	v.SetDefault("oss.end_point", "")
	v.SetDefault("oss.access_key", "")
	v.SetDefault("oss.secret_key", "")
	v.SetDefault("oss.bucket_name", "speech")
	v.SetDefault("oss.use_ssl", false)
	v.SetDefault("oss.region", "")
	v.SetDefault("oss.prefix", "piper")
}

func NewConfig(file File) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(string(file))
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.SetConfigName("config")
		v.SetConfigType("yml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.Piper.Bin == "" {
		return errors.New("piper.bin must not be empty")
	}
	if c.Ffmpeg.Bin == "" {
		return errors.New("ffmpeg.bin must not be empty")
	}
	if c.Synthesis.Timeout < 0 {
		return errors.New("synthesis.timeout must not be negative")
	}
	if c.Synthesis.MaxTextLength < 0 {
		return errors.New("synthesis.max_text_length must not be negative")
	}
	if c.Oss.Enabled && (c.Oss.EndPoint == "" || c.Oss.BucketName == "") {
		return errors.New("oss.end_point and oss.bucket_name are required when oss is enabled")
	}
	return nil
}
