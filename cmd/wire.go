//go:build wireinject
// +build wireinject

package main

import (
	"piper-tts/config"
	V1 "piper-tts/hander/v1"
	"piper-tts/pkg/log"
	"piper-tts/serve"

	"github.com/google/wire"
)

func InitializeApp(file config.File) (*App, error) {
	wire.Build(
		wire.Struct(new(App), "*"),
		wire.NewSet(
			config.NewConfig,
			log.ProviderSet,
			serve.ProviderSet,
			V1.ProviderSet,
		),
	)
	return &App{}, nil
}
