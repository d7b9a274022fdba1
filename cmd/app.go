package main

import (
	"context"

	"piper-tts/config"
	V1 "piper-tts/hander/v1"
	"piper-tts/pkg/log"
	"piper-tts/serve"
)

type App struct {
	Service *serve.HttpServer
	Config  *config.Config
	Logger  *log.Logger
	Handers *V1.Handers
}

func (a *App) Run(ctx context.Context) error {
	if err := a.Service.Run(ctx); err != nil {
		a.Logger.Error("server stopped", log.Error(err))
		return err
	}
	a.Logger.Info("server stopped")
	return nil
}
