package usecase

import (
	"piper-tts/pkg/proc"
	"piper-tts/pkg/store"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewTtsUsecase,
	NewFileUsecase,
	proc.ProviderSet,
	store.ProviderSet,
)
