package V1

import (
	"piper-tts/hander"
	"piper-tts/usecase"

	"github.com/google/wire"
)

type Handers struct {
	Tts     *TtsHander
	Health  *HealthHander
	Swagger *SwaggerHander
}

var ProviderSet = wire.NewSet(
	hander.NewBaseHandler,
	NewTtsHander,
	NewHealthHander,
	NewSwaggerHander,
	usecase.ProviderSet,

	wire.Struct(new(Handers), "*"),
)
