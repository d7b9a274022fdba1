package V1

import (
	_ "piper-tts/docs"
	"piper-tts/serve"

	echoSwagger "github.com/swaggo/echo-swagger"
)

type SwaggerHander struct{}

func NewSwaggerHander(s *serve.HttpServer) *SwaggerHander {
	s.Echo.GET("/swagger/*", echoSwagger.WrapHandler)
	return &SwaggerHander{}
}
