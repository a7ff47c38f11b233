package V1

import (
	"speaker/hander"
	"speaker/usecase"

	"github.com/google/wire"
)

type Handers struct {
	Speaker  *SpeakerHander
	Template *TemplateHander
}

var ProviderSet = wire.NewSet(
	hander.NewBaseHandler,
	NewSpeakerHander,
	NewTemplateHander,
	usecase.ProviderSet,

	wire.Struct(new(Handers), "*"),
)
