package usecase

import (
	"speaker/repo"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	repo.ProviderSet,

	wire.Bind(new(TemplateRepository), new(*repo.TemplateRepo)),
	NewSynthesizer,
	NewRenderer,
	NewAudioAssembler,
	NewTemplateUsecase,
	NewSpeakerUsecase,
	NewPlayerUsecase,
	NewBulkUsecase,
)
