package repo

import (
	"speaker/pkg/store"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	store.ProviderSet,

	NewTemplateRepo,
)
