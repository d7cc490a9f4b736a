package conf

import (
	"github.com/go-pathway/pathway/pkg/http"
	"github.com/google/wire"
)

// ProviderSet is the Wire provider set for the conf package.
var ProviderSet = wire.NewSet(ProvideConf, ProvideHttpConfig)

func ProvideConf(confFile string) AppConfig {
	return NewConf(confFile)
}

func ProvideHttpConfig(appConf AppConfig) *http.Http {
	return &appConf.Http
}
