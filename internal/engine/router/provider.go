package router

import "github.com/google/wire"

// ProviderSet is the Wire provider set for the router package.
var ProviderSet = wire.NewSet(NewRouter)
