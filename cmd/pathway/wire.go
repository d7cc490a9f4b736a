//go:build wireinject
// +build wireinject

package main

import (
	"github.com/go-pathway/pathway/internal/bootstrap"
	"github.com/go-pathway/pathway/internal/engine/conf"
	"github.com/go-pathway/pathway/internal/engine/repo"
	"github.com/go-pathway/pathway/internal/engine/router"
	"github.com/go-pathway/pathway/internal/engine/service"
	"github.com/go-pathway/pathway/pkg/ctx"
	"github.com/go-pathway/pathway/pkg/database"
	"github.com/google/wire"
)

func initApp(confFile string, appCtx *ctx.Context, db database.IDatabase) (*bootstrap.App, func(), error) {
	panic(wire.Build(
		conf.ProviderSet,
		repo.ProviderSet,
		service.ProviderSet,
		router.ProviderSet,
		bootstrap.NewApp,
	))
}
