// Copyright 2025 Pathway Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-pathway/pathway/internal/engine/conf"
	"github.com/go-pathway/pathway/internal/engine/router"
	"github.com/go-pathway/pathway/internal/engine/service"
	"github.com/go-pathway/pathway/pkg/cache"
	"github.com/go-pathway/pathway/pkg/ctx"
	"github.com/go-pathway/pathway/pkg/database"
	"github.com/go-pathway/pathway/pkg/log"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

type App struct {
	HttpApp *fiber.App
	AppConf conf.AppConfig
}

// InitAppFunc builds the App via Wire once the shared resources exist.
type InitAppFunc func(confFile string, appCtx *ctx.Context, db database.IDatabase) (*App, func(), error)

func NewApp(rt *router.Router, appConf conf.AppConfig) (*App, func(), error) {
	// The permission table is static; a gap is a programming error caught
	// at startup, not at request time.
	if err := service.VerifyPermissionTable(); err != nil {
		return nil, nil, err
	}

	app := &App{
		HttpApp: rt.Router(),
		AppConf: appConf,
	}
	return app, func() {}, nil
}

// Bootstrap loads configuration, opens shared resources and builds the App.
func Bootstrap(confFile string, initApp InitAppFunc) (*App, func(), error) {
	appConf := conf.NewConf(confFile)

	if err := log.Init(&appConf.Log); err != nil {
		return nil, nil, err
	}

	var redisClient *redis.Client
	if appConf.Redis.Address != "" {
		var err error
		redisClient, err = cache.NewRedis(appConf.Redis)
		if err != nil {
			return nil, nil, err
		}
	}

	dbClient, err := database.NewDatabase(appConf.Database)
	if err != nil {
		return nil, nil, err
	}
	db := database.NewGormDB(dbClient)

	appCtx := ctx.NewContext(context.Background(), dbClient, redisClient, log.GetLogger())

	app, cleanup, err := initApp(confFile, appCtx, db)
	if err != nil {
		return nil, nil, err
	}

	shutdown := func() {
		cleanup()
		if redisClient != nil {
			_ = redisClient.Close()
		}
		if sqlDB, err := dbClient.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return app, shutdown, nil
}

// Run starts the HTTP listener and blocks until an exit signal, then shuts
// down gracefully.
func Run(app *App, cleanup func()) {
	appConf := app.AppConf

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		addr := fmt.Sprintf("%s:%d", appConf.Http.Host, appConf.Http.Port)
		log.Infow("HTTP listener started", "address", addr)
		if err := app.HttpApp.Listen(addr); err != nil {
			log.Errorw("HTTP listener failed", "address", addr, "error", err)
		}
	}()

	sig := <-quit
	log.Infof("received signal: %v, shutting down gracefully...", sig)

	shutdownTimeout := time.Duration(appConf.Http.ShutdownTimeout) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.HttpApp.ShutdownWithContext(shutdownCtx); err != nil {
		log.Errorf("HTTP server shutdown error: %v", err)
	}

	cleanup()
	log.Info("server shutdown complete")
}
