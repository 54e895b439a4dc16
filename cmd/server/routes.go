package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/salahapp/salah-server/internal/config"
	"github.com/salahapp/salah-server/internal/db"
	"github.com/salahapp/salah-server/internal/http/api"
	adminapi "github.com/salahapp/salah-server/internal/http/api/admin/endpoints"
	publicapi "github.com/salahapp/salah-server/internal/http/api/public/endpoints"
	"github.com/salahapp/salah-server/internal/http/middleware"
	"github.com/salahapp/salah-server/internal/notify"
	"github.com/salahapp/salah-server/internal/schedule"
	"github.com/salahapp/salah-server/internal/storage"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	env Environment,
	store db.Store,
	storageSystem storage.Storage,
	resolver *schedule.Resolver,
	notifier *notify.BoardNotifier,
) {
	r.Use(middleware.RequestID())

	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
	},
		publicapi.LocationModule(store),
		publicapi.MasjidModule(store),
		publicapi.TimingModule(store, resolver),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Auth:   false,
	},
		adminapi.AuthPublicModule(cfg.JWTSecret, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: cfg.JWTSecret,
		Store:     store,
	},
		adminapi.AuthSessionModule(cfg.JWTSecret, store),
		adminapi.LocationModule(store),
		adminapi.MasjidModule(store, storageSystem),
		adminapi.TimingModule(store, notifier),
		adminapi.DefaultScheduleModule(store, notifier),
		adminapi.AdditionalTimingsModule(store),
		adminapi.EventModule(store),
	)

	// photos saved by LocalStorage are served straight off disk
	if !env.UseSpaces {
		r.Static("/uploads", "./uploads")
	}
}
