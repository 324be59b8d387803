package app

import (
	"github.com/modelmart/core/internal/middleware"
	"github.com/modelmart/core/internal/modules/blog"
	"github.com/modelmart/core/internal/modules/model"
	"github.com/modelmart/core/internal/modules/post"
	"github.com/modelmart/core/internal/modules/search"
	"github.com/modelmart/core/internal/modules/system"
	"github.com/modelmart/core/internal/modules/user"
	pkgredis "github.com/modelmart/core/internal/pkg/redis"
)

func (a *App) registerRoutes(rc *pkgredis.Client) {
	system.RegisterRoutes(a.router.Group(""), a.db, rc)

	api := a.router.Group("/api/v1")
	api.Use(middleware.OptionalAuth())
	api.Use(middleware.RateLimit(rc.Raw()))
	api.Use(middleware.Idempotence(rc.Raw()))

	authMW := middleware.Auth()

	userSvc := user.NewService(a.db)
	postSvc := post.NewService(a.db,
		post.WithCache(rc),
		post.WithLogger(a.logger),
	)
	modelSvc := model.NewService(a.db)
	blogSvc := blog.NewService(a.db)
	searchSvc := search.NewService(a.db)

	user.NewHandler(userSvc).RegisterRoutes(api, authMW)
	post.NewHandler(postSvc).RegisterRoutes(api, authMW)
	model.NewHandler(modelSvc).RegisterRoutes(api, authMW)

	blogHandler := blog.NewHandler(blogSvc, userSvc.GetByID)
	blogHandler.RegisterRoutes(api, authMW)
	blogHandler.RegisterFeedRoutes(a.router.Group(""), blog.SiteMeta{
		Title:       a.cfg.Site.Title,
		Description: a.cfg.Site.Description,
		URL:         a.cfg.Site.URL,
	})

	search.NewHandler(searchSvc).RegisterRoutes(api)
}
