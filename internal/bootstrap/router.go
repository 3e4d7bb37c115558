package bootstrap

import (
	"github.com/gin-gonic/gin"

	"github.com/dekkov/personal-website/config"
	"github.com/dekkov/personal-website/internal/analytics"
	analyticshttp "github.com/dekkov/personal-website/internal/analytics/http"
	apihttp "github.com/dekkov/personal-website/internal/api/http"
	"github.com/dekkov/personal-website/internal/api/http/middleware"
	"github.com/dekkov/personal-website/internal/contact"
	contacthttp "github.com/dekkov/personal-website/internal/contact/http"
	"github.com/dekkov/personal-website/internal/content"
	contenthttp "github.com/dekkov/personal-website/internal/content/http"
	resumehttp "github.com/dekkov/personal-website/internal/resume/http"
	"github.com/dekkov/personal-website/internal/sitemap"
)

type RouterDeps struct {
	ServiceName string
	Cfg         *config.Config
	Store       *content.Store
	Sender      contact.EmailSender
	Tracker     analytics.Tracker
}

func BuildRouter(dep RouterDeps) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(CORS(dep.Cfg.Site.URL))

	healthHandler := apihttp.NewHealthHandler(dep.ServiceName, dep.Cfg.App.Version, dep.Store)
	healthHandler.RegisterRoutes(r)

	sitemapHandler := sitemap.NewHandler(dep.Store, dep.Cfg.Site.URL)
	sitemapHandler.RegisterRoutes(r)

	api := r.Group("/api")

	contactGroup := api.Group("/contact")
	contactGroup.Use(
		middleware.OriginCheck(dep.Cfg.Site.URL),
		middleware.RateLimit(dep.Cfg.App.ContactRateLimit),
	)
	contacthttp.New(dep.Sender, dep.Cfg.Mail.ContactEmail, dep.Cfg.IsProduction()).Register(contactGroup)

	trackGroup := api.Group("/track")
	trackGroup.Use(middleware.OriginCheck(dep.Cfg.Site.URL))
	analyticshttp.New(dep.Tracker, dep.Cfg.IsProduction()).Register(trackGroup)

	resumeHandler, err := resumehttp.New(dep.Cfg.Site.PublicDir, dep.Tracker)
	if err != nil {
		return nil, err
	}
	resumeGroup := api.Group("/download-resume")
	resumeGroup.Use(middleware.RefererCheck(dep.Cfg.Site.URL))
	resumeHandler.Register(resumeGroup)

	v1 := api.Group("/v1")
	contenthttp.New(dep.Store).Register(v1)

	return r, nil
}
