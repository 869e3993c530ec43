package main

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/Ecotupper/ecotupperapp/internal/alerts"
	"github.com/Ecotupper/ecotupperapp/internal/app"
	"github.com/Ecotupper/ecotupperapp/internal/captioning"
	"github.com/Ecotupper/ecotupperapp/internal/catalog"
	"github.com/Ecotupper/ecotupperapp/internal/config"
	appmw "github.com/Ecotupper/ecotupperapp/internal/middleware"
	"github.com/Ecotupper/ecotupperapp/internal/orders"
	"github.com/Ecotupper/ecotupperapp/internal/session"
	"github.com/Ecotupper/ecotupperapp/internal/view"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("failed to load config")
	}

	// Seeded in-memory data sources
	catalogStore := catalog.NewSeededStore(cfg.Catalog.FetchDelay)
	orderStore := orders.NewSeededStore(cfg.Catalog.FetchDelay)
	sessions := session.NewManager()
	composer := view.NewComposer(catalogStore, orderStore)

	alertsService := alerts.New(cfg.Alerts, logger)
	defer alertsService.Close()

	var describer captioning.Describer
	if cfg.Gemini.APIKey != "" {
		gemini, err := captioning.NewGeminiClient(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			logger.WithError(err).Fatal("failed to init Gemini client")
		}
		describer = gemini
	} else {
		logger.Warn("GEMINI_API_KEY not set, caption generation will fail")
	}

	catalogHandler := catalog.NewHandler(catalogStore, logger)
	orderHandler := orders.NewHandler(orderStore, logger)
	captionHandler := captioning.NewHandler(describer, logger)
	appHandler := app.NewHandler(catalogStore, composer, alertsService, logger)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// Health
	e.GET("/health", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	// Public catalog and order history
	e.GET("/catalog/items", catalogHandler.ListItems)
	e.GET("/catalog/items/:id", catalogHandler.GetItem)
	e.GET("/orders", orderHandler.ListOrders)
	e.GET("/orders/:id", orderHandler.GetOrder)

	// AI captioning
	e.POST("/captions", captionHandler.Describe)

	// Session-scoped application state
	g := e.Group("")
	g.Use(appmw.SessionMiddleware(sessions))

	g.GET("/cart", appHandler.GetCart)
	g.POST("/cart/items", appHandler.AddToCart)
	g.PATCH("/cart/items/:id", appHandler.UpdateCartItem)
	g.DELETE("/cart/items/:id", appHandler.RemoveCartItem)
	g.POST("/cart/checkout", appHandler.Checkout)

	g.GET("/favorites", appHandler.GetFavorites)
	g.POST("/favorites/:id/toggle", appHandler.ToggleFavorite)

	g.POST("/navigate", appHandler.Navigate)
	g.POST("/navigate/back", appHandler.Back)
	g.GET("/view", appHandler.GetView)

	g.GET("/profile", appHandler.GetProfile)
	g.PATCH("/profile/role", appHandler.UpdateRole)
	g.PUT("/location", appHandler.SaveLocation)
	g.POST("/invites", appHandler.InviteFriend)
	g.POST("/recommendations", appHandler.RecommendBusiness)

	// Collaborator onboarding with per-IP rate limiting to protect the form
	onboarding := e.Group("", appmw.SessionMiddleware(sessions))
	onboarding.Use(echomw.RateLimiter(echomw.NewRateLimiterMemoryStore(20)))
	onboarding.POST("/collaborator/register", appHandler.RegisterCollaborator)

	// Collaborator territory
	g.GET("/published-items", appHandler.PublishedItems, appmw.RequireRoles(session.RoleCollaborator))

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	logger.WithField("port", cfg.Server.Port).Info("API server listening")
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.WithError(err).Fatal("server error")
	}
}
