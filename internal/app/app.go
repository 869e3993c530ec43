// Package app exposes the session-scoped application actions over HTTP:
// cart, favorites, navigation, profile and collaborator onboarding. It is
// the root controller that ties the stores, the view composer and the
// per-session state together.
package app

import (
	"github.com/sirupsen/logrus"

	"github.com/Ecotupper/ecotupperapp/internal/alerts"
	"github.com/Ecotupper/ecotupperapp/internal/catalog"
	"github.com/Ecotupper/ecotupperapp/internal/view"
)

type Handler struct {
	catalog  *catalog.Store
	composer *view.Composer
	alerts   *alerts.Service
	logger   *logrus.Logger
}

func NewHandler(catalogStore *catalog.Store, composer *view.Composer, alertsService *alerts.Service, logger *logrus.Logger) *Handler {
	return &Handler{
		catalog:  catalogStore,
		composer: composer,
		alerts:   alertsService,
		logger:   logger,
	}
}
