package controllers_fx

import (
	"go.uber.org/fx"

	"destinex/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewDiscoverController,
	controllers.NewSessionController)
