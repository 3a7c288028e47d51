package bootstrap

import (
	"github.com/rivo/tview"

	"github.com/boolean-maybe/mycounter/controller"
	"github.com/boolean-maybe/mycounter/registry"
)

// Controllers holds the navigation controller and the screen registry it creates presenters through.
type Controllers struct {
	Nav      *controller.NavigationController
	Registry *registry.Registry
}

// BuildControllers constructs the navigation controller and binds it to the screen registry.
func BuildControllers(app *tview.Application) *Controllers {
	navController := controller.NewNavigationController(app)
	screens := registry.New(navController)
	navController.SetPresenterFactory(screens.CreatePresenter)

	return &Controllers{
		Nav:      navController,
		Registry: screens,
	}
}
