package bootstrap

import (
	"github.com/boolean-maybe/mycounter/model"
)

// InitLayoutModel creates the layout model the navigation controller publishes into.
func InitLayoutModel() *model.LayoutModel {
	return model.NewLayoutModel()
}
