package presenter

import (
	"log/slog"

	"github.com/boolean-maybe/mycounter/model"
)

// HomeState is the empty state of the home screen
type HomeState struct{}

// ScreenKind returns HomeScreenKind
func (HomeState) ScreenKind() model.ScreenKind { return model.HomeScreenKind }

// HomePresenter has no state machine; navigation from home is done by the view
type HomePresenter struct {
	snapshotStream
}

// NewHomePresenter creates a home presenter
func NewHomePresenter() *HomePresenter {
	return &HomePresenter{}
}

// Present always returns HomeState{}
func (p *HomePresenter) Present() State {
	return HomeState{}
}

// Send ignores every event
func (p *HomePresenter) Send(event Event) {
	slog.Debug("home screen ignores events", "event", eventName(event))
}
