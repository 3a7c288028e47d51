package view

import (
	"github.com/boolean-maybe/mycounter/controller"
	"github.com/boolean-maybe/mycounter/model"
	"github.com/boolean-maybe/mycounter/presenter"
)

type fakeNavigator struct {
	screens []model.Screen
	pops    int
	err     error
}

func (n *fakeNavigator) GoTo(screen model.Screen) error {
	if n.err != nil {
		return n.err
	}
	n.screens = append(n.screens, screen)
	return nil
}

func (n *fakeNavigator) Pop() error {
	n.pops++
	return nil
}

// stubFactory builds real views without the registry package
type stubFactory struct {
	nav     controller.Navigator
	created []string
}

func (f *stubFactory) CreateView(entry *controller.ViewEntry) controller.View {
	f.created = append(f.created, entry.Key)
	switch s := entry.Screen.(type) {
	case model.HomeScreen:
		return NewHomeView(entry.Presenter, f.nav)
	case model.CounterScreen:
		return NewCounterView(s, entry.Presenter)
	default:
		return nil
	}
}

func stubPresenterFactory(screen model.Screen) (presenter.Presenter, error) {
	switch s := screen.(type) {
	case model.HomeScreen:
		return presenter.NewHomePresenter(), nil
	case model.CounterScreen:
		return presenter.NewCounterPresenter(s.Title), nil
	default:
		return nil, nil
	}
}
