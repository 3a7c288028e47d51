package registry

import (
	"testing"

	"github.com/boolean-maybe/mycounter/controller"
	"github.com/boolean-maybe/mycounter/model"
	"github.com/boolean-maybe/mycounter/presenter"
	"github.com/boolean-maybe/mycounter/view"

	"github.com/stretchr/testify/require"
)

type settingsScreen struct{}

func (settingsScreen) Kind() model.ScreenKind { return "settings" }

// impostorScreen claims the counter kind without being a CounterScreen
type impostorScreen struct{}

func (impostorScreen) Kind() model.ScreenKind { return model.CounterScreenKind }

type recordingNavigator struct {
	screens []model.Screen
}

func (n *recordingNavigator) GoTo(screen model.Screen) error {
	n.screens = append(n.screens, screen)
	return nil
}

func (n *recordingNavigator) Pop() error { return nil }

func TestRegistry_Resolve(t *testing.T) {
	r := New(nil)

	b, err := r.Resolve(model.HomeScreen{})
	require.NoError(t, err)
	require.Equal(t, model.HomeScreenKind, b.Kind)

	b, err = r.Resolve(model.CounterScreen{Title: "Counter 3"})
	require.NoError(t, err)
	require.Equal(t, model.CounterScreenKind, b.Kind)

	_, err = r.Resolve(settingsScreen{})
	require.ErrorIs(t, err, ErrUnknownScreen)

	_, err = r.Resolve(nil)
	require.ErrorIs(t, err, ErrUnknownScreen)

	require.Equal(t, []model.ScreenKind{model.CounterScreenKind, model.HomeScreenKind}, r.Kinds())
}

func TestRegistry_CreatePresenter(t *testing.T) {
	r := New(nil)

	p, err := r.CreatePresenter(model.HomeScreen{})
	require.NoError(t, err)
	require.Equal(t, presenter.HomeState{}, p.Present())

	p, err = r.CreatePresenter(model.CounterScreen{Title: "Counter 1"})
	require.NoError(t, err)
	require.Equal(t, presenter.CounterState{Title: "Counter 1", Counter: 0}, p.Present())

	// every call gives a fresh state
	p.Send(presenter.IncrementEvent{})
	again, err := r.CreatePresenter(model.CounterScreen{Title: "Counter 1"})
	require.NoError(t, err)
	require.Equal(t, 0, again.Present().(presenter.CounterState).Counter)

	_, err = r.CreatePresenter(settingsScreen{})
	require.ErrorIs(t, err, ErrUnknownScreen)

	_, err = r.CreatePresenter(impostorScreen{})
	require.ErrorIs(t, err, ErrUnknownScreen)
}

func TestRegistry_CreateView(t *testing.T) {
	nav := &recordingNavigator{}
	r := New(nav)

	homeEntry := &controller.ViewEntry{Key: "h", Screen: model.HomeScreen{}, Presenter: presenter.NewHomePresenter()}
	v := r.CreateView(homeEntry)
	require.IsType(t, &view.HomeView{}, v)
	require.Equal(t, model.HomeScreen{}, v.GetScreen())

	// home rows navigate through the registry's navigator
	tagged := v.(controller.TaggedView)
	require.True(t, tagged.PerformClick("Counter 4"))
	require.Equal(t, []model.Screen{model.CounterScreen{Title: "Counter 4"}}, nav.screens)

	counterEntry := &controller.ViewEntry{
		Key:       "c",
		Screen:    model.CounterScreen{Title: "Counter 4"},
		Presenter: presenter.NewCounterPresenter("Counter 4"),
	}
	v = r.CreateView(counterEntry)
	require.IsType(t, &view.CounterView{}, v)
	text, ok := v.(controller.TaggedView).TagText(view.TagCounter)
	require.True(t, ok)
	require.Equal(t, "Counter value is 0", text)
}

func TestRegistry_CreateViewMisses(t *testing.T) {
	r := New(nil)

	require.Nil(t, r.CreateView(nil))
	require.Nil(t, r.CreateView(&controller.ViewEntry{Key: "s", Screen: settingsScreen{}}))
	require.Nil(t, r.CreateView(&controller.ViewEntry{Key: "i", Screen: impostorScreen{}}))

	// counter screen bound to the wrong presenter
	mismatched := &controller.ViewEntry{
		Key:       "m",
		Screen:    model.CounterScreen{Title: "Counter 0"},
		Presenter: presenter.NewHomePresenter(),
	}
	require.Nil(t, r.CreateView(mismatched))
}

func TestRegistry_CustomBindings(t *testing.T) {
	r := NewWithBindings(nil, homeBinding())

	_, err := r.Resolve(model.CounterScreen{Title: "Counter 0"})
	require.ErrorIs(t, err, ErrUnknownScreen)
	require.Equal(t, []model.ScreenKind{model.HomeScreenKind}, r.Kinds())
}

func TestRegistry_WiresNavigationController(t *testing.T) {
	nc := controller.NewNavigationController(nil)
	r := New(nc)
	nc.SetPresenterFactory(r.CreatePresenter)

	require.NoError(t, nc.PushView(model.HomeScreen{}))
	home := r.CreateView(nc.CurrentView()).(controller.TaggedView)
	require.True(t, home.PerformClick(model.CounterTitle(2)))

	require.Equal(t, []model.Screen{model.HomeScreen{}, model.CounterScreen{Title: "Counter 2"}}, nc.Screens())

	counter := r.CreateView(nc.CurrentView()).(controller.TaggedView)
	counter.OnFocus()
	require.True(t, counter.PerformClick(view.TagIncrement))
	text, _ := counter.TagText(view.TagCounter)
	require.Equal(t, "Counter value is 1", text)

	require.ErrorIs(t, nc.PushView(settingsScreen{}), ErrUnknownScreen)
}
