package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/boolean-maybe/mycounter/controller"
	"github.com/boolean-maybe/mycounter/model"
	"github.com/boolean-maybe/mycounter/presenter"
	"github.com/boolean-maybe/mycounter/view"
)

// The registry maps every screen variant to the presenter and view that serve it.
// The navigator asks it for presenters on push; the root layout asks it for views.

// ErrUnknownScreen is returned for screens no binding serves
var ErrUnknownScreen = errors.New("unknown screen")

// Binding pairs the presenter and view constructors for one screen kind
type Binding struct {
	Kind         model.ScreenKind
	NewPresenter func(screen model.Screen) (presenter.Presenter, error)
	NewView      func(entry *controller.ViewEntry, nav controller.Navigator) (controller.View, error)
}

// Registry resolves screens to bindings. The binding set is fixed at construction.
type Registry struct {
	nav      controller.Navigator
	bindings map[model.ScreenKind]Binding
}

// New creates a registry with the home and counter bindings.
// nav is handed to views that navigate.
func New(nav controller.Navigator) *Registry {
	return NewWithBindings(nav, homeBinding(), counterBinding())
}

// NewWithBindings creates a registry from explicit bindings; later kinds replace earlier ones
func NewWithBindings(nav controller.Navigator, bindings ...Binding) *Registry {
	r := &Registry{
		nav:      nav,
		bindings: make(map[model.ScreenKind]Binding, len(bindings)),
	}
	for _, b := range bindings {
		r.bindings[b.Kind] = b
	}
	return r
}

// Resolve returns the binding that serves screen
func (r *Registry) Resolve(screen model.Screen) (Binding, error) {
	if screen == nil {
		return Binding{}, fmt.Errorf("%w: <nil>", ErrUnknownScreen)
	}
	b, ok := r.bindings[screen.Kind()]
	if !ok {
		return Binding{}, fmt.Errorf("%w: %s", ErrUnknownScreen, screen.Kind())
	}
	return b, nil
}

// Kinds lists the registered screen kinds in sorted order
func (r *Registry) Kinds() []model.ScreenKind {
	kinds := make([]model.ScreenKind, 0, len(r.bindings))
	for k := range r.bindings {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// CreatePresenter builds a fresh presenter for screen. It satisfies controller.PresenterFactory.
func (r *Registry) CreatePresenter(screen model.Screen) (presenter.Presenter, error) {
	b, err := r.Resolve(screen)
	if err != nil {
		return nil, err
	}
	return b.NewPresenter(screen)
}

// CreateView instantiates the view for a stack entry. It satisfies controller.ViewFactory.
// Returns nil (and logs) when no binding serves the entry.
func (r *Registry) CreateView(entry *controller.ViewEntry) controller.View {
	if entry == nil {
		slog.Error("create view for nil entry")
		return nil
	}
	b, err := r.Resolve(entry.Screen)
	if err != nil {
		slog.Error("unknown screen", "screen", model.ScreenName(entry.Screen), "error", err)
		return nil
	}
	v, err := b.NewView(entry, r.nav)
	if err != nil {
		slog.Error("failed to create view", "screen", model.ScreenName(entry.Screen), "error", err)
		return nil
	}
	return v
}

func homeBinding() Binding {
	return Binding{
		Kind: model.HomeScreenKind,
		NewPresenter: func(screen model.Screen) (presenter.Presenter, error) {
			if _, ok := screen.(model.HomeScreen); !ok {
				return nil, fmt.Errorf("%w: %T", ErrUnknownScreen, screen)
			}
			return presenter.NewHomePresenter(), nil
		},
		NewView: func(entry *controller.ViewEntry, nav controller.Navigator) (controller.View, error) {
			if _, ok := entry.Screen.(model.HomeScreen); !ok {
				return nil, fmt.Errorf("%w: %T", ErrUnknownScreen, entry.Screen)
			}
			return view.NewHomeView(entry.Presenter, nav), nil
		},
	}
}

func counterBinding() Binding {
	return Binding{
		Kind: model.CounterScreenKind,
		NewPresenter: func(screen model.Screen) (presenter.Presenter, error) {
			s, ok := screen.(model.CounterScreen)
			if !ok {
				return nil, fmt.Errorf("%w: %T", ErrUnknownScreen, screen)
			}
			return presenter.NewCounterPresenter(s.Title), nil
		},
		NewView: func(entry *controller.ViewEntry, _ controller.Navigator) (controller.View, error) {
			s, ok := entry.Screen.(model.CounterScreen)
			if !ok {
				return nil, fmt.Errorf("%w: %T", ErrUnknownScreen, entry.Screen)
			}
			if _, ok := entry.Presenter.(*presenter.CounterPresenter); !ok {
				return nil, fmt.Errorf("counter view needs a counter presenter, got %T", entry.Presenter)
			}
			return view.NewCounterView(s, entry.Presenter), nil
		},
	}
}

var (
	_ controller.ViewFactory      = (*Registry)(nil)
	_ controller.PresenterFactory = (*Registry)(nil).CreatePresenter
)
