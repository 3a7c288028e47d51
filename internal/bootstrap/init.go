package bootstrap

import (
	"io"
	"log/slog"

	"github.com/rivo/tview"

	"github.com/boolean-maybe/mycounter/config"
	"github.com/boolean-maybe/mycounter/controller"
	"github.com/boolean-maybe/mycounter/internal/app"
	"github.com/boolean-maybe/mycounter/model"
	"github.com/boolean-maybe/mycounter/store"
	"github.com/boolean-maybe/mycounter/util/sysinfo"
	"github.com/boolean-maybe/mycounter/view"
)

// UI is the wired MVC stack: everything between the tview application and a screen.
type UI struct {
	LayoutModel *model.LayoutModel
	Controllers *Controllers
	InputRouter *controller.InputRouter
	RootLayout  *view.RootLayout
}

// BootstrapResult contains all initialized application components.
type BootstrapResult struct {
	Cfg      *config.Config
	LogLevel slog.Level
	// SystemInfo is collected before the screen starts, from the environment and terminfo.
	SystemInfo  *sysinfo.SystemInfo
	App         *tview.Application
	UI          *UI
	BackStack   store.BackStackStore
	RestoreMode config.RestoreMode
	// Restored is true when the stack was reopened from the previous session.
	Restored bool

	logCloser   io.Closer
	stopSignals func()
}

// AssembleUI builds and wires the MVC stack on top of application.
// The navigation stack is left empty; seed it with InitNavigation.
func AssembleUI(application *tview.Application) *UI {
	layoutModel := InitLayoutModel()
	controllers := BuildControllers(application)
	inputRouter := controller.NewInputRouter(controllers.Nav)

	rootLayout := view.NewRootLayout(
		layoutModel,
		controllers.Registry,
		controllers.Nav.FindView,
		controllers.Nav.CanGoBack,
		application,
	)

	wireOnViewActivated(rootLayout)
	wireNavigation(controllers.Nav, layoutModel, rootLayout)

	return &UI{
		LayoutModel: layoutModel,
		Controllers: controllers,
		InputRouter: inputRouter,
		RootLayout:  rootLayout,
	}
}

// Bootstrap orchestrates the complete application initialization sequence.
func Bootstrap() (*BootstrapResult, error) {
	// Phase 1: Configuration and logging
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	logLevel, logCloser := config.InitLogging(cfg)
	InstallDefaultConfig()

	// Phase 2: System information, collected before the screen takes over the terminal
	systemInfo := sysinfo.NewSystemInfo()
	slog.Debug("collected system information", systemInfo.LogAttrs()...)

	// Phase 3: Application
	application := app.NewApp()
	stopSignals := app.SetupSignalHandler(application)

	// Phase 4: MVC stack and input wiring
	ui := AssembleUI(application)
	app.InstallGlobalInputCapture(application, ui.InputRouter, ui.Controllers.Nav)

	// Phase 5: Initial stack (Home, or the saved session)
	restoreMode := config.GetRestoreMode()
	backStack := InitBackStackStore(restoreMode)
	restored, err := InitNavigation(ui.Controllers.Nav, backStack, restoreMode, config.PromptForRestore)
	if err != nil {
		stopSignals()
		ui.RootLayout.Cleanup()
		_ = logCloser.Close()
		return nil, err
	}

	return &BootstrapResult{
		Cfg:         cfg,
		LogLevel:    logLevel,
		SystemInfo:  systemInfo,
		App:         application,
		UI:          ui,
		BackStack:   backStack,
		RestoreMode: restoreMode,
		Restored:    restored,
		logCloser:   logCloser,
		stopSignals: stopSignals,
	}, nil
}

// Shutdown saves the session, releases listeners and closes the log file.
// Call it once, after the application has stopped.
func (r *BootstrapResult) Shutdown() {
	if err := SaveNavigation(r.UI.Controllers.Nav, r.BackStack, r.RestoreMode); err != nil {
		slog.Warn("failed to save session", "error", err)
	}
	r.UI.RootLayout.Cleanup()
	if r.stopSignals != nil {
		r.stopSignals()
	}
	if r.logCloser != nil {
		_ = r.logCloser.Close()
	}
}

// wireOnViewActivated logs every view the root layout activates.
func wireOnViewActivated(rootLayout *view.RootLayout) {
	rootLayout.SetOnViewActivated(func(v controller.View) {
		slog.Debug("view activated", "screen", model.ScreenName(v.GetScreen()))
	})
}

// wireNavigation wires navigation controller callbacks to keep LayoutModel
// and RootLayout in sync.
func wireNavigation(navController *controller.NavigationController, layoutModel *model.LayoutModel, rootLayout *view.RootLayout) {
	navController.SetOnViewChanged(func(entry *controller.ViewEntry) {
		layoutModel.SetContent(entry.Key, entry.Screen)
	})
	navController.SetActiveViewGetter(rootLayout.GetContentView)
}
