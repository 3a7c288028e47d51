package model

import "sync"

// LayoutModel tracks which stack entry the content area should display.
// RootLayout observes it and swaps views; NavigationController writes it.
type LayoutModel struct {
	mu             sync.RWMutex
	contentKey     string
	contentScreen  Screen
	revision       uint64
	listeners      map[int]func()
	nextListenerID int
}

// NewLayoutModel creates an empty layout model
func NewLayoutModel() *LayoutModel {
	return &LayoutModel{
		listeners:      make(map[int]func()),
		nextListenerID: 1,
	}
}

// SetContent points the content area at a stack entry and notifies listeners
func (lm *LayoutModel) SetContent(key string, screen Screen) {
	lm.mu.Lock()
	lm.contentKey = key
	lm.contentScreen = screen
	lm.revision++
	lm.mu.Unlock()

	lm.notifyListeners()
}

// Touch bumps the revision without changing content, forcing listeners to re-evaluate
func (lm *LayoutModel) Touch() {
	lm.mu.Lock()
	lm.revision++
	lm.mu.Unlock()

	lm.notifyListeners()
}

// GetContentKey returns the stack entry key currently shown
func (lm *LayoutModel) GetContentKey() string {
	lm.mu.RLock()
	defer lm.mu.RUnlock()
	return lm.contentKey
}

// GetContentScreen returns the screen currently shown
func (lm *LayoutModel) GetContentScreen() Screen {
	lm.mu.RLock()
	defer lm.mu.RUnlock()
	return lm.contentScreen
}

// GetRevision returns a counter that increases on every change
func (lm *LayoutModel) GetRevision() uint64 {
	lm.mu.RLock()
	defer lm.mu.RUnlock()
	return lm.revision
}

// AddListener registers a change callback and returns its ID
func (lm *LayoutModel) AddListener(listener func()) int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	id := lm.nextListenerID
	lm.nextListenerID++
	lm.listeners[id] = listener
	return id
}

// RemoveListener unregisters a callback; unknown IDs are ignored
func (lm *LayoutModel) RemoveListener(id int) {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	delete(lm.listeners, id)
}

// notifyListeners calls listeners outside the lock so they may read the model
func (lm *LayoutModel) notifyListeners() {
	lm.mu.RLock()
	listeners := make([]func(), 0, len(lm.listeners))
	for _, l := range lm.listeners {
		listeners = append(listeners, l)
	}
	lm.mu.RUnlock()

	for _, l := range listeners {
		l()
	}
}
