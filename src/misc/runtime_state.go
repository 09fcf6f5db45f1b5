package misc

import "sync"

var (
	runtimeStimulusMode     = DefaultStimulusMode()
	runtimeStimulusModeLock sync.RWMutex
)

// SetRuntimeStimulusMode updates the global runtime stimulus mode.
func SetRuntimeStimulusMode(mode StimulusMode) {
	runtimeStimulusModeLock.Lock()
	defer runtimeStimulusModeLock.Unlock()

	runtimeStimulusMode = mode
}

// RuntimeStimulusMode returns the currently configured stimulus mode.
func RuntimeStimulusMode() StimulusMode {
	runtimeStimulusModeLock.RLock()
	defer runtimeStimulusModeLock.RUnlock()

	return runtimeStimulusMode
}
