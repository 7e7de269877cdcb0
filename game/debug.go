package game

// DebugState holds debug flags that persist across run restarts
type DebugState struct {
	ShowStats bool // overlay FPS and population counters
}

var globalDebugState = &DebugState{}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}
