package scanner

// startResultMsg reports the outcome of Engine.Start.
type startResultMsg struct {
	err       error
	sessionID string
}

// resultMsg carries a decode from the engine goroutine into the update loop.
type resultMsg struct {
	sessionID string
	result    Result
}

// stopResultMsg reports the outcome of Engine.Stop followed by Engine.Clear.
type stopResultMsg struct {
	err       error
	sessionID string
}
