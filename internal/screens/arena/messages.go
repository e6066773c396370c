package arena

import "time"

// questionReadyMsg is sent when a question request finishes.
type questionReadyMsg struct {
	Err error
}

// solutionReadyMsg is sent when a solution request finishes.
type solutionReadyMsg struct {
	Err error
}

// spinnerTickMsg animates the loading spinner while a provider call is
// outstanding.
type spinnerTickMsg time.Time
