package metrics

import "time"

// Metrics is the instrumentation surface the rest of the application
// depends on, so tests can swap in a mock instead of a real registry.
type Metrics interface {
	ObserveRequest(method, route string, status int, duration time.Duration)
	IncMatchesRecorded()
	IncNotificationsSent()
	IncNotificationsFailed()
	SetScoreboardClients(count int)
}
