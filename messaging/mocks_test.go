package messaging

import "time"

// mockTimeProvider returns a fixed instant.
type mockTimeProvider struct {
	fixedTime time.Time
}

func (m *mockTimeProvider) Now() time.Time {
	return m.fixedTime
}
