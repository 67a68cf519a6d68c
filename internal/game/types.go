package game

import "fmt"

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// NewMessage creates a message shown for duration seconds.
func NewMessage(duration float64, format string, args ...any) *Message {
	return &Message{Text: fmt.Sprintf(format, args...), TimeLeft: duration, MaxTime: duration}
}

// Update ages the message and reports whether it is still visible.
func (m *Message) Update(dt float64) bool {
	m.TimeLeft -= dt
	return m.TimeLeft > 0
}

// Alpha returns the opacity in [0, 1]. Messages stay opaque for the first
// half of their lifetime and fade linearly after.
func (m *Message) Alpha() float64 {
	if m.MaxTime <= 0 || m.TimeLeft <= 0 {
		return 0
	}
	half := m.MaxTime / 2
	if m.TimeLeft >= half {
		return 1
	}
	return m.TimeLeft / half
}
