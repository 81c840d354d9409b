package store

import "time"

// Snapshot is a measured viewport persisted under a named device profile,
// so later CLI runs can compute metrics without a live display.
type Snapshot struct {
	Width   float32 `json:"width" yaml:"width"`
	Height  float32 `json:"height" yaml:"height"`
	TakenAt int64   `json:"takenAt" yaml:"taken_at"`
}

// SetSize records the viewport edges and stamps the snapshot.
func (s *Snapshot) SetSize(width, height float32) {
	s.Width = width
	s.Height = height
	s.TakenAt = time.Now().Unix()
}

// IsZero reports whether the snapshot holds no usable viewport.
func (s Snapshot) IsZero() bool {
	return s.Width <= 0 || s.Height <= 0
}
