package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordSession(_ *Session) error           { return nil }
func (n *NoopRecorder) RecordTierChange(_ *TierChange) error     { return nil }
func (n *NoopRecorder) RecordPlaybackStep(_ *PlaybackStep) error { return nil }
func (n *NoopRecorder) Name() string                             { return "noop" }
func (n *NoopRecorder) Close() error                             { return nil }
