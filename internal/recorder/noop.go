package recorder

import "TickerLens/internal/model"

// NoopRecorder discards everything. Used when no journal is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordSnapshot(_ *model.Snapshot) error { return nil }

func (n *NoopRecorder) Close() error { return nil }
