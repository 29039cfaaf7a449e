package recorder

import "TickerLens/internal/model"

// Recorder journals published snapshots for offline inspection. The
// journal is write-only: the pipeline never reads it back.
type Recorder interface {
	RecordSnapshot(snap *model.Snapshot) error
	Close() error
}
