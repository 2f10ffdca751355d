package resources

import "time"

// Recorder receives loader events. The Prometheus implementation lives in
// pkg/telemetry/metrics.
type Recorder interface {
	RecordHit(kind string)
	RecordMiss(kind string)
	RecordLoad(kind string, duration time.Duration, err error)
	RecordNotFound(kind string)
	RecordOverride()
	UpdateSize(entries int)
}

type noopRecorder struct{}

func (noopRecorder) RecordHit(string)                       {}
func (noopRecorder) RecordMiss(string)                      {}
func (noopRecorder) RecordLoad(string, time.Duration, error) {}
func (noopRecorder) RecordNotFound(string)                  {}
func (noopRecorder) RecordOverride()                        {}
func (noopRecorder) UpdateSize(int)                         {}
