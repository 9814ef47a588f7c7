package ports

// KPIRecorder collects coarse simulation counters for the ops endpoint.
// Implementations must be safe for concurrent use.
type KPIRecorder interface {
	RecordTick()
	RecordAction(name string, ok bool)
	RecordSave(ok bool)
	RecordLoad(ok bool)
}

// NopRecorder satisfies KPIRecorder and discards everything.
type NopRecorder struct{}

func (NopRecorder) RecordTick()               {}
func (NopRecorder) RecordAction(string, bool) {}
func (NopRecorder) RecordSave(bool)           {}
func (NopRecorder) RecordLoad(bool)           {}
