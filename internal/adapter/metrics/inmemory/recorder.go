package inmemory

import "sync"

type Snapshot struct {
	TickTotal     uint64            `json:"tick_total"`
	ActionTotal   uint64            `json:"action_total"`
	ActionSuccess uint64            `json:"action_success"`
	ActionFailure uint64            `json:"action_failure"`
	ByAction      map[string]uint64 `json:"by_action"`
	SaveSuccess   uint64            `json:"save_success"`
	SaveFailure   uint64            `json:"save_failure"`
	LoadSuccess   uint64            `json:"load_success"`
	LoadFailure   uint64            `json:"load_failure"`
}

type Recorder struct {
	mu          sync.Mutex
	ticks       uint64
	success     uint64
	failure     uint64
	byAction    map[string]uint64
	saveSuccess uint64
	saveFailure uint64
	loadSuccess uint64
	loadFailure uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byAction: map[string]uint64{},
	}
}

func (r *Recorder) RecordTick() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks++
}

func (r *Recorder) RecordAction(name string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ok {
		r.success++
	} else {
		r.failure++
	}
	r.byAction[name]++
}

func (r *Recorder) RecordSave(ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ok {
		r.saveSuccess++
	} else {
		r.saveFailure++
	}
}

func (r *Recorder) RecordLoad(ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ok {
		r.loadSuccess++
	} else {
		r.loadFailure++
	}
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		TickTotal:     r.ticks,
		ActionSuccess: r.success,
		ActionFailure: r.failure,
		ActionTotal:   r.success + r.failure,
		ByAction:      make(map[string]uint64, len(r.byAction)),
		SaveSuccess:   r.saveSuccess,
		SaveFailure:   r.saveFailure,
		LoadSuccess:   r.loadSuccess,
		LoadFailure:   r.loadFailure,
	}
	for k, v := range r.byAction {
		out.ByAction[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
