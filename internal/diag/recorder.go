package diag

import "sync"

// Recorder is a Reporter that retains every report it receives. It exists
// for tests and for the hw-info tool's summary output.
type Recorder struct {
	mu      sync.Mutex
	reports []Report
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (rec *Recorder) Report(r Report) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.reports = append(rec.reports, r)
}

// Reports returns a copy of everything recorded so far.
func (rec *Recorder) Reports() []Report {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	out := make([]Report, len(rec.reports))
	copy(out, rec.reports)
	return out
}

// CountKind returns how many reports of the given kind were recorded.
func (rec *Recorder) CountKind(kind Kind) int {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	n := 0
	for _, r := range rec.reports {
		if r.Kind == kind {
			n++
		}
	}
	return n
}
