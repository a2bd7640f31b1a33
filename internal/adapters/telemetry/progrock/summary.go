package progrock

import (
	"bytes"
	"sync"
	"time"

	"github.com/vito/progrock"
)

// Stage is the recorded outcome of one vertex.
type Stage struct {
	Name      string
	Started   time.Time
	Completed time.Time
	// Err is the error message the vertex completed with, if any.
	Err   string
	Lines int
	Bytes int
}

// Done reports whether the vertex completed.
func (s Stage) Done() bool {
	return !s.Completed.IsZero()
}

// Duration is the time between start and completion, or zero while running.
func (s Stage) Duration() time.Duration {
	if !s.Done() || s.Started.IsZero() {
		return 0
	}
	return s.Completed.Sub(s.Started)
}

// Summary is a progrock.Writer keeping one Stage per vertex. Log data is
// counted and dropped, so memory does not grow with process output.
type Summary struct {
	mu     sync.Mutex
	order  []string
	stages map[string]*Stage
}

// NewSummary creates an empty Summary.
func NewSummary() *Summary {
	return &Summary{stages: make(map[string]*Stage)}
}

// WriteStatus folds a status update into the per-vertex stages.
func (s *Summary) WriteStatus(update *progrock.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range update.GetVertexes() {
		st := s.stage(v.GetId())
		st.Name = v.GetName()
		if ts := v.GetStarted(); ts != nil {
			st.Started = ts.AsTime()
		}
		if ts := v.GetCompleted(); ts != nil {
			st.Completed = ts.AsTime()
		}
		if msg := v.GetError(); msg != "" {
			st.Err = msg
		}
	}
	for _, l := range update.GetLogs() {
		st := s.stage(l.GetVertex())
		data := l.GetData()
		st.Lines += bytes.Count(data, []byte{'\n'})
		st.Bytes += len(data)
	}
	return nil
}

// Close implements progrock.Writer.
func (s *Summary) Close() error {
	return nil
}

// Stages returns a copy of the recorded stages in the order they were first seen.
func (s *Summary) Stages() []Stage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Stage, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.stages[id])
	}
	return out
}

func (s *Summary) stage(id string) *Stage {
	st, ok := s.stages[id]
	if !ok {
		st = &Stage{}
		s.stages[id] = st
		s.order = append(s.order, id)
	}
	return st
}
