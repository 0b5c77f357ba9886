package rule

import (
	"fmt"
	"sort"
	"sync"
)

// Violation represents a rule violation
type Violation struct {
	Rule        string `yaml:"rule"`
	Description string `yaml:"description,omitempty"`
	Message     string `yaml:"message"`
	File        string `yaml:"file"`
	Line        int    `yaml:"line"`
	Column      int    `yaml:"column"`
}

// ProcessingError represents a rule that failed on a file
type ProcessingError struct {
	Rule string
	File string
	Err  error
}

// Error returns error message
func (e *ProcessingError) Error() string {
	return fmt.Sprintf("rule %v failed on %v: %v", e.Rule, e.File, e.Err)
}

// Unwrap returns underlying error
func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// Report collects violations, it is safe for concurrent use
type Report struct {
	mux        sync.Mutex
	violations []*Violation
	errors     []*ProcessingError
}

// Add adds violation
func (r *Report) Add(violation *Violation) {
	r.mux.Lock()
	r.violations = append(r.violations, violation)
	r.mux.Unlock()
}

// AddError adds processing error
func (r *Report) AddError(err *ProcessingError) {
	r.mux.Lock()
	r.errors = append(r.errors, err)
	r.mux.Unlock()
}

// Violations returns violations sorted by file, line and rule
func (r *Report) Violations() []*Violation {
	r.mux.Lock()
	ret := make([]*Violation, len(r.violations))
	copy(ret, r.violations)
	r.mux.Unlock()
	sort.SliceStable(ret, func(i, j int) bool {
		if ret[i].File != ret[j].File {
			return ret[i].File < ret[j].File
		}
		if ret[i].Line != ret[j].Line {
			return ret[i].Line < ret[j].Line
		}
		return ret[i].Rule < ret[j].Rule
	})
	return ret
}

// Errors returns processing errors
func (r *Report) Errors() []*ProcessingError {
	r.mux.Lock()
	defer r.mux.Unlock()
	ret := make([]*ProcessingError, len(r.errors))
	copy(ret, r.errors)
	return ret
}

// NewReport creates a report
func NewReport() *Report {
	return &Report{}
}
