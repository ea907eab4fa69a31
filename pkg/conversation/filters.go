package conversation

import (
	"sync"

	"github.com/cockroachdb/errors"

	errUtils "github.com/aaronfloresserna/assistantUACH/errors"
)

// Materias lists the subject areas the assistant service can filter by, in
// display order.
var Materias = []string{
	"constitucional",
	"civil",
	"penal",
	"mercantil",
	"laboral",
	"administrativo",
}

// Semester level bounds for the academic-level filter.
const (
	MinSemesterLevel = 1
	MaxSemesterLevel = 10
)

// FilterSnapshot is the filter pair captured at submission time. Zero values
// mean "unset" and are omitted from the request payload.
type FilterSnapshot struct {
	Materia       string
	SemesterLevel int
}

// FilterState holds the currently selected subject-area and academic-level
// filters. Mutating it never alters previously appended messages; it only
// affects the payload of the next submission.
type FilterState struct {
	mu            sync.Mutex
	materia       string
	semesterLevel int
}

// NewFilterState creates a filter state with both filters unset ("all").
func NewFilterState() *FilterState {
	return &FilterState{}
}

// SetMateria selects a subject-area filter. An empty value clears the filter;
// anything outside the known set is rejected.
func (f *FilterState) SetMateria(materia string) error {
	if materia != "" && !IsKnownMateria(materia) {
		return errors.Wrapf(errUtils.ErrUnknownMateria, "%q", materia)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.materia = materia
	return nil
}

// SetSemesterLevel selects an academic-level filter. Zero clears the filter;
// anything outside [1,10] is rejected.
func (f *FilterState) SetSemesterLevel(level int) error {
	if level != 0 && (level < MinSemesterLevel || level > MaxSemesterLevel) {
		return errors.Wrapf(errUtils.ErrSemesterOutOfRange, "got %d", level)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.semesterLevel = level
	return nil
}

// Current returns the active filter pair used to build the next request payload.
func (f *FilterState) Current() FilterSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FilterSnapshot{
		Materia:       f.materia,
		SemesterLevel: f.semesterLevel,
	}
}

// IsKnownMateria reports whether the value is one of the enumerated subject areas.
func IsKnownMateria(materia string) bool {
	for _, known := range Materias {
		if known == materia {
			return true
		}
	}
	return false
}
