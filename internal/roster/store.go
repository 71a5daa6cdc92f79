package roster

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/tiagorb/enrollment-console/internal/model"
	"github.com/tiagorb/enrollment-console/internal/utils"
)

// Store is the in-memory mirror of the record service: the single source of
// truth the engine mutates and the handlers read. Mutations only land here
// after the record service has confirmed them.
type Store struct {
	mu       sync.RWMutex
	students map[int64]model.Student
	classes  map[int64]model.Class
}

func NewStore() *Store {
	return &Store{
		students: make(map[int64]model.Student),
		classes:  make(map[int64]model.Class),
	}
}

// Replace swaps the whole mirror in one step, used after a refresh pull.
func (s *Store) Replace(students []model.Student, classes []model.Class) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.students = make(map[int64]model.Student, len(students))
	for _, st := range students {
		s.students[st.ID] = st
	}
	s.classes = make(map[int64]model.Class, len(classes))
	for _, c := range classes {
		c.Occupied = 0
		s.classes[c.ID] = c
	}
}

func (s *Store) Student(id int64) (model.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.students[id]
	return st, ok
}

func (s *Store) Class(id int64) (model.Class, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.classes[id]
	return c, ok
}

func (s *Store) PutStudent(st model.Student) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.students[st.ID] = st
}

func (s *Store) DeleteStudent(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.students, id)
}

// Occupancy recounts how many students reference each class. It is a pure
// function of current membership; nothing increments or decrements a stored
// counter, so the result can never drift from the roster itself.
func (s *Store) Occupancy() map[int64]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.occupancyLocked()
}

func (s *Store) occupancyLocked() map[int64]int {
	counts := make(map[int64]int, len(s.classes))
	for id := range s.classes {
		counts[id] = 0
	}
	for _, st := range s.students {
		if st.ClassID == nil {
			continue
		}
		if _, ok := s.classes[*st.ClassID]; ok {
			counts[*st.ClassID]++
		}
	}
	return counts
}

// Classes returns a copy of all classes with Occupied filled in from the
// recount, ordered by name.
func (s *Store) Classes() []model.Class {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := s.occupancyLocked()
	out := make([]model.Class, 0, len(s.classes))
	for _, c := range s.classes {
		c.Occupied = counts[c.ID]
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Students returns a filtered copy of the roster. Search is a
// case-insensitive substring match on the name; the age buckets mirror the
// console's filter dropdown. Default order is by id, sort=age puts the
// oldest student first.
func (s *Store) Students(filter model.StudentFilter) []model.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	out := make([]model.Student, 0, len(s.students))
	for _, st := range s.students {
		if search != "" && !strings.Contains(strings.ToLower(st.Name), search) {
			continue
		}
		if filter.ClassID != nil && (st.ClassID == nil || *st.ClassID != *filter.ClassID) {
			continue
		}
		if filter.Status != "" && st.Status != filter.Status {
			continue
		}
		if filter.AgeRange != "" && !filter.AgeRange.Contains(utils.Age(st.BirthDate.Time, now)) {
			continue
		}
		out = append(out, st)
	}

	switch filter.Sort {
	case "name":
		sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case "age":
		// oldest first
		sort.Slice(out, func(i, j int) bool { return out[i].BirthDate.Before(out[j].BirthDate.Time) })
	default:
		sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	}
	return out
}

func (s *Store) CountStudents() (total, active int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.students {
		total++
		if st.Status == model.StatusActive {
			active++
		}
	}
	return total, active
}

func (s *Store) CountClasses() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.classes)
}
