package roster

import (
	"reflect"
	"testing"
	"time"

	"github.com/tiagorb/enrollment-console/internal/model"
)

func seedStore() *Store {
	s := NewStore()
	email := "bia@example.com"
	s.Replace(
		[]model.Student{
			{ID: 1, Name: "Ana Costa", BirthDate: birthAge(12), Status: model.StatusActive, ClassID: id(1)},
			{ID: 2, Name: "Bia Ferreira", BirthDate: birthAge(7), Email: &email, Status: model.StatusActive, ClassID: id(1)},
			{ID: 3, Name: "Carlos Lima", BirthDate: birthAge(14), Status: model.StatusInactive, ClassID: id(2)},
			{ID: 4, Name: "Duda Rocha", BirthDate: birthAge(10), Status: model.StatusInactive},
		},
		[]model.Class{
			{ID: 1, Name: "1A", Capacity: 30},
			{ID: 2, Name: "2A", Capacity: 28},
			{ID: 3, Name: "3A", Capacity: 25},
		},
	)
	return s
}

// birthAge yields a birth date a comfortable margin past the given age so
// the assertions hold regardless of when the test runs.
func birthAge(years int) model.Date {
	return model.Date{Time: time.Now().UTC().AddDate(-years, 0, -30)}
}

func id(v int64) *int64 { return &v }

// The central invariant: occupied always equals the recount of members, and
// the recount is pure, two calls with no mutation in between are identical.
func TestOccupancyDerivedAndIdempotent(t *testing.T) {
	s := seedStore()

	first := s.Occupancy()
	second := s.Occupancy()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("occupancy must be idempotent: %v vs %v", first, second)
	}

	want := map[int64]int{1: 2, 2: 1, 3: 0}
	if !reflect.DeepEqual(first, want) {
		t.Fatalf("expected %v, got %v", want, first)
	}

	for _, c := range s.Classes() {
		if c.Occupied != want[c.ID] {
			t.Errorf("class %d snapshot occupied = %d, want %d", c.ID, c.Occupied, want[c.ID])
		}
		if c.Occupied > c.Capacity {
			t.Errorf("class %d over capacity", c.ID)
		}
	}
}

func TestOccupancyFollowsMutations(t *testing.T) {
	s := seedStore()

	st, _ := s.Student(4)
	st.ClassID = id(3)
	s.PutStudent(st)
	if s.Occupancy()[3] != 1 {
		t.Fatalf("assignment must show up in the recount")
	}

	s.DeleteStudent(3)
	if s.Occupancy()[2] != 0 {
		t.Fatalf("deleting the sole occupant must free the class")
	}
}

// A student pointing at a class the store does not know is not counted
// anywhere rather than corrupting the map.
func TestOccupancyIgnoresDanglingClassRef(t *testing.T) {
	s := seedStore()
	s.PutStudent(model.Student{ID: 9, Name: "Ghost", BirthDate: birthAge(11), ClassID: id(99)})

	counts := s.Occupancy()
	if _, ok := counts[99]; ok {
		t.Fatalf("unknown class must not appear in the recount")
	}
}

func TestStudentsFilter(t *testing.T) {
	s := seedStore()
	// Ages: Ana 12, Bia 7, Carlos 14, Duda 10.
	cases := []struct {
		name   string
		filter model.StudentFilter
		want   []int64
	}{
		{"all", model.StudentFilter{}, []int64{1, 2, 3, 4}},
		{"search case-insensitive", model.StudentFilter{Search: "fERRei"}, []int64{2}},
		{"by class", model.StudentFilter{ClassID: id(1)}, []int64{1, 2}},
		{"by status", model.StudentFilter{Status: model.StatusInactive}, []int64{3, 4}},
		{"sort by name", model.StudentFilter{Sort: "name"}, []int64{1, 2, 3, 4}},
		{"sort by age oldest first", model.StudentFilter{Sort: "age"}, []int64{3, 1, 4, 2}},
	}

	for _, tc := range cases {
		got := s.Students(tc.filter)
		ids := make([]int64, len(got))
		for i, st := range got {
			ids[i] = st.ID
		}
		if !reflect.DeepEqual(ids, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, ids, tc.want)
		}
	}
}

func TestStudentsAgeRangeFilter(t *testing.T) {
	s := seedStore()

	got := s.Students(model.StudentFilter{AgeRange: model.AgeRange5to7})
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected only the 7-year-old, got %v", got)
	}

	got = s.Students(model.StudentFilter{AgeRange: model.AgeRange14Plus})
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("expected only the oldest student, got %v", got)
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := seedStore()

	classes := s.Classes()
	classes[0].Capacity = 0
	if c, _ := s.Class(classes[0].ID); c.Capacity == 0 {
		t.Fatalf("mutating a snapshot must not reach the store")
	}

	students := s.Students(model.StudentFilter{})
	students[0].Name = "changed"
	if st, _ := s.Student(students[0].ID); st.Name == "changed" {
		t.Fatalf("mutating a snapshot must not reach the store")
	}
}

func TestCounts(t *testing.T) {
	s := seedStore()
	total, active := s.CountStudents()
	if total != 4 || active != 2 {
		t.Fatalf("got total=%d active=%d", total, active)
	}
	if s.CountClasses() != 3 {
		t.Fatalf("got %d classes", s.CountClasses())
	}
}
