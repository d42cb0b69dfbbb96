package course_test

import (
	"errors"
	"testing"

	"gradebook/internal/course"
)

func sampleBook(t *testing.T) *course.Gradebook {
	t.Helper()
	g, dups := course.Restore([]course.Course{
		mustNew(t, "CS101", "Intro to CS", 3, "2025-Fall", 90),
		mustNew(t, "MA201", "Linear Algebra", 4, "2025-Spring", 75),
		mustNew(t, "PH150", "Physics", 2, "2025-Fall", 60),
	})
	if len(dups) != 0 {
		t.Fatalf("Restore reported duplicates: %v", dups)
	}
	return g
}

func TestFindIndexNormalizesQuery(t *testing.T) {
	g := sampleBook(t)
	for _, q := range []string{"MA201", "ma201", "  Ma201  ", "\tmA201\n"} {
		i, ok := g.FindIndex(q)
		if !ok || i != 1 {
			t.Errorf("FindIndex(%q) = %d, %v; want 1, true", q, i, ok)
		}
	}
	if _, ok := g.FindIndex("XX999"); ok {
		t.Error("FindIndex of unknown code reported a match")
	}
}

func TestAddRejectsDuplicateCode(t *testing.T) {
	g := sampleBook(t)
	err := g.Add(mustNew(t, " cs101 ", "Other", 1, "2026-Fall", 10))
	if !errors.Is(err, course.ErrDuplicateCode) {
		t.Fatalf("Add duplicate error = %v, want ErrDuplicateCode", err)
	}
	if g.Len() != 3 {
		t.Errorf("Len = %d after rejected add, want 3", g.Len())
	}
}

func TestAddAppendsInOrder(t *testing.T) {
	g := sampleBook(t)
	if err := g.Add(mustNew(t, "BI110", "Biology", 3, "2026-Spring", 81)); err != nil {
		t.Fatal(err)
	}
	got := g.Courses()
	want := []string{"CS101", "MA201", "PH150", "BI110"}
	for i, code := range want {
		if got[i].Code != code {
			t.Errorf("position %d = %s, want %s", i, got[i].Code, code)
		}
	}
}

func TestSetKeepsCodeAndPosition(t *testing.T) {
	g := sampleBook(t)
	if err := g.Set(1, course.Course{Code: "ZZ", Name: "Renamed", Credits: 5, Semester: "2026-Fall", Score: 99}); err != nil {
		t.Fatal(err)
	}
	c, err := g.At(1)
	if err != nil {
		t.Fatal(err)
	}
	if c.Code != "MA201" || c.Name != "Renamed" || c.Credits != 5 {
		t.Errorf("unexpected course after Set: %+v", c)
	}
	if err := g.Set(9, c); !errors.Is(err, course.ErrIndexOutOfBounds) {
		t.Errorf("Set out of range error = %v", err)
	}
}

func TestRemoveKeepsOrder(t *testing.T) {
	g := sampleBook(t)
	removed, err := g.Remove(1)
	if err != nil {
		t.Fatal(err)
	}
	if removed.Code != "MA201" {
		t.Errorf("removed %s, want MA201", removed.Code)
	}
	got := g.Courses()
	if len(got) != 2 || got[0].Code != "CS101" || got[1].Code != "PH150" {
		t.Errorf("unexpected remaining courses: %+v", got)
	}
	if _, err := g.Remove(5); !errors.Is(err, course.ErrIndexOutOfBounds) {
		t.Errorf("Remove out of range error = %v", err)
	}
}

func TestCoursesReturnsCopy(t *testing.T) {
	g := sampleBook(t)
	cs := g.Courses()
	cs[0].Name = "mutated"
	c, _ := g.At(0)
	if c.Name == "mutated" {
		t.Error("Courses() exposed internal storage")
	}
}

func TestRestoreKeepsStoredRecordsAsIs(t *testing.T) {
	stored := []course.Course{
		{Code: "LAB1", Name: "Lab", Credits: 0, Semester: "2025-Fall", Score: 100.5},
		{Code: "A", Name: "", Credits: 1, Semester: "s", Score: 1},
		{Code: " a ", Name: "b", Credits: 2, Semester: "s", Score: 2},
	}
	g, dups := course.Restore(stored)
	if g.Len() != 3 {
		t.Fatalf("Len = %d, want 3", g.Len())
	}
	if len(dups) != 1 || dups[0] != " a " {
		t.Errorf("duplicates = %q, want [\" a \"]", dups)
	}
	if got := g.Courses(); got[0] != stored[0] {
		t.Errorf("stored record changed: %+v", got[0])
	}
	if i, ok := g.FindIndex("a"); !ok || i != 1 {
		t.Errorf("FindIndex(a) = %d, %v; want first match 1", i, ok)
	}

	empty, dups := course.Restore(nil)
	if empty.Len() != 0 || len(dups) != 0 {
		t.Errorf("Restore(nil) = %d courses, %v", empty.Len(), dups)
	}
}

func TestSetKeepsStoredFieldsUnchanged(t *testing.T) {
	g, _ := course.Restore([]course.Course{{Code: "LAB1", Name: "Lab", Credits: 0, Semester: "s", Score: 50}})
	c, _ := g.At(0)
	c.Name = "Lab II"
	if err := g.Set(0, c); err != nil {
		t.Fatalf("Set with stored zero credits: %v", err)
	}
	if got, _ := g.At(0); got.Name != "Lab II" || got.Credits != 0 {
		t.Errorf("course after Set = %+v", got)
	}
}
