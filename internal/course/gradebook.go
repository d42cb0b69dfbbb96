package course

import "fmt"

// Gradebook is the ordered collection of courses. Insertion order is the
// display order. Add refuses a code that is already present after
// normalization.
type Gradebook struct {
	courses []Course
}

// Restore builds a Gradebook from stored records as they are. Records are
// not validated, so data written by hand or by older versions survives a
// load/save cycle. Codes that repeat after normalization are kept and
// returned so the caller can warn; lookups find the first of them.
func Restore(courses []Course) (*Gradebook, []string) {
	g := &Gradebook{courses: make([]Course, 0, len(courses))}
	var dups []string
	for _, c := range courses {
		if _, ok := g.FindIndex(c.Code); ok {
			dups = append(dups, c.Code)
		}
		g.courses = append(g.courses, c)
	}
	return g, dups
}

// Len returns the number of courses.
func (g *Gradebook) Len() int {
	return len(g.courses)
}

// Courses returns a copy of the courses in display order.
func (g *Gradebook) Courses() []Course {
	out := make([]Course, len(g.courses))
	copy(out, g.courses)
	return out
}

// At returns the course at position i.
func (g *Gradebook) At(i int) (Course, error) {
	if i < 0 || i >= len(g.courses) {
		return Course{}, fmt.Errorf("index %d: %w", i, ErrIndexOutOfBounds)
	}
	return g.courses[i], nil
}

// FindIndex returns the position of the first course whose normalized code
// equals the normalized query.
func (g *Gradebook) FindIndex(code string) (int, bool) {
	want := NormalizeCode(code)
	for i, c := range g.courses {
		if NormalizeCode(c.Code) == want {
			return i, true
		}
	}
	return -1, false
}

// Add appends c. Errors if a course with the same normalized code exists.
func (g *Gradebook) Add(c Course) error {
	if _, ok := g.FindIndex(c.Code); ok {
		return fmt.Errorf("course %q: %w", c.Code, ErrDuplicateCode)
	}
	g.courses = append(g.courses, c)
	return nil
}

// Set replaces the course at position i, keeping its position and its
// original code. Callers validate the fields they change; fields carried
// over from a stored record are accepted as they are.
func (g *Gradebook) Set(i int, c Course) error {
	if i < 0 || i >= len(g.courses) {
		return fmt.Errorf("index %d: %w", i, ErrIndexOutOfBounds)
	}
	c.Code = g.courses[i].Code
	g.courses[i] = c
	return nil
}

// Remove deletes the course at position i. Remaining courses keep their
// relative order.
func (g *Gradebook) Remove(i int) (Course, error) {
	if i < 0 || i >= len(g.courses) {
		return Course{}, fmt.Errorf("index %d: %w", i, ErrIndexOutOfBounds)
	}
	removed := g.courses[i]
	g.courses = append(g.courses[:i], g.courses[i+1:]...)
	return removed, nil
}
