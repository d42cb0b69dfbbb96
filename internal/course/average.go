package course

import "sort"

// Average is a credit-weighted average score. OK is false when the
// contributing courses carry no credits, in which case Value is meaningless.
type Average struct {
	Value float64
	OK    bool
}

// SemesterAverage pairs a semester label with its weighted average.
type SemesterAverage struct {
	Semester string
	Average
}

// Summary is the overall average plus one entry per semester, sorted by
// semester label ascending.
type Summary struct {
	Overall   Average
	Semesters []SemesterAverage
}

type accumulator struct {
	credits int
	points  float64
}

func (a *accumulator) add(c Course) {
	a.credits += c.Credits
	a.points += c.Score * float64(c.Credits)
}

func (a accumulator) average() Average {
	if a.credits == 0 {
		return Average{}
	}
	return Average{Value: a.points / float64(a.credits), OK: true}
}

// OverallAverage returns sum(score*credits)/sum(credits). The bool is false
// when the total credits are zero, including for an empty slice.
func OverallAverage(courses []Course) (float64, bool) {
	var acc accumulator
	for _, c := range courses {
		acc.add(c)
	}
	avg := acc.average()
	return avg.Value, avg.OK
}

// AveragesBySemester groups courses by exact semester label and averages
// each group independently.
func AveragesBySemester(courses []Course) map[string]Average {
	groups := make(map[string]*accumulator)
	for _, c := range courses {
		acc, ok := groups[c.Semester]
		if !ok {
			acc = &accumulator{}
			groups[c.Semester] = acc
		}
		acc.add(c)
	}
	out := make(map[string]Average, len(groups))
	for sem, acc := range groups {
		out[sem] = acc.average()
	}
	return out
}

// Summarize computes the overall and per-semester averages.
func Summarize(courses []Course) Summary {
	overall, ok := OverallAverage(courses)
	bySem := AveragesBySemester(courses)

	semesters := make([]string, 0, len(bySem))
	for sem := range bySem {
		semesters = append(semesters, sem)
	}
	sort.Strings(semesters)

	s := Summary{
		Overall:   Average{Value: overall, OK: ok},
		Semesters: make([]SemesterAverage, 0, len(semesters)),
	}
	for _, sem := range semesters {
		s.Semesters = append(s.Semesters, SemesterAverage{Semester: sem, Average: bySem[sem]})
	}
	return s
}
