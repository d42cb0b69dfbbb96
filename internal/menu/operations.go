package menu

import (
	"fmt"
	"strings"

	"gradebook/internal/course"
)

// Add asks for a new course and appends it. A code that is already taken
// ends the operation before any other field is asked for.
func (c *Controller) Add() Result {
	fmt.Fprint(c.out, "\n=== Add a New Course ===\n")
	code, err := c.prompt.NonEmpty("Course code: ")
	if err != nil {
		return aborted("", err)
	}
	if _, ok := c.book.FindIndex(code); ok {
		fmt.Fprintf(c.out, "Error: Course with code '%s' already exists.\n", code)
		return Result{Outcome: Rejected, Code: code, Err: fmt.Errorf("add %q: %w", code, course.ErrDuplicateCode)}
	}

	name, err := c.prompt.NonEmpty("Course name: ")
	if err != nil {
		return aborted(code, err)
	}
	credits, err := c.prompt.PositiveInt("Number of credits: ")
	if err != nil {
		return aborted(code, err)
	}
	semester, err := c.prompt.NonEmpty("Semester (e.g., 2025-Fall): ")
	if err != nil {
		return aborted(code, err)
	}
	score, err := c.prompt.Score("Score (0–100): ")
	if err != nil {
		return aborted(code, err)
	}

	crs, err := course.New(code, name, credits, semester, score)
	if err == nil {
		err = c.book.Add(crs)
	}
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return Result{Outcome: Rejected, Code: code, Err: err}
	}

	saveErr := c.save()
	fmt.Fprintf(c.out, "Course '%s' added successfully.\n\n", crs.Code)
	c.log.Info().Str("code", crs.Code).Msg("course added")
	return Result{Outcome: Done, Code: crs.Code, Err: saveErr}
}

// Update edits the non-code fields of an existing course in place. A blank
// answer keeps the current value; an invalid one is reported and also keeps
// the current value.
func (c *Controller) Update() Result {
	fmt.Fprint(c.out, "\n=== Update a Course ===\n")
	code, err := c.prompt.NonEmpty("Enter course code to update: ")
	if err != nil {
		return aborted("", err)
	}
	idx, res, ok := c.lookup(code)
	if !ok {
		return res
	}
	crs, err := c.book.At(idx)
	if err != nil {
		return Result{Outcome: Rejected, Code: code, Err: err}
	}

	fmt.Fprintf(c.out, "Current data for %s:\n", crs.Code)
	fmt.Fprintf(c.out, "  Name    : %s\n", crs.Name)
	fmt.Fprintf(c.out, "  Credits : %d\n", crs.Credits)
	fmt.Fprintf(c.out, "  Semester: %s\n", crs.Semester)
	fmt.Fprintf(c.out, "  Score   : %.2f\n", crs.Score)
	fmt.Fprint(c.out, "\nPress Enter to keep the current value.\n")

	name, err := c.prompt.Line("New name (leave blank to keep current): ")
	if err != nil {
		return aborted(crs.Code, err)
	}
	if name != "" {
		crs.Name = name
	}

	raw, err := c.prompt.Line("New credits (leave blank to keep current): ")
	if err != nil {
		return aborted(crs.Code, err)
	}
	if raw != "" {
		if credits, err := course.ParseCredits(raw); err != nil {
			fmt.Fprintln(c.out, "Invalid credits. Keeping old value.")
		} else {
			crs.Credits = credits
		}
	}

	semester, err := c.prompt.Line("New semester (leave blank to keep current): ")
	if err != nil {
		return aborted(crs.Code, err)
	}
	if semester != "" {
		crs.Semester = semester
	}

	raw, err = c.prompt.Line("New score 0–100 (leave blank to keep current): ")
	if err != nil {
		return aborted(crs.Code, err)
	}
	if raw != "" {
		if score, err := course.ParseScore(raw); err != nil {
			fmt.Fprintln(c.out, "Invalid score. Keeping old value.")
		} else {
			crs.Score = score
		}
	}

	if err := c.book.Set(idx, crs); err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return Result{Outcome: Rejected, Code: crs.Code, Err: err}
	}
	saveErr := c.save()
	fmt.Fprintf(c.out, "Course '%s' updated successfully.\n\n", crs.Code)
	c.log.Info().Str("code", crs.Code).Msg("course updated")
	return Result{Outcome: Done, Code: crs.Code, Err: saveErr}
}

// Delete removes a course after the user answers exactly "y".
func (c *Controller) Delete() Result {
	fmt.Fprint(c.out, "\n=== Delete a Course ===\n")
	code, err := c.prompt.NonEmpty("Enter course code to delete: ")
	if err != nil {
		return aborted("", err)
	}
	idx, res, ok := c.lookup(code)
	if !ok {
		return res
	}
	crs, err := c.book.At(idx)
	if err != nil {
		return Result{Outcome: Rejected, Code: code, Err: err}
	}

	answer, err := c.prompt.Line(fmt.Sprintf("Are you sure you want to delete '%s - %s'? (y/n): ", crs.Code, crs.Name))
	if err != nil {
		return aborted(crs.Code, err)
	}
	if answer != "y" {
		fmt.Fprint(c.out, "Delete cancelled.\n\n")
		return Result{Outcome: Cancelled, Code: crs.Code}
	}

	if _, err := c.book.Remove(idx); err != nil {
		return Result{Outcome: Rejected, Code: crs.Code, Err: err}
	}
	saveErr := c.save()
	fmt.Fprint(c.out, "Course deleted.\n\n")
	c.log.Info().Str("code", crs.Code).Msg("course deleted")
	return Result{Outcome: Done, Code: crs.Code, Err: saveErr}
}

// View prints every course as a fixed-width table in gradebook order.
func (c *Controller) View() Result {
	fmt.Fprint(c.out, "\n=== Gradebook ===\n")
	if c.book.Len() == 0 {
		fmt.Fprint(c.out, "No courses in the gradebook yet.\n\n")
		return Result{Outcome: Done}
	}

	header := fmt.Sprintf("%-10s %-30s %4s %-12s %6s", "Code", "Name", "Cred", "Semester", "Score")
	fmt.Fprintln(c.out, header)
	fmt.Fprintln(c.out, strings.Repeat("-", len(header)))
	for _, crs := range c.book.Courses() {
		fmt.Fprintf(c.out, "%-10s %-30s %4d %-12s %6.2f\n", crs.Code, crs.Name, crs.Credits, crs.Semester, crs.Score)
	}
	fmt.Fprintln(c.out)
	return Result{Outcome: Done}
}

// Summary prints the overall and per-semester weighted averages.
func (c *Controller) Summary() Result {
	fmt.Fprint(c.out, "\n=== Score Summary (0–100) ===\n")
	if c.book.Len() == 0 {
		fmt.Fprint(c.out, "No courses available; cannot compute average score.\n\n")
		return Result{Outcome: Done}
	}

	s := course.Summarize(c.book.Courses())
	if s.Overall.OK {
		fmt.Fprintf(c.out, "Overall weighted average score: %.2f\n", s.Overall.Value)
	} else {
		fmt.Fprintln(c.out, "Cannot compute overall average score (no valid credits).")
	}

	fmt.Fprint(c.out, "\nAverage score by semester:\n")
	for _, sem := range s.Semesters {
		if sem.OK {
			fmt.Fprintf(c.out, "  %s: %.2f\n", sem.Semester, sem.Value)
		} else {
			fmt.Fprintf(c.out, "  %s: N/A\n", sem.Semester)
		}
	}
	fmt.Fprintln(c.out)
	return Result{Outcome: Done}
}

// lookup finds code or reports it missing. ok is false when res should be
// returned to the caller as is.
func (c *Controller) lookup(code string) (idx int, res Result, ok bool) {
	idx, found := c.book.FindIndex(code)
	if !found {
		fmt.Fprintf(c.out, "Error: No course found with code '%s'.\n", code)
		return -1, Result{Outcome: Rejected, Code: code, Err: fmt.Errorf("%q: %w", code, course.ErrNotFound)}, false
	}
	return idx, Result{}, true
}
