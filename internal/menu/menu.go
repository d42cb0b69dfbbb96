// Package menu runs the gradebook's numbered menu and implements the
// operations behind each entry.
package menu

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"gradebook/internal/course"
	"gradebook/internal/prompt"
)

// ErrInvalidChoice is the Result error for a menu entry that does not exist.
var ErrInvalidChoice = errors.New("invalid menu choice")

// Store is the persistence the Controller needs.
type Store interface {
	Load() ([]course.Course, error)
	Save(courses []course.Course) error
	// File names the backing file in user messages.
	File() string
}

// Outcome classifies how an operation ended.
type Outcome int

const (
	// Done means the operation ran to completion. Err is non-nil only when
	// the change was applied in memory but could not be saved.
	Done Outcome = iota
	// Cancelled means the user declined, or input stopped mid-operation.
	Cancelled
	// Rejected means the request was refused and nothing changed.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Done:
		return "done"
	case Cancelled:
		return "cancelled"
	case Rejected:
		return "rejected"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Result is what each menu operation returns, so callers can check the
// outcome without parsing printed text.
type Result struct {
	Outcome Outcome
	Code    string
	Err     error
}

type state int

const (
	running state = iota
	exiting
)

// item is one menu entry. The items slice drives both rendering and dispatch.
type item struct {
	key   string
	label string
	run   func(*Controller) Result
}

var items = []item{
	{key: "1", label: "Add a course", run: (*Controller).Add},
	{key: "2", label: "Update a course", run: (*Controller).Update},
	{key: "3", label: "Delete a course", run: (*Controller).Delete},
	{key: "4", label: "View gradebook", run: (*Controller).View},
	{key: "5", label: "Show score summary", run: (*Controller).Summary},
	{key: "6", label: "Exit", run: (*Controller).Exit},
}

// Controller owns the in-memory gradebook for the life of the process.
type Controller struct {
	book   *course.Gradebook
	store  Store
	prompt *prompt.Prompter
	out    io.Writer
	log    zerolog.Logger
	state  state
}

// New loads the gradebook from st. Unreadable data is reported to out and
// replaced with an empty gradebook. Stored records are kept as they are;
// repeated codes only produce a warning.
func New(st Store, p *prompt.Prompter, out io.Writer, log zerolog.Logger) *Controller {
	c := &Controller{
		store:  st,
		prompt: p,
		out:    out,
		log:    log.With().Str("component", "menu").Logger(),
	}

	courses, err := st.Load()
	if err != nil {
		fmt.Fprintf(out, "Warning: could not read %s. Starting with an empty gradebook.\n", st.File())
		c.log.Warn().Err(err).Msg("load gradebook")
		courses = nil
	}
	book, dups := course.Restore(courses)
	for _, code := range dups {
		fmt.Fprintf(out, "Warning: course code '%s' appears more than once in %s; only the first entry can be looked up.\n", code, st.File())
	}
	if len(dups) > 0 {
		c.log.Warn().Strs("codes", dups).Msg("duplicate course codes in data file")
	}
	c.book = book
	return c
}

// Book returns the gradebook the Controller operates on.
func (c *Controller) Book() *course.Gradebook {
	return c.book
}

// Running reports whether the menu loop would continue.
func (c *Controller) Running() bool {
	return c.state == running
}

// Run shows the menu and dispatches choices until the user exits or the
// input stops. Either way the gradebook is saved before Run returns.
func (c *Controller) Run() {
	for c.state == running {
		c.printMenu()
		choice, err := c.prompt.Line(fmt.Sprintf("Choose an option (1–%d): ", len(items)))
		if err != nil {
			if !errors.Is(err, prompt.ErrClosed) {
				c.log.Error().Err(err).Msg("read menu choice")
			}
			c.Exit()
			return
		}
		c.Dispatch(choice)
	}
}

// Dispatch runs the operation for choice. Input failing inside an
// operation exits the menu.
func (c *Controller) Dispatch(choice string) Result {
	for _, it := range items {
		if it.key != choice {
			continue
		}
		res := it.run(c)
		c.log.Debug().Str("choice", choice).Stringer("outcome", res.Outcome).Err(res.Err).Msg("menu operation finished")
		if res.Outcome == Cancelled && res.Err != nil && c.state == running {
			if !errors.Is(res.Err, prompt.ErrClosed) {
				c.log.Error().Err(res.Err).Msg("read input")
			}
			c.Exit()
		}
		return res
	}
	fmt.Fprintf(c.out, "Invalid choice. Please select from 1 to %d.\n\n", len(items))
	return Result{Outcome: Rejected, Err: fmt.Errorf("%q: %w", choice, ErrInvalidChoice)}
}

// Exit saves the gradebook and stops the menu loop.
func (c *Controller) Exit() Result {
	fmt.Fprintln(c.out, "Saving data and exiting...")
	err := c.save()
	fmt.Fprintln(c.out, "Goodbye!")
	c.state = exiting
	return Result{Outcome: Done, Err: err}
}

func (c *Controller) printMenu() {
	const rule = "==================================="
	fmt.Fprintln(c.out, rule)
	fmt.Fprintln(c.out, " Student Gradebook CLI")
	fmt.Fprintln(c.out, rule)
	for _, it := range items {
		fmt.Fprintf(c.out, "%s. %s\n", it.key, it.label)
	}
	fmt.Fprintln(c.out, rule)
}

// save writes the whole gradebook. Failures are reported and returned, and
// the in-memory state is kept as is.
func (c *Controller) save() error {
	if err := c.store.Save(c.book.Courses()); err != nil {
		fmt.Fprintln(c.out, "Error: could not save gradebook data.")
		c.log.Error().Err(err).Msg("save gradebook")
		return err
	}
	return nil
}

// aborted is the Result for an operation whose input ended early.
func aborted(code string, err error) Result {
	return Result{Outcome: Cancelled, Code: code, Err: err}
}
