// Package course holds the gradebook's record type, the ordered collection
// of records, and the credit-weighted averages computed over them.
package course

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	MinScore = 0.0
	MaxScore = 100.0
)

var (
	ErrEmptyField       = errors.New("value cannot be empty")
	ErrNotInteger       = errors.New("not a valid integer")
	ErrNotPositive      = errors.New("value must be a positive integer")
	ErrNotNumber        = errors.New("not a valid number")
	ErrScoreOutOfRange  = errors.New("score must be between 0 and 100")
	ErrDuplicateCode    = errors.New("course code already exists")
	ErrNotFound         = errors.New("course not found")
	ErrIndexOutOfBounds = errors.New("course index out of range")
)

// Course is one gradebook entry. Code identifies the record and never
// changes once the course exists.
type Course struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Credits  int     `json:"credits"`
	Semester string  `json:"semester"`
	Score    float64 `json:"score"`
}

// New trims the string fields and returns a validated Course.
func New(code, name string, credits int, semester string, score float64) (Course, error) {
	c := Course{
		Code:     strings.TrimSpace(code),
		Name:     strings.TrimSpace(name),
		Credits:  credits,
		Semester: strings.TrimSpace(semester),
		Score:    score,
	}
	if err := c.Validate(); err != nil {
		return Course{}, err
	}
	return c, nil
}

// Validate reports the first field that breaks the record's constraints.
func (c Course) Validate() error {
	switch {
	case strings.TrimSpace(c.Code) == "":
		return fmt.Errorf("code: %w", ErrEmptyField)
	case strings.TrimSpace(c.Name) == "":
		return fmt.Errorf("name: %w", ErrEmptyField)
	case c.Credits <= 0:
		return fmt.Errorf("credits: %w", ErrNotPositive)
	case strings.TrimSpace(c.Semester) == "":
		return fmt.Errorf("semester: %w", ErrEmptyField)
	case !scoreInRange(c.Score):
		return fmt.Errorf("score: %w", ErrScoreOutOfRange)
	}
	return nil
}

// NormalizeCode returns the form of a course code used for equality:
// surrounding whitespace removed and letters lower-cased.
func NormalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// ParseCredits parses a credit count. The input is trimmed first.
func ParseCredits(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrNotInteger
	}
	if n <= 0 {
		return 0, ErrNotPositive
	}
	return n, nil
}

// ParseScore parses a score on the 0-100 scale, bounds inclusive.
func ParseScore(raw string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, ErrNotNumber
	}
	if !scoreInRange(f) {
		return 0, ErrScoreOutOfRange
	}
	return f, nil
}

// scoreInRange is false for NaN.
func scoreInRange(f float64) bool {
	return f >= MinScore && f <= MaxScore
}
