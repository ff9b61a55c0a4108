package scheduling

import "fmt"

// NotFoundError signals that the referenced doctor does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Resource, e.ID)
}

// InvalidIntervalError signals a request whose start does not precede its end.
type InvalidIntervalError struct {
	Detail string
}

func (e *InvalidIntervalError) Error() string {
	return "invalid interval: " + e.Detail
}

// InvalidDateError signals a calendar date that could not be parsed.
type InvalidDateError struct {
	Date string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", e.Date)
}
