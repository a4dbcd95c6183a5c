package api

import "fmt"

// ValidationError reports a raw input field that cannot become part of a
// SimulationRequest. It is raised before any request is constructed, so a
// payload carrying NaN or infinity never reaches the wire.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// RequestError covers the whole failed-exchange class: a non-2xx status, a
// transport failure, or an unparseable response body. Status is zero when
// no HTTP status was received.
type RequestError struct {
	Status int
	Err    error
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("simulation service returned %d", e.Status)
	}
	return fmt.Sprintf("simulation request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// SchemaError marks a malformed success: the service answered 200 with a
// parseable body that is missing a required run or field, or whose history
// length disagrees with the declared horizon. It is surfaced to the user
// like a RequestError but logged distinctly.
type SchemaError struct {
	Run    string
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed simulation response: run %q field %q %s", e.Run, e.Field, e.Reason)
	}
	return fmt.Sprintf("malformed simulation response: run %q %s", e.Run, e.Reason)
}
