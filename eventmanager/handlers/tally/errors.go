package tally

import "fmt"

type UnexpectedEventDataError struct {
	EventType string
}

func (e UnexpectedEventDataError) Error() string {
	return fmt.Sprintf("event [%s] did not carry sample event data", e.EventType)
}
