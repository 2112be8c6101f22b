package controller

import "fmt"

type BasicAuthError struct{}

func (e BasicAuthError) Error() string {
	return "basic auth header not found"
}

type UnknownWordlistError struct {
	Name string
}

func (e UnknownWordlistError) Error() string {
	return fmt.Sprintf("no wordlist named %s", e.Name)
}

type CannotParseCountError struct {
	Value string
	Err   error
}

func (e CannotParseCountError) Error() string {
	return fmt.Sprintf("count must be an integer, got %s: %s", e.Value, e.Err)
}
