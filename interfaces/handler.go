package interfaces

import S "github.com/mpenning/wordspam/structs"

// Handler interface.
type Handler interface {
	OnEvent(event S.Event) error
}
