package mocks

import (
	S "github.com/mpenning/wordspam/structs"
)

// Handler handmade mock for tests.
type Handler struct {
	OnEventCall struct {
		TimesCalled int
		Received    struct {
			Event S.Event
		}
		Returns struct {
			Error error
		}
	}
}

// OnEvent mock method.
func (h *Handler) OnEvent(event S.Event) error {
	defer func() { h.OnEventCall.TimesCalled++ }()

	h.OnEventCall.Received.Event = event

	return h.OnEventCall.Returns.Error
}
