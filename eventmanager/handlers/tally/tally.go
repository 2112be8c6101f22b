// Package tally counts words served per wordlist.
package tally

import (
	"sync"

	I "github.com/mpenning/wordspam/interfaces"
	S "github.com/mpenning/wordspam/structs"
)

type Tally struct {
	Logger I.Logger

	mutex  sync.Mutex
	served map[string]int
}

func NewTally(log I.Logger) *Tally {
	return &Tally{
		Logger: log,
		served: make(map[string]int),
	}
}

// OnEvent records the number of words served by a words.sampled event.
func (handler *Tally) OnEvent(event S.Event) error {
	data, ok := event.Data.(S.SampleEventData)
	if !ok {
		return UnexpectedEventDataError{EventType: event.Type}
	}

	handler.mutex.Lock()
	handler.served[data.Wordlist] += len(data.Words)
	total := handler.served[data.Wordlist]
	handler.mutex.Unlock()

	handler.Logger.Infof("wordlist [%s] has served %d words", data.Wordlist, total)
	return nil
}

// Served returns the number of words served so far for a wordlist.
func (handler *Tally) Served(wordlist string) int {
	handler.mutex.Lock()
	defer handler.mutex.Unlock()
	return handler.served[wordlist]
}
