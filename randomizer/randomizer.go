// Package randomizer is used for generating random strings and random word choices.
package randomizer

import (
	"math/rand"
	"time"
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

// StringRunes generates a random string of runes of a specified length.
func StringRunes(n int) string {
	return generateRunes(n)
}

// Choices draws count elements from candidates uniformly at random, with replacement.
func Choices(candidates []string, count int) []string {
	return generateChoices(candidates, count)
}

type Randomizer struct{}

// StringRunes generates a random string of runes of a specified length from a Randomizer struct.
func (r Randomizer) StringRunes(n int) string {
	return generateRunes(n)
}

// Choices draws count elements with replacement from a Randomizer struct.
func (r Randomizer) Choices(candidates []string, count int) []string {
	return generateChoices(candidates, count)
}

func generateRunes(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rand.Intn(len(letterRunes))]
	}
	return string(b)
}

func generateChoices(candidates []string, count int) []string {
	chosen := make([]string, count)
	for i := range chosen {
		chosen[i] = candidates[rand.Intn(len(candidates))]
	}
	return chosen
}
