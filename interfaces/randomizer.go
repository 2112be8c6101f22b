package interfaces

// Randomizer generates random strings for request ids.
type Randomizer interface {
	StringRunes(length int) string
}
