package interfaces

// Sampler draws count elements uniformly at random from candidates,
// with replacement. Tests substitute a deterministic implementation.
type Sampler interface {
	Choices(candidates []string, count int) []string
}
