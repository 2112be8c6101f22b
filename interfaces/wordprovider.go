package interfaces

type WordProvider interface {
	Sample(count int) ([]string, error)
	SampleAll() []string
	Vocabulary() []string
}
