package words

import "fmt"

type InvalidCountError struct {
	Count int
}

func (e InvalidCountError) Error() string {
	return fmt.Sprintf("word count must not be negative: %d", e.Count)
}

type EmptyVocabularyError struct{}

func (e EmptyVocabularyError) Error() string {
	return "vocabulary must contain at least one word"
}
