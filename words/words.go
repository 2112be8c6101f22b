// Package words provides randomly sampled words from a fixed vocabulary.
package words

import (
	I "github.com/mpenning/wordspam/interfaces"
)

// DefaultVocabulary is the compiled-in wordlist served when no custom list is configured.
var DefaultVocabulary = []string{
	"fleas", "please", "cheese", "geez", "grease",
	"ease", "bees", "tease", "knees", "seas", "trees",
}

// Provider samples words with replacement from an immutable vocabulary.
// Randomness comes from the Sampler supplied at construction.
type Provider struct {
	vocabulary []string
	sampler    I.Sampler
}

// NewProvider returns a Provider over the default vocabulary.
func NewProvider(sampler I.Sampler) *Provider {
	provider, _ := NewCustomProvider(DefaultVocabulary, sampler)
	return provider
}

// NewCustomProvider returns a Provider over the given vocabulary.
func NewCustomProvider(vocabulary []string, sampler I.Sampler) (*Provider, error) {
	if len(vocabulary) == 0 {
		return nil, EmptyVocabularyError{}
	}

	words := make([]string, len(vocabulary))
	copy(words, vocabulary)

	return &Provider{vocabulary: words, sampler: sampler}, nil
}

// Sample draws count words uniformly at random from the vocabulary, with
// replacement. The result is in draw order and is returned exactly as the
// sampler produced it.
func (p *Provider) Sample(count int) ([]string, error) {
	if count < 0 {
		return nil, InvalidCountError{Count: count}
	}
	if count == 0 {
		return []string{}, nil
	}

	return p.sampler.Choices(p.vocabulary, count), nil
}

// SampleAll draws as many words as the vocabulary holds.
func (p *Provider) SampleAll() []string {
	words, _ := p.Sample(len(p.vocabulary))
	return words
}

// Vocabulary returns a copy of the fixed vocabulary.
func (p *Provider) Vocabulary() []string {
	words := make([]string, len(p.vocabulary))
	copy(words, p.vocabulary)
	return words
}
