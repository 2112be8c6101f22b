package mocks

type Sampler struct {
	ChoicesCall struct {
		TimesCalled int
		Received    struct {
			Candidates []string
			Count      int
		}
		Returns struct {
			Words []string
		}
	}
}

func (s *Sampler) Choices(candidates []string, count int) []string {
	defer func() { s.ChoicesCall.TimesCalled++ }()

	s.ChoicesCall.Received.Candidates = candidates
	s.ChoicesCall.Received.Count = count

	return s.ChoicesCall.Returns.Words
}
