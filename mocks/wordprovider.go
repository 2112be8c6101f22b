package mocks

type WordProvider struct {
	SampleCall struct {
		Received struct {
			Count int
		}
		Returns struct {
			Words []string
			Error error
		}
	}
	SampleAllCall struct {
		TimesCalled int
		Returns     struct {
			Words []string
		}
	}
	VocabularyCall struct {
		Returns struct {
			Words []string
		}
	}
}

func (w *WordProvider) Sample(count int) ([]string, error) {
	w.SampleCall.Received.Count = count

	return w.SampleCall.Returns.Words, w.SampleCall.Returns.Error
}

func (w *WordProvider) SampleAll() []string {
	defer func() { w.SampleAllCall.TimesCalled++ }()

	return w.SampleAllCall.Returns.Words
}

func (w *WordProvider) Vocabulary() []string {
	return w.VocabularyCall.Returns.Words
}
