package mocks

type Randomizer struct {
	StringRunesCall struct {
		Received struct {
			Length int
		}
		Returns struct {
			Runes string
		}
	}
}

func (r *Randomizer) StringRunes(length int) string {
	r.StringRunesCall.Received.Length = length

	return r.StringRunesCall.Returns.Runes
}
