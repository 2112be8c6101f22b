package structs

// SampleEventData describes one served sample.
type SampleEventData struct {
	RequestID string
	Wordlist  string
	Count     int
	Words     []string
}
