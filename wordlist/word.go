package wordlist

// Word is one row of a category resource.
type Word struct {
	Term          string
	Pronunciation string
	Meaning       string
	PartOfSpeech  string
	Example       string
}

func (w Word) HasExample() bool {
	return w.Example != ""
}
