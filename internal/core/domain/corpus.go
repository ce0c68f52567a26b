package domain

// Corpus identifies one of the three reference corpora.
// The set is closed; routing dispatches on this tag.
type Corpus string

const (
	// CorpusJSFX is the JSFX audio-scripting function table.
	CorpusJSFX Corpus = "jsfx"

	// CorpusReaScript is the ReaScript API function table.
	CorpusReaScript Corpus = "reascript"

	// CorpusReaWrap is the ReaWrap object-oriented wrapper API
	// (classes and methods).
	CorpusReaWrap Corpus = "reawrap"
)

// Valid reports whether c is one of the three known corpus tags.
func (c Corpus) Valid() bool {
	switch c {
	case CorpusJSFX, CorpusReaScript, CorpusReaWrap:
		return true
	default:
		return false
	}
}

// Corpora lists all corpus tags in display order.
func Corpora() []Corpus {
	return []Corpus{CorpusJSFX, CorpusReaScript, CorpusReaWrap}
}
