package domain

import "encoding/json"

// JSFXDocument is the root of the JSFX reference corpus.
// Root keys beyond the ones modelled here (operators, special
// variables, sections, scrape metadata) are tolerated and ignored for
// querying.
type JSFXDocument struct {
	// Functions is the primary collection, keyed by function name.
	Functions []JSFXFunction `json:"functions"`

	// ScrapedAt records when the corpus was generated. Provenance
	// only, never validated.
	ScrapedAt string `json:"scraped_at,omitempty"`
}

// JSFXFunction is a single JSFX audio-scripting function record.
// Names are short conventional identifiers where case is meaningful,
// so JSFX lookups are case-sensitive.
type JSFXFunction struct {
	// Name is the function name. Non-empty, unique within the corpus.
	Name string `json:"name"`

	// Category groups related functions.
	Category string `json:"category,omitempty"`

	// Description is the documentation text.
	Description string `json:"description,omitempty"`

	// Signature is the call signature as scraped.
	Signature string `json:"signature,omitempty"`

	raw json.RawMessage
}

// UnmarshalJSON decodes the record and retains the raw bytes so fields
// the struct does not model survive round-trips.
func (f *JSFXFunction) UnmarshalJSON(data []byte) error {
	type alias JSFXFunction
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*f = JSFXFunction(a)
	f.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON emits the record exactly as loaded when raw bytes are
// available, preserving unmodelled fields.
func (f JSFXFunction) MarshalJSON() ([]byte, error) {
	if f.raw != nil {
		return f.raw, nil
	}
	type alias JSFXFunction
	return json.Marshal(alias(f))
}
