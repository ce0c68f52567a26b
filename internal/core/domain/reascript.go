package domain

import "encoding/json"

// ReaScriptDocument is the root of the ReaScript API corpus.
type ReaScriptDocument struct {
	// Functions is the primary collection, keyed by function name.
	Functions []ReaScriptFunction `json:"functions"`

	// ScrapedAt records when the corpus was generated. Provenance
	// only, never validated.
	ScrapedAt string `json:"scraped_at,omitempty"`
}

// ReaScriptFunction is a single ReaScript API function record.
// The upstream documentation capitalizes names inconsistently
// (TrackFX_GetParam, GetMediaTrackInfo_Value), so ReaScript lookups
// fall back to case-insensitive matching.
type ReaScriptFunction struct {
	// Name is the function name. Non-empty, unique within the corpus.
	Name string `json:"name"`

	// Namespace is the API namespace the function belongs to, when
	// the corpus provides one.
	Namespace string `json:"namespace,omitempty"`

	// Description is the documentation text.
	Description string `json:"description,omitempty"`

	// Signature is a single flattened call signature, when present.
	Signature string `json:"signature,omitempty"`

	// Signatures holds the per-language parsed signatures
	// (c, eel2, lua, python).
	Signatures map[string]ReaScriptSignature `json:"signatures,omitempty"`

	// AvailableIn lists the languages the function is exposed to.
	AvailableIn []string `json:"available_in,omitempty"`

	// Parameters describes the function parameters, when the corpus
	// provides a flattened list.
	Parameters []Parameter `json:"parameters,omitempty"`

	// Returns describes the documented return values.
	Returns []ReturnValue `json:"returns,omitempty"`

	// Constants carries related constants verbatim; the shape varies
	// by function so it stays opaque.
	Constants json.RawMessage `json:"constants,omitempty"`

	raw json.RawMessage
}

// ReaScriptSignature is one language-specific parsed signature.
type ReaScriptSignature struct {
	// ReturnType is the documented return type. Nil when the
	// signature has none.
	ReturnType *string `json:"return_type"`

	// Name is the function name as it appears in that language.
	Name string `json:"name"`

	// Parameters lists the signature parameters in order.
	Parameters []Parameter `json:"parameters"`
}

// UnmarshalJSON decodes the record and retains the raw bytes so fields
// the struct does not model survive round-trips.
func (f *ReaScriptFunction) UnmarshalJSON(data []byte) error {
	type alias ReaScriptFunction
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*f = ReaScriptFunction(a)
	f.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON emits the record exactly as loaded when raw bytes are
// available, preserving unmodelled fields.
func (f ReaScriptFunction) MarshalJSON() ([]byte, error) {
	if f.raw != nil {
		return f.raw, nil
	}
	type alias ReaScriptFunction
	return json.Marshal(alias(f))
}
