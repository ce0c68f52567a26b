package domain

import "encoding/json"

// ReaWrapDocument is the root of the ReaWrap wrapper-API corpus.
type ReaWrapDocument struct {
	// Classes is the primary collection, keyed by class name.
	Classes []ReaWrapClass `json:"classes"`

	// ScrapedAt records when the corpus was generated. Provenance
	// only, never validated.
	ScrapedAt string `json:"scraped_at,omitempty"`
}

// ReaWrapClass is a wrapper-API class with its methods.
type ReaWrapClass struct {
	// Name is the class name. Non-empty, unique within the corpus.
	Name string `json:"name"`

	// Description is the class-level documentation text.
	Description string `json:"description,omitempty"`

	// Methods lists the class methods in source order.
	Methods []ReaWrapMethod `json:"methods"`

	raw json.RawMessage
}

// ReaWrapMethod is a single wrapper-API method record. Records are
// uniquely identified by the (class name, method name) pair.
type ReaWrapMethod struct {
	// Name is the method name.
	Name string `json:"name"`

	// Class is the owning class name, denormalized into every method
	// record by the corpus build step.
	Class string `json:"class"`

	// Description is the documentation text.
	Description string `json:"description,omitempty"`

	// Signature is the Class:method(params) call signature.
	Signature string `json:"signature,omitempty"`

	// Parameters describes the method parameters in order.
	Parameters []Parameter `json:"parameters,omitempty"`

	// Returns describes the documented return values.
	Returns []ReturnValue `json:"returns,omitempty"`

	// Category is the documentation category, when present.
	Category *string `json:"category,omitempty"`

	raw json.RawMessage
}

// MethodMatch pairs a matched method with its owning class so the
// class→method hierarchy is recoverable from a flat search result
// list.
type MethodMatch struct {
	// Class is the owning class name.
	Class string `json:"class"`

	// Name is the method name.
	Name string `json:"name"`

	// Method is the full method record.
	Method ReaWrapMethod `json:"method"`
}

// UnmarshalJSON decodes the class and retains the raw bytes so fields
// the struct does not model survive round-trips.
func (c *ReaWrapClass) UnmarshalJSON(data []byte) error {
	type alias ReaWrapClass
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*c = ReaWrapClass(a)
	c.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON emits the class exactly as loaded when raw bytes are
// available, preserving unmodelled fields.
func (c ReaWrapClass) MarshalJSON() ([]byte, error) {
	if c.raw != nil {
		return c.raw, nil
	}
	type alias ReaWrapClass
	return json.Marshal(alias(c))
}

// UnmarshalJSON decodes the method and retains the raw bytes so fields
// the struct does not model survive round-trips.
func (m *ReaWrapMethod) UnmarshalJSON(data []byte) error {
	type alias ReaWrapMethod
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*m = ReaWrapMethod(a)
	m.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON emits the method exactly as loaded when raw bytes are
// available, preserving unmodelled fields.
func (m ReaWrapMethod) MarshalJSON() ([]byte, error) {
	if m.raw != nil {
		return m.raw, nil
	}
	type alias ReaWrapMethod
	return json.Marshal(alias(m))
}
