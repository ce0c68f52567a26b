package domain

// Parameter describes a single parameter of a documented function or
// method.
type Parameter struct {
	// Name is the parameter name. May be empty when the source
	// documentation lists only a type.
	Name string `json:"name"`

	// Type is the documented parameter type.
	Type string `json:"type,omitempty"`

	// Description explains the parameter.
	Description string `json:"description,omitempty"`

	// Optional is true when the documentation marks the parameter
	// as optional.
	Optional bool `json:"optional,omitempty"`
}

// ReturnValue describes a single documented return value.
type ReturnValue struct {
	// Type is the documented return type.
	Type string `json:"type,omitempty"`

	// Description explains the return value.
	Description string `json:"description,omitempty"`
}
