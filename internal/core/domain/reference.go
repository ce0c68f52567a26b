package domain

// ReferenceDoc is a human-readable reference document. Documents are a
// small fixed set owned by the build step and are served verbatim.
type ReferenceDoc struct {
	// ID is the stable identifier used to request the document.
	ID string

	// Title is the human-readable title.
	Title string

	// Description summarizes the document contents.
	Description string
}
