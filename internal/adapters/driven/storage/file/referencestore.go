package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/reaper-tools/readocs/internal/core/domain"
	"github.com/reaper-tools/readocs/internal/core/ports/driven"
)

// Ensure ReferenceStore implements the interface.
var _ driven.ReferenceStore = (*ReferenceStore)(nil)

// referenceDocs is the fixed set of reference documents, in display
// order. The identifiers are the public contract; the filenames are
// owned by the build step.
var referenceDocs = []struct {
	doc  domain.ReferenceDoc
	file string
}{
	{
		doc: domain.ReferenceDoc{
			ID:          "getting-started",
			Title:       "Getting Started",
			Description: "Introduction to scripting REAPER and using the reference corpora",
		},
		file: "getting-started.md",
	},
	{
		doc: domain.ReferenceDoc{
			ID:          "jsfx-overview",
			Title:       "JSFX Overview",
			Description: "The JSFX audio-scripting language: sections, sliders and samples",
		},
		file: "jsfx-overview.md",
	},
	{
		doc: domain.ReferenceDoc{
			ID:          "reascript-overview",
			Title:       "ReaScript Overview",
			Description: "The ReaScript API across C, EEL2, Lua and Python",
		},
		file: "reascript-overview.md",
	},
	{
		doc: domain.ReferenceDoc{
			ID:          "reawrap-guide",
			Title:       "ReaWrap Guide",
			Description: "Using the ReaWrap object-oriented Lua wrapper",
		},
		file: "reawrap-guide.md",
	},
}

// ReferenceStore serves the fixed reference documents from a docs
// directory, byte-for-byte with no processing.
type ReferenceStore struct {
	dir string
}

// NewReferenceStore creates a reference store reading from dir.
func NewReferenceStore(dir string) *ReferenceStore {
	return &ReferenceStore{dir: dir}
}

// List returns the available documents in display order.
func (s *ReferenceStore) List(_ context.Context) ([]domain.ReferenceDoc, error) {
	docs := make([]domain.ReferenceDoc, len(referenceDocs))
	for i := range referenceDocs {
		docs[i] = referenceDocs[i].doc
	}
	return docs, nil
}

// Read returns the verbatim contents of the document with the given
// identifier.
func (s *ReferenceStore) Read(_ context.Context, id string) ([]byte, error) {
	for i := range referenceDocs {
		if referenceDocs[i].doc.ID != id {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.dir, referenceDocs[i].file))
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%s: %w", referenceDocs[i].file, domain.ErrDataUnavailable)
			}
			return nil, fmt.Errorf("read %s: %w", referenceDocs[i].file, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("reference document %q: %w", id, domain.ErrNotFound)
}
