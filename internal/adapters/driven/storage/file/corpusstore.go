package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/reaper-tools/readocs/internal/core/domain"
	"github.com/reaper-tools/readocs/internal/core/ports/driven"
	"github.com/reaper-tools/readocs/internal/logger"
)

// Ensure CorpusStore implements the interface.
var _ driven.CorpusStore = (*CorpusStore)(nil)

// Fixed logical names of the corpus backing files, as written by the
// build step.
const (
	jsfxFile      = "jsfx-api.json"
	reaScriptFile = "reascript-api.json"
	reaWrapFile   = "reawrap-api.json"
)

// CorpusStore loads the three corpus documents from JSON files in a
// data directory. Each document is loaded at most once per process
// lifetime, on first access, and the parsed value (or the load error)
// is cached for every later call. The backing files are immutable
// while the process runs, so there is no refresh path.
type CorpusStore struct {
	dir string

	jsfx      corpusCache[domain.JSFXDocument]
	reaScript corpusCache[domain.ReaScriptDocument]
	reaWrap   corpusCache[domain.ReaWrapDocument]
}

// NewCorpusStore creates a corpus store reading from dir.
func NewCorpusStore(dir string) *CorpusStore {
	return &CorpusStore{dir: dir}
}

// JSFX returns the JSFX corpus document.
func (s *CorpusStore) JSFX(_ context.Context) (*domain.JSFXDocument, error) {
	doc, err := s.jsfx.load(filepath.Join(s.dir, jsfxFile))
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ReaScript returns the ReaScript API corpus document.
func (s *CorpusStore) ReaScript(_ context.Context) (*domain.ReaScriptDocument, error) {
	doc, err := s.reaScript.load(filepath.Join(s.dir, reaScriptFile))
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ReaWrap returns the ReaWrap wrapper-API corpus document.
func (s *CorpusStore) ReaWrap(_ context.Context) (*domain.ReaWrapDocument, error) {
	doc, err := s.reaWrap.load(filepath.Join(s.dir, reaWrapFile))
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// corpusCache is the load-once cache for one corpus document. The
// sync.Once guarantees the filesystem read and parse happen a single
// time; a parse failure is cached just like a success, so a corrupt
// corpus never silently retries into partial data.
type corpusCache[T any] struct {
	once sync.Once
	doc  *T
	err  error
}

func (c *corpusCache[T]) load(path string) (*T, error) {
	c.once.Do(func() {
		c.doc, c.err = readCorpus[T](path)
	})
	return c.doc, c.err
}

// readCorpus reads and parses one corpus file, mapping the two failure
// kinds onto the domain sentinels: a missing file is
// domain.ErrDataUnavailable (expected deployment state), a present but
// unparsable file is domain.ErrDataCorrupt.
func readCorpus[T any](path string) (*T, error) {
	name := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("Corpus file %s not found", name)
			return nil, fmt.Errorf("%s: %w", name, domain.ErrDataUnavailable)
		}
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	var doc T
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Warn("Corpus file %s failed to parse: %v", name, err)
		return nil, fmt.Errorf("parse %s: %v: %w", name, err, domain.ErrDataCorrupt)
	}

	logger.Debug("Loaded corpus file %s (%d bytes)", name, len(data))
	return &doc, nil
}
