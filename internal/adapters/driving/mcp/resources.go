package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/reaper-tools/readocs/internal/core/domain"
)

const (
	corporaURI    = "readocs://corpora"
	docsURI       = "readocs://docs"
	docsURIPrefix = "readocs://docs/"
)

// corpusStatus describes the load state of one corpus for the status
// resource.
type corpusStatus struct {
	Corpus    string `json:"corpus"`
	Status    string `json:"status"`
	Records   int    `json:"records,omitempty"`
	ScrapedAt string `json:"scraped_at,omitempty"`
	Error     string `json:"error,omitempty"`
}

// docEntry describes one reference document for the docs list resource.
type docEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URI         string `json:"uri"`
}

// registerResources registers all MCP resources with the server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         corporaURI,
		Name:        "corpora",
		Description: "Load status and record counts for the reference corpora",
		MIMEType:    "application/json",
	}, s.handleCorporaResource)

	if s.ports.Reference == nil {
		return
	}

	s.server.AddResource(&mcp.Resource{
		URI:         docsURI,
		Name:        "docs",
		Description: "List of available reference documents",
		MIMEType:    "application/json",
	}, s.handleDocsListResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: docsURIPrefix + "{docId}",
		Name:        "doc",
		Description: "A single reference document, served verbatim",
		MIMEType:    "text/markdown",
	}, s.handleDocResource)
}

// handleCorporaResource reports each corpus's load state. A missing or
// corrupt corpus is reported in the payload, never as a read failure.
func (s *Server) handleCorporaResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	statuses := make([]corpusStatus, 0, len(domain.Corpora()))
	for _, corpus := range domain.Corpora() {
		statuses = append(statuses, s.corpusStatus(ctx, corpus))
	}

	data, err := json.MarshalIndent(statuses, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding corpora status: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) corpusStatus(ctx context.Context, corpus domain.Corpus) corpusStatus {
	status := corpusStatus{Corpus: string(corpus)}

	if s.ports.Corpus == nil {
		status.Status = "missing"
		return status
	}

	var (
		count     int
		scrapedAt string
		err       error
	)
	switch corpus {
	case domain.CorpusJSFX:
		var doc *domain.JSFXDocument
		if doc, err = s.ports.Corpus.JSFX(ctx); err == nil {
			count, scrapedAt = len(doc.Functions), doc.ScrapedAt
		}
	case domain.CorpusReaScript:
		var doc *domain.ReaScriptDocument
		if doc, err = s.ports.Corpus.ReaScript(ctx); err == nil {
			count, scrapedAt = len(doc.Functions), doc.ScrapedAt
		}
	case domain.CorpusReaWrap:
		var doc *domain.ReaWrapDocument
		if doc, err = s.ports.Corpus.ReaWrap(ctx); err == nil {
			count, scrapedAt = len(doc.Classes), doc.ScrapedAt
		}
	}

	switch {
	case err == nil:
		status.Status = "ok"
		status.Records = count
		status.ScrapedAt = scrapedAt
	case errors.Is(err, domain.ErrDataUnavailable):
		status.Status = "missing"
	case errors.Is(err, domain.ErrDataCorrupt):
		status.Status = "corrupt"
		status.Error = err.Error()
	default:
		status.Status = "error"
		status.Error = err.Error()
	}
	return status
}

// handleDocsListResource lists the available reference documents.
func (s *Server) handleDocsListResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	docs, err := s.ports.Reference.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	entries := make([]docEntry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, docEntry{
			ID:          doc.ID,
			Title:       doc.Title,
			Description: doc.Description,
			URI:         docsURIPrefix + doc.ID,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding document list: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleDocResource serves one reference document verbatim.
func (s *Server) handleDocResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	id := extractDocID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := s.ports.Reference.Read(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrDataUnavailable) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("reading document %q: %w", id, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     string(data),
		}},
	}, nil
}

// extractDocID pulls the document ID out of a readocs://docs/{docId} URI.
func extractDocID(uri string) string {
	if !strings.HasPrefix(uri, docsURIPrefix) {
		return ""
	}
	return strings.TrimPrefix(uri, docsURIPrefix)
}
