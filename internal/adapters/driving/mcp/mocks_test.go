package mcp

import (
	"context"

	"github.com/reaper-tools/readocs/internal/core/domain"
)

// mockQueryService is a mock implementation of driving.QueryService.
// It records the last request so tests can assert request mapping.
type mockQueryService struct {
	result  *domain.QueryResult
	err     error
	lastReq domain.QueryRequest
}

func (m *mockQueryService) Query(_ context.Context, req domain.QueryRequest) (*domain.QueryResult, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

// mockReferenceService is a mock implementation of
// driving.ReferenceService.
type mockReferenceService struct {
	docs     []domain.ReferenceDoc
	contents map[string][]byte
	listErr  error
	readErr  error
}

func (m *mockReferenceService) List(_ context.Context) ([]domain.ReferenceDoc, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.docs, nil
}

func (m *mockReferenceService) Read(_ context.Context, id string) ([]byte, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	data, ok := m.contents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return data, nil
}
