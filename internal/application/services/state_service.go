package services

import (
	"context"
	"fmt"

	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/caching/manager"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/logging"
)

// StateService exposes whole-state operations: reset, flush and dump.
type StateService struct {
	stores *manager.Manager
	logger *logging.ChanneledLogger
}

func NewStateService(stores *manager.Manager, logger *logging.ChanneledLogger) *StateService {
	return &StateService{stores: stores, logger: logger}
}

// Reset reinitialises every store from fixtures and waits for the result to
// be stored.
func (s *StateService) Reset(ctx context.Context) error {
	s.stores.ResetAll()
	if err := s.stores.FlushAll(ctx); err != nil {
		return fmt.Errorf("failed to persist reset state: %w", err)
	}
	return nil
}

func (s *StateService) Flush(ctx context.Context) error {
	return s.stores.FlushAll(ctx)
}

func (s *StateService) Dirty() bool {
	return s.stores.Dirty()
}

func (s *StateService) Dump() manager.Dump {
	return s.stores.Dump()
}
