package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ledger/internal/domain/repository"
	mockRepo "ledger/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// txFixture wires a mock transaction manager so that Execute runs its callback
// against a repository factory prepared by the test. The callback's error is
// propagated, matching the real transaction manager.
type txFixture struct {
	t         *testing.T
	txManager *mockRepo.MockTransactionManager
}

func newTxFixture(t *testing.T) txFixture {
	return txFixture{
		t:         t,
		txManager: mockRepo.NewMockTransactionManager(t),
	}
}

func (f txFixture) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)

			return fn(factory)
		})
}
