package repository

import (
	"context"

	"classifieds/internal/domain/repository"
)

// FakeTransactionManager runs the callback directly against the given repositories.
// Commit or rollback is recorded so tests can assert on it.
type FakeTransactionManager struct {
	Users repository.UserRepository
	Ads   repository.AdRepository

	Calls      int
	Committed  int
	RolledBack int
}

var _ repository.TransactionManager = (*FakeTransactionManager)(nil)

func (f *FakeTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	f.Calls++
	if err := fn(f); err != nil {
		f.RolledBack++
		return err
	}
	f.Committed++

	return nil
}

func (f *FakeTransactionManager) NewUserRepository() repository.UserRepository {
	return f.Users
}

func (f *FakeTransactionManager) NewAdRepository() repository.AdRepository {
	return f.Ads
}
