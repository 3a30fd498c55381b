// Package user implements the admin-facing account management operations.
package user

import (
	"context"
	"net/url"
	"time"

	"go.uber.org/zap"

	"estate-service/internal/adapter/cache"
	"estate-service/internal/domain/principal"
	domain "estate-service/internal/domain/user"
	"estate-service/internal/listing"
	"estate-service/pkg/apperr"
)

// Repository defines the account persistence operations the usecase needs,
// including the listing collection contract.
type Repository interface {
	listing.Collection[domain.User]
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Account is the client-facing view of a stored account.
type Account struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Role      principal.Role `json:"role"`
	Verified  bool           `json:"verified"`
	CreatedAt time.Time      `json:"createdAt"`
}

// filters is the declared filter map for account listings.
var filters = listing.FilterMap{
	"role": {Path: "role"},
	"date": {Path: "created_at", Date: true},
}

// Usecase implements account administration.
type Usecase struct {
	repo  Repository
	cache cache.PrincipalCache
	log   *zap.Logger
}

// New creates a new user Usecase. If cache is nil, principal cache
// invalidation is skipped.
func New(r Repository, c cache.PrincipalCache, log *zap.Logger) *Usecase {
	return &Usecase{repo: r, cache: c, log: log}
}

// List returns a page of accounts matching the declared filters.
func (uc *Usecase) List(ctx context.Context, query url.Values) (*listing.Page[Account], error) {
	page, err := listing.Paginate(ctx, query, uc.repo, filters, listing.NewestFirst)
	if err != nil {
		uc.log.Error("failed to list accounts", zap.Error(err))
		return nil, err
	}

	accounts := make([]Account, len(page.Result))
	for i, u := range page.Result {
		accounts[i] = toAccount(&u)
	}

	return &listing.Page[Account]{Result: accounts, Pagination: page.Pagination}, nil
}

// Get returns a single account by ID.
func (uc *Usecase) Get(ctx context.Context, id string) (*Account, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("User")
	}

	account := toAccount(u)
	return &account, nil
}

// Delete removes an account and invalidates its cached principal, so tokens
// issued to the deleted account stop resolving immediately.
func (uc *Usecase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return apperr.WriteFailure("Unable to delete user", err)
	}
	if !deleted {
		return apperr.NotFound("User")
	}

	if uc.cache != nil {
		if err := uc.cache.Delete(ctx, id); err != nil {
			uc.log.Warn("failed to invalidate principal cache after delete", zap.String("id", id), zap.Error(err))
		}
	}

	return nil
}

func toAccount(u *domain.User) Account {
	return Account{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Verified:  u.Verified,
		CreatedAt: u.CreatedAt,
	}
}
