package auth

import (
	"context"
	"time"

	"go.uber.org/zap"

	"estate-service/internal/adapter/cache"
	"estate-service/internal/domain/principal"
	domain "estate-service/internal/domain/user"
	"estate-service/pkg/apperr"
	"estate-service/pkg/identifier"
	"estate-service/pkg/security"
	"estate-service/pkg/token"
)

// Repository defines the account persistence operations the auth usecase
// needs. It abstracts the data layer so different stores can be used
// interchangeably.
type Repository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Usecase implements registration, login, and per-request principal
// resolution.
type Usecase struct {
	repo     Repository
	cache    cache.PrincipalCache
	tokens   token.Service
	tokenTTL time.Duration
	log      *zap.Logger
}

// New creates a new auth Usecase. If cache is nil, principal caching is
// disabled.
func New(r Repository, c cache.PrincipalCache, t token.Service, tokenTTL time.Duration, log *zap.Logger) *Usecase {
	return &Usecase{repo: r, cache: c, tokens: t, tokenTTL: tokenTTL, log: log}
}

// Register creates a new account and issues its first token. Duplicate
// emails are rejected before any write is attempted.
func (uc *Usecase) Register(ctx context.Context, in RegisterRequest) (*AuthResponse, error) {
	uc.log.Info("registering account", zap.String("email", in.Email), zap.String("role", string(in.Role)))

	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		uc.log.Error("failed to check existing email", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}
	if existing != nil {
		uc.log.Warn("email already exists", zap.String("email", in.Email))
		return nil, apperr.Conflict("Email already registered")
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		ID:           identifier.New(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		CreatedAt:    time.Now().UTC(),
	}

	if err := uc.repo.Create(ctx, u); err != nil {
		uc.log.Error("failed to create account", zap.Error(err))
		return nil, apperr.WriteFailure("Unable to register account", err)
	}

	return uc.respond(u)
}

// Login authenticates an account by email and password. Unknown emails and
// wrong passwords fail identically.
func (uc *Usecase) Login(ctx context.Context, in LoginRequest) (*AuthResponse, error) {
	u, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		uc.log.Error("failed to look up account", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}
	if u == nil || !security.CheckPassword(in.Password, u.PasswordHash) {
		uc.log.Warn("login rejected", zap.String("email", in.Email))
		return nil, apperr.Forbidden("Invalid email or password")
	}

	return uc.respond(u)
}

// ResolvePrincipal reconstructs the principal for a verified token subject.
// It uses cache-aside: check cache first, then the database on a miss.
// Returns (nil, nil) when the subject no longer resolves to an account.
func (uc *Usecase) ResolvePrincipal(ctx context.Context, id string) (*principal.Principal, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, id)
		if err != nil {
			uc.log.Warn("principal cache error, falling back to database", zap.String("id", id), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.log.Error("failed to resolve principal", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if u == nil {
		return nil, nil
	}

	p := u.Principal()
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, p); err != nil {
			uc.log.Warn("failed to cache principal", zap.String("id", id), zap.Error(err))
		}
	}

	return p, nil
}

func (uc *Usecase) respond(u *domain.User) (*AuthResponse, error) {
	t, err := uc.tokens.Issue(u.ID, uc.tokenTTL)
	if err != nil {
		uc.log.Error("failed to issue token", zap.String("id", u.ID), zap.Error(err))
		return nil, err
	}

	return &AuthResponse{
		Token: t,
		Account: Account{
			ID:       u.ID,
			Name:     u.Name,
			Email:    u.Email,
			Role:     u.Role,
			Verified: u.Verified,
		},
	}, nil
}
