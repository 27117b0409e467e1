package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/pscheid92/accountd/internal/domain"
	"github.com/pscheid92/accountd/internal/metrics"
)

// timingDigest is a throwaway bcrypt digest used when authentication hits an
// unknown email. Running the verifier against it keeps the unknown-email path
// as slow as the wrong-password path, so response latency leaks nothing.
const timingDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Service implements domain.AccountService.
type Service struct {
	accounts domain.AccountRepository
	hasher   domain.PasswordHasher
	clock    clockwork.Clock
}

func NewService(accounts domain.AccountRepository, hasher domain.PasswordHasher, clock clockwork.Clock) *Service {
	return &Service{accounts: accounts, hasher: hasher, clock: clock}
}

// Register validates the input, checks email availability, hashes the
// password, and inserts the account. The pre-check is an optimization only;
// the database unique constraint is the source of truth, and a constraint
// violation on insert surfaces as ErrEmailTaken just like a failed pre-check.
func (s *Service) Register(ctx context.Context, input domain.RegisterInput) (int64, error) {
	email := NormalizeEmail(input.Email)
	username := strings.TrimSpace(input.Username)

	if err := validateRegistration(email, username, input.Password); err != nil {
		return 0, err
	}

	if err := s.EnsureEmailAvailable(ctx, email); err != nil {
		return 0, err
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.clock.Now().UTC()
	id, err := s.accounts.Insert(ctx, domain.Account{
		Email:        email,
		Username:     username,
		IsCompany:    input.IsCompany,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return 0, err
	}

	metrics.RegistrationsTotal.Inc()
	return id, nil
}

// EnsureEmailAvailable returns ErrEmailTaken if an account already uses the
// email. Read-only; callers must still handle the insert-time race.
func (s *Service) EnsureEmailAvailable(ctx context.Context, email string) error {
	taken, err := s.accounts.EmailExists(ctx, NormalizeEmail(email))
	if err != nil {
		return fmt.Errorf("failed to check email availability: %w", err)
	}
	if taken {
		return domain.ErrEmailTaken
	}
	return nil
}

func (s *Service) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	return s.accounts.GetByID(ctx, id)
}

// UpdateAccount applies the supplied fields to an existing account,
// re-hashing the password when a new one is given. Returns the account id.
func (s *Service) UpdateAccount(ctx context.Context, id int64, input domain.UpdateInput) (int64, error) {
	if err := validateUpdate(input.Username, input.Password); err != nil {
		return 0, err
	}

	fields := domain.UpdateFields{}
	if input.Username != nil {
		trimmed := strings.TrimSpace(*input.Username)
		fields.Username = &trimmed
	}
	if input.Password != nil {
		passwordHash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return 0, fmt.Errorf("failed to hash password: %w", err)
		}
		fields.PasswordHash = &passwordHash
	}

	if err := s.accounts.Update(ctx, id, fields); err != nil {
		return 0, err
	}
	return id, nil
}

// RemoveAccount deletes the account; afterwards the id no longer resolves.
func (s *Service) RemoveAccount(ctx context.Context, id int64) (int64, error) {
	if err := s.accounts.Delete(ctx, id); err != nil {
		return 0, err
	}
	return id, nil
}

// Authenticate checks credentials and returns the matching account. Unknown
// email and wrong password are indistinguishable: both run a bcrypt
// comparison and both return ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	email = NormalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			// Burn the same hashing work as the known-email path.
			_, _ = s.hasher.Verify(password, timingDigest)
			metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(password, account.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return account, nil
}
