package domain

import (
	"context"
	"time"
)

type Account struct {
	ID       int64
	Email    string
	Username string
	// IsCompany distinguishes company accounts from personal ones. Clients send it
	// in loose JSON (bool, number, or string); the HTTP layer normalizes it to a
	// strict bool before it reaches the domain.
	IsCompany bool
	// PasswordHash is the bcrypt digest of the account password. It never leaves
	// the service: API responses are built from a view type without a hash field.
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	Email     string
	Username  string
	Password  string
	IsCompany bool
}

// UpdateInput carries optional account mutations. A nil field means "no change";
// an explicit empty string is rejected as a validation error. Email is immutable
// after registration and therefore absent here.
type UpdateInput struct {
	Username *string
	Password *string
}

// UpdateFields is the resolved form of UpdateInput handed to the repository,
// with the password already hashed.
type UpdateFields struct {
	Username     *string
	PasswordHash *string
}

type AccountRepository interface {
	Insert(ctx context.Context, account Account) (int64, error)
	GetByID(ctx context.Context, id int64) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, id int64, fields UpdateFields) error
	Delete(ctx context.Context, id int64) error
}

// AccountService is the application-layer contract consumed by the HTTP server.
type AccountService interface {
	Register(ctx context.Context, input RegisterInput) (int64, error)
	GetAccount(ctx context.Context, id int64) (*Account, error)
	UpdateAccount(ctx context.Context, id int64, input UpdateInput) (int64, error)
	RemoveAccount(ctx context.Context, id int64) (int64, error)
	Authenticate(ctx context.Context, email, password string) (*Account, error)
}

// TokenIssuer creates and verifies session tokens bound to an account id.
// Verify returns the token's jti alongside the account id so callers can
// consult a revocation list.
type TokenIssuer interface {
	Issue(accountID int64) (string, error)
	Verify(token string) (accountID int64, jti string, err error)
}

// PasswordHasher is the one-way credential hasher. Hash embeds a random salt,
// so equal passwords produce distinct digests. Verify returns false on a plain
// mismatch and an error only for a malformed digest.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) (bool, error)
}
