// Package database provides PostgreSQL connectivity and the account repository.
//
// Uses pgx for connection pooling with a prometheus query tracer attached.
// The unique index on accounts.email is the source of truth for email
// uniqueness; the repository maps constraint violations onto domain errors.
package database
