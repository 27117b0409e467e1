// Package crypto implements password hashing for account credentials.
package crypto
