// Package app is the application layer - the account domain service.
//
// It owns the business rules: input validation, email uniqueness, credential
// hashing and verification. Storage and token issuance are injected dependencies;
// the HTTP layer talks to this package through domain.AccountService.
package app
