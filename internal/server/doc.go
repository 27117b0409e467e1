// Package server implements the HTTP server using Echo framework.
//
// Routes: accounts (register/show/update/delete), auth (login/logout/me),
// observability (health/metrics/version). Handlers split by concern:
// handlers_accounts.go, handlers_auth.go, handlers_health.go.
package server
