// Package redis holds the Redis-backed infrastructure: the token revocation
// list behind logout and the login rate limiter.
package redis
