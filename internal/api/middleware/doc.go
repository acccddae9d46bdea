// Package middleware provides the HTTP middleware installed in front of the
// api handlers: trace ids, optional bearer authentication, Prometheus request
// metrics and per-client rate limiting.
package middleware
