// Package api implements the HTTP handlers for account registration, login
// and message management. Handlers translate requests into service calls and
// map service errors onto status codes; they hold no business rules of their
// own.
package api
