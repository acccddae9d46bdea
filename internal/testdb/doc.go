// Package testdb provides utilities specifically for database integration
// tests. Tests that use it are skipped unless DATABASE_URL points at a
// PostgreSQL instance.
package testdb
