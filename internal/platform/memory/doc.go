// Package memory provides an in-memory implementation of the store
// interfaces. It is safe for concurrent use and is intended for tests and
// local development, selected with database.driver=memory.
package memory
