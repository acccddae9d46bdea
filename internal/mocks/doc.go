// Package mocks provides function-field mocks of the store and service
// interfaces for use in tests. Each mock calls its Fn field when set and
// otherwise returns its default response values.
package mocks
