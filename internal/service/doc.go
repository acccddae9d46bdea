// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// Two services are provided:
//
//   - AccountService validates and persists new accounts, authenticates login
//     credentials and answers lookups by ID, username and existence.
//   - MessageService validates and persists messages, checking that the author
//     exists through the account store, and offers CRUD plus per-author listing.
//
// Lookups return domain.Option so that "not found" is a value rather than an
// error. Validation failures wrap domain.ErrInvalidInput and registration
// conflicts return domain.ErrDuplicateUsername; callers branch with errors.Is.
// Every operation validates before touching the store, so a rejected request
// never leaves a partial write.
package service
