// Package domain contains the core business entities, value objects, and
// validation rules of the application: accounts, messages, and the errors
// their validation produces. It is independent of any specific
// infrastructure or delivery mechanism.
package domain
