// Package model defines domain entities and data structures for the places API.
//
// The package holds the two stored entities, their request bodies and the
// RFC 9457 problem details used for every error response.
//
// # Domain Entities
//
//   - Place: a titled, addressed location shared by exactly one creator
//   - User: an account that owns an ordered list of place ids
//
// A place's Creator and its creator's Places list always agree: both sides are
// written in the same database transaction.
//
// # JSON Serialization
//
// Identifiers are plain strings in JSON regardless of how the store represents
// record ids. Password hashes are never serialized.
//
// # Validation
//
// Request types carry go-playground/validator tags, checked by the handler
// layer before any store access.
package model
