// Package repository implements the data access layer for the places API.
//
// Each repository wraps a database.Database and speaks SurrealQL for one table.
//
// # Identifiers
//
// Ids handed to and returned from repositories are bare keys ("3f2a…"). Queries
// build record links with type::thing('place', $id) and results are converted
// back with recordKey, so callers never see SurrealDB's table:key form.
//
// # Atomic Writes
//
// PlaceRepository.CreateForCreator and PlaceRepository.DeleteForCreator touch
// two records (the place and its creator's places list) inside one
// database.AtomicBatch. Either both writes land or neither does.
//
// # Missing Records
//
// Lookups return (nil, nil) when a record does not exist, so services decide
// which not-found error to report.
package repository
