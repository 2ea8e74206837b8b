// Package service implements the business rules of the places API.
//
// PlaceService and UserService sit between the HTTP handlers and the
// repositories. They resolve references, apply defaults, and translate
// repository results into the sentinel errors declared in errors.go.
//
// # Ownership
//
// A place is only created after its creator has been found, and creation and
// deletion go through repository methods that write the place and the
// creator's places list in one transaction.
//
// # Known Gaps
//
// Signup checks for an existing (email, username) pair and then inserts; two
// concurrent signups can both pass the check. Deleting a user does not delete
// the places they created.
package service
