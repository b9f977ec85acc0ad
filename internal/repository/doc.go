// Package repository defines the data access interface for messages.
//
// The repository owns the ordered message sequence and the id counter.
// Services never touch the sequence directly; every read returns copies so a
// caller mutating a result cannot corrupt stored state.
//
// # Memory Implementation
//
// The memory subpackage keeps messages in insertion order in a slice guarded
// by a mutex. Ids come from a monotonic counter and are never reused, even
// after the message that held one is removed. Removal deletes the element
// rather than tombstoning it.
//
// # Errors
//
// Lookups by an unknown id fail with apperror.NotFound. Insert and merge fail
// with apperror.BadRequest when a well-known field has the wrong type.
package repository
