// Package domain defines the records the services hand out.
//
// # Core Types
//
// Message is a stored record: a store-assigned integer id, its text, optional
// createdAt and updatedAt timestamps, and any extra fields a caller supplied.
// Messages serialize flattened, so extra fields sit next to the well-known
// ones.
//
// Data is the untyped payload carried through hooks into create and patch.
// Hooks treat it as a value: With returns a modified copy.
//
// Todo is the fixed-shape answer of the todos service.
package domain
