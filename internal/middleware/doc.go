// Package middleware provides ready-made hooks for services.
//
// Validate rejects message payloads without usable text. SetTimestamp stamps
// a time field on the payload. Logging records completed and failed calls
// through a zerolog logger.
package middleware
