// Package hook implements the before/after/error pipeline wrapped around
// every service method call.
//
// # Phases
//
// A call moves through up to four phases:
//
//  1. before: registered before hooks run in registration order. Each one
//     receives the call Context and returns a replacement Context or an
//     error. The first error ends the phase.
//  2. execute: the service method runs with the Data left by the before
//     hooks. A before hook that sets Result skips this phase.
//  3. after: after hooks run in registration order over the Context that
//     now carries Result.
//  4. error: reached when any earlier phase fails. Error hooks observe the
//     failed Context (Err set) and cannot recover it; the original error is
//     returned to the caller afterwards.
//
// # Registration
//
// Hooks are keyed by (phase, method). The special method All applies to
// every method and runs ahead of method-specific hooks. Registering more
// hooks under a key that already has some appends to the list.
//
// # Purity
//
// Hooks are plain functions from Context to Context. The pipeline hands each
// before hook its own copy of Data and restores the call's identity fields
// (CallID, Path, Method, Phase) after every hook, so a hook can transform the
// payload or result but cannot redirect the call.
package hook
