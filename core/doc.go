// Package core provides the foundational domain types, interfaces and
// resolution logic for user memory. It defines the core abstractions for:
//
//   - Identity records (captured global facts about the user)
//   - Topic memories (cached per-topic conversational snippets)
//   - Sessions (chat containers with topic history and focus)
//   - Resolver (read-only aggregation of both stores into one payload)
//   - Pluggable stores for session state and user-memory caching
//
// The package intentionally keeps implementation concerns (persistence,
// prompt rendering, concrete store backends) out of scope, exposing small
// interfaces to enable custom backends and extensions. All exported
// identifiers include concise documentation to aid discoverability and
// external consumption.
package core
