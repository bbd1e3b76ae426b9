// Package testutil provides small fluent builders and fixtures shared by
// tests across packages. It is internal so the helpers never become part of
// the public API surface.
package testutil
