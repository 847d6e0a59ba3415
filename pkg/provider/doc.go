// Package provider defines the adapter abstraction for vendor backends and
// the registry that maps provider names to endpoints and adapter factories.
//
// Each adapter lives in its own subpackage (nvidia, openai) and handles its
// vendor's wire format internally, usually by embedding the shared
// openaicompat client. Adapters receive canonical api types and must be safe
// for concurrent use.
package provider
