// Package api defines the canonical, provider-agnostic request and response
// types used throughout weiche, together with the typed error taxonomy.
//
// Callers build a ChatRequest or EmbeddingRequest in canonical form; the
// provider adapters translate it to the vendor wire format and translate the
// vendor's answer back. Callers never see raw vendor JSON: every failure
// surfaces as an *APIError whose Type classifies it (authentication, invalid
// request, rate limit, server error, timeout, unknown).
package api
