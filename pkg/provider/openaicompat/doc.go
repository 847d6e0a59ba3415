// Package openaicompat implements the shared translation core for
// OpenAI-compatible backends: the wire request/response types, the
// canonical-to-wire request transformer, the wire-to-canonical response
// normalizer, the HTTP error mapping contract, and the HTTP client that
// performs the call.
//
// Provider adapters (nvidia, openai) embed the Client and delegate their
// Complete/Embed/ListModels calls to it. No code outside this package
// constructs a canonical error from a vendor payload.
package openaicompat
