// Package api implements the HTTP handlers for the biztime API.
//
// Each entity (company, invoice, industry) gets a handler struct holding
// its store dependency. Handlers decode a typed request struct, validate
// it, issue at most two store calls, and serialize the result. Errors are
// mapped to HTTP status codes in exactly one place (HandleAPIError).
package api
