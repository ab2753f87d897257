// Package parser decomposes raw HTTP request strings into their structural
// parts: method, scheme, host, ordered path segments, and ordered query
// parameters.
//
// A raw request string is either a bare URL or a full request line:
//
//	GET https://api.example.com/v1/users/812345?page=2 HTTP/1.1
//
// Surrounding quotes and whitespace are stripped, the method is recognized
// from the fixed HTTP method set, and the optional protocol suffix is
// discarded. The remaining URL is split using standard URL syntax; the raw
// query string is percent-decoded once before being split into key/value
// pairs, preserving key insertion order and repeated keys.
//
// Decomposition is transient: a DecomposedURL is produced fresh per call
// and never cached, so callers may mutate the result freely.
//
// The package also provides request-list ingestion (a JSON array of
// {"name": "<request line>"} objects, a JSON array of strings, or free-text
// lines) and the minimal Logger interface shared by the urlpatterns
// packages.
package parser
