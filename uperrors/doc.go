// Package uperrors provides structured error types for urlpatterns.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - InputError: request-list ingestion failures (unreadable sources,
//     malformed JSON input documents)
//   - ConfigError: invalid configuration or option combinations
//   - ExportError: serialization failures when writing results
//
// Note that the clustering engine itself never returns errors for a valid
// slice of strings: individual malformed URLs degrade to literal fallback
// patterns instead of failing the batch. These types cover the surfaces
// around the engine — loading input, configuring an operation, and writing
// output.
//
// # Usage with errors.Is
//
//	urls, err := parser.LoadRequestsFromFile("requests.json")
//	if err != nil {
//	    if errors.Is(err, uperrors.ErrInput) {
//	        // Input document could not be read or decoded
//	    }
//	}
package uperrors
