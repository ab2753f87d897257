// Package classifier decides whether a path segment or query value looks
// like a volatile identifier rather than a stable route word.
//
// A volatile token is one that changes between otherwise identical
// requests: UUIDs, long numeric IDs, content hashes, and hash-bearing
// asset names. The pattern builder replaces volatile tokens with
// wildcards; everything else is kept literally.
//
// Classification is purely lexical. No dictionaries, frequency counts,
// or cross-request state are involved, so the same token always
// classifies the same way.
package classifier
