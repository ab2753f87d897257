// Package httpapi exposes the clustering engine over HTTP.
//
// The handler serves three endpoints: POST /analyze runs a clustering
// pass over the request list in the body, GET /health answers load
// balancer checks, and GET /metrics dumps the internal counters as
// plain text. Request bodies are size-capped and may be gzipped;
// responses are gzipped when the client accepts it.
package httpapi
