// Package shared holds the request and response helpers used by every HTTP
// handler: JSON decoding and validation, the {"erro": ...} error envelope,
// and per-request trace IDs.
package shared
