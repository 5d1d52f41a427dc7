package keypath

// Package keypath implements the path dialect used to address locations in
// a parsed document tree. A path is a dot-separated list of map keys with
// adjoining bracketed sequence indices ("interactions[0].response.body");
// patterns may additionally use empty brackets ("interactions[].request")
// to iterate every element of a sequence.
//
// The package covers the full addressing pipeline:
//   - Parse / ParsePattern  — text to segments
//   - Walk                  — enumerate every addressable path in a tree
//   - Resolve               — strict lookup of one concrete path
//   - Match                 — does a pattern govern a concrete path
//   - Extract               — lenient multi-value extraction for patterns
//
// Resolve fails loudly (typed sentinels per failure kind) because it backs
// single-key previews where a miss is a configuration bug. Extract and Walk
// are total: heterogeneous array elements are normal in recorded HTTP
// interactions, so a missing sub-field skips one branch instead of blanking
// the whole result.
