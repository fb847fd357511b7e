// Package store holds the two file-backed JSON document stores behind small
// interfaces so handlers can be tested against fakes and the documents could
// later move into a real embedded store without touching handler contracts.
//
// Both stores rewrite their whole document on every mutation. A per-store
// mutex serializes writers inside the process; across whole-document replaces
// the last write still wins, which is the documented contract.
package store

import "errors"

// ErrNotFound reports a missing section, report or record.
var ErrNotFound = errors.New("record not found")
