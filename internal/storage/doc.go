// Package storage assembles the stores MemoHalo runs on.
//
// Everything is process-local and lost on restart:
//
//   - Memory stores (package memory) hold sessions, memos and, by default,
//     identities behind one mutex per store.
//   - A Badger engine in in-memory mode can hold identities instead, as
//     JSON records in a key-value namespace.
//
// New builds the configured set and Engine.Close releases it.
package storage
