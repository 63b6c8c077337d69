// Package memory provides in-memory storage for MemoHalo.
//
// It implements the service repository interfaces for identities,
// sessions and the shared memo list.
//
// Thread Safety:
//
// Each store owns a single sync.RWMutex around its whole read-modify-write
// sequence. Read operations use RLock, write operations use Lock, and
// every returned value is a copy taken under the lock.
package memory
