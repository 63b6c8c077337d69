// Package cmap provides a concurrent-safe sharded map.
//
// Keys are spread over a power-of-two number of shards, each guarded by its
// own RWMutex, so writers on different keys rarely contend.
package cmap
