// Package benchmark measures the hot paths behind each request: token
// hashing, Argon2id verification, session lookup, and the shared memo
// list under concurrent access.
//
//	go test -bench=. -benchmem ./internal/tests/benchmark/...
//	go test -bench=BenchmarkMemo -benchtime=10s ./internal/tests/benchmark/...
package benchmark
