// Package buildinfo exposes build-time information for MemoHalo.
//
// Version, Commit and BuildTime are injected via ldflags; when they are
// left unset, Get falls back to the module and VCS data the Go toolchain
// embeds in the binary.
//
//	go build -ldflags "-X github.com/yndnr/memohalo-go/internal/infra/buildinfo.Version=v1.0.0"
package buildinfo
