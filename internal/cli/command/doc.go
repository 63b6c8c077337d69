// Package command provides CLI command definitions for memohalo-cli.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: App, global flags and the per-invocation session
//   - user.go: user subcommand group (sign-up, sign-in, sign-out, profile)
//   - memo.go: memo subcommand group
//   - status.go: server health and readiness
//
// Commands load the state file, call the server, print the result in the
// selected output format and write back any cookie change.
package command
