// Package main provides the entry point for memohalo-cli.
//
// The CLI talks to a memohalo server over HTTP:
//
//   - Account commands (sign-up, sign-in, sign-out, profile)
//   - Memo commands (list, add, get, update, delete)
//   - Server status
//
// Usage:
//
//	memohalo-cli user sign-in -u alice -p password1
//	memohalo-cli --output json memo list
//	memohalo-cli memo update 0 "new text"
//
// The session cookie returned by sign-in is kept in ~/.memohalo/cli.yaml.
package main
