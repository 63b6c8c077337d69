// Package config persists memohalo-cli state between invocations.
//
// The state file holds the server address and the signed session cookie
// returned by sign-in, so later commands run as the signed-in user.
package config
