// Package connection talks to a memohalo server over HTTP.
package connection
