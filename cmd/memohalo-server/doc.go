// Command memohalo-server runs the MemoHalo HTTP service.
//
// Usage:
//
//	memohalo-server [-config memohalo.yaml]
//	memohalo-server -version
//
// Every setting can also be given as a MEMOHALO_ environment variable,
// e.g. MEMOHALO_SERVER_HTTP_ADDR=0.0.0.0:5080. All state lives in process
// memory and is lost on exit.
package main
