// Package shutdown coordinates graceful process termination.
//
// Components register named hooks; Wait blocks until SIGINT, SIGTERM, a
// call to Trigger, or cancellation of its context, then runs the hooks in
// reverse order of registration under a shared timeout.
//
//	h := shutdown.NewHandler(10*time.Second, logger)
//	h.OnShutdown("http", srv.Shutdown)
//	err := h.Wait(ctx)
package shutdown
