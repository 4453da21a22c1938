package main

import (
	"fmt"
	"net/http"
	"os"

	"unidad/internal/diagnostics"
)

// runServe starts a websocket diagnostics listener on addr and wires it
// into the error raiser via diagnostics.SetBroadcaster, then reproduces
// the out-of-range list index fault so any connected client observes a
// real __u_throw__ report before the process exits, the same way a
// long-running batch job's editor/IDE integration would watch faults
// stream by instead of only reading them off stderr.
func runServe(addr string) {
	broadcaster := diagnostics.NewBroadcaster()
	diagnostics.SetBroadcaster(broadcaster)

	mux := http.NewServeMux()
	mux.Handle("/diagnostics", broadcaster)
	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "unidad: diagnostics server: %v\n", err)
		}
	}()

	fmt.Printf("unidad: streaming diagnostics on ws://%s/diagnostics\n", addr)
	runFailDemo()
}
