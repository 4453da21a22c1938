package diagnostics

import (
	"fmt"
	"os"
)

const (
	ansiReset   = "\x1b[0m"
	ansiDim     = "\x1b[2m"
	ansiRedBold = "\x1b[1;31m"
)

// exitFunc is called once Throw has finished printing its report. It is
// a package variable rather than a hardcoded os.Exit call so tests can
// observe a fault being raised without actually terminating the test
// binary.
var exitFunc = os.Exit

// SetExitFuncForTesting overrides the function Throw calls once it has
// finished printing its report, returning a restore function. It exists
// so callers outside this package can assert a fault fired without
// actually terminating the test binary.
func SetExitFuncForTesting(f func(int)) (restore func()) {
	old := exitFunc
	exitFunc = f
	return func() { exitFunc = old }
}

// Broadcaster receives a rendered fault report before the process exits
// (see stream.go). A nil Broadcaster is the common case: the fault is
// only ever printed to stderr.
var broadcaster *Broadcaster

// SetBroadcaster installs b as the process-wide diagnostics
// broadcaster. Passing nil disables broadcasting.
func SetBroadcaster(b *Broadcaster) { broadcaster = b }

// Throw reports a fatal runtime fault identified by code at span and
// terminates the process. lines is the complete source text of
// span.File, split into physical lines, used to render the highlighted
// excerpt. Throw never returns to its caller.
func Throw(code int, span Location, lines []string) {
	msg := lookup(code)

	var report string
	report += fmt.Sprintf(ansiReset+ansiRedBold+"%s"+ansiReset+" "+ansiDim+"at %s:%d:%d\n",
		msg.Type, span.File, span.Line, span.Col)
	report += fmt.Sprintf("  [E%d] "+ansiReset+"%s\n", code, msg.Text)
	report += Excerpt(span, lines)

	fmt.Fprint(os.Stderr, report)

	if broadcaster != nil {
		broadcaster.Broadcast(report)
	}

	exitFunc(1)
}
