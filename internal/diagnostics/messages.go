package diagnostics

// message names a fatal runtime fault: a short diagnostic type shown in
// the bold header, and the human-readable text shown under its [E%d]
// code, matching NUMEROBIS_MESSAGES.
type message struct {
	Type string
	Text string
}

// messages is the closed set of fatal runtime fault codes this
// implementation raises. Only the codes actually reachable from the
// value/builtins layer are populated; an unknown code falls back to a
// generic message in Throw rather than panicking the host process
// mid-report.
var messages = map[int]message{
	301: {Type: "TypeError", Text: "cannot convert value to int"},
	901: {Type: "IndexError", Text: "list index out of range"},
	902: {Type: "IndexError", Text: "string index out of range"},
}

func lookup(code int) message {
	if m, ok := messages[code]; ok {
		return m
	}
	return message{Type: "RuntimeError", Text: "unknown fault"}
}
