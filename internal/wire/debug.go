package wire

import "log"

// Debug toggles verbose wire-level tracing. Off by default; no flag of the
// server binary sets it.
var Debug = false

func debugf(format string, v ...interface{}) {
	if !Debug {
		return
	}
	log.Printf(format, v...)
}
