package errcode

// Error code convention:
// - 0: no error
// - 4xxx: recoverable/warning conditions (the flow continues, possibly degraded)
// - 5xxx: system errors (the flow stops)
const (
	OK              = 0
	ResourceMissing = 4004
	ExportTimeout   = 4008
	SystemError     = 5000
)
