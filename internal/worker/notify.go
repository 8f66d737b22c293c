package worker

// ExportNotifyMessage is the websocket message protocol, forwarded to the
// browser over Redis pub/sub. Field names match what the client parses.
type ExportNotifyMessage struct {
	Status        string   `json:"status"`
	CVID          string   `json:"cv_id"`
	CorrelationID string   `json:"correlation_id"`
	ErrorCode     int      `json:"error_code"`
	ErrorMessage  string   `json:"error_message"`
	MissingKeys   []string `json:"missing_keys,omitempty"`
}
