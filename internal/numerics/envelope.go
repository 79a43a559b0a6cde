package numerics

import "encoding/json"

// Status values carried in the envelope's status field.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// NaNSentinel marks an undefined numeric result (stddev on too few samples,
// division by zero). It is distinct from the empty result used for
// validation failures: a sentinel result still carries positional data.
const NaNSentinel = "NaN"

// Envelope is the canonical three-field result wrapper returned by every
// tool. All fields are always populated; result is the empty string on
// validation failures and a sentinel-marked value on numeric edge cases.
type Envelope struct {
	Result  string `json:"result"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewEnvelope builds an envelope from a result value, a success flag, and a
// human-readable message. The status field is derived solely from ok. This
// is the single construction point for the three-field shape; every tool
// handler routes its outcome through it.
func NewEnvelope(result string, ok bool, message string) Envelope {
	status := StatusError
	if ok {
		status = StatusOK
	}
	return Envelope{
		Result:  result,
		Status:  status,
		Message: message,
	}
}

// JSON renders the envelope as a JSON object with keys result, status and
// message. Marshalling a struct of three strings cannot fail.
func (e Envelope) JSON() string {
	data, _ := json.Marshal(e)
	return string(data)
}
