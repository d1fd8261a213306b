package domain

// Result is the outcome of executing an action.
// On failure Reason carries the message and Payload is nil.
type Result struct {
	Success bool   `json:"success"`
	Payload any    `json:"payload,omitempty"`
	Reason  string `json:"reason,omitempty"`

	// Action names the action that produced a failure. Composites keep the
	// failing subtask's name so the reason can be traced to its source.
	Action string `json:"action,omitempty"`
}

// Succeed builds a successful result.
func Succeed(payload any) Result {
	return Result{Success: true, Payload: payload}
}

// Fail builds a failed result.
func Fail(reason string) Result {
	return Result{Reason: reason}
}

// Err returns nil on success, or a *FailureError.
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	return &FailureError{Action: r.Action, Reason: r.Reason}
}
