package assistant

import "context"

// State is the terminal state of one chat turn.
type State string

const (
	StateReply      State = "reply"
	StateEssentials State = "essentials"
)

// Reason explains why a turn ended in essentials. It is only used for logs
// and counters; the caller sees the same reply text either way.
type Reason string

const (
	ReasonNone              Reason = "none"
	ReasonNoCredential      Reason = "no_credential"
	ReasonEmptyReply        Reason = "empty_reply"
	ReasonQuotaExceeded     Reason = "quota_exceeded"
	ReasonServiceError      Reason = "service_error"
	ReasonCooldown          Reason = "cooldown"
	ReasonRecordUnavailable Reason = "record_unavailable"
)

type Result struct {
	Reply  string
	State  State
	Reason Reason
}

// Monitor tracks provider health across turns. Implementations must be safe
// for concurrent use and must not fail the turn.
type Monitor interface {
	CoolingDown(ctx context.Context) bool
	StartCooldown(ctx context.Context)
	Record(ctx context.Context, patientID int64, result *Result)
}

type nopMonitor struct{}

// NopMonitor never cools down and drops every outcome.
func NopMonitor() Monitor { return nopMonitor{} }

func (nopMonitor) CoolingDown(context.Context) bool       { return false }
func (nopMonitor) StartCooldown(context.Context)          {}
func (nopMonitor) Record(context.Context, int64, *Result) {}
