package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Saga operation names used as worker job identifiers
const (
	OpCreate                   = "create"
	OpFinalizeCreate           = "finalize_create"
	OpReject                   = "reject"
	OpCompletePreauthorization = "complete_preauthorization"
	OpComplete                 = "complete"
	OpCancel                   = "cancel"
)

// ProcessHandle is a read-only projection of a queued job's status. Result is
// present only once Completed is true.
type ProcessHandle struct {
	Token     string          `json:"token"`
	Completed bool            `json:"completed"`
	Result    json.RawMessage `json:"result,omitempty"`
}

// WorkerJob is the envelope published to the background worker when an
// operation is dispatched asynchronously
type WorkerJob struct {
	Token         string          `json:"token"`
	CommunityID   uuid.UUID       `json:"community_id"`
	TransactionID uuid.UUID       `json:"transaction_id"`
	Op            string          `json:"op"`
	Input         json.RawMessage `json:"input,omitempty"`
}

// DedupKey identifies the job for per-key de-duplication: no two jobs with
// the same key may execute concurrently
func (j *WorkerJob) DedupKey() string {
	return j.CommunityID.String() + ":" + j.TransactionID.String() + ":" + j.Op
}

// CreateJobInput carries the gateway fields of an asynchronously dispatched
// create step
type CreateJobInput struct {
	GatewayFields GatewayFields `json:"gateway_fields"`
}

// TerminalJobInput carries the optional counterparty message of an
// asynchronously dispatched terminal step
type TerminalJobInput struct {
	Message  string    `json:"message,omitempty"`
	SenderID uuid.UUID `json:"sender_id,omitempty"`
}
