package constants

import "time"

// NATS subjects and queue groups
const (
	SubjectPreauthJobs    = "preauth.jobs"
	QueueGroupPreauthJobs = "preauth-workers"
)

// Redis key prefixes
const (
	KeyPrefixProcess = "preauth:process:"
	KeyPrefixJobLock = "preauth:job:"
)

// TTLs for worker bookkeeping keys
const (
	ProcessTTL = 24 * time.Hour
	JobLockTTL = 5 * time.Minute
)
