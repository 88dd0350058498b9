package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for worker pool operations
const (
	LogMsgWorkerJobFailed     = "Worker job failed"
	LogMsgPoolShuttingDown    = "Shutting down worker pool"
	LogMsgPoolShutdownDone    = "Worker pool shutdown complete"
	LogMsgPoolShutdownTimeout = "Worker pool shutdown timeout"
	LogMsgJobDropped          = "Worker pool stopped, job dropped"
)

// ============================================================================
// Log Messages - Demo Purge Job
// ============================================================================

// Log messages for the demo purge job
const (
	LogMsgDemoPurgeStarting  = "Demo account purge starting"
	LogMsgDemoPurgeCompleted = "Demo account purge completed"
)

// ============================================================================
// Defaults
// ============================================================================

// DefaultJobTimeout bounds a single job execution
const DefaultJobTimeout = time.Minute

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
