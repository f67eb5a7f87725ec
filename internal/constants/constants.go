package constants

// Context keys
const (
	ContextKeyTaskID    = "taskID"
	ContextKeyRequestID = "requestID"
)

// Workspace credentials
const (
	DefaultPasscodeLength = 6
	PasscodeAlphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Response messages kept compatible with existing clients
const (
	MessageTaskAdded     = "Task added successfully"
	MessageTaskCompleted = "Task marked complete"
	MessageHealthy       = "API and Database are healthy"
)

// Health statuses
const (
	HealthStatusOK    = "ok"
	HealthStatusError = "error"
)
