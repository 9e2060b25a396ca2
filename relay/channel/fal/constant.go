package fal

const (
	QueueStatusInQueue    = "IN_QUEUE"
	QueueStatusInProgress = "IN_PROGRESS"
	QueueStatusCompleted  = "COMPLETED"
)

const (
	uploadInitiatePath = "/storage/upload/initiate"
	defaultContentType = "application/octet-stream"
)
