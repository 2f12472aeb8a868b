package topics

const (
	// Takes aprovadas e publicadas pelo fanbot-worker
	TakePosted = "take_posted"

	// DLQ
	TakePostedDLQ = "take_posted_dlq"
)
