package signal

// Channel names used by setters and observable properties.
const (
	BeforeChange = "before_change"
	Change       = "change"
	BeforeDelete = "before_delete"
	Delete       = "delete"
)
