package mirror

// Record is one row in the tabular mirror store. Created on the first sync
// for an email, updated in place afterwards, never deleted by this service.
type Record struct {
	ID     string
	Fields Fields
}

// Fields is the mirrored field set. Attachment-typed columns (Logo) take a
// list of attachment references; everything else is a plain value.
type Fields map[string]interface{}

// Attachment references an externally hosted file in an attachment column
type Attachment struct {
	URL string `json:"url"`
}

// Sync outcomes, recorded for observability. The caller of a sync never sees
// an error regardless of outcome.
const (
	OutcomeSkipped = "skipped"
	OutcomeCreated = "created"
	OutcomeUpdated = "updated"
	OutcomeFailed  = "failed"
)

// SyncOutcome describes what a sync attempt did. Err is populated only for
// OutcomeFailed and is for logs and metrics, never for control flow.
type SyncOutcome struct {
	Outcome string
	Err     error
}
