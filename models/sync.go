package models

// SyncResult reports the outcome of one best-effort remote sync call.
// A failed sync is not an error: the local write already succeeded, so callers downgrade
// Synced=false to a warning and keep going.
type SyncResult struct {
	Synced    bool   `json:"synced"`
	Status    int    `json:"status"`
	CommitSHA string `json:"commitSha,omitempty"`
	RawURL    string `json:"rawUrl,omitempty"`
	Detail    string `json:"detail,omitempty"`
}

// OrderSelection is one part picked by the customer on the order screen.
type OrderSelection struct {
	Code     string `json:"code" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// OrderLink is the generated order summary plus the messaging link built from it.
type OrderLink struct {
	Message  string   `json:"message"`
	Link     string   `json:"link"`
	Warnings []string `json:"warnings,omitempty"`
}
