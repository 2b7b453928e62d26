package domain

// Snapshot holds the structured contract terms extracted by the LLM.
// Required fields are always strings, never null, by construction of the
// normalizer. Optional fields are omitted from JSON when empty.
type Snapshot struct {
	Parties        string `json:"parties"`
	Dates          string `json:"dates"`
	Term           string `json:"term"`
	Rate           string `json:"rate"`
	Deliverables   string `json:"deliverables"`
	Usage          string `json:"usage"`
	BrandBrief     string `json:"brandBrief,omitempty"`
	AdditionalReqs string `json:"additionalReqs,omitempty"`
	Billing        string `json:"billing,omitempty"`
}

// Risk is a flagged contract clause with a severity level.
type Risk struct {
	Label string    `json:"label"`
	Level RiskLevel `json:"level"`
	Note  string    `json:"note,omitempty"`
}

// ReviewResult is the full contract-review summary returned to the client.
// It is produced once per request and never persisted.
type ReviewResult struct {
	Snapshot Snapshot `json:"snapshot"`
	Risks    []Risk   `json:"risks"`
	Counters []string `json:"counters"`
	RawText  string   `json:"rawText,omitempty"`
}
