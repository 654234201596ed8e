package domain

type Report struct {
	AdAccountID string           `json:"ad_account_id"`
	DateFrom    string           `json:"date_from"`
	DateTo      string           `json:"date_to"`
	Level       *string          `json:"level,omitempty"`
	Dimensions  []string         `json:"dimensions"`
	Metrics     []string         `json:"metrics"`
	Rows        []map[string]any `json:"rows"`
	Total       int              `json:"total"`
}

type ReportResult struct {
	Report Report `json:"report"`
}
