package domain

type AdSet struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	CampaignID string   `json:"campaign_id"`
	Status     *string  `json:"status,omitempty"`
	Budget     *float64 `json:"budget,omitempty"`
	CreateTime *int64   `json:"create_time,omitempty"`
	UpdateTime *int64   `json:"update_time,omitempty"`
}

type AdSetsResult struct {
	AdSets     []AdSet    `json:"ad_sets"`
	Pagination Pagination `json:"pagination"`
}

type Ad struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	AdSetID      string  `json:"ad_set_id"`
	Status       *string `json:"status,omitempty"`
	CreativeType *string `json:"creative_type,omitempty"`
	CreateTime   *int64  `json:"create_time,omitempty"`
	UpdateTime   *int64  `json:"update_time,omitempty"`
	// Extra guarda os campos de criativo que a API devolve sem tipagem
	Extra map[string]any `json:"extra,omitempty"`
}

type AdsResult struct {
	Ads        []Ad       `json:"ads"`
	Pagination Pagination `json:"pagination"`
}
