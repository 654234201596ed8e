package domain

type Pagination struct {
	PageNo   int  `json:"page_no"`
	PageSize int  `json:"page_size"`
	Total    int  `json:"total"`
	HasNext  bool `json:"has_next"`
}

type Campaign struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	OrgID        string   `json:"org_id"`
	AdAccountID  string   `json:"ad_account_id"`
	Objective    *string  `json:"objective,omitempty"`
	Budget       *float64 `json:"budget,omitempty"`
	Status       *string  `json:"status,omitempty"`
	OnlineStatus *string  `json:"online_status,omitempty"`
	CreateTime   *int64   `json:"create_time,omitempty"`
	UpdateTime   *int64   `json:"update_time,omitempty"`
}

type CampaignsResult struct {
	Campaigns  []Campaign `json:"campaigns"`
	Pagination Pagination `json:"pagination"`
}

// CampaignBrief é a forma resumida usada no resumo e no recurso de campanhas ativas
type CampaignBrief struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Objective *string  `json:"objective,omitempty"`
	Budget    *float64 `json:"budget,omitempty"`
	Status    *string  `json:"status,omitempty"`
}

type ActiveCampaignsResource struct {
	Campaigns []CampaignBrief `json:"campaigns"`
}

type Period struct {
	From string `json:"from"`
	To   string `json:"to"`
	Days int    `json:"days"`
}

type ActiveCampaigns struct {
	Count int `json:"count"`
	// TotalBudget soma os orçamentos informados de todas as campanhas ativas
	TotalBudget float64         `json:"total_budget"`
	Campaigns   []CampaignBrief `json:"campaigns"`
}

type CampaignSummary struct {
	AdAccountID     string          `json:"ad_account_id"`
	Period          Period          `json:"period"`
	ActiveCampaigns ActiveCampaigns `json:"active_campaigns"`
}

type CampaignSummaryResult struct {
	Summary CampaignSummary `json:"summary"`
	Note    string          `json:"note"`
}
