package newsbreakdomain

type AdSet struct {
	ID         ID       `json:"id" validate:"required"`
	Name       string   `json:"name" validate:"required"`
	CampaignID ID       `json:"campaignId"`
	Status     *string  `json:"status,omitempty"`
	Budget     *float64 `json:"budget,omitempty"`
	CreateTime *int64   `json:"createTime,omitempty"`
	UpdateTime *int64   `json:"updateTime,omitempty"`
}

// AdSetsData é o campo data de /ad-set/getList
type AdSetsData struct {
	List []AdSet `json:"list" validate:"dive"`
	Pagination
}
