package newsbreakdomain

// Valores de onlineStatus aceitos pela API
const (
	OnlineStatusWarning  = "WARNING"
	OnlineStatusInactive = "INACTIVE"
	OnlineStatusActive   = "ACTIVE"
	OnlineStatusDeleted  = "DELETED"
	OnlineStatusPending  = "PENDING"
	OnlineStatusRejected = "REJECTED"
)

type Pagination struct {
	PageNo   int  `json:"pageNo"`
	PageSize int  `json:"pageSize"`
	Total    int  `json:"total" validate:"gte=0"`
	HasNext  bool `json:"hasNext"`
}

type Campaign struct {
	ID           ID       `json:"id" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	OrgID        ID       `json:"orgId"`
	AdAccountID  ID       `json:"adAccountId"`
	Objective    *string  `json:"objective,omitempty"`
	Budget       *float64 `json:"budget,omitempty"`
	Status       *string  `json:"status,omitempty"`
	OnlineStatus *string  `json:"onlineStatus,omitempty"`
	CreateTime   *int64   `json:"createTime,omitempty"`
	UpdateTime   *int64   `json:"updateTime,omitempty"`
}

// CampaignsData é o campo data de /campaign/getList
type CampaignsData struct {
	List []Campaign `json:"list" validate:"dive"`
	Pagination
}
