package newsbreakdomain

type AdAccount struct {
	ID         ID     `json:"id" validate:"required"`
	Name       string `json:"name"`
	CreateTime int64  `json:"createTime"`
}

// Organization agrupa as contas de anúncio de uma organização
type Organization struct {
	ID         ID          `json:"id" validate:"required"`
	Name       string      `json:"name"`
	AdAccounts []AdAccount `json:"adAccounts" validate:"dive"`
}

// AdAccountsData é o campo data de /ad-account/getGroupsByOrgIds
type AdAccountsData struct {
	List []Organization `json:"list" validate:"dive"`
}
