package domain

type AdAccount struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CreateTime int64  `json:"create_time"`
}

type Organization struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	AdAccounts []AdAccount `json:"ad_accounts"`
}

type AdAccountsResult struct {
	Organizations []Organization `json:"organizations"`
}

// OrganizationResource é o conteúdo do recurso accounts://{org_id}/ad-accounts
type OrganizationResource struct {
	Organization Organization `json:"organization"`
}
