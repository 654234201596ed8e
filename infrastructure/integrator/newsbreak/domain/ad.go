package newsbreakdomain

import "encoding/json"

// Ad traz os dados do anúncio. A API devolve muitos campos de criativo
// (títulos, imagens, CTA, landing page) que mantemos em Extra sem tipar.
type Ad struct {
	ID           ID             `json:"id" validate:"required"`
	Name         string         `json:"name" validate:"required"`
	AdSetID      ID             `json:"adSetId"`
	Status       *string        `json:"status,omitempty"`
	CreativeType *string        `json:"creativeType,omitempty"`
	CreateTime   *int64         `json:"createTime,omitempty"`
	UpdateTime   *int64         `json:"updateTime,omitempty"`
	Extra        map[string]any `json:"-"`
}

var adKnownFields = []string{"id", "name", "adSetId", "status", "creativeType", "createTime", "updateTime"}

func (a *Ad) UnmarshalJSON(data []byte) error {
	type plain Ad
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var extra map[string]any
	if err := json.Unmarshal(data, &extra); err != nil {
		return err
	}
	for _, k := range adKnownFields {
		delete(extra, k)
	}
	if len(extra) > 0 {
		p.Extra = extra
	}

	*a = Ad(p)
	return nil
}

// AdsData é o campo data de /ad/getList
type AdsData struct {
	List []Ad `json:"list" validate:"dive"`
	Pagination
}
