package newsbreakdomain

// Sistemas operacionais aceitos no filtro de eventos. String vazia significa web.
const (
	OSIOS     = "IOS"
	OSAndroid = "ANDROID"
	OSWeb     = ""
)

// Tipos de evento de rastreamento
const (
	EventTypePixel    = "PIXEL"
	EventTypePostback = "POSTBACK"
)

type Event struct {
	ID                    ID             `json:"id" validate:"required"`
	Name                  string         `json:"name" validate:"required"`
	OrgID                 ID             `json:"orgId"`
	Type                  string         `json:"type" validate:"required"`
	EventType             *string        `json:"eventType,omitempty"`
	URL                   *string        `json:"url,omitempty"`
	OS                    *string        `json:"os,omitempty"`
	AppEvent              *bool          `json:"appEvent,omitempty"`
	MobilePartner         *string        `json:"mobilePartner,omitempty"`
	ClickTrackingURL      *string        `json:"clickTrackingUrl,omitempty"`
	ImpressionTrackingURL *string        `json:"impressionTrackingUrl,omitempty"`
	EventParams           map[string]any `json:"eventParams,omitempty"`
	Version               *int           `json:"version,omitempty"`
	CreateTime            *int64         `json:"createTime,omitempty"`
	UpdateTime            *int64         `json:"updateTime,omitempty"`
}

// EventsData é o campo data de /event/getList/{adAccountId}
type EventsData struct {
	List []Event `json:"list" validate:"dive"`
}
