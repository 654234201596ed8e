package domain

type Event struct {
	ID                    string         `json:"id"`
	Name                  string         `json:"name"`
	OrgID                 string         `json:"org_id"`
	Type                  string         `json:"type"`
	EventType             *string        `json:"event_type,omitempty"`
	URL                   *string        `json:"url,omitempty"`
	OS                    *string        `json:"os,omitempty"`
	AppEvent              *bool          `json:"app_event,omitempty"`
	MobilePartner         *string        `json:"mobile_partner,omitempty"`
	ClickTrackingURL      *string        `json:"click_tracking_url,omitempty"`
	ImpressionTrackingURL *string        `json:"impression_tracking_url,omitempty"`
	EventParams           map[string]any `json:"event_params,omitempty"`
	Version               *int           `json:"version,omitempty"`
	CreateTime            *int64         `json:"create_time,omitempty"`
	UpdateTime            *int64         `json:"update_time,omitempty"`
}

type EventsResult struct {
	Events []Event `json:"events"`
}

type EventBrief struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	OS            *string `json:"os,omitempty"`
	MobilePartner *string `json:"mobile_partner,omitempty"`
}

type TrackingEventsResource struct {
	Events []EventBrief `json:"events"`
}
