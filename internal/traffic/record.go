package traffic

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// VisitEvent is a single landing-page visit as received from the HTTP boundary.
type VisitEvent struct {
	UserAgent  string
	IP         string
	OriginHost string
	Client     string // caller identifier, checked against the internal whitelist
	Path       string
	Referrer   string
	Query      map[string][]string
	Sub1       string
	Sub2       string
	Sub3       string
	Sub4       string
	IsBot      *bool // explicit override; wins over detection when set
	Headers    http.Header
	At         time.Time // zero means now
}

// Record is the persisted, first-touch view of a visitor for one day.
// Only VisitCount changes after creation.
type Record struct {
	ID           uuid.UUID         `json:"id"`
	Fingerprint  string            `json:"fingerprint"`
	FirstSeen    time.Time         `json:"first_seen"`
	VisitCount   int64             `json:"visit_count"`
	DeviceType   string            `json:"device_type"`
	Browser      string            `json:"browser"`
	OS           string            `json:"os"`
	Source       string            `json:"source"`
	Medium       string            `json:"medium"`
	CampaignID   string            `json:"campaign_id,omitempty"`
	CampaignName string            `json:"campaign_name,omitempty"`
	Term         string            `json:"term,omitempty"`
	Content      string            `json:"content,omitempty"`
	Platform     string            `json:"platform,omitempty"`
	Channel      string            `json:"channel,omitempty"`
	ClickID      string            `json:"click_id,omitempty"`
	Country      string            `json:"country"`
	Region       string            `json:"region"`
	City         string            `json:"city"`
	Postal       string            `json:"postal"`
	IsBot        bool              `json:"is_bot"`
	BotName      string            `json:"bot_name,omitempty"`
	BotCategory  string            `json:"bot_category,omitempty"`
	Path         string            `json:"path"`
	Host         string            `json:"host"`
	Referrer     string            `json:"referrer,omitempty"`
	Sub1         string            `json:"s1,omitempty"`
	Sub2         string            `json:"s2,omitempty"`
	Sub3         string            `json:"s3,omitempty"`
	Sub4         string            `json:"s4,omitempty"`
	QueryParams  map[string]string `json:"query_params"`
	CreatedAt    time.Time         `json:"created_at"`
}
