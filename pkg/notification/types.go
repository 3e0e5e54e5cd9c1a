package notification

import (
	"time"

	"github.com/dmitrymomot/notifykit/pkg/validate"
)

// Category classifies the source domain of an event.
type Category string

const (
	CategoryIncident Category = "incident"
	CategorySecurity Category = "security"
	CategoryDevice   Category = "device"
	CategorySensor   Category = "sensor"
	CategoryCamera   Category = "camera"
	CategoryTraffic  Category = "traffic"
	CategoryDrone    Category = "drone"
	CategorySystem   Category = "system"
)

// Categories returns the closed set of valid categories.
func Categories() []Category {
	return []Category{
		CategoryIncident,
		CategorySecurity,
		CategoryDevice,
		CategorySensor,
		CategoryCamera,
		CategoryTraffic,
		CategoryDrone,
		CategorySystem,
	}
}

// Valid reports whether the category is a member of the closed set.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory converts untrusted input into a Category, rejecting values
// outside the closed set.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", validate.ValidationErrors{{Field: "category", Message: "unknown category"}}
	}
	return c, nil
}

// Severity represents the urgency level of a notification.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
	SeveritySuccess  Severity = "success"
)

// Severities returns the closed set of valid severities.
func Severities() []Severity {
	return []Severity{SeverityCritical, SeverityWarning, SeverityInfo, SeveritySuccess}
}

// Valid reports whether the severity is a member of the closed set.
func (s Severity) Valid() bool {
	for _, known := range Severities() {
		if s == known {
			return true
		}
	}
	return false
}

// ParseSeverity converts untrusted input into a Severity, rejecting values
// outside the closed set.
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(s)
	if !sev.Valid() {
		return "", validate.ValidationErrors{{Field: "severity", Message: "unknown severity"}}
	}
	return sev, nil
}

// Channel identifies a delivery channel. The engine computes which channels
// should receive a message; actual transmission belongs to gateway
// collaborators.
type Channel string

const (
	ChannelInApp    Channel = "in_app"
	ChannelEmail    Channel = "email"
	ChannelSMS      Channel = "sms"
	ChannelWhatsApp Channel = "whatsapp"
)

// Channels returns the closed set of delivery channels.
func Channels() []Channel {
	return []Channel{ChannelInApp, ChannelEmail, ChannelSMS, ChannelWhatsApp}
}

// Valid reports whether the channel is a member of the closed set.
func (c Channel) Valid() bool {
	for _, known := range Channels() {
		if c == known {
			return true
		}
	}
	return false
}

// Notification is the canonical record produced by ingestion. Immutable
// except for Read/ReadAt and existence; deletion is terminal.
type Notification struct {
	ID                string     `json:"id"`
	UserID            string     `json:"user_id"`
	Category          Category   `json:"category"`
	Severity          Severity   `json:"severity"`
	Title             string     `json:"title"`
	Message           string     `json:"message"`
	Read              bool       `json:"read"`
	ReadAt            *time.Time `json:"read_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	DeliveredChannels []Channel  `json:"delivered_channels,omitempty"`
}

// Style holds display metadata for a severity, resolved through a central
// tagged-variant map rather than constructed identifiers.
type Style struct {
	Color string
	Icon  string
}

var severityStyles = map[Severity]Style{
	SeverityCritical: {Color: "red", Icon: "alert-octagon"},
	SeverityWarning:  {Color: "amber", Icon: "alert-triangle"},
	SeverityInfo:     {Color: "blue", Icon: "info-circle"},
	SeveritySuccess:  {Color: "green", Icon: "check-circle"},
}

// SeverityStyle resolves the display style for a severity. Unknown severities
// fall back to the info style.
func SeverityStyle(s Severity) Style {
	if style, ok := severityStyles[s]; ok {
		return style
	}
	return severityStyles[SeverityInfo]
}
