package routing

import (
	"github.com/dmitrymomot/notifykit/pkg/notification"
)

// Reason explains why channels were stripped from a delivery plan.
type Reason string

const (
	ReasonNone             Reason = "none"
	ReasonCategoryDisabled Reason = "category_disabled"
	ReasonSeverityFiltered Reason = "severity_filtered"
	ReasonQuietHours       Reason = "quiet_hours"
)

// Plan is the computed channel set plus suppression metadata for one
// notification instance. It is handed to gateway collaborators that perform
// the actual transmission; the engine only decides which channels apply.
type Plan struct {
	NotificationID         string                         `json:"notification_id"`
	Channels               map[notification.Channel]bool  `json:"channels"`
	SuppressedByQuietHours bool                           `json:"suppressed_by_quiet_hours"`
	SuppressedReason       Reason                         `json:"suppressed_reason"`
	Sound                  bool                           `json:"sound"`
}

// Has reports whether the plan includes the given channel.
func (p Plan) Has(c notification.Channel) bool {
	return p.Channels[c]
}

// ChannelList returns the plan's channels in the closed set's declaration
// order, for deterministic persistence and logging.
func (p Plan) ChannelList() []notification.Channel {
	var out []notification.Channel
	for _, c := range notification.Channels() {
		if p.Channels[c] {
			out = append(out, c)
		}
	}
	return out
}
