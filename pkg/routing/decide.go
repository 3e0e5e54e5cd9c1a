package routing

import (
	"time"

	"github.com/dmitrymomot/notifykit/pkg/notification"
	"github.com/dmitrymomot/notifykit/pkg/preferences"
)

// Decide computes the delivery plan for a notification against a preference
// profile. Pure and side-effect free: the clock is passed in explicitly and
// no state is touched, so no locking is ever required around it.
//
// Critical severity is a safety override: it always keeps at least the
// in-app channel regardless of category and severity toggles, which only
// strip external channels for critical events. Quiet hours suppress external
// channels for everything below critical and force sound off.
func Decide(n notification.Notification, p preferences.Profile, now time.Time) Plan {
	plan := Plan{
		NotificationID:   n.ID,
		Channels:         make(map[notification.Channel]bool),
		SuppressedReason: ReasonNone,
		Sound:            p.SoundEnabled,
	}
	critical := n.Severity == notification.SeverityCritical

	rule := p.Category(n.Category)
	switch {
	case !rule.Enabled:
		plan.SuppressedReason = ReasonCategoryDisabled
	case !rule.AllowsSeverity(n.Severity):
		plan.SuppressedReason = ReasonSeverityFiltered
	default:
		for _, c := range p.Channels.Enabled() {
			plan.Channels[c] = true
		}
	}

	if p.QuietHours.Contains(now) && !critical {
		// Strip everything except in-app; the notification stays visible
		// in the app but nothing external fires during the window.
		inApp := plan.Channels[notification.ChannelInApp]
		plan.Channels = make(map[notification.Channel]bool)
		if inApp {
			plan.Channels[notification.ChannelInApp] = true
		}
		plan.SuppressedByQuietHours = true
		if plan.SuppressedReason == ReasonNone {
			plan.SuppressedReason = ReasonQuietHours
		}
		plan.Sound = false
	}

	if critical {
		plan.Channels[notification.ChannelInApp] = true
	}

	return plan
}
