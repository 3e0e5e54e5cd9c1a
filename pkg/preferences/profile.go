package preferences

import (
	"time"

	"github.com/dmitrymomot/notifykit/pkg/notification"
	"github.com/dmitrymomot/notifykit/pkg/validate"
)

// TimeOfDay is a wall-clock time in 24-hour "HH:MM" format.
type TimeOfDay string

// Valid reports whether the value parses as a 24-hour HH:MM time.
func (t TimeOfDay) Valid() bool {
	parsed, err := time.Parse("15:04", string(t))
	return err == nil && parsed.Format("15:04") == string(t)
}

// Minutes returns the time as minutes since midnight. Call only on validated
// values; invalid input returns 0.
func (t TimeOfDay) Minutes() int {
	parsed, err := time.Parse("15:04", string(t))
	if err != nil {
		return 0
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// Channels holds the per-channel delivery toggles.
type Channels struct {
	InApp    bool `json:"in_app"`
	Email    bool `json:"email"`
	SMS      bool `json:"sms"`
	WhatsApp bool `json:"whatsapp"`
}

// Enabled returns the set of channels toggled on, in declaration order.
func (c Channels) Enabled() []notification.Channel {
	var out []notification.Channel
	if c.InApp {
		out = append(out, notification.ChannelInApp)
	}
	if c.Email {
		out = append(out, notification.ChannelEmail)
	}
	if c.SMS {
		out = append(out, notification.ChannelSMS)
	}
	if c.WhatsApp {
		out = append(out, notification.ChannelWhatsApp)
	}
	return out
}

// CategoryRule holds the per-category toggle plus severity-specific flags.
// Success-severity events pass whenever the category itself is enabled.
type CategoryRule struct {
	Enabled  bool `json:"enabled"`
	Critical bool `json:"critical"`
	Warning  bool `json:"warning"`
	Info     bool `json:"info"`
}

// AllowsSeverity reports whether the rule passes the given severity,
// assuming the category itself is enabled.
func (r CategoryRule) AllowsSeverity(s notification.Severity) bool {
	switch s {
	case notification.SeverityCritical:
		return r.Critical
	case notification.SeverityWarning:
		return r.Warning
	case notification.SeverityInfo:
		return r.Info
	case notification.SeveritySuccess:
		return true
	default:
		return false
	}
}

// QuietHours is a daily window during which only critical notifications
// propagate beyond the in-app channel. The window may wrap past midnight:
// Start > End means it spans midnight.
type QuietHours struct {
	Enabled bool      `json:"enabled"`
	Start   TimeOfDay `json:"start"`
	End     TimeOfDay `json:"end"`
}

// Contains reports whether the wall-clock time of t falls inside the window.
// Start is inclusive, End exclusive. Disabled windows contain nothing.
func (q QuietHours) Contains(t time.Time) bool {
	if !q.Enabled {
		return false
	}

	m := t.Hour()*60 + t.Minute()
	start, end := q.Start.Minutes(), q.End.Minutes()

	if start <= end {
		return start <= m && m < end
	}
	// Window spans midnight.
	return m >= start || m < end
}

// Profile holds one user's routing preferences. Updates are whole-profile
// replacements; partial merges are rejected to avoid inconsistent state.
type Profile struct {
	Channels     Channels                                   `json:"channels"`
	Categories   map[notification.Category]CategoryRule     `json:"categories"`
	QuietHours   QuietHours                                 `json:"quiet_hours"`
	SoundEnabled bool                                       `json:"sound_enabled"`
}

// Default returns the conservative fallback profile used when a user has no
// stored preferences: in-app only, no category rules (fail-closed, so only
// the critical safety override delivers anything), quiet hours off.
func Default() Profile {
	return Profile{
		Channels:   Channels{InApp: true},
		Categories: map[notification.Category]CategoryRule{},
	}
}

// Category returns the rule for a category. Absent categories fail closed.
func (p Profile) Category(c notification.Category) CategoryRule {
	if rule, ok := p.Categories[c]; ok {
		return rule
	}
	return CategoryRule{}
}

// Validate checks enum membership of category keys and quiet-hours time
// formats. Returns validate.ValidationErrors, or nil.
func (p Profile) Validate() error {
	rules := make([]validate.Rule, 0, len(p.Categories)+2)
	for category := range p.Categories {
		rules = append(rules, validate.InList("categories", category, notification.Categories()))
	}
	if p.QuietHours.Enabled {
		rules = append(rules,
			validate.TimeOfDay("quiet_hours.start", string(p.QuietHours.Start)),
			validate.TimeOfDay("quiet_hours.end", string(p.QuietHours.End)),
		)
	}
	return validate.Apply(rules...)
}
