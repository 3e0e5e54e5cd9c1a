// Package validate provides a small rule-based validation helper used by the
// ingestion and preferences layers.
//
// Rules are plain closures paired with a field-level error; Apply runs them
// and returns ValidationErrors collecting every failure rather than stopping
// at the first one:
//
//	err := validate.Apply(
//	    validate.Required("title", title),
//	    validate.InList("severity", severity, notification.Severities()),
//	    validate.TimeOfDay("quiet_hours.start", start),
//	)
//	if err != nil {
//	    details := validate.Extract(err).Details()
//	    // return details to the client
//	}
package validate
