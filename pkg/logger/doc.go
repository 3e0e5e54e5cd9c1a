// Package logger provides a small slog factory plus typed attribute helpers
// so log field names stay consistent across the engine's packages.
//
//	log := logger.New(
//	    logger.WithService("notifykit"),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatText),
//	)
//	log.Info("notification delivered",
//	    logger.NotificationID(n.ID),
//	    logger.Channel(notification.ChannelEmail),
//	)
package logger
