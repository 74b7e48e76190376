// Package ui runs the interactive calendar.
package ui

import (
	"context"

	"go.uber.org/zap"

	"tableflip.dev/almanac/pkg/calendar"
	"tableflip.dev/almanac/pkg/clock"
	"tableflip.dev/almanac/pkg/config"
	teaui "tableflip.dev/almanac/pkg/tui/app"
)

type UI struct {
	Config config.Config
	Logger *zap.Logger
	Clock  clock.Clock
	On     *calendar.Date
}

func (u *UI) Do(_ context.Context) error {
	logger := u.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("starting ui",
		zap.Bool("altScreen", u.Config.UI.AltScreen),
		zap.Bool("weekNumbers", u.Config.UI.WeekNumbers))

	err := teaui.Run(teaui.Options{
		Clock:       u.Clock,
		Logger:      logger,
		WeekNumbers: u.Config.UI.WeekNumbers,
		On:          u.On,
	}, u.Config.UI.AltScreen)
	if err != nil {
		logger.Error("ui exited", zap.Error(err))
		return err
	}
	logger.Info("ui closed")
	return nil
}
