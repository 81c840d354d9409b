package core

import (
	"fyne.io/fyne/v2"
	fbcore "github.com/frostbyte73/core"
	"github.com/sirupsen/logrus"
)

// MetricsWatcher delivers platform metrics-change notifications to a
// callback. Start and Stop are each called at most once per watcher; the
// engine creates a fresh watcher on every enable.
type MetricsWatcher interface {
	Start(onChange func())
	Stop()
}

// settingsWatcher listens for Fyne settings changes (scale, theme), the
// closest platform signal to a viewport metrics change. Fyne offers no way
// to remove a settings listener, so Stop abandons the channel instead: the
// fuse breaks once and the drain goroutine exits.
type settingsWatcher struct {
	fuse fbcore.Fuse
}

func newSettingsWatcher() *settingsWatcher {
	return &settingsWatcher{fuse: fbcore.NewFuse()}
}

func (w *settingsWatcher) Start(onChange func()) {
	app := fyne.CurrentApp()
	if app == nil {
		logrus.Debug("gscale: no fyne app running, metrics watch inactive")
		return
	}
	ch := make(chan fyne.Settings, 1)
	app.Settings().AddChangeListener(ch)
	go func() {
		for {
			select {
			case <-w.fuse.Watch():
				return
			case <-ch:
				onChange()
			}
		}
	}()
}

func (w *settingsWatcher) Stop() {
	w.fuse.Break()
}
