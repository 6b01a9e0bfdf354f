package main

import (
	"image"

	"gioui.org/app"
	"gioui.org/unit"
)

// Application handles application-wide settings and changes.
type Application struct {
	appWindowTitle string
	appWindow      *app.Window
	winConfig      *app.Config
	metric         *unit.Metric
}

func NewApplication() *Application {
	return &Application{}
}

func (a *Application) SetWindow(appWindow *app.Window) {
	a.appWindow = appWindow
	if a.appWindowTitle != "" {
		a.SetTitle(a.appWindowTitle)
	}
}

func (a *Application) SetTitle(t string) {
	a.appWindowTitle = t
	if a.appWindow != nil {
		a.appWindow.Option(app.Title(t))
	}
}

func (a *Application) SetMetric(metric unit.Metric) {
	a.metric = &unit.Metric{}
	*a.metric = metric
}

// PxPerDp returns the display density, defaulting to 1 before the
// first frame arrives.
func (a *Application) PxPerDp() float32 {
	if a.metric == nil || a.metric.PxPerDp <= 0 {
		return 1
	}
	return a.metric.PxPerDp
}

func (a *Application) WindowConfigChanged(cfg *app.Config) {
	a.winConfig = &app.Config{}
	*a.winConfig = *cfg
}

func (a *Application) SetWindowSize(sz image.Point) {
	log(LogCatgApp, "Application: requested to set window size to %v\n", sz)
	if a.appWindow == nil {
		log(LogCatgApp, "Application: can't set window size because the window is not yet created\n")
		return
	}

	if sz.X == 0 || sz.Y == 0 {
		return
	}

	// Window sizes are reported in display dependent pixels but set in
	// device independent pixels, so convert here.
	pxPerDp := a.PxPerDp()
	x := unit.Dp(float32(sz.X) / pxPerDp)
	y := unit.Dp(float32(sz.Y) / pxPerDp)
	a.appWindow.Option(app.Size(x, y))
	log(LogCatgApp, "Application: setting window size to %v\n", sz)
}
