package main

import (
	"net/http"
	_ "net/http/pprof"

	"github.com/ddkwork/golibrary/mylog"
)

const (
	LogCatgApp     = "Application"
	LogCatgUI      = "UI"
	LogCatgViewer  = "Viewer"
	LogCatgGesture = "Gesture"
	LogCatgLayer   = "Layer"
	LogCatgDoc     = "Document"
	LogCatgConf    = "Config"
	LogCatgTrace   = "Trace"
)

var debugLogCategories = []string{
	LogCatgApp,
	LogCatgUI,
	LogCatgViewer,
	LogCatgGesture,
	LogCatgLayer,
	LogCatgDoc,
	LogCatgConf,
	LogCatgTrace,
}

func startPprofDebugServer() {
	go func() {
		mylog.Check(http.ListenAndServe("localhost:6060", nil))
	}()
}
