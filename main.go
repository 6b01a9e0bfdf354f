package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	rdebug "runtime/debug"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"github.com/ddkwork/golibrary/mylog"
	"github.com/ogier/pflag"

	vdebug "github.com/vellumdoc/vellum/internal/debug"
	"github.com/vellumdoc/vellum/internal/trace"
)

const appName = "vellum"

var (
	optProfile     = pflag.BoolP("profile", "p", false, "Profile the code CPU usage. The profile file location is printed to stdout.")
	optLoadDumpfile = pflag.StringP("load", "l", "", "Load state from the specified file that was created using a state dump")
	optChdir       = pflag.StringP("cd", "d", "", "Change directory to the specified path before starting")
	optDebugStdout = pflag.BoolP("dbg", "b", false, "Print debug logs to stdout")
	optPprof       = pflag.BoolP("pprof", "P", false, "Serve pprof debug endpoints on localhost:6060")
	optTraceFile   = pflag.StringP("trace", "t", "", "Record the touch event stream to the specified CSV file on exit")
	optPlayFile    = pflag.StringP("play", "y", "", "Replay a recorded touch event stream from the specified CSV file on startup")
)

func main() {
	mylog.Call(func() { run() })
}

func run() {
	parseAndValidateOptions()

	if *optChdir != "" {
		mylog.Check(os.Chdir(*optChdir))
	}

	if *optProfile {
		startProfiling(ProfileCPU, ".")
	}
	if *optPprof {
		startPprofDebugServer()
	}

	LoadSettings()
	LoadStyle()

	work := make(chan Work, 16)
	scheduler = NewScheduler(work)
	application = NewApplication()
	viewer = NewViewer(WindowStyle, &settings)

	go func() {
		w := app.NewWindow(app.Title(appName))
		application.SetWindow(w)
		parms := uiLoopInitParams{
			dumpfileToLoad: *optLoadDumpfile,
			initialFile:    pflag.Arg(0),
		}
		mylog.Check(loop(w, work, &parms))
		Exit(0)
	}()
	app.Main()

	if *optProfile {
		stopProfiling()
	}
}

func parseAndValidateOptions() {
	pflag.Parse()

	if pflag.NArg() > 0 && *optLoadDumpfile != "" {
		fmt.Printf("A filename cannot be specified as an argument when the option --load is used\n")
		Exit(1)
	}
}

var styleLoadedFromFile bool

func LoadStyle() {
	path := StyleConfigFile()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		SaveStyle(path)
		return
	}

	style := mylog.Check2(LoadStyleFromConfigFile(&WindowStyle))

	log(LogCatgApp, "Loaded style from config file %s\n", path)
	WindowStyle = style
	styleLoadedFromFile = true
}

// SaveStyle writes the current style so the user has a file to edit.
func SaveStyle(path string) {
	mylog.Check(os.MkdirAll(ConfDir, 0o755))
	mylog.Check(WriteStyle(path, WindowStyle))
	log(LogCatgApp, "Wrote default style to config file %s\n", path)
}

var (
	settingsLoadedFromFile bool
	settings               = Settings{
		View: ViewSettings{
			MinZoom:         0.25,
			MaxZoom:         8,
			DoubleTapZoom:   2,
			PageCacheSize:   4,
			ModebarHeightDp: 44,
		},
	}
)

func LoadSettings() {
	mylog.Check(LoadSettingsFromConfigFile(&settings))

	log(LogCatgApp, "Loaded settings from config file %s\n", SettingsConfigFile())

	settingsLoadedFromFile = true
}

var (
	viewer      *Viewer
	application *Application
	appWindow   *app.Window
	scheduler   *Scheduler
	debugLog    = vdebug.New(100)

	WindowStyle = DefaultStyle()
)

func dumpPanic(i interface{}) {
	fname := fmt.Sprintf("%s.panic", appName)
	f := mylog.Check2(os.Create(fname))
	defer func() { mylog.Check(f.Close()) }()
	mylog.Check2(fmt.Fprintf(f, "panic: %v\n", i))
	mylog.Check2(fmt.Fprintf(f, "%s", string(rdebug.Stack())))
}

func dumpLogs() {
	fname := fmt.Sprintf("%s.panic-logs", appName)
	f := mylog.Check2(os.Create(fname))

	defer func() { mylog.Check(f.Close()) }()
	mylog.Check2(fmt.Fprintf(f, "%s", debugLog.String()))
}

func dumpGoroutines() {
	fname := fmt.Sprintf("%s.panic-gortns", appName)

	f := mylog.Check2(os.Create(fname))

	defer func() { mylog.Check(f.Close()) }()

	buf := make([]byte, 100000)
	sz := runtime.Stack(buf, true)
	buf = buf[0:sz]

	mylog.Check2(fmt.Fprintf(f, "%s", string(buf)))
}

type uiLoopInitParams struct {
	dumpfileToLoad string
	initialFile    string
}

func initializeViewer(parms *uiLoopInitParams) {
	if *optTraceFile != "" {
		rec := &trace.Recorder{}
		viewer.SetRecorder(rec)
	}

	switch {
	case parms.dumpfileToLoad != "":
		var state ApplicationState
		mylog.Check(ReadState(parms.dumpfileToLoad, &state))
		application.SetState(&state)
	case parms.initialFile != "":
		viewer.LoadFile(parms.initialFile)
	case settings.View.RestoreOnOpen:
		if _, err := os.Stat(StateFile()); err == nil {
			var state ApplicationState
			mylog.Check(ReadState(StateFile(), &state))
			application.SetState(&state)
		}
	}

	if *optPlayFile != "" {
		records := mylog.Check2(trace.Load(*optPlayFile))
		viewer.ReplayTrace(records)
	}
}

func loop(w *app.Window, work chan Work, parms *uiLoopInitParams) error {
	defer func() {
		if r := recover(); r != nil {
			dumpPanic(r)
			dumpLogs()
			dumpGoroutines()
			panic(r)
		}
	}()

	initializeViewer(parms)

	appWindow = w
	application.SetTitle(appName)

	invalidate := make(chan struct{}, 1)

	for {
		select {
		case e := <-w.Events():
			mylog.Check(handleEvent(e))

		case wk := <-work:
			wk.Service()

			select {
			case invalidate <- struct{}{}:
			default:
			}
		case <-invalidate:
			appWindow.Invalidate()
		}
	}
}

func handleEvent(e event.Event) error {
	var ops op.Ops
	switch e := e.(type) {
	case system.DestroyEvent:
		saveStateOnExit()
		Exit(0)
	case system.FrameEvent:
		application.SetMetric(e.Metric)
		gtx := layout.NewContext(&ops, e)
		viewer.Layout(gtx, e.Queue)
		e.Frame(gtx.Ops)
	case app.ConfigEvent:
		log(LogCatgUI, "window config changed: %v\n", e.Config)
		application.WindowConfigChanged(&e.Config)
	}
	return nil
}

func saveStateOnExit() {
	if *optTraceFile != "" && viewer.recorder != nil && viewer.recorder.Len() > 0 {
		log(LogCatgTrace, "writing %d trace records to %s\n", viewer.recorder.Len(), *optTraceFile)
		mylog.Check(viewer.recorder.Save(*optTraceFile))
	}

	if settings.View.RestoreOnOpen && viewer.doc != nil {
		mylog.Check(os.MkdirAll(ConfDir, 0o755))
		mylog.Check(WriteState(StateFile(), application.State()))
	}
}

func Exit(code int) {
	if *optProfile {
		stopProfiling()
	}
	os.Exit(code)
}

func init() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [file]\n", os.Args[0])
		fmt.Printf("Launch the vellum document viewer. If [file] is given, that document is opened.\n\n")
		fmt.Printf("Options:\n")

		pflag.PrintDefaults()

		fmt.Printf("\nDebug log categories: %s\n", strings.Join(debugLogCategories, ", "))
	}
}

func log(category, message string, args ...interface{}) {
	if *optDebugStdout {
		fmt.Printf(message, args...)
	}
	debugLog.Addf(category, message, args...)
}
