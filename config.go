package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/ddkwork/golibrary/mylog"
	"github.com/pelletier/go-toml"

	"github.com/vellumdoc/vellum/internal/gesture"
)

var ConfDir string

func init() {
	if runtime.GOOS == "windows" {
		ConfDir = fmt.Sprintf("%s/.vellum", os.Getenv("USERPROFILE"))
	} else {
		ConfDir = fmt.Sprintf("%s/.vellum", os.Getenv("HOME"))
	}
}

func StyleConfigFile() string {
	return fmt.Sprintf("%s/%s", ConfDir, "style.js")
}

func SettingsConfigFile() string {
	return fmt.Sprintf("%s/%s", ConfDir, "settings.toml")
}

func StateFile() string {
	return fmt.Sprintf("%s/%s", ConfDir, "state.json")
}

type Settings struct {
	View    ViewSettings
	Gesture GestureSettings
}

type ViewSettings struct {
	MinZoom        float64 `toml:"min-zoom"`
	MaxZoom        float64 `toml:"max-zoom"`
	DoubleTapZoom  float64 `toml:"double-tap-zoom"`
	RestoreOnOpen  bool    `toml:"restore-on-open"`
	PageCacheSize  int     `toml:"page-cache-size"`
	ModebarHeightDp int    `toml:"modebar-height-dp"`
}

type GestureSettings struct {
	LongPressMs      int     `toml:"long-press-ms"`
	TapMaxMs         int     `toml:"tap-max-ms"`
	DoubleTapGapMs   int     `toml:"double-tap-gap-ms"`
	TapMoveTolerance float64 `toml:"tap-move-tolerance"`
	PanActivation    float64 `toml:"pan-activation"`
	PinchActivation  float64 `toml:"pinch-activation"`
	PinchRatioStep   float64 `toml:"pinch-ratio-step"`
}

// GestureConfig builds a recognizer config from the settings, using the
// defaults for any value left unset.
func (s GestureSettings) GestureConfig() gesture.Config {
	c := gesture.DefaultConfig()
	if s.LongPressMs > 0 {
		c.LongPressDuration = time.Duration(s.LongPressMs) * time.Millisecond
	}
	if s.TapMaxMs > 0 {
		c.TapMaxDuration = time.Duration(s.TapMaxMs) * time.Millisecond
	}
	if s.DoubleTapGapMs > 0 {
		c.DoubleTapGap = time.Duration(s.DoubleTapGapMs) * time.Millisecond
	}
	if s.TapMoveTolerance > 0 {
		c.TapMoveTolerance = float32(s.TapMoveTolerance)
	}
	if s.PanActivation > 0 {
		c.PanActivation = float32(s.PanActivation)
	}
	if s.PinchActivation > 0 {
		c.PinchActivation = float32(s.PinchActivation)
	}
	if s.PinchRatioStep > 0 {
		c.PinchRatioStep = float32(s.PinchRatioStep)
	}
	return c
}

func LoadSettingsFromConfigFile(settings *Settings) (err error) {
	var f *os.File
	f = mylog.Check2(os.Open(SettingsConfigFile()))

	defer func() { mylog.Check(f.Close()) }()

	dec := toml.NewDecoder(f)
	mylog.Check(dec.Decode(settings))
	return
}

func GenerateSampleSettings() string {
	return `# Sample vellum settings file
[view]
# Zoom limits applied to pinch and double-tap zooming.
# The defaults are 0.25 and 8.0
#min-zoom=0.25
#max-zoom=8.0

# The zoom that a double tap toggles to from 1.0
# The default is 2.0
#double-tap-zoom=2.0

# Restore the last page, zoom and rotation when a document is reopened
# The default is false
#restore-on-open=false

# Number of rendered pages kept in memory
# The default is 4
#page-cache-size=4

# Height of the mode bar in dp
# The default is 44
#modebar-height-dp=44

[gesture]
# How long a contact must stay down before a long press fires, in milliseconds
# The default is 500
#long-press-ms=500

# Maximum duration of a tap, in milliseconds
# The default is 300
#tap-max-ms=300

# Maximum gap between two taps for them to count as a double tap, in milliseconds
# The default is 300
#double-tap-gap-ms=300

# How far a contact may drift and still count as a tap, in pixels
# The default is 6
#tap-move-tolerance=6

# How far a single contact must move before a pan starts, in pixels
# The default is 10
#pan-activation=10

# How much the spacing between two contacts must change, as a fraction of
# the starting spacing, before a pinch starts
# The default is 0.05
#pinch-activation=0.05

# Minimum change in pinch ratio between reported pinch events
# The default is 0.02
#pinch-ratio-step=0.02
`
}
