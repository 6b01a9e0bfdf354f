package main

import (
	"encoding/json"
	"fmt"
	"image"
	"os"

	"gioui.org/app"
	"gioui.org/f32"
	"github.com/ddkwork/golibrary/mylog"

	"github.com/vellumdoc/vellum/internal/layer"
)

type ApplicationState struct {
	Title           string
	Viewer          *ViewerState
	AppWindowCfgSet bool
	AppWindowSize   image.Point
	AppWindowMode   app.WindowMode
}

func (a *Application) State() *ApplicationState {
	s := &ApplicationState{
		Title:  a.appWindowTitle,
		Viewer: viewer.State(),
	}

	if a.winConfig != nil {
		s.AppWindowCfgSet = true
		s.AppWindowSize = a.winConfig.Size
		s.AppWindowMode = a.winConfig.Mode
	}

	return s
}

func (a *Application) SetState(state *ApplicationState) error {
	if state == nil {
		return fmt.Errorf("The application state is nil")
	}
	a.SetTitle(state.Title)
	viewer.SetState(state.Viewer)

	if state.AppWindowCfgSet {
		if state.AppWindowMode == app.Windowed {
			a.SetWindowSize(state.AppWindowSize)
		}
	}

	return nil
}

type ViewerState struct {
	Path     string
	Page     int
	Zoom     float32
	Rotation int
	OffsetX  float32
	OffsetY  float32
	Mode     layer.Mode
	Notes    *NoteLayerState
	Ink      *InkLayerState
}

func (v *Viewer) State() *ViewerState {
	s := &ViewerState{
		Page:     v.page,
		Zoom:     v.zoom,
		Rotation: v.rotation,
		OffsetX:  v.offset.X,
		OffsetY:  v.offset.Y,
		Mode:     v.Mode(),
	}
	if v.doc != nil {
		s.Path = v.doc.Path()
		s.Notes = v.noteLayer.State()
		s.Ink = v.inkLayer.State()
	}
	return s
}

func (v *Viewer) SetState(state *ViewerState) error {
	if state == nil {
		return fmt.Errorf("The viewer state is nil")
	}

	if state.Path != "" {
		v.LoadFile(state.Path)
		v.noteLayer.SetState(state.Notes)
		v.inkLayer.SetState(state.Ink)
	}

	v.GoToPage(state.Page)
	if state.Zoom > 0 {
		v.zoom = v.clampZoom(state.Zoom)
	}
	v.rotation = state.Rotation
	v.offset = f32.Pt(state.OffsetX, state.OffsetY)
	v.SetMode(state.Mode)
	v.applyView()
	return nil
}

type NoteLayerState struct {
	Notes map[int][]NotePoint
}

type NotePoint struct {
	X, Y float32
}

func (l *NoteLayer) State() *NoteLayerState {
	s := &NoteLayerState{Notes: make(map[int][]NotePoint)}
	for page, notes := range l.notes {
		for _, n := range notes {
			s.Notes[page] = append(s.Notes[page], NotePoint{X: n.X, Y: n.Y})
		}
	}
	return s
}

func (l *NoteLayer) SetState(state *NoteLayerState) {
	if state == nil {
		return
	}
	l.notes = make(map[int][]f32.Point)
	for page, notes := range state.Notes {
		for _, n := range notes {
			l.notes[page] = append(l.notes[page], f32.Pt(n.X, n.Y))
		}
	}
}

type InkLayerState struct {
	Strokes map[int][][]NotePoint
}

func (l *InkLayer) State() *InkLayerState {
	s := &InkLayerState{Strokes: make(map[int][][]NotePoint)}
	for page, strokes := range l.strokes {
		for _, st := range strokes {
			pts := make([]NotePoint, len(st.Points))
			for i, p := range st.Points {
				pts[i] = NotePoint{X: p.X, Y: p.Y}
			}
			s.Strokes[page] = append(s.Strokes[page], pts)
		}
	}
	return s
}

func (l *InkLayer) SetState(state *InkLayerState) {
	if state == nil {
		return
	}
	l.strokes = make(map[int][]inkStroke)
	for page, strokes := range state.Strokes {
		for _, pts := range strokes {
			st := inkStroke{Points: make([]f32.Point, len(pts))}
			for i, p := range pts {
				st.Points[i] = f32.Pt(p.X, p.Y)
			}
			l.strokes[page] = append(l.strokes[page], st)
		}
	}
}

func WriteState(path string, state interface{}) error {
	file := mylog.Check2(os.Create(path))

	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(state)
}

func ReadState(path string, state interface{}) error {
	file := mylog.Check2(os.Open(path))

	defer file.Close()

	enc := json.NewDecoder(file)
	return enc.Decode(state)
}
