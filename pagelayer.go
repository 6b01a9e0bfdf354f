package main

import (
	"image"
	"image/color"
	stddraw "image/draw"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/ddkwork/golibrary/mylog"
	xdraw "golang.org/x/image/draw"

	"github.com/vellumdoc/vellum/internal/cache"
	"github.com/vellumdoc/vellum/internal/coord"
	"github.com/vellumdoc/vellum/internal/doc"
	"github.com/vellumdoc/vellum/internal/gesture"
)

// PageLayer draws the document page itself: the paper, its border and
// the outlines of annotations already present in the file. It sits at
// the bottom of the stack and consumes no gestures.
type PageLayer struct {
	layerBase
	doc       *doc.Document
	transform *coord.Transform
	style     Style

	// base is the last clean rasterization. While a pinch is in
	// flight Render rescales it instead of rasterizing every frame;
	// Rebase replaces it once the zoom settles.
	base   *pageRaster
	scaled *pageRaster
	cache  *cache.Cache[int, *pageRaster]
}

type pageRaster struct {
	page     int
	scale    float32
	rotation int
	img      *image.RGBA
}

func NewPageLayer(d *doc.Document, t *coord.Transform, style Style, cacheSize int) *PageLayer {
	p := &PageLayer{
		layerBase: layerBase{name: "page", z: 0},
		doc:       d,
		transform: t,
		style:     style,
		cache:     cache.New[int, *pageRaster](cacheSize),
	}
	p.cache.OnEvict = func(page int, _ *pageRaster) {
		log(LogCatgViewer, "page cache: evicted page %d\n", page)
	}
	return p
}

func (p *PageLayer) Render(page int, scale float32) {
	rot := p.transform.Rotation()

	if p.base != nil && p.base.page == page && p.base.rotation == rot {
		if p.base.scale == scale {
			p.scaled = nil
			return
		}
		// Zoom in flight. A rescale of the clean raster is much
		// cheaper than rasterizing and looks fine until Rebase.
		p.scaled = rescaleRaster(p.base, scale)
		return
	}

	if c, ok := p.cache.Get(page); ok && c.rotation == rot && c.scale == scale {
		p.base = c
		p.scaled = nil
		return
	}

	p.base = p.rasterize(page, scale)
	p.scaled = nil
	p.cache.Set(page, p.base)
}

// Rebase rasterizes cleanly at the current view scale. The Viewer
// calls it when a pinch ends.
func (p *PageLayer) Rebase() {
	if p.base == nil {
		return
	}
	s := p.transform.Scale()
	if p.scaled == nil && p.base.scale == s {
		return
	}
	p.base = p.rasterize(p.base.page, s)
	p.scaled = nil
	p.cache.Set(p.base.page, p.base)
}

func (p *PageLayer) handleGesture(ev gesture.Event) {
}

func (p *PageLayer) draw(gtx layout.Context) {
	r := p.base
	if p.scaled != nil {
		r = p.scaled
	}
	if r == nil {
		return
	}

	bounds := p.transform.PageClientBounds()
	st := op.Offset(bounds.Min).Push(gtx.Ops)
	cl := clip.Rect(r.img.Bounds()).Push(gtx.Ops)
	paint.NewImageOp(r.img).Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	cl.Pop()
	st.Pop()
}

// rasterize draws the page into an RGBA image the size of its client
// bounds. Annotation rectangles go through the shared transform so
// the raster is already rotated.
func (p *PageLayer) rasterize(page int, scale float32) *pageRaster {
	w, h := mylog.Check3(p.doc.PageSize(page))
	p.transform.SetPageSize(float32(w), float32(h))
	p.transform.SetScale(scale)

	bounds := p.transform.PageClientBounds()
	img := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	stddraw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, stddraw.Src)

	bw := p.style.PageBorderWidth
	if bw > 0 {
		outlineRect(img, img.Bounds(), bw, color.NRGBA(p.style.PageBorderColor))
	}

	annots := mylog.Check2(p.doc.PageAnnotations(page))
	for _, a := range annots {
		r := p.annotClientRect(a, bounds.Min)
		outlineRect(img, r, 1, color.NRGBA(p.style.PageShadowColor))
	}

	log(LogCatgViewer, "rasterized page %d at scale %.2f (%dx%d, %d annotations)\n",
		page, scale, img.Bounds().Dx(), img.Bounds().Dy(), len(annots))
	return &pageRaster{page: page, scale: scale, rotation: p.transform.Rotation(), img: img}
}

// annotClientRect maps an annotation's content-space rectangle into
// raster pixels. PDF rectangles have their origin at the bottom left.
func (p *PageLayer) annotClientRect(a doc.Annot, origin image.Point) image.Rectangle {
	_, ph := p.transform.PageSize()
	y0 := ph - float32(a.Y+a.H)
	c0 := p.transform.PageToClient(float32(a.X), y0)
	c1 := p.transform.PageToClient(float32(a.X+a.W), y0+float32(a.H))
	r := image.Rect(int(c0.X), int(c0.Y), int(c1.X), int(c1.Y)).Canon()
	return r.Sub(origin)
}

func rescaleRaster(r *pageRaster, scale float32) *pageRaster {
	ratio := scale / r.scale
	nw := int(float32(r.img.Bounds().Dx()) * ratio)
	nh := int(float32(r.img.Bounds().Dy()) * ratio)
	if nw < 1 || nh < 1 {
		return r
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), r.img, r.img.Bounds(), xdraw.Src, nil)
	return &pageRaster{page: r.page, scale: scale, rotation: r.rotation, img: dst}
}

// outlineRect strokes r into img, clipped to the image bounds.
func outlineRect(img *image.RGBA, r image.Rectangle, width int, c color.NRGBA) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	for i := 0; i < width; i++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, r.Min.Y+i, color.RGBA(c))
			img.SetRGBA(x, r.Max.Y-1-i, color.RGBA(c))
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			img.SetRGBA(r.Min.X+i, y, color.RGBA(c))
			img.SetRGBA(r.Max.X-1-i, y, color.RGBA(c))
		}
	}
}
