// Package doc is the boundary to the PDF engine. It exposes the few
// facts the viewer needs about a document: page count, page sizes,
// page rotation and existing annotation rectangles. Content rendering
// happens elsewhere.
package doc

import (
	"fmt"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"
)

// Document is an open PDF file.
type Document struct {
	r        *pdf.Reader
	path     string
	numPages int
}

// Annot is the location of one existing annotation on a page, in
// content-space (PDF user space) units.
type Annot struct {
	Subtype string
	X, Y    float64
	W, H    float64
}

// Open opens the named PDF file. Close must be called when done.
func Open(path string) (*Document, error) {
	r, err := pdf.Open(path, nil)
	if err != nil {
		return nil, err
	}
	n, err := pagetree.NumPages(r)
	if err != nil {
		r.Close()
		return nil, err
	}
	return &Document{r: r, path: path, numPages: n}, nil
}

func (d *Document) Close() error {
	return d.r.Close()
}

// Path returns the file the document was opened from.
func (d *Document) Path() string {
	return d.path
}

// NumPages returns the page count.
func (d *Document) NumPages() int {
	return d.numPages
}

func (d *Document) page(pageNo int) (pdf.Dict, error) {
	if pageNo < 0 || pageNo >= d.numPages {
		return nil, fmt.Errorf("page %d out of range (document has %d pages)", pageNo, d.numPages)
	}
	_, dict, err := pagetree.GetPage(d.r, pageNo)
	return dict, err
}

// PageSize returns the page's MediaBox dimensions in PDF user-space
// units (1/72 inch).
func (d *Document) PageSize(pageNo int) (w, h float64, err error) {
	dict, err := d.page(pageNo)
	if err != nil {
		return 0, 0, err
	}
	box, err := pdf.GetArray(d.r, dict["MediaBox"])
	if err != nil {
		return 0, 0, err
	}
	if len(box) < 4 {
		return 0, 0, fmt.Errorf("page %d: missing or invalid MediaBox", pageNo)
	}
	llx, err := pdf.GetNumber(d.r, box[0])
	if err != nil {
		return 0, 0, err
	}
	lly, err := pdf.GetNumber(d.r, box[1])
	if err != nil {
		return 0, 0, err
	}
	urx, err := pdf.GetNumber(d.r, box[2])
	if err != nil {
		return 0, 0, err
	}
	ury, err := pdf.GetNumber(d.r, box[3])
	if err != nil {
		return 0, 0, err
	}
	return float64(urx - llx), float64(ury - lly), nil
}

// PageRotation returns the page's /Rotate entry normalized to one of
// 0, 90, 180 or 270.
func (d *Document) PageRotation(pageNo int) (int, error) {
	dict, err := d.page(pageNo)
	if err != nil {
		return 0, err
	}
	rot, err := pdf.GetInteger(d.r, dict["Rotate"])
	if err != nil {
		return 0, err
	}
	return NormalizeRotation(int(rot)), nil
}

// PageAnnotations lists the rectangles of the page's existing
// annotations.
func (d *Document) PageAnnotations(pageNo int) ([]Annot, error) {
	dict, err := d.page(pageNo)
	if err != nil {
		return nil, err
	}
	annots, err := pdf.GetArray(d.r, dict["Annots"])
	if err != nil {
		return nil, err
	}

	var out []Annot
	for _, obj := range annots {
		adict, err := pdf.GetDict(d.r, obj)
		if err != nil || adict == nil {
			continue
		}
		subtype, err := pdf.GetName(d.r, adict["Subtype"])
		if err != nil {
			continue
		}
		rect, err := pdf.GetArray(d.r, adict["Rect"])
		if err != nil || len(rect) < 4 {
			continue
		}
		var nums [4]float64
		bad := false
		for i := 0; i < 4; i++ {
			n, err := pdf.GetNumber(d.r, rect[i])
			if err != nil {
				bad = true
				break
			}
			nums[i] = float64(n)
		}
		if bad {
			continue
		}
		// Rect corners may come in any order.
		x0, x1 := minmax(nums[0], nums[2])
		y0, y1 := minmax(nums[1], nums[3])
		out = append(out, Annot{
			Subtype: string(subtype),
			X:       x0,
			Y:       y0,
			W:       x1 - x0,
			H:       y1 - y0,
		})
	}
	return out, nil
}

// NormalizeRotation maps an arbitrary degree value to {0, 90, 180,
// 270}. PDF files may carry negative or multiple-turn values; values
// that are not a multiple of 90 are rounded down to one.
func NormalizeRotation(deg int) int {
	deg = ((deg % 360) + 360) % 360
	return deg - deg%90
}

func minmax(a, b float64) (float64, float64) {
	if a <= b {
		return a, b
	}
	return b, a
}
