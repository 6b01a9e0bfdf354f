package coord

import (
	"fmt"
	"image"
	"testing"

	"gioui.org/f32"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func pointsClose(t *testing.T, want, got f32.Point, context string) {
	t.Helper()
	const tol = 1e-3
	if math32.Abs(want.X-got.X) > tol || math32.Abs(want.Y-got.Y) > tol {
		t.Fatalf("%s: expected %v, got %v", context, want, got)
	}
}

func TestRoundTrip(t *testing.T) {
	scales := []float32{0.25, 1, 1.5, 4}
	rotations := []int{0, 90, 180, 270}
	offsets := []f32.Point{{}, {X: 12, Y: -40}, {X: -3.5, Y: 7.25}}
	points := []f32.Point{
		{},
		{X: 100, Y: 100},
		{X: 612, Y: 792},
		{X: -20, Y: 1000.5},
	}

	for _, s := range scales {
		for _, r := range rotations {
			for _, o := range offsets {
				tr := New()
				tr.SetScale(s)
				tr.SetRotation(r)
				tr.SetOffset(o.X, o.Y)
				tr.SetPageSize(612, 792)
				tr.SetViewport(image.Rect(50, 80, 850, 1080))

				for _, p := range points {
					ctx := fmt.Sprintf("scale=%v rot=%d offset=%v point=%v", s, r, o, p)

					c := tr.PageToClient(p.X, p.Y)
					back := tr.ClientToPage(c.X, c.Y)
					pointsClose(t, p, back, ctx+" (page round trip)")

					pg := tr.ClientToPage(p.X, p.Y)
					fwd := tr.PageToClient(pg.X, pg.Y)
					pointsClose(t, p, fwd, ctx+" (client round trip)")
				}
			}
		}
	}
}

func TestDistanceInverse(t *testing.T) {
	tr := New()
	for _, s := range []float32{0.5, 1, 2, 3.75} {
		tr.SetScale(s)
		for _, d := range []float32{0, 1, 17.5, 600} {
			assert.InDelta(t, d, tr.ClientToPageDistance(tr.PageToClientDistance(d)), 1e-4)
			assert.InDelta(t, d, tr.PageToClientDistance(tr.ClientToPageDistance(d)), 1e-4)
		}
	}
}

func TestClientToPageUnrotated(t *testing.T) {
	tr := New()
	tr.SetScale(2)
	tr.SetOffset(10, 20)
	tr.SetPageSize(612, 792)
	tr.SetViewport(image.Rect(100, 200, 900, 1200))

	// client = page*scale + offset + viewport origin
	p := tr.ClientToPage(100+10+2*50, 200+20+2*60)
	pointsClose(t, f32.Pt(50, 60), p, "client to page")

	c := tr.PageToClient(50, 60)
	pointsClose(t, f32.Pt(210, 340), c, "page to client")
}

func TestRotationPivotsOnPageCenter(t *testing.T) {
	tr := New()
	tr.SetScale(1)
	tr.SetPageSize(100, 200)

	// The page center maps to itself for every rotation.
	for _, r := range []int{0, 90, 180, 270} {
		tr.SetRotation(r)
		pointsClose(t, f32.Pt(50, 100), tr.PageToClient(50, 100),
			fmt.Sprintf("center under rotation %d", r))
	}

	// A quarter turn moves the top-left corner as a rigid rotation
	// about (50,100): (0,0) -> (150, 50).
	tr.SetRotation(90)
	pointsClose(t, f32.Pt(150, 50), tr.PageToClient(0, 0), "corner under rotation 90")

	tr.SetRotation(180)
	pointsClose(t, f32.Pt(100, 200), tr.PageToClient(0, 0), "corner under rotation 180")
}

func TestMissingViewportDegradesToOrigin(t *testing.T) {
	tr := New()
	tr.SetScale(3)

	p := tr.ClientToPage(30, 60)
	pointsClose(t, f32.Pt(10, 20), p, "no viewport set")

	c := tr.PageToClient(10, 20)
	pointsClose(t, f32.Pt(30, 60), c, "no viewport set inverse")
}

func TestAccessors(t *testing.T) {
	tr := New()
	assert.Equal(t, float32(1), tr.Scale())
	assert.Equal(t, 0, tr.Rotation())

	tr.SetScale(2.5)
	tr.SetRotation(270)
	assert.Equal(t, float32(2.5), tr.Scale())
	assert.Equal(t, 270, tr.Rotation())
}
