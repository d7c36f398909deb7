package charts

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"
)

const (
	depotRadius    = 12.0
	deliveryRadius = 8.0
	arrowSize      = 8.0
	mapPadding     = 40.0
)

// MapPoint is one location on a route map in scenario coordinates.
type MapPoint struct {
	ID    int
	Label string
	X, Y  float64
	Depot bool
}

// RouteMap draws locations and the legs of one tour.
type RouteMap struct {
	Title     string
	Points    []MapPoint
	Tour      []int // point IDs in visiting order
	Width     int
	Height    int
	FontPaths []string
}

// Render draws the map. Coordinates are scaled to fit the canvas.
func (m *RouteMap) Render() (*gg.Context, error) {
	if len(m.Points) == 0 {
		return nil, ErrEmptyChart
	}

	byID := make(map[int]MapPoint, len(m.Points))
	maxX, maxY := 0.0, 0.0
	for _, p := range m.Points {
		byID[p.ID] = p
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, id := range m.Tour {
		if _, ok := byID[id]; !ok {
			return nil, fmt.Errorf("route map: tour references unknown location %d", id)
		}
	}

	w, h := float64(m.Width), float64(m.Height)
	if w <= 0 {
		w = 500
	}
	if h <= 0 {
		h = 400
	}
	top := mapPadding
	if m.Title != "" {
		top += 30
	}
	scale := math.Min((w-2*mapPadding)/math.Max(maxX, 1), (h-top-mapPadding)/math.Max(maxY, 1))
	project := func(p MapPoint) (float64, float64) {
		return mapPadding + p.X*scale, top + p.Y*scale
	}

	dc := gg.NewContext(int(w), int(h))
	dc.SetHexColor("#FCFCF9")
	dc.Clear()
	fonts := loadFonts(dc, m.FontPaths, 12)

	if m.Title != "" {
		fonts.use(dc, 18)
		dc.SetHexColor("#13343B")
		dc.DrawStringAnchored(m.Title, w/2, mapPadding/2+10, 0.5, 0.5)
		fonts.use(dc, 12)
	}

	dc.SetHexColor("#1FB8CD")
	dc.SetLineWidth(3)
	for i := 0; i+1 < len(m.Tour); i++ {
		x1, y1 := project(byID[m.Tour[i]])
		x2, y2 := project(byID[m.Tour[i+1]])
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()

		// Arrow head at the leg midpoint.
		angle := math.Atan2(y2-y1, x2-x1)
		mx, my := (x1+x2)/2, (y1+y2)/2
		dc.MoveTo(mx, my)
		dc.LineTo(mx-arrowSize*math.Cos(angle-math.Pi/6), my-arrowSize*math.Sin(angle-math.Pi/6))
		dc.LineTo(mx-arrowSize*math.Cos(angle+math.Pi/6), my-arrowSize*math.Sin(angle+math.Pi/6))
		dc.ClosePath()
		dc.Fill()
	}

	for _, p := range m.Points {
		x, y := project(p)
		r, fill := deliveryRadius, "#FFC185"
		if p.Depot {
			r, fill = depotRadius, "#1FB8CD"
		}
		dc.SetHexColor(fill)
		dc.DrawCircle(x, y, r)
		dc.Fill()
		dc.SetHexColor("#FFFFFF")
		dc.SetLineWidth(2)
		dc.DrawCircle(x, y, r)
		dc.Stroke()

		dc.SetHexColor("#13343B")
		dc.DrawStringAnchored(p.Label, x, y-r-8, 0.5, 0.5)
	}

	return dc, nil
}

// SavePNG renders the map into path and returns the written size in bytes.
func (m *RouteMap) SavePNG(path string) (int64, error) {
	dc, err := m.Render()
	if err != nil {
		return 0, err
	}
	return savePNG(dc, path)
}
