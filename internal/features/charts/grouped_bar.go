package charts

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	logging "supply-chain-insights/internal/infra/log"

	"github.com/fogleman/gg"
	"go.uber.org/zap"
)

const (
	defaultWidth  = 1200
	defaultHeight = 800

	marginLeft   = 190.0 // category names
	marginRight  = 90.0  // value labels drawn past the bar end
	marginTop    = 130.0 // title + legend
	marginBottom = 90.0  // ticks + x axis title

	titleY       = 45.0
	legendY      = 95.0
	legendSwatch = 16.0
	legendGap    = 28.0

	groupPadding = 0.25 // share of a category band left empty
	tickCount    = 5

	titleFontSize  = 26.0
	axisFontSize   = 18.0
	labelFontSize  = 15.0
	legendFontSize = 16.0
)

var (
	ErrEmptyChart     = errors.New("chart has no categories or no series")
	ErrSeriesMismatch = errors.New("series length does not match categories")
)

// Series is one metric drawn across every category.
type Series struct {
	Name   string
	Color  string // hex, e.g. "#1FB8CD"
	Values []float64
	Labels []string // optional; defaults to the plain value
}

// Bar is one laid out rectangle. Y grows downward as in image space.
type Bar struct {
	Category string
	Series   string
	Value    float64
	Label    string
	X, Y     float64
	W, H     float64
}

// GroupedBarChart is a horizontal bar chart where the series of one category
// sit side by side inside the category band (not stacked).
type GroupedBarChart struct {
	Title      string
	XLabel     string
	YLabel     string
	Categories []string
	Series     []Series
	Width      int
	Height     int
	FontPaths  []string
}

// AddSeries appends a series after checking it covers every category.
func (c *GroupedBarChart) AddSeries(s Series) error {
	if len(s.Values) != len(c.Categories) {
		return fmt.Errorf("%w: %s has %d values for %d categories", ErrSeriesMismatch, s.Name, len(s.Values), len(c.Categories))
	}
	if s.Labels != nil && len(s.Labels) != len(s.Values) {
		return fmt.Errorf("%w: %s has %d labels for %d values", ErrSeriesMismatch, s.Name, len(s.Labels), len(s.Values))
	}
	c.Series = append(c.Series, s)
	return nil
}

func (c *GroupedBarChart) size() (float64, float64) {
	w, h := c.Width, c.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return float64(w), float64(h)
}

func (c *GroupedBarChart) plotArea() (left, top, right, bottom float64) {
	w, h := c.size()
	return marginLeft, marginTop, w - marginRight, h - marginBottom
}

// AxisMax is the x axis upper bound: the largest value rounded up to a tick step.
func (c *GroupedBarChart) AxisMax() float64 {
	upper, _ := niceScale(c.maxValue(), tickCount)
	return upper
}

func (c *GroupedBarChart) maxValue() float64 {
	maxValue := 0.0
	for _, s := range c.Series {
		for _, v := range s.Values {
			maxValue = math.Max(maxValue, v)
		}
	}
	return maxValue
}

// Bars lays out every bar of the chart, category by category, series order inside.
func (c *GroupedBarChart) Bars() ([]Bar, error) {
	if len(c.Categories) == 0 || len(c.Series) == 0 {
		return nil, ErrEmptyChart
	}
	for _, s := range c.Series {
		if len(s.Values) != len(c.Categories) {
			return nil, fmt.Errorf("%w: %s", ErrSeriesMismatch, s.Name)
		}
	}

	left, top, right, bottom := c.plotArea()
	plotW := right - left
	band := (bottom - top) / float64(len(c.Categories))
	barH := band * (1 - groupPadding) / float64(len(c.Series))
	xMax := c.AxisMax()

	bars := make([]Bar, 0, len(c.Categories)*len(c.Series))
	for ci, category := range c.Categories {
		groupTop := top + float64(ci)*band + band*groupPadding/2
		for si, s := range c.Series {
			v := s.Values[ci]
			label := strconv.FormatFloat(v, 'f', -1, 64)
			if s.Labels != nil {
				label = s.Labels[ci]
			}
			w := 0.0
			if v > 0 {
				w = v / xMax * plotW
			}
			bars = append(bars, Bar{
				Category: category,
				Series:   s.Name,
				Value:    v,
				Label:    label,
				X:        left,
				Y:        groupTop + float64(si)*barH,
				W:        w,
				H:        barH,
			})
		}
	}
	return bars, nil
}

// Render draws the chart onto a new context.
func (c *GroupedBarChart) Render() (*gg.Context, error) {
	bars, err := c.Bars()
	if err != nil {
		return nil, err
	}

	w, h := c.size()
	dc := gg.NewContext(int(w), int(h))
	dc.SetHexColor("#FFFFFF")
	dc.Clear()

	fonts := loadFonts(dc, c.FontPaths, axisFontSize)
	left, top, right, bottom := c.plotArea()
	xMax, step := niceScale(c.maxValue(), tickCount)

	// Vertical grid with tick values.
	fonts.use(dc, labelFontSize)
	for i := 0; float64(i)*step <= xMax+step/2; i++ {
		v := math.Round(float64(i)*step*1e9) / 1e9
		x := left + (right-left)*v/xMax
		dc.SetHexColor("#E5E5E5")
		dc.SetLineWidth(1)
		dc.DrawLine(x, top, x, bottom)
		dc.Stroke()
		dc.SetHexColor("#555555")
		dc.DrawStringAnchored(strconv.FormatFloat(v, 'f', -1, 64), x, bottom+18, 0.5, 0.5)
	}

	colors := make(map[string]string, len(c.Series))
	for _, s := range c.Series {
		colors[s.Name] = s.Color
	}

	for _, b := range bars {
		dc.SetHexColor(colorOr(colors[b.Series], "#888888"))
		dc.DrawRectangle(b.X, b.Y, b.W, b.H)
		dc.Fill()

		dc.SetHexColor("#222222")
		dc.DrawStringAnchored(b.Label, b.X+b.W+6, b.Y+b.H/2, 0, 0.5)
	}

	// Category names centered on their band.
	fonts.use(dc, axisFontSize)
	band := (bottom - top) / float64(len(c.Categories))
	dc.SetHexColor("#222222")
	for i, category := range c.Categories {
		dc.DrawStringAnchored(category, left-12, top+band*(float64(i)+0.5), 1, 0.5)
	}

	// Axes.
	dc.SetHexColor("#444444")
	dc.SetLineWidth(1.5)
	dc.DrawLine(left, top, left, bottom)
	dc.DrawLine(left, bottom, right, bottom)
	dc.Stroke()

	if c.XLabel != "" {
		dc.DrawStringAnchored(c.XLabel, left+(right-left)/2, h-30, 0.5, 0.5)
	}
	if c.YLabel != "" {
		dc.Push()
		dc.RotateAbout(gg.Radians(-90), 24, top+(bottom-top)/2)
		dc.DrawStringAnchored(c.YLabel, 24, top+(bottom-top)/2, 0.5, 0.5)
		dc.Pop()
	}

	if c.Title != "" {
		fonts.use(dc, titleFontSize)
		dc.SetHexColor("#111111")
		dc.DrawStringAnchored(c.Title, w/2, titleY, 0.5, 0.5)
	}

	c.drawLegend(dc, fonts, w)
	return dc, nil
}

// drawLegend lays the series out in one row centered above the plot area.
func (c *GroupedBarChart) drawLegend(dc *gg.Context, fonts fontSet, width float64) {
	fonts.use(dc, legendFontSize)

	total := 0.0
	widths := make([]float64, len(c.Series))
	for i, s := range c.Series {
		tw, _ := dc.MeasureString(s.Name)
		widths[i] = legendSwatch + 8 + tw
		total += widths[i]
	}
	total += legendGap * float64(len(c.Series)-1)

	x := (width - total) / 2
	for i, s := range c.Series {
		dc.SetHexColor(colorOr(s.Color, "#888888"))
		dc.DrawRectangle(x, legendY-legendSwatch/2, legendSwatch, legendSwatch)
		dc.Fill()
		dc.SetHexColor("#222222")
		dc.DrawStringAnchored(s.Name, x+legendSwatch+8, legendY, 0, 0.5)
		x += widths[i] + legendGap
	}
}

// SavePNG renders the chart into path and returns the written size in bytes.
func (c *GroupedBarChart) SavePNG(path string) (int64, error) {
	dc, err := c.Render()
	if err != nil {
		return 0, err
	}
	return savePNG(dc, path)
}

func savePNG(dc *gg.Context, path string) (int64, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("failed to create charts directory: %w", err)
		}
	}

	if err := dc.SavePNG(path); err != nil {
		return 0, fmt.Errorf("failed to save chart: %w", err)
	}

	fileInfo, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat chart file: %w", err)
	}
	if fileInfo.Size() == 0 {
		os.Remove(path)
		logging.LogError("Chart file is empty after rendering", zap.String("filename", path))
		return 0, fmt.Errorf("chart file is empty after rendering")
	}
	return fileInfo.Size(), nil
}

func colorOr(hex, fallback string) string {
	if hex == "" {
		return fallback
	}
	return hex
}

// niceScale picks a tick step of 1, 2, 2.5 or 5 times a power of ten giving at
// most ticks intervals, and the smallest multiple of it covering v.
func niceScale(v float64, ticks int) (upper, step float64) {
	if v <= 0 {
		return 1, 1
	}
	raw := v / float64(ticks)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	step = 10 * mag
	for _, m := range []float64{1, 2, 2.5, 5} {
		if m*mag >= raw {
			step = m * mag
			break
		}
	}
	return math.Ceil(v/step) * step, step
}
