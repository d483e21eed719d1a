package ui

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"

	"xmas-tree/internal/engineconfig"
	"xmas-tree/internal/settings"
	"xmas-tree/internal/treeconfig"
	"xmas-tree/internal/ui/css"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// CSSPath is an optional theme file whose rules are applied over the built-in theme.
const CSSPath = "assets/ui/overlay.css"

//go:embed overlay.css
var defaultCSS string

const (
	panelTitle   = "Ambience"
	doneLabel    = "Done"
	hintText     = "Tab settings  |  Esc terminal  |  drag to orbit, wheel to zoom"
	rowGap       = 26
	sliderGrab   = 10 // vertical slop around a slider track that still grabs it
	swatchGap    = 12
	noSlider     = -1
	gearSpokes   = 8
	headerShadow = 2
)

// sliderDef ties a panel row to the setting it edits.
type sliderDef struct {
	label string
	field settings.Field
}

var sliders = []sliderDef{
	{"Brightness", settings.Intensity},
	{"Rotation speed", settings.RotationSpeed},
}

// layout holds the screen rectangles of the interactive parts, recomputed every frame.
type layout struct {
	panel   rl.Rectangle
	title   rl.Vector2
	rule    rl.Rectangle
	rows    []rl.Vector2
	tracks  []rl.Rectangle
	swatch  []rl.Rectangle
	button  rl.Rectangle
	toggle  rl.Rectangle
	screenW int32
	screenH int32
}

// Overlay draws the header and the settings panel over the scene and turns mouse and keyboard
// input into config edits. The panel is open while prefs.ShowPanel is true.
type Overlay struct {
	store  *treeconfig.Store
	prefs  *engineconfig.EnginePrefs
	sheet  *css.Stylesheet
	styles map[string]css.Style // resolved per selector; cleared when the sheet changes
	font   rl.Font

	dragging   int
	hover      bool
	lay        layout
	palette    treeconfig.Palette
	paletteVer uint64

	// Log, if set, receives edit errors.
	Log func(string)
}

// NewOverlay returns an overlay editing store, themed with the built-in stylesheet.
func NewOverlay(store *treeconfig.Store, prefs *engineconfig.EnginePrefs) *Overlay {
	sheet, _ := css.Parse(defaultCSS)
	return &Overlay{
		store:    store,
		prefs:    prefs,
		sheet:    sheet,
		styles:   make(map[string]css.Style),
		dragging: noSlider,
	}
}

// LoadCSS applies the rules in path over the built-in theme. A missing file is not an error.
func (o *Overlay) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	over, err := css.Parse(string(data))
	if err != nil {
		return err
	}
	base, _ := css.Parse(defaultCSS)
	o.sheet = base.Merge(over)
	clear(o.styles)
	return nil
}

func (o *Overlay) style(selector string) css.Style {
	if st, ok := o.styles[selector]; ok {
		return st
	}
	st := o.sheet.Style(selector)
	o.styles[selector] = st
	return st
}

// LoadFont loads a TTF/OTF font for all overlay text. If loading fails, the raylib default font stays.
// Call after the window exists.
func (o *Overlay) LoadFont(path string) error {
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		return os.ErrNotExist
	}
	rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	if o.font.Texture.ID != 0 {
		rl.UnloadFont(o.font)
	}
	o.font = f
	return nil
}

// Font returns the loaded font (zero value when none).
func (o *Overlay) Font() rl.Font {
	return o.font
}

// Unload releases the font.
func (o *Overlay) Unload() {
	if o.font.Texture.ID != 0 {
		rl.UnloadFont(o.font)
		o.font = rl.Font{}
	}
}

func (o *Overlay) logErr(err error) {
	if err != nil && o.Log != nil {
		o.Log(err.Error())
	}
}

func (o *Overlay) measure(text string, size int32) float32 {
	if o.font.Texture.ID != 0 {
		return rl.MeasureTextEx(o.font, text, float32(size), 1).X
	}
	return float32(rl.MeasureText(text, size))
}

func (o *Overlay) text(text string, x, y float32, size int32, col color.RGBA) {
	if o.font.Texture.ID != 0 {
		rl.DrawTextEx(o.font, text, rl.NewVector2(x, y), float32(size), 1, col)
		return
	}
	rl.DrawText(text, int32(x), int32(y), size, col)
}

func (o *Overlay) computeLayout() {
	sw, sh := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	l := layout{screenW: sw, screenH: sh}

	ps := o.style(".panel")
	px, py := ps.Place(sw, sh, ps.Width, ps.Height)
	l.panel = rl.NewRectangle(float32(px), float32(py), float32(ps.Width), float32(ps.Height))
	pad := float32(ps.Padding)
	x0, w := l.panel.X+pad, l.panel.Width-2*pad
	y := l.panel.Y + pad

	l.title = rl.NewVector2(x0, y)
	y += float32(o.style(".panel-title").FontSize) + 12
	l.rule = rl.NewRectangle(x0, y, w, 1)
	y += 20

	trackH := float32(o.style(".slider-track").Height)
	for range sliders {
		l.rows = append(l.rows, rl.NewVector2(x0, y))
		y += rowGap
		l.tracks = append(l.tracks, rl.NewRectangle(x0, y, w, trackH))
		y += trackH + rowGap
	}

	sws := o.style(".swatch")
	total := 3*float32(sws.Width) + 2*swatchGap
	sx := x0 + (w-total)/2
	for i := 0; i < 3; i++ {
		l.swatch = append(l.swatch, rl.NewRectangle(sx+float32(i)*(float32(sws.Width)+swatchGap), y, float32(sws.Width), float32(sws.Height)))
	}
	y += float32(sws.Height) + 16

	l.button = rl.NewRectangle(x0, y, w, float32(o.style(".button").Height))

	ts := o.style(".toggle")
	tx, ty := ts.Place(sw-2*ts.Padding, sh-2*ts.Padding, ts.Width, ts.Height)
	l.toggle = rl.NewRectangle(float32(tx+ts.Padding), float32(ty+ts.Padding), float32(ts.Width), float32(ts.Height))

	o.lay = l
}

// Update handles input for one frame. keyboardFree is false while another widget (the terminal)
// owns the keyboard. It reports whether the overlay owns the mouse this frame, so the camera
// should ignore it.
func (o *Overlay) Update(keyboardFree bool) (mouseCaptured bool) {
	o.computeLayout()
	open := o.prefs.ShowPanel

	if keyboardFree {
		if rl.IsKeyPressed(rl.KeyTab) {
			open = !open
		}
		if open {
			switch {
			case rl.IsKeyPressed(rl.KeyUp):
				o.logErr(settings.Nudge(o.store, settings.Intensity, 1))
			case rl.IsKeyPressed(rl.KeyDown):
				o.logErr(settings.Nudge(o.store, settings.Intensity, -1))
			case rl.IsKeyPressed(rl.KeyRight):
				o.logErr(settings.Nudge(o.store, settings.RotationSpeed, 1))
			case rl.IsKeyPressed(rl.KeyLeft):
				o.logErr(settings.Nudge(o.store, settings.RotationSpeed, -1))
			}
		}
	}

	mouse := rl.GetMousePosition()
	pressed := rl.IsMouseButtonPressed(rl.MouseButtonLeft)

	if !open {
		o.dragging = noSlider
		o.hover = rl.CheckCollisionPointRec(mouse, o.lay.toggle)
		if o.hover && pressed {
			open = true
		}
		o.prefs.ShowPanel = open
		return o.hover
	}

	o.hover = rl.CheckCollisionPointRec(mouse, o.lay.button)
	if pressed {
		for i, tr := range o.lay.tracks {
			grab := rl.NewRectangle(tr.X, tr.Y-sliderGrab, tr.Width, tr.Height+2*sliderGrab)
			if rl.CheckCollisionPointRec(mouse, grab) {
				o.dragging = i
			}
		}
		if o.hover {
			open = false
		}
	}
	if o.dragging != noSlider {
		if !rl.IsMouseButtonDown(rl.MouseButtonLeft) {
			o.dragging = noSlider
		} else {
			tr := o.lay.tracks[o.dragging]
			o.logErr(settings.SetFraction(o.store, sliders[o.dragging].field, (mouse.X-tr.X)/tr.Width))
		}
	}
	o.prefs.ShowPanel = open
	// The panel is modal: while it is open the scene gets no mouse input.
	return true
}

// Draw draws the overlay. Call after the 3D scene and before the terminal.
func (o *Overlay) Draw() {
	if o.lay.screenW == 0 {
		o.computeLayout()
	}
	if v := o.store.Version(); v != o.paletteVer {
		o.palette = o.store.Load().Palette()
		o.paletteVer = v
	}
	o.drawHeader()
	if o.prefs.ShowPanel {
		o.drawPanel()
		return
	}
	o.drawToggle()
	hs := o.style(".hint")
	o.text(hintText, float32(hs.Padding+12), float32(o.lay.screenH-hs.FontSize-16), hs.FontSize, hs.Color)
}

func (o *Overlay) drawHeader() {
	title := o.prefs.Title
	if title == "" {
		return
	}
	hs := o.style(".header")
	w := int32(o.measure(title, hs.FontSize))
	x, y := hs.Place(o.lay.screenW, o.lay.screenH, w, hs.FontSize)
	shadow := o.style(".header-shadow").Color
	o.text(title, float32(x+headerShadow), float32(y+headerShadow), hs.FontSize, shadow)
	o.text(title, float32(x), float32(y), hs.FontSize, hs.Color)
}

func (o *Overlay) drawBox(r rl.Rectangle, st css.Style) {
	if st.Background.A > 0 {
		if st.Roundness > 0 {
			rl.DrawRectangleRounded(r, st.Roundness, 8, st.Background)
		} else {
			rl.DrawRectangleRec(r, st.Background)
		}
	}
	if st.HasBorder {
		rl.DrawRectangleLinesEx(r, 1, st.Border)
	}
}

func (o *Overlay) drawPanel() {
	l := o.lay
	rl.DrawRectangle(0, 0, l.screenW, l.screenH, o.style(".backdrop").Background)
	o.drawBox(l.panel, o.style(".panel"))

	ts := o.style(".panel-title")
	tw := o.measure(panelTitle, ts.FontSize)
	o.text(panelTitle, l.panel.X+(l.panel.Width-tw)/2, l.title.Y, ts.FontSize, ts.Color)
	rl.DrawRectangleRec(l.rule, o.style(".panel-rule").Background)

	cfg := o.store.Load()
	label := o.style(".label")
	value := o.style(".value")
	track := o.style(".slider-track")
	fill := o.style(".slider-fill")
	knob := o.style(".slider-knob")
	for i, s := range sliders {
		row := l.rows[i]
		o.text(s.label, row.X, row.Y, label.FontSize, label.Color)
		v := cfg.Intensity
		if s.field == settings.RotationSpeed {
			v = cfg.RotationSpeed
		}
		num := fmt.Sprintf("%.1f", v)
		o.text(num, row.X+l.rule.Width-o.measure(num, value.FontSize), row.Y+2, value.FontSize, value.Color)

		tr := l.tracks[i]
		rl.DrawRectangleRec(tr, track.Background)
		f := settings.Fraction(cfg, s.field)
		rl.DrawRectangleRec(rl.NewRectangle(tr.X, tr.Y, tr.Width*f, tr.Height), fill.Background)
		rl.DrawCircleV(rl.NewVector2(tr.X+tr.Width*f, tr.Y+tr.Height/2), float32(knob.Width)/2, knob.Background)
	}

	sw := o.style(".swatch")
	for i, c := range []color.RGBA{o.palette.Tree, o.palette.Ornament, o.palette.Lights} {
		rl.DrawRectangleRec(l.swatch[i], c)
		if sw.HasBorder {
			rl.DrawRectangleLinesEx(l.swatch[i], 1, sw.Border)
		}
	}

	bs := o.style(".button")
	if o.hover {
		hs := o.style(".button-hover")
		bs.Background, bs.Color = hs.Background, hs.Color
	}
	o.drawBox(l.button, bs)
	bw := o.measure(doneLabel, bs.FontSize)
	o.text(doneLabel, l.button.X+(l.button.Width-bw)/2, l.button.Y+(l.button.Height-float32(bs.FontSize))/2, bs.FontSize, bs.Color)
}

// drawToggle draws the round settings button with a simple gear.
func (o *Overlay) drawToggle() {
	st := o.style(".toggle")
	r := o.lay.toggle
	c := rl.NewVector2(r.X+r.Width/2, r.Y+r.Height/2)
	radius := r.Width / 2
	bg, fg := st.Background, st.Color
	if o.hover {
		bg.A = 153
	}
	rl.DrawCircleV(c, radius, bg)
	if st.HasBorder {
		border := st.Border
		if o.hover {
			border = fg
		}
		rl.DrawCircleLines(int32(c.X), int32(c.Y), radius, border)
	}
	rl.DrawCircleLines(int32(c.X), int32(c.Y), radius*0.22, fg)
	for i := 0; i < gearSpokes; i++ {
		a := float32(i) * 2 * math32.Pi / gearSpokes
		dir := rl.NewVector2(math32.Cos(a), math32.Sin(a))
		from := rl.NewVector2(c.X+dir.X*radius*0.3, c.Y+dir.Y*radius*0.3)
		to := rl.NewVector2(c.X+dir.X*radius*0.45, c.Y+dir.Y*radius*0.45)
		rl.DrawLineEx(from, to, 3, fg)
	}
}
