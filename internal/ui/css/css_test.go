package css

import (
	"errors"
	"image/color"
	"testing"
)

const sample = `
/* overlay theme */
.panel { background: #000000cc; border: #C5A059; width: 360px; left: 50%; top: 50% }
.title, #header { color: #F7E7CE; font-size: 32 }
div.nested { color: #fff }
p { color: #fff }
.panel { padding: 24 }
`

func TestParse(t *testing.T) {
	sheet, err := Parse(sample)
	if err != nil {
		t.Fatal(err)
	}
	var sels []string
	for _, r := range sheet.Rules {
		sels = append(sels, r.Selector)
	}
	want := []string{".panel", ".title", "#header", ".panel"}
	if len(sels) != len(want) {
		t.Fatalf("selectors = %q, want %q", sels, want)
	}
	for i := range want {
		if sels[i] != want[i] {
			t.Fatalf("selectors = %q, want %q", sels, want)
		}
	}
}

func TestParseUnterminated(t *testing.T) {
	sheet, err := Parse(".a { color: #fff } .b { color: #000")
	if !errors.Is(err, ErrUnterminated) {
		t.Fatalf("err = %v", err)
	}
	if len(sheet.Rules) != 1 {
		t.Fatalf("rules before the error = %d, want 1", len(sheet.Rules))
	}
}

func TestStyleMergesInOrder(t *testing.T) {
	sheet, err := Parse(sample)
	if err != nil {
		t.Fatal(err)
	}
	st := sheet.Style(".panel")
	if st.Background != (color.RGBA{0, 0, 0, 0xcc}) {
		t.Errorf("background = %v", st.Background)
	}
	if !st.HasBorder || st.Border != (color.RGBA{0xc5, 0xa0, 0x59, 0xff}) {
		t.Errorf("border = %v (%v)", st.Border, st.HasBorder)
	}
	if st.Width != 360 || st.LeftPct != 50 || st.TopPct != 50 || st.Padding != 24 {
		t.Errorf("box = %+v", st)
	}

	title := sheet.Style(".title")
	if title.FontSize != 32 || title.Color != (color.RGBA{0xf7, 0xe7, 0xce, 0xff}) {
		t.Errorf("title = %+v", title)
	}
	if got := sheet.Style(".missing"); got != DefaultStyle() {
		t.Errorf("unmatched selector = %+v", got)
	}
}

func TestMergeOverrides(t *testing.T) {
	base, _ := Parse(".a { color: #fff; width: 10 }")
	over, _ := Parse(".a { color: #000 }")
	st := base.Merge(over).Style(".a")
	if st.Color != (color.RGBA{0, 0, 0, 255}) || st.Width != 10 {
		t.Fatalf("merged = %+v", st)
	}
	var nilSheet *Stylesheet
	if got := nilSheet.Style(".a"); got != DefaultStyle() {
		t.Fatalf("nil sheet = %+v", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#fff", color.RGBA{255, 255, 255, 255}, true},
		{"#C5A059", color.RGBA{0xc5, 0xa0, 0x59, 255}, true},
		{"#00000080", color.RGBA{0, 0, 0, 0x80}, true},
		{"#12", color.RGBA{}, false},
		{"#zzzzzz", color.RGBA{}, false},
		{"#000000zz", color.RGBA{}, false},
		{"red", color.RGBA{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseColor(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseColor(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPlace(t *testing.T) {
	st := DefaultStyle()
	st.Left, st.Top = 10, 20
	if x, y := st.Place(800, 600, 100, 50); x != 10 || y != 20 {
		t.Errorf("pixel place = %d,%d", x, y)
	}
	st.LeftPct, st.TopPct = 50, 100
	if x, y := st.Place(800, 600, 100, 50); x != 350 || y != 550 {
		t.Errorf("percent place = %d,%d", x, y)
	}
}
