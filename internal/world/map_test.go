package world

import "testing"

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		x, y int
	}{
		{"NoRows", nil, 0, 0},
		{"EmptyRow", []string{""}, 0, 0},
		{"Ragged", []string{"....", "..."}, 0, 0},
		{"RunwayOutside", []string{"....", "...."}, 4, 0},
		{"RunwayNegative", []string{"....", "...."}, 0, -1},
		{"RunwayOverRightEdge", []string{"....", "...."}, 3, 0},
		{"RunwayOverBottomEdge", []string{"....", "...."}, 0, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.rows, tc.x, tc.y); err == nil {
				t.Errorf("expected an error")
			}
		})
	}
}

func TestDefaultMap(t *testing.T) {
	m := Default()
	if m.Width() != 16 || m.Height() != 14 {
		t.Fatalf("got %dx%d, expected 16x14", m.Width(), m.Height())
	}
	if x, y := m.Runway(); x != 10 || y != 10 {
		t.Errorf("runway: got (%d,%d), expected (10,10)", x, y)
	}
	if g := m.GlyphAt(11, 11); g != 'X' {
		t.Errorf("glyph at runway: got %q, expected 'X'", g)
	}
	if g := m.GlyphAt(0, 0); g != '.' {
		t.Errorf("glyph at origin: got %q, expected '.'", g)
	}
	if g := m.GlyphAt(-1, 40); g != ' ' {
		t.Errorf("glyph outside: got %q, expected ' '", g)
	}
}

func TestInBounds(t *testing.T) {
	m := Default()
	tests := []struct {
		x, y float64
		want bool
	}{
		{0, 0, true},
		{15.999, 13.999, true},
		{16, 5, false},
		{5, 14, false},
		{-0.001, 5, false},
		{5, -0.5, false},
	}
	for _, tc := range tests {
		if got := m.InBounds(tc.x, tc.y); got != tc.want {
			t.Errorf("InBounds(%v,%v): got %v, expected %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestOnRunway(t *testing.T) {
	m := Default()
	tests := []struct {
		x, y float64
		want bool
	}{
		{10.0, 10.0, true},
		{11.9, 11.9, true},
		{10.5, 11.2, true},
		{12.0, 10.5, false},
		{9.99, 10.5, false},
		{10.5, 12.01, false},
	}
	for _, tc := range tests {
		if got := m.OnRunway(tc.x, tc.y); got != tc.want {
			t.Errorf("OnRunway(%v,%v): got %v, expected %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestParseRunwayInCorner(t *testing.T) {
	m, err := Parse([]string{"....", "....", "...."}, 2, 1)
	if err != nil {
		t.Fatalf("runway flush with the corner: %v", err)
	}
	if !m.IsRunwayTile(3, 2) {
		t.Errorf("far runway tile not recognised")
	}
}
