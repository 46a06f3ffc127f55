package commands

import (
	"testing"

	"github.com/bryanchriswhite/pixwin"
	"github.com/bryanchriswhite/pixwin/internal/config"
)

func TestWindowOptions(t *testing.T) {
	tests := []struct {
		name string
		in   config.WindowConfig
		want pixwin.Options
	}{
		{"defaults", config.Defaults().Window, pixwin.Options{Flags: pixwin.FlagTitle, Scale: pixwin.Scale2}},
		{"fit screen", config.WindowConfig{Scale: -1}, pixwin.Options{Scale: pixwin.ScaleFitScreen}},
		{
			"all flags",
			config.WindowConfig{TitleBar: true, Resizable: true, Borderless: true, Scale: 1},
			pixwin.Options{Flags: pixwin.FlagTitle | pixwin.FlagResizable | pixwin.FlagBorderless, Scale: pixwin.Scale1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := windowOptions(tt.in); got != tt.want {
				t.Errorf("windowOptions() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDrawingPaintClipsBrush(t *testing.T) {
	d := newDrawing(4, 3, false)
	d.brush = 2
	d.paint(0, 0, 9)

	want := []uint32{
		9, 9, 0, 0,
		9, 9, 0, 0,
		0, 0, 0, 0,
	}
	for i := range want {
		if d.canvas[i] != want[i] {
			t.Fatalf("canvas = %v, want %v", d.canvas, want)
		}
	}

	d.paint(3, 2, 1)
	if d.canvas[len(d.canvas)-1] != 1 || d.canvas[3] != 0 {
		t.Errorf("canvas = %v after painting the corner", d.canvas)
	}
}
