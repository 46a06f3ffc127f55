package commands

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bryanchriswhite/pixwin"
	"github.com/bryanchriswhite/pixwin/internal/config"
	"github.com/bryanchriswhite/pixwin/internal/logger"
	"github.com/bryanchriswhite/pixwin/internal/overlay"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Open a window and draw with the mouse",
	Long: `Open a window and paint into it with the mouse.

Left button paints, right button erases, the wheel changes the brush size
and C clears the canvas. Press ESC or close the window to exit.`,
	Example: `  # Draw on a 320x240 canvas at 2x
  pixwin draw

  # Bigger canvas scaled to fit the screen
  pixwin draw --width 640 --height 360 --scale -1

  # Resizable window without the HUD
  pixwin draw --resizable --overlay=false`,
	RunE: runDraw,
}

func init() {
	rootCmd.AddCommand(drawCmd)

	drawCmd.Flags().Int("width", 0, "canvas width in pixels")
	drawCmd.Flags().Int("height", 0, "canvas height in pixels")
	drawCmd.Flags().Int("scale", 0, "integer scale, -1 fits the screen")
	drawCmd.Flags().Int("fps", 0, "frames per second")
	drawCmd.Flags().Bool("resizable", false, "let the window manager resize the window")
	drawCmd.Flags().Bool("borderless", false, "remove window decorations")
	drawCmd.Flags().Bool("overlay", true, "show the position HUD")

	viper.BindPFlag("window.width", drawCmd.Flags().Lookup("width"))
	viper.BindPFlag("window.height", drawCmd.Flags().Lookup("height"))
	viper.BindPFlag("window.scale", drawCmd.Flags().Lookup("scale"))
	viper.BindPFlag("fps", drawCmd.Flags().Lookup("fps"))
	viper.BindPFlag("window.resizable", drawCmd.Flags().Lookup("resizable"))
	viper.BindPFlag("window.borderless", drawCmd.Flags().Lookup("borderless"))
	viper.BindPFlag("overlay", drawCmd.Flags().Lookup("overlay"))
}

// applyDrawFlags overrides cfg with the draw flags the user actually set.
func applyDrawFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Window.Width = viper.GetInt("window.width")
	}
	if flags.Changed("height") {
		cfg.Window.Height = viper.GetInt("window.height")
	}
	if flags.Changed("scale") {
		cfg.Window.Scale = viper.GetInt("window.scale")
	}
	if flags.Changed("fps") {
		cfg.FPS = viper.GetInt("fps")
	}
	if flags.Changed("resizable") {
		cfg.Window.Resizable = viper.GetBool("window.resizable")
	}
	if flags.Changed("borderless") {
		cfg.Window.Borderless = viper.GetBool("window.borderless")
	}
	if flags.Changed("overlay") {
		cfg.Overlay = viper.GetBool("overlay")
	}
}

func windowOptions(w config.WindowConfig) pixwin.Options {
	var flags pixwin.Flags
	if w.TitleBar {
		flags |= pixwin.FlagTitle
	}
	if w.Resizable {
		flags |= pixwin.FlagResizable
	}
	if w.Borderless {
		flags |= pixwin.FlagBorderless
	}
	return pixwin.Options{Flags: flags, Scale: pixwin.Scale(w.Scale)}
}

func runDraw(cmd *cobra.Command, args []string) error {
	_, cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyDrawFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.WithComponent("cli")

	display, err := pixwin.OpenDisplay(cfg.Display)
	if err != nil {
		return fmt.Errorf("failed to open display: %w", err)
	}
	defer display.Close()

	width, height := cfg.Window.Width, cfg.Window.Height
	win, err := display.Open(cfg.Window.Title+" - Press ESC to exit", width, height, windowOptions(cfg.Window))
	if err != nil {
		return fmt.Errorf("failed to open window: %w", err)
	}
	defer win.Close()

	if err := win.SetCursorStyle(pixwin.CursorCrosshair); err != nil {
		log.Warn().Err(err).Msg("Failed to set cursor")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d := newDrawing(width, height, cfg.Overlay)
	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	for win.IsOpen() && !win.IsKeyDown(pixwin.KeyEscape) {
		d.step(win)

		if err := win.UpdateWithBuffer(d.frame.Pix); err != nil {
			if errors.Is(err, pixwin.ErrWindowClosed) {
				break
			}
			return fmt.Errorf("failed to update window: %w", err)
		}

		select {
		case <-ctx.Done():
			log.Info().Msg("Interrupted")
			return nil
		case <-ticker.C:
		}
	}

	return nil
}

// drawing holds the canvas the user paints on and the frame shown on screen.
type drawing struct {
	width, height int
	canvas        []uint32
	frame         *overlay.Frame
	hud           *overlay.Text
	brush         int
}

func newDrawing(width, height int, hud bool) *drawing {
	d := &drawing{
		width:  width,
		height: height,
		canvas: make([]uint32, width*height),
		frame:  overlay.NewFrame(make([]uint32, width*height), width, height),
		brush:  1,
	}
	if hud {
		d.hud = overlay.NewText(2, 2, "")
		d.hud.Background = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	}
	return d
}

// step applies one frame of input to the canvas and composes the frame.
func (d *drawing) step(win *pixwin.Window) {
	log := logger.WithComponent("cli")

	if win.IsKeyPressed(pixwin.KeyC, pixwin.KeyRepeatNo) {
		clear(d.canvas)
	}

	if _, dy, ok := win.ScrollWheel(); ok {
		log.Debug().Float32("dy", dy).Msg("Scrolling")
		switch {
		case dy > 0 && d.brush < 16:
			d.brush++
		case dy < 0 && d.brush > 1:
			d.brush--
		}
	}

	x, y, inside := win.MousePos(pixwin.MouseDiscard)
	if inside {
		if ux, uy, ok := win.UnscaledMousePos(pixwin.MouseDiscard); ok {
			log.Debug().Float32("x", ux).Float32("y", uy).Msg("Pointer")
		}
		switch {
		case win.IsMouseDown(pixwin.MouseLeft):
			d.paint(int(x), int(y), 0x00ffffff)
		case win.IsMouseDown(pixwin.MouseRight):
			d.paint(int(x), int(y), 0)
		}
	}

	copy(d.frame.Pix, d.canvas)
	if d.hud != nil {
		if inside {
			d.hud.Text = fmt.Sprintf("x %3d y %3d\nbrush %d", int(x), int(y), d.brush)
		} else {
			d.hud.Text = fmt.Sprintf("outside\nbrush %d", d.brush)
		}
		d.hud.Render(d.frame)
	}
}

func (d *drawing) paint(cx, cy int, px uint32) {
	r := d.brush - 1
	for y := max(cy-r, 0); y <= min(cy+r, d.height-1); y++ {
		for x := max(cx-r, 0); x <= min(cx+r, d.width-1); x++ {
			d.canvas[y*d.width+x] = px
		}
	}
}
