package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/bryanchriswhite/pixwin"
	"github.com/bryanchriswhite/pixwin/internal/x11"
	"github.com/spf13/cobra"
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Show X server screen and pixel format details",
	Long: `Connect to the X server and print the default screen size, root depth,
request size limit and the pixmap formats the server supports.

With --test a window showing a gradient is opened to check that images
reach the screen.`,
	Example: `  # Show screen details
  pixwin screen

  # Show details as JSON
  pixwin screen --format json

  # Show a test gradient for 3 seconds
  pixwin screen --test`,
	RunE: runScreen,
}

var (
	screenFormat   string
	screenTest     bool
	screenDuration time.Duration
)

func init() {
	rootCmd.AddCommand(screenCmd)

	screenCmd.Flags().StringVarP(&screenFormat, "format", "f", "table", "output format (table or json)")
	screenCmd.Flags().BoolVar(&screenTest, "test", false, "open a window showing a test gradient")
	screenCmd.Flags().DurationVar(&screenDuration, "duration", 3*time.Second, "how long to show the test gradient")
}

// ScreenInfo describes the default screen of a display.
type ScreenInfo struct {
	Width             int            `json:"width"`
	Height            int            `json:"height"`
	Depth             int            `json:"depth"`
	KeyboardExtension bool           `json:"keyboard_extension"`
	MaxRequestBytes   int            `json:"max_request_bytes"`
	PixmapFormats     []PixmapFormat `json:"pixmap_formats"`
}

// PixmapFormat is one entry of the server's pixmap format list.
type PixmapFormat struct {
	Depth        int  `json:"depth"`
	BitsPerPixel int  `json:"bits_per_pixel"`
	ScanlinePad  int  `json:"scanline_pad"`
	Root         bool `json:"root"`
}

func runScreen(cmd *cobra.Command, args []string) error {
	_, cfg, err := loadConfig()
	if err != nil {
		return err
	}

	conn, err := x11.Connect(cfg.Display)
	if err != nil {
		return fmt.Errorf("failed to connect to X11: %w", err)
	}
	info := screenInfo(conn)
	conn.Close()

	switch screenFormat {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(info); err != nil {
			return err
		}
	case "table":
		printScreenInfo(info)
	default:
		return fmt.Errorf("unsupported format: %s (use 'table' or 'json')", screenFormat)
	}

	if screenTest {
		return showGradient(cfg.Display, screenDuration)
	}
	return nil
}

func screenInfo(conn *x11.Conn) ScreenInfo {
	w, h := conn.ScreenSize()
	setup := conn.Setup()
	root := conn.Format()

	info := ScreenInfo{
		Width:             w,
		Height:            h,
		Depth:             int(root.Depth),
		KeyboardExtension: conn.KeyboardExtension(),
		MaxRequestBytes:   int(setup.MaximumRequestLength) * 4,
	}
	for _, f := range setup.PixmapFormats {
		info.PixmapFormats = append(info.PixmapFormats, PixmapFormat{
			Depth:        int(f.Depth),
			BitsPerPixel: int(f.BitsPerPixel),
			ScanlinePad:  int(f.ScanlinePad),
			Root:         f.Depth == root.Depth,
		})
	}
	return info
}

func printScreenInfo(info ScreenInfo) {
	fmt.Printf("Screen:           %dx%d\n", info.Width, info.Height)
	fmt.Printf("Root depth:       %d\n", info.Depth)
	fmt.Printf("XKEYBOARD:        %t\n", info.KeyboardExtension)
	fmt.Printf("Max request size: %d bytes\n\n", info.MaxRequestBytes)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DEPTH\tBPP\tPAD\tROOT")
	fmt.Fprintln(w, "-----\t---\t---\t----")
	for _, f := range info.PixmapFormats {
		root := ""
		if f.Root {
			root = "*"
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\n", f.Depth, f.BitsPerPixel, f.ScanlinePad, root)
	}
	w.Flush()
}

// showGradient opens a window with a red/green gradient and keeps it up for
// d or until it is closed.
func showGradient(displayName string, d time.Duration) error {
	display, err := pixwin.OpenDisplay(displayName)
	if err != nil {
		return fmt.Errorf("failed to open display: %w", err)
	}
	defer display.Close()

	const width, height = 256, 256
	win, err := display.Open("pixwin test gradient", width, height, pixwin.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open window: %w", err)
	}
	defer win.Close()

	buf := make([]uint32, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			buf[y*width+x] = uint32(x)<<16 | uint32(y)<<8 | 0x80
		}
	}

	deadline := time.Now().Add(d)
	for win.IsOpen() && time.Now().Before(deadline) {
		if err := win.UpdateWithBuffer(buf); err != nil {
			return fmt.Errorf("failed to draw test gradient: %w", err)
		}
		time.Sleep(50 * time.Millisecond)
	}

	fmt.Println("Test gradient displayed without errors")
	return nil
}
