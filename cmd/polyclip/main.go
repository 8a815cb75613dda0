// Command polyclip clips a polygon against a convex window and renders the
// result to a PPM, BMP or PNG image.
//
// Usage:
//
//	polyclip [render] [--out=output.ppm] [--svg=scene.svg] [--caption] [--preview]
//	polyclip inspect [--svg=scene.svg] [--lang=ru]
//	polyclip info <image>
package main

import (
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"golang.org/x/text/language"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/gogpu/polyclip"
	"github.com/gogpu/polyclip/imgfmt"
	"github.com/gogpu/polyclip/scene"
)

const previewSize = 320

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "polyclip:", err)
		os.Exit(1)
	}
}

type renderFlags struct {
	width   *int
	height  *int
	out     *string
	caption *bool
	noClip  *bool
	preview *bool
}

func run(args []string, stdout, stderr io.Writer) error {
	app := kingpin.New("polyclip", "Sutherland-Hodgman polygon clipping and rasterization.")
	app.UsageWriter(stdout)
	app.ErrorWriter(stderr)

	verbose := app.Flag("verbose", "Log clipping details to stderr.").Short('v').Bool()
	noColor := app.Flag("no-color", "Disable colored output.").Bool()
	svgPath := app.Flag("svg", "Read subject and window polygons from an SVG file.").String()
	lang := app.Flag("lang", "Language of the summary (BCP 47 tag).").Default("en").String()

	renderCmd := app.Command("render", "Clip the scene and write it to an image file.").Default()
	rf := renderFlags{
		width:   renderCmd.Flag("width", "Image width in pixels.").Default("800").Int(),
		height:  renderCmd.Flag("height", "Image height in pixels.").Default("600").Int(),
		out:     renderCmd.Flag("out", "Output path; the extension selects ppm, bmp or png.").Short('o').Default("output.ppm").String(),
		caption: renderCmd.Flag("caption", "Draw the summary into the image.").Bool(),
		noClip:  renderCmd.Flag("no-clip", "Draw the input polygons only.").Bool(),
		preview: renderCmd.Flag("preview", "Show a thumbnail in an iTerm2-compatible terminal.").Bool(),
	}

	inspectCmd := app.Command("inspect", "Clip the scene and print the summary and clipped vertices.")

	infoCmd := app.Command("info", "Print the format and size of an image file.")
	infoPath := infoCmd.Arg("file", "Image to inspect.").Required().String()

	cmd, err := app.Parse(args)
	if err != nil {
		return err
	}

	if *verbose {
		polyclip.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer polyclip.SetLogger(nil)
	}
	au := aurora.NewAurora(!*noColor)

	if cmd == infoCmd.FullCommand() {
		return runInfo(stdout, au, *infoPath)
	}

	tag, err := language.Parse(*lang)
	if err != nil {
		return fmt.Errorf("invalid --lang %q: %w", *lang, err)
	}

	s, err := loadScene(*svgPath, tag, renderCmd.FullCommand() == cmd && *rf.caption)
	if err != nil {
		return err
	}

	switch cmd {
	case renderCmd.FullCommand():
		return runRender(stdout, au, s, rf)
	case inspectCmd.FullCommand():
		return runInspect(stdout, au, s)
	}
	return nil
}

func loadScene(svgPath string, tag language.Tag, caption bool) (*scene.Scene, error) {
	opts := []scene.Option{scene.WithLanguage(tag), scene.WithCaption(caption)}
	if svgPath == "" {
		return scene.Default(opts...), nil
	}

	subject, window, err := scene.LoadSVGFile(svgPath)
	if err != nil {
		return nil, err
	}
	return scene.New(subject, window, opts...), nil
}

func runRender(stdout io.Writer, au aurora.Aurora, s *scene.Scene, rf renderFlags) error {
	if !*rf.noClip {
		if err := s.Clip(); err != nil {
			return err
		}
	}

	buf, err := s.NewBuffer(*rf.width, *rf.height)
	if err != nil {
		return err
	}
	s.Render(buf)

	if err := imgfmt.Save(*rf.out, buf); err != nil {
		return err
	}

	fmt.Fprintln(stdout, au.Green("saved"), *rf.out, au.Faint(fmt.Sprintf("(%dx%d)", buf.Width(), buf.Height())))
	printSummary(stdout, au, s)

	if *rf.preview {
		return preview(stdout, buf)
	}
	return nil
}

func runInspect(stdout io.Writer, au aurora.Aurora, s *scene.Scene) error {
	if err := s.Clip(); err != nil {
		return err
	}

	printSummary(stdout, au, s)
	for i, p := range s.Clipped {
		fmt.Fprintf(stdout, "%s %s\n", au.Cyan(fmt.Sprintf("%3d", i)), p)
	}
	return nil
}

func runInfo(stdout io.Writer, au aurora.Aurora, path string) error {
	img, format, err := imgfmt.Load(path)
	if err != nil {
		return err
	}
	b := img.Bounds()
	fmt.Fprintf(stdout, "%s %s %dx%d\n", au.Bold(path), au.Cyan(format), b.Dx(), b.Dy())
	return nil
}

func printSummary(stdout io.Writer, au aurora.Aurora, s *scene.Scene) {
	for _, line := range s.SummaryLines() {
		fmt.Fprintln(stdout, au.Yellow("•"), line)
	}
	if w := s.Window.Winding(); w != polyclip.CounterClockwise {
		fmt.Fprintln(stdout, au.Red("warning:"), "window winding is", w)
	}
	printLegend(stdout, au, s.Palette())
}

// printLegend lists the color of each drawing role.
func printLegend(stdout io.Writer, au aurora.Aurora, pal scene.Palette) {
	roles := []struct {
		name string
		c    polyclip.Color
	}{
		{"subject", pal.Subject},
		{"window", pal.Clipper},
		{"clipped", pal.ClippedFill},
		{"border", pal.ClippedBorder},
		{"background", pal.Background},
	}
	for _, r := range roles {
		fmt.Fprintf(stdout, "%s %-10s %s\n", au.Faint("legend"), r.name, r.c.Hex())
	}
}

// preview writes a thumbnail to a temporary PNG and prints it inline.
func preview(stdout io.Writer, buf *polyclip.Buffer) error {
	f, err := os.CreateTemp("", "polyclip-*.png")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := png.Encode(f, imgfmt.Thumbnail(buf, previewSize)); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	if err := imgcat.CatFile(f.Name(), stdout); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
