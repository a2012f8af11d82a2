// Command atlasc packs a set of sprite images into a single texture
// atlas and writes a JSON manifest describing the result.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/esimov/atlasc"
	"github.com/esimov/atlasc/utils"
)

const version = "1.0.0"

// multiFlag collects repeated -input/-i occurrences into a slice.
type multiFlag []string

func (m *multiFlag) String() string { return fmt.Sprint([]string(*m)) }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

func main() {
	var (
		inputs   multiFlag
		output   string
		maxW     int
		maxH     int
		border   int
		padding  int
		pot      bool
		mesh     bool
		maxVerts int
		alpha    int
		preview  bool
		debug    bool
		showVer  bool
	)

	flag.Var(&inputs, "input", "input sprite image path, repeatable (shorthand: -i)")
	flag.Var(&inputs, "i", "input sprite image path, repeatable (shorthand for -input)")
	flag.StringVar(&output, "output", "", "output manifest path (shorthand: -o)")
	flag.StringVar(&output, "o", "", "output manifest path (shorthand for -output)")
	flag.IntVar(&maxW, "max-width", 2048, "maximum sheet width (shorthand: -W)")
	flag.IntVar(&maxW, "W", 2048, "maximum sheet width (shorthand for -max-width)")
	flag.IntVar(&maxH, "max-height", 2048, "maximum sheet height (shorthand: -H)")
	flag.IntVar(&maxH, "H", 2048, "maximum sheet height (shorthand for -max-height)")
	flag.IntVar(&border, "border", 2, "transparent gutter between sprites (shorthand: -B)")
	flag.IntVar(&border, "B", 2, "transparent gutter between sprites (shorthand for -border)")
	flag.IntVar(&padding, "padding", 1, "inner margin within a sprite's slot (shorthand: -P)")
	flag.IntVar(&padding, "P", 1, "inner margin within a sprite's slot (shorthand for -padding)")
	flag.BoolVar(&pot, "pot", false, "round sheet dimensions up to a power of two (shorthand: -2)")
	flag.BoolVar(&pot, "2", false, "round sheet dimensions up to a power of two (shorthand for -pot)")
	flag.BoolVar(&mesh, "mesh", false, "generate a simplified triangle mesh per sprite (shorthand: -m)")
	flag.BoolVar(&mesh, "m", false, "generate a simplified triangle mesh per sprite (shorthand for -mesh)")
	flag.IntVar(&maxVerts, "max-verts", 25, "maximum mesh vertex count (shorthand: -M)")
	flag.IntVar(&maxVerts, "M", 25, "maximum mesh vertex count (shorthand for -max-verts)")
	flag.IntVar(&alpha, "alpha-threshold", 20, "0-255 alpha cutoff for a sprite's opaque silhouette (shorthand: -A)")
	flag.IntVar(&alpha, "A", 20, "0-255 alpha cutoff for a sprite's opaque silhouette (shorthand for -alpha-threshold)")
	flag.BoolVar(&preview, "preview", false, "open a preview window after a successful build")
	flag.BoolVar(&debug, "debug", false, "draw sprite names and mesh wireframes in the preview window")
	flag.BoolVar(&showVer, "version", false, "print the version and exit (shorthand: -V)")
	flag.BoolVar(&showVer, "V", false, "print the version and exit (shorthand for -version)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "atlasc packs sprite images into a texture atlas.\n\nUsage:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVer {
		fmt.Println(utils.DecorateText("atlasc v"+version, utils.StatusMessage))
		return
	}

	if len(inputs) == 0 || output == "" {
		fmt.Fprintln(os.Stderr, utils.DecorateText("error: -input and -output are required", utils.ErrorMessage))
		flag.Usage()
		os.Exit(255)
	}

	b := &atlasc.Builder{
		Inputs:         inputs,
		MaxWidth:       maxW,
		MaxHeight:      maxH,
		Border:         border,
		Padding:        padding,
		POT:            pot,
		Mesh:           mesh,
		MaxVerts:       maxVerts,
		AlphaThreshold: alpha,
	}

	// Animating a spinner and hiding the cursor only makes sense when
	// stdout is an actual terminal; when output is redirected to a file
	// or piped, skip both and let the build run quietly.
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	var spinner *utils.Spinner
	if isTTY {
		spinner = utils.NewSpinner(utils.DecorateText("Building atlas... ", utils.StatusMessage), 100*time.Millisecond, true)
		spinner.Start()
	}

	atlas, err := b.Build()
	if err == nil {
		err = atlasc.WriteAtlas(atlas, output)
	}

	if spinner != nil {
		spinner.Stop()
	}

	if err != nil {
		printFailure(err)
		os.Exit(255)
	}

	fmt.Println(utils.DecorateText(
		fmt.Sprintf("Atlas built: %dx%d, %d sprite(s), in %s",
			atlas.Width, atlas.Height, len(atlas.Sprites), utils.FormatTime(atlas.BuildDuration)),
		utils.SuccessMessage,
	))

	if preview {
		if err := atlasc.ShowPreview(atlas, debug); err != nil {
			fmt.Fprintln(os.Stderr, utils.DecorateText("preview failed: "+err.Error(), utils.ErrorMessage))
		}
	}
}

func printFailure(err error) {
	var ae *atlasc.Error
	if errors.As(err, &ae) {
		fmt.Fprintln(os.Stderr, utils.DecorateText("error: "+ae.Error(), utils.ErrorMessage))
		return
	}
	fmt.Fprintln(os.Stderr, utils.DecorateText("error: "+err.Error(), utils.ErrorMessage))
}
