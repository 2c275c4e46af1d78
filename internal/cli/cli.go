// Package cli is the polyoverlap command: read two polygons, print OK if they
// overlap and NOK if they don't.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/polyoverlap"
	"github.com/osuushi/polyoverlap/advanced"
	"github.com/osuushi/polyoverlap/internal/parse"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	OverlapToken   = "OK"
	NoOverlapToken = "NOK"
)

// Exit statuses. Both verdicts exit with StatusOK; the answer is in the output.
const (
	StatusOK = iota
	StatusBadInput
	StatusUsage
)

type options struct {
	svg     string
	verbose bool
	explain bool
	color   bool
	png     string
	imgcat  bool
}

func newApp(opts *options) *kingpin.Application {
	app := kingpin.New("polyoverlap", "Check whether two convex polygons overlap.\n\n"+
		"Reads two lines from stdin, one polygon per line, as comma separated \"x y\" integer pairs, "+
		"e.g. \"0 0,0 4,4 4,4 0\". Prints "+OverlapToken+" if the polygons overlap, "+NoOverlapToken+" otherwise.")
	app.Flag("svg", "Read the first two <polygon> elements of an SVG file instead of stdin.").
		PlaceHolder("FILE").ExistingFileVar(&opts.svg)
	app.Flag("verbose", "Trace the edge search on stderr.").
		Short('v').Envar("POLYOVERLAP_VERBOSE").BoolVar(&opts.verbose)
	app.Flag("explain", "Print the reason for the verdict on a second line.").
		BoolVar(&opts.explain)
	app.Flag("color", "Colour the output.").
		Envar("POLYOVERLAP_COLOR").BoolVar(&opts.color)
	app.Flag("png", "Render both polygons to a PNG file.").
		PlaceHolder("FILE").Envar("POLYOVERLAP_PNG").StringVar(&opts.png)
	app.Flag("imgcat", "Also print the --png image inline (iTerm only).").
		BoolVar(&opts.imgcat)
	return app
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// Run the command with the given arguments (not including the program name)
// and return the exit status.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	app := newApp(&opts)
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	// kingpin exits the process after --help; turn that into a return instead.
	terminated := false
	app.Terminate(func(int) { terminated = true })

	if _, err := app.Parse(args); err != nil {
		fmt.Fprintf(stderr, "polyoverlap: %v\n", err)
		return StatusUsage
	}
	if terminated {
		return StatusOK
	}
	if opts.imgcat && opts.png == "" {
		fmt.Fprintln(stderr, "polyoverlap: --imgcat requires --png")
		return StatusUsage
	}

	log := newLogger(stderr, opts.verbose)
	a, b, err := readInput(opts, stdin)
	if err != nil {
		log.WithError(err).Error("invalid input")
		return StatusBadInput
	}

	polyA, err := polyoverlap.NewPolygon(a)
	if err != nil {
		log.WithError(errors.Wrap(err, "first polygon")).Error("invalid input")
		return StatusBadInput
	}
	polyB, err := polyoverlap.NewPolygon(b)
	if err != nil {
		log.WithError(errors.Wrap(err, "second polygon")).Error("invalid input")
		return StatusBadInput
	}
	log.WithFields(logrus.Fields{"a": polyA.String(), "b": polyB.String()}).Debug("normalized polygons")

	checker := &advanced.Checker{Log: log}
	result := checker.Check(polyA, polyB)

	if opts.png != "" {
		if err := advanced.DrawPNG(opts.png, polyA, polyB); err != nil {
			log.WithError(err).Warn("could not render polygons")
		} else if opts.imgcat {
			advanced.CatPNG(opts.png, stderr)
		}
	}

	au := aurora.NewAurora(opts.color)
	if result.Overlap {
		fmt.Fprintln(stdout, au.Green(OverlapToken).String())
	} else {
		fmt.Fprintln(stdout, au.Red(NoOverlapToken).String())
	}
	if opts.explain {
		fmt.Fprintln(stdout, result.Explain(au))
	}
	return StatusOK
}

func readInput(opts options, stdin io.Reader) (a, b []advanced.Point, err error) {
	if opts.svg == "" {
		return parse.ReadPair(stdin)
	}

	f, err := os.Open(opts.svg)
	if err != nil {
		return nil, nil, errors.Wrap(err, opts.svg)
	}
	defer f.Close()
	polygons, err := parse.ReadSVG(f)
	if err != nil {
		return nil, nil, errors.Wrap(err, opts.svg)
	}
	if len(polygons) < 2 {
		return nil, nil, errors.Errorf("%s: expected 2 polygons, found %d", opts.svg, len(polygons))
	}
	return polygons[0], polygons[1], nil
}
