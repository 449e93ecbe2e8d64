package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/gjk"
	"github.com/osuushi/gjk/advanced"
	"github.com/osuushi/gjk/scenario"
	"github.com/osuushi/gjk/svgpoly"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	exitMismatch = 1
	exitInvalid  = 2
)

var (
	app      = kingpin.New("gjk", "Test convex polygons for intersection with the GJK algorithm.")
	logLevel = app.Flag("log-level", "Log level.").Default("info").Enum("debug", "info", "warn", "error")
	noColor  = app.Flag("no-color", "Disable colored output.").Bool()

	intersectCmd    = app.Command("intersect", "Test the two polygons in a file. Text input is one \"x y\" point per line, with a blank line between polygons.")
	intersectFile   = intersectCmd.Arg("file", "Polygon file, or - for stdin.").Default("-").String()
	intersectSVG    = intersectCmd.Flag("svg", "Read the first two <polygon> or <rect> elements of an SVG file.").Bool()
	intersectPNG    = intersectCmd.Flag("png", "Draw the polygons, their Minkowski difference and the final simplex to this file.").String()
	intersectScale  = intersectCmd.Flag("scale", "Pixels per unit when drawing.").Default("50").Float64()
	intersectImgcat = intersectCmd.Flag("imgcat", "Print the drawing to the terminal (iTerm only).").Bool()
	intersectTrace  = intersectCmd.Flag("trace", "Print every iteration.").Short('t').Bool()
	maxIterations   = intersectCmd.Flag("max-iterations", "Iteration limit, negative for none.").Default(fmt.Sprint(advanced.DefaultMaxIterations)).Int()
	strictCentroids = intersectCmd.Flag("strict-centroids", "Fail when both polygons have the same centroid.").Bool()

	checkCmd         = app.Command("check", "Run a YAML file of cases and report any that disagree with their expectation.")
	checkFile        = checkCmd.Arg("file", "YAML case file.").Required().ExistingFile()
	checkConcurrency = checkCmd.Flag("concurrency", "Cases checked at once, 0 for GOMAXPROCS.").Default("0").Int()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	logger := newLogger(*logLevel)
	colors := aurora.NewAurora(!*noColor)

	var code int
	switch command {
	case intersectCmd.FullCommand():
		code = runIntersect(logger, colors)
	case checkCmd.FullCommand():
		code = runCheck(logger, colors)
	}
	_ = logger.Sync()
	os.Exit(code)
}

func runIntersect(logger *zap.Logger, colors aurora.Aurora) int {
	polygons, err := loadPolygons(*intersectFile, *intersectSVG)
	if err != nil {
		logger.Error("could not read polygons", zap.Error(err))
		return exitInvalid
	}

	opts := gjk.Options{
		MaxIterations:   *maxIterations,
		StrictCentroids: *strictCentroids,
		Logger:          logger,
	}
	if *intersectTrace {
		opts.Trace = func(step gjk.Step) {
			fmt.Println(step)
		}
	}

	var result advanced.Result
	err = func() (err error) {
		defer func() {
			err = advanced.HandleIntersectPanicRecover(recover())
		}()
		result = advanced.Run(polygons[0], polygons[1], opts)
		return nil
	}()
	if err != nil {
		logger.Error("intersection test failed", zap.Error(err))
		return exitInvalid
	}

	for i, poly := range polygons[:2] {
		if !poly.IsConvex() {
			logger.Warn("polygon is not convex, result is meaningless", zap.Int("polygon", i+1))
		}
	}

	if result.Intersecting {
		fmt.Println(colors.Green("true"))
	} else {
		fmt.Println(colors.Red("false"))
	}
	logger.Debug("done", zap.Int("iterations", result.Iterations), zap.Stringer("simplex", result.Simplex))

	if *intersectPNG != "" || *intersectImgcat {
		path := *intersectPNG
		if path == "" {
			path = filepath.Join(os.TempDir(), "gjk.png")
		}
		if err := advanced.DrawPNG(path, polygons[0], polygons[1], &result, *intersectScale); err != nil {
			logger.Error("could not draw", zap.Error(err))
			return exitInvalid
		}
		if *intersectImgcat {
			imgcat.CatFile(path, os.Stdout)
		}
	}
	return 0
}

func runCheck(logger *zap.Logger, colors aurora.Aurora) int {
	file, err := scenario.LoadFile(*checkFile)
	if err != nil {
		logger.Error("could not load cases", zap.Error(err))
		return exitInvalid
	}

	runner := &scenario.Runner{Logger: logger, Concurrency: *checkConcurrency}
	reports, err := runner.Run(context.Background(), file)
	if err != nil {
		logger.Error("run aborted", zap.Error(err))
		return exitInvalid
	}

	failed := 0
	for _, report := range reports {
		status := colors.Green("ok")
		if !report.Passed() {
			status = colors.Red("FAIL")
			failed++
		}
		fmt.Printf("%-6s %s\n", status, report.Case.Name)
	}
	fmt.Printf("%d/%d passed\n", len(reports)-failed, len(reports))
	if failed > 0 {
		return exitMismatch
	}
	return 0
}

func loadPolygons(path string, svg bool) (advanced.PolygonList, error) {
	var list advanced.PolygonList
	var err error
	switch {
	case svg && path == "-":
		list, err = svgpoly.Parse(os.Stdin)
	case svg:
		list, err = svgpoly.LoadFile(path)
	case path == "-":
		list, err = readPolygons(os.Stdin)
	default:
		var f *os.File
		f, err = os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "opening %s", path)
		}
		defer f.Close()
		list, err = readPolygons(f)
	}
	if err != nil {
		return nil, err
	}
	if len(list) < 2 {
		return nil, errors.Errorf("need two polygons, found %d", len(list))
	}
	return list, nil
}
