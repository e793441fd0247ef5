// Command ngesplit splits polygons from the command line or runs the HTTP
// splitting service.
//
// GeoJSON input is the common case. The "points" format is a plain text
// alternative for quick experiments: newline separated points in the form
// "x y", with each polygon separated by an extra newline, taken as already
// projected planar coordinates.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/supardi98/ngesplit/geoio"
	"github.com/supardi98/ngesplit/server"
	"github.com/supardi98/ngesplit/split"
)

var (
	app = kingpin.New("ngesplit", "Partition simple polygons into equal-area parts.")

	splitCmd     = app.Command("split", "Split polygons from a file.")
	splitInput   = splitCmd.Arg("input", "Input file ('-' for stdin).").Required().String()
	splitCount   = splitCmd.Flag("count", "Number of equal-area parts.").Short('n').Int()
	splitArea    = splitCmd.Flag("area", "Target area per part (square meters for geojson input).").Float64()
	splitOut     = splitCmd.Flag("out", "Output GeoJSON file.").Short('o').Default("hasil_split.geojson").String()
	splitFormat  = splitCmd.Flag("format", "Input format.").Default("geojson").Enum("geojson", "points")
	splitPrecise = splitCmd.Flag("precise", "Match areas to 0.005% instead of 2%.").Bool()
	splitPreview = splitCmd.Flag("preview", "Also render a PNG preview to this path.").String()
	splitImgcat  = splitCmd.Flag("imgcat", "Print the preview inline (iTerm2 terminals).").Bool()

	serveCmd  = app.Command("serve", "Run the HTTP splitting service.")
	serveAddr = serveCmd.Flag("addr", "Listen address.").Default(":5000").String()
	serveDir  = serveCmd.Flag("dir", "Directory for uploads and results.").Default("processed").String()
)

func main() {
	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case splitCmd.FullCommand():
		runSplit()
	case serveCmd.FullCommand():
		runServe()
	}
}

func runSplit() {
	if (*splitCount > 0) == (*splitArea > 0) {
		app.Fatalf("exactly one of --count or --area is required")
	}
	opt := split.DefaultOptions()
	if *splitPrecise {
		opt = split.PreciseOptions()
	}

	data, err := readInput(*splitInput)
	if err != nil {
		app.Fatalf("read input: %v", err)
	}

	var rings []split.Ring
	geographic := *splitFormat == "geojson"
	if geographic {
		rings, err = geoio.DecodeRings(data)
		if err != nil {
			app.Fatalf("%v", err)
		}
	} else {
		rings = readPointRings(data)
		if len(rings) == 0 {
			app.Fatalf("no polygons in input")
		}
	}

	results := make([]split.Result, 0, len(rings))
	for i, ring := range rings {
		projected := ring
		if geographic {
			projected = geoio.ToMercator(ring)
		}
		var res split.Result
		if *splitCount > 0 {
			res = split.SplitByCountOpt(projected, *splitCount, opt)
		} else {
			res = split.SplitByAreaOpt(projected, *splitArea, opt)
		}
		if len(res) == 0 {
			fmt.Printf("%s polygon %d is degenerate, skipped\n", aurora.Yellow("!"), i)
			continue
		}
		if *splitPreview != "" {
			if err := res.RenderPNG(*splitPreview, projected, previewScale(projected)); err != nil {
				app.Fatalf("render preview: %v", err)
			}
			if *splitImgcat {
				if err := split.CatPNG(*splitPreview); err != nil {
					app.Fatalf("imgcat: %v", err)
				}
			}
		}
		if geographic {
			res = geoio.FromMercator(res)
		}
		results = append(results, res)
		fmt.Printf("%s polygon %d: %d slice(s)\n", aurora.Green("✓"), i, len(res))
	}

	out, err := geoio.EncodeResults(results)
	if err != nil {
		app.Fatalf("%v", err)
	}
	if err := os.WriteFile(*splitOut, out, 0o644); err != nil {
		app.Fatalf("write output: %v", err)
	}
	fmt.Printf("%s wrote %s\n", aurora.Green("✓"), *splitOut)
}

func runServe() {
	srv, err := server.New(*serveDir, split.DefaultOptions())
	if err != nil {
		app.Fatalf("%v", err)
	}
	if err := srv.ListenAndServe(*serveAddr); err != nil {
		app.Fatalf("%v", err)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// previewScale sizes the preview so its long edge is about 800 pixels.
func previewScale(r split.Ring) float64 {
	min, max := r.Bounds()
	extent := max.X - min.X
	if max.Y-min.Y > extent {
		extent = max.Y - min.Y
	}
	if extent <= 0 {
		return 1
	}
	return 800 / extent
}

func readPointRings(data []byte) []split.Ring {
	var rings []split.Ring
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	var points split.Ring
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// An empty line after collected points ends the polygon
		if line == "" {
			if len(points) > 0 {
				rings = append(rings, points)
				points = nil
			}
			continue
		}

		points = append(points, parsePoint(line))
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		rings = append(rings, points)
	}
	return rings
}

func parsePoint(line string) split.Point {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		app.Fatalf("invalid point line %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		app.Fatalf("invalid x value %q: %v", parts[0], err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		app.Fatalf("invalid y value %q: %v", parts[1], err)
	}
	return split.Point{X: x, Y: y}
}
