// Command export writes the test scenes as JSON, including the path data
// of every scene in the syntax accepted by canvas.ParseSymbol.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/canvas"
	"seehuhn.de/go/canvas/testcases"
)

var outFile = flag.String("o", "testdata/scenes.json", "output file")

func main() {
	flag.Parse()

	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			js, err := toJSON(category, tc)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s_%s: %v\n", category, tc.Name, err)
				os.Exit(1)
			}
			out.Scenes = append(out.Scenes, js)
		}
	}

	if err := os.MkdirAll(filepath.Dir(*outFile), 0755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	f, err := os.Create(*outFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type jsonScene struct {
	Name       string     `json:"name"`
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Data       string     `json:"d"`
	Vertices   int        `json:"vertices"`
	Transform  [6]float64 `json:"transform"`
	Op         string     `json:"op"`
	FillRule   string     `json:"fill_rule,omitempty"`
	LineWidth  float64    `json:"line_width,omitempty"`
	LineCap    string     `json:"line_cap,omitempty"`
	LineJoin   string     `json:"line_join,omitempty"`
	MiterLimit float64    `json:"miter_limit,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) (jsonScene, error) {
	d := pathData(tc.Path)

	// make sure the data can be read back
	sym, err := canvas.ParseSymbol(d)
	if err != nil {
		return jsonScene{}, err
	}

	js := jsonScene{
		Name:      category + "_" + tc.Name,
		Width:     tc.Width,
		Height:    tc.Height,
		Data:      d,
		Vertices:  sym.Len(),
		Transform: tc.Transform(),
	}
	switch op := tc.Op.(type) {
	case testcases.Fill:
		js.Op = "fill"
		if op.Rule == testcases.EvenOdd {
			js.FillRule = "evenodd"
		} else {
			js.FillRule = "nonzero"
		}
	case testcases.Stroke:
		js.Op = "stroke"
		js.LineWidth = op.Width
		js.LineCap = op.Cap.String()
		js.LineJoin = op.Join.String()
		js.MiterLimit = op.MiterLimit
	}
	return js, nil
}

// pathData formats p in path data syntax.
func pathData(p *path.Data) string {
	var parts []string
	for cmd, pts := range p.Iter() {
		var b strings.Builder
		switch cmd {
		case path.CmdMoveTo:
			b.WriteByte('M')
		case path.CmdLineTo:
			b.WriteByte('L')
		case path.CmdQuadTo:
			b.WriteByte('Q')
		case path.CmdCubeTo:
			b.WriteByte('C')
		case path.CmdClose:
			b.WriteByte('Z')
		}
		for i, pt := range pts {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatFloat(pt.X, 'g', -1, 64))
			b.WriteByte(',')
			b.WriteString(strconv.FormatFloat(pt.Y, 'g', -1, 64))
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, " ")
}
