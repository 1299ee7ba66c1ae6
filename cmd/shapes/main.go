package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"deedles.dev/shapes/canvas"
	"deedles.dev/shapes/geom"
	"deedles.dev/shapes/shape"
	"golang.org/x/term"
)

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

var (
	format      = flag.String("format", "text", "Output format: html, png, or text")
	destination = flag.String("out", pipeName, "Destination")
	width       = flag.Float64("width", 200, "Canvas width")
	height      = flag.Float64("height", 120, "Canvas height")
	scale       = flag.Float64("scale", 2, "Pixels per unit for html and png output")
	cols        = flag.Int("cols", 0, "Columns of text output, or the terminal width if 0")
	rows        = flag.Int("rows", 0, "Rows of text output, or the terminal height if 0")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %v [options]\n\nRenders a demonstration scene of shapes.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	c := canvas.New(*width, *height)
	c.Scale = *scale
	sc, err := scene()
	if err != nil {
		log.Fatalf("build scene: %v", err)
	}
	c.Append(sc)

	switch *format {
	case "html":
		err = writeHTML(c)
	case "png":
		err = writePNG(c)
	case "text":
		err = writeText(c)
	default:
		log.Fatalf("unknown output format %q", *format)
	}
	if err != nil {
		log.Fatalf("render %v: %v", *format, err)
	}
}

// scene builds a small board: a checkered grid, a path running around
// it, and a marker centered on the grid's top-right corner.
func scene() (shape.Shape, error) {
	board := new(shape.Group).Grid(4, 6, 10, 10, func(row, col int) shape.Shape {
		color := "steelblue"
		if (row+col)%2 == 0 {
			color = "lightsteelblue"
		}
		return shape.Must(shape.FromSize(10, 10, color))
	})
	err := board.MoveTo(shape.Targets{geom.Center: shape.Pt(0, 0)})
	if err != nil {
		return nil, err
	}

	path, err := shape.PathVectors(2, shape.Style{"background": "orange", "path": "black"},
		board.At(geom.BottomLeft).Sub(shape.Pt(5, 5)),
		shape.Pt(board.Width()+10, 0),
		shape.Pt(0, board.Height()+10),
		shape.Pt(-board.Width()-10, 0),
	)
	if err != nil {
		return nil, fmt.Errorf("path: %w", err)
	}

	marker, err := shape.Must(shape.FromSize(8, 8, "crimson")).TranslateTo(shape.Targets{
		geom.Center: board.At(geom.TopRight),
	})
	if err != nil {
		return nil, fmt.Errorf("marker: %w", err)
	}

	return shape.NewGroup(board, path, marker), nil
}

func output() (io.WriteCloser, error) {
	if *destination == pipeName {
		return os.Stdout, nil
	}
	return os.Create(*destination)
}

func writeHTML(c *canvas.Canvas) error {
	html, err := c.HTML()
	if err != nil {
		return err
	}

	w, err := output()
	if err != nil {
		return err
	}
	defer w.Close()

	_, err = io.WriteString(w, html+"\n")
	return err
}

func writePNG(c *canvas.Canvas) error {
	if *destination == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("refusing to write PNG data to a terminal")
		}
		return c.WritePNG(os.Stdout)
	}
	return c.SavePNG(*destination)
}

func writeText(c *canvas.Canvas) error {
	w, h := *cols, *rows
	if (w <= 0) || (h <= 0) {
		tw, th, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			tw, th = 80, 24
		}
		if w <= 0 {
			w = tw
		}
		if h <= 0 {
			h = th - 1
		}
	}

	text, err := c.Text(w, h)
	if err != nil {
		return err
	}

	out, err := output()
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = fmt.Fprintln(out, text)
	return err
}
