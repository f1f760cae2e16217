package mascot

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/disintegration/imaging"

	"gitlab.com/tinyland/lab/bh3/words"
)

// DefaultImageCols is the widest a raster mascot is rendered by default.
const DefaultImageCols = 40

// luminanceRamp maps brightness to glyphs, darkest first.
const luminanceRamp = " .:-=+*#%@"

// Art is a loaded mascot: raw lines, each keeping its trailing line break.
type Art struct {
	Name    string
	Variant int
	Lines   []string
}

// ArtOptions controls how raster resources are turned into text.
type ArtOptions struct {
	// ImageCols caps the rendered width of raster art (default: 40).
	ImageCols int
}

// LoadArt reads the art resource named by sel. Text art must be valid UTF-8;
// raster art is decoded and rendered to text.
func LoadArt(fsys fs.FS, sel Selection, opts ArtOptions) (Art, error) {
	data, err := fs.ReadFile(fsys, sel.Path)
	if err != nil {
		return Art{}, fmt.Errorf("mascot: read %s: %w", sel.Path, err)
	}

	art := Art{Name: sel.Name, Variant: sel.Variant}
	if strings.ToLower(path.Ext(sel.Path)) == ".txt" {
		art.Lines, err = splitLines(sel.Path, data)
	} else {
		art.Lines, err = renderImage(data, opts.ImageCols)
	}
	if err != nil {
		return Art{}, err
	}
	return art, nil
}

// splitLines splits text into lines that keep their "\n". CRLF endings are
// normalised. A final line without a break is kept as is.
func splitLines(source string, data []byte) ([]string, error) {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))

	var lines []string
	for i, line := range bytes.SplitAfter(data, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		if !utf8.Valid(line) {
			return nil, words.NewDecodeError(source, i+1)
		}
		lines = append(lines, string(line))
	}
	return lines, nil
}

// renderImage decodes a raster image and renders it as luminance glyphs no
// wider than maxCols. Terminal cells are about twice as tall as wide, so
// each text row covers two pixel rows of the fitted image.
func renderImage(data []byte, maxCols int) ([]string, error) {
	if maxCols <= 0 {
		maxCols = DefaultImageCols
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("mascot: decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("mascot: decode image: empty %dx%d image", w, h)
	}

	cols := min(w, maxCols)
	rows := max(1, h*cols/w/2)

	gray := imaging.Resize(imaging.Grayscale(img), cols, rows, imaging.Lanczos)

	ramp := []rune(luminanceRamp)
	lines := make([]string, 0, rows)
	for y := 0; y < rows; y++ {
		var b strings.Builder
		for x := 0; x < cols; x++ {
			c := gray.NRGBAAt(x, y)
			// Transparent pixels read as background.
			lum := int(c.R) * int(c.A) / 255
			b.WriteRune(ramp[lum*(len(ramp)-1)/255])
		}
		lines = append(lines, strings.TrimRight(b.String(), " ")+"\n")
	}
	return lines, nil
}

// LoadWords reads the default word list of the named mascot.
func LoadWords(fsys fs.FS, name string) ([]string, error) {
	p := path.Join(name, WordsFile)
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("mascot: read %s: %w", p, err)
	}
	for i, line := range bytes.Split(data, []byte("\n")) {
		if !utf8.Valid(line) {
			return nil, words.NewDecodeError(p, i+1)
		}
	}
	return words.ParseList(data), nil
}
