// Package mascot discovers, selects and loads the ASCII-art mascots.
//
// Mascots live in a directory tree, one directory per mascot:
//
//	assets/
//	  shibe/
//	    1.txt       text art, variant 1
//	    2.txt
//	    3.png       raster art, rendered to text at load time
//	    words.txt   default word list
//
// The built-in tree is embedded in the binary; FromDir exposes an on-disk
// tree with the same layout.
package mascot

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
)

// WordsFile is the per-mascot word list resource.
const WordsFile = "words.txt"

//go:embed assets
var embedded embed.FS

// Selection errors. Each is wrapped with the offending name or id.
var (
	ErrNoMascots      = errors.New("no avator to be choice")
	ErrUnknownMascot  = errors.New("no such avator name")
	ErrNoResource     = errors.New("has no resource")
	ErrUnknownVariant = errors.New("has no such variant")
)

// artExtensions lists recognised art resources in order of preference.
var artExtensions = []string{".txt", ".png", ".jpg", ".jpeg", ".gif"}

// Embedded returns the built-in mascot tree.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		panic(fmt.Sprintf("mascot: embedded assets: %v", err))
	}
	return sub
}

// FromDir returns the mascot tree rooted at dir on disk.
func FromDir(dir string) fs.FS {
	return os.DirFS(dir)
}

// Catalog maps installed mascot names to their variants.
type Catalog struct {
	variants map[string]map[int]string
}

// Discover scans the top level of fsys for mascot directories and their
// numbered art resources. Directories without any art are still listed so
// selecting them can report a missing resource.
func Discover(fsys fs.FS) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("mascot: read catalog: %w", err)
	}

	c := &Catalog{variants: make(map[string]map[int]string)}
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		name := e.Name()
		files, err := fs.ReadDir(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("mascot: read %s: %w", name, err)
		}
		c.variants[name] = collectVariants(name, files)
	}
	return c, nil
}

// collectVariants maps variant ids to resource paths, preferring text art
// when a variant exists in several formats.
func collectVariants(dir string, files []fs.DirEntry) map[int]string {
	byID := make(map[int]string)
	rank := make(map[int]int)
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		ext := strings.ToLower(path.Ext(f.Name()))
		r := extensionRank(ext)
		if r < 0 {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSuffix(f.Name(), path.Ext(f.Name())))
		if err != nil || id <= 0 {
			continue
		}
		if prev, ok := rank[id]; ok && prev <= r {
			continue
		}
		byID[id] = path.Join(dir, f.Name())
		rank[id] = r
	}
	return byID
}

func extensionRank(ext string) int {
	for i, e := range artExtensions {
		if e == ext {
			return i
		}
	}
	return -1
}

// Names returns the installed mascot names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.variants))
	for name := range c.variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Variants returns the sorted variant ids of name, or nil if it is unknown.
func (c *Catalog) Variants(name string) []int {
	byID, ok := c.variants[name]
	if !ok {
		return nil
	}
	ids := make([]int, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Mapping returns every mascot name with its sorted variant ids.
func (c *Catalog) Mapping() map[string][]int {
	out := make(map[string][]int, len(c.variants))
	for name := range c.variants {
		out[name] = c.Variants(name)
	}
	return out
}

// Selection identifies one mascot rendition.
type Selection struct {
	Name    string
	Variant int
	// Path is the art resource inside the catalog's file system.
	Path string
}

// Select resolves a mascot name and variant id. An empty name picks a random
// mascot and a variant of 0 picks a random variant, both using rng.
func (c *Catalog) Select(name string, variant int, rng *rand.Rand) (Selection, error) {
	if name == "" {
		names := c.Names()
		if len(names) == 0 {
			return Selection{}, ErrNoMascots
		}
		name = names[rng.IntN(len(names))]
	} else if _, ok := c.variants[name]; !ok {
		return Selection{}, fmt.Errorf("%w: %s", ErrUnknownMascot, name)
	}

	ids := c.Variants(name)
	if variant == 0 {
		if len(ids) == 0 {
			return Selection{}, fmt.Errorf("%s %w", name, ErrNoResource)
		}
		variant = ids[rng.IntN(len(ids))]
	}

	p, ok := c.variants[name][variant]
	if !ok {
		return Selection{}, fmt.Errorf("%s %w %d", name, ErrUnknownVariant, variant)
	}
	return Selection{Name: name, Variant: variant, Path: p}, nil
}
