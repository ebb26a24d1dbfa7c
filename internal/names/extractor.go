package names

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Extractor runs the full pipeline: load, extract, serialize, write.
// Relative paths resolve against BaseDir, never the working directory.
type Extractor struct {
	BaseDir     string
	Input       string
	OutDir      string
	TextFile    string
	LiteralFile string
	Property    string
	Literal     LiteralOptions
}

// Result describes a completed run.
type Result struct {
	Names       List
	TextPath    string
	LiteralPath string
}

// NewExtractor returns an extractor rooted at baseDir with the default layout.
func NewExtractor(baseDir string) *Extractor {
	return &Extractor{
		BaseDir:     baseDir,
		Input:       filepath.Join("static", "countries.geo.json"),
		TextFile:    "names_en.txt",
		LiteralFile: "names_en.go",
		Property:    DefaultProperty,
	}
}

func (e *Extractor) resolve(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// InputPath is the resolved location of the GeoJSON file.
func (e *Extractor) InputPath() string {
	return e.resolve(e.BaseDir, e.Input)
}

func (e *Extractor) outDir() string {
	if e.OutDir == "" {
		return e.BaseDir
	}
	return e.resolve(e.BaseDir, e.OutDir)
}

// Run extracts the names and writes both output files, printing a summary to w.
// A missing input prints a diagnostic and returns ErrNotFound without touching
// any output. Both payloads are serialized before either file is written.
func (e *Extractor) Run(w io.Writer) (*Result, error) {
	in := e.InputPath()
	property := e.Property
	if property == "" {
		property = DefaultProperty
	}

	list, err := Extract(in, property)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			_, _ = fmt.Fprintf(w, "GeoJSON not found at: %s\n", in)
		}
		return nil, err
	}

	log.Debug().
		Str("input", in).
		Int("names", len(list)).
		Msg("Names extracted")

	text, err := SerializeText(list)
	if err != nil {
		return nil, err
	}

	literalOpts := e.Literal
	if literalOpts.Property == "" {
		literalOpts.Property = property
	}
	literal, err := SerializeLiteral(list, literalOpts)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Names:       list,
		TextPath:    e.resolve(e.outDir(), e.TextFile),
		LiteralPath: e.resolve(e.outDir(), e.LiteralFile),
	}

	if err := writeFile(res.TextPath, text); err != nil {
		return nil, err
	}
	if err := writeFile(res.LiteralPath, literal); err != nil {
		return nil, err
	}

	_, _ = fmt.Fprintf(w, "Extracted %d unique %s values\n", len(list), property)
	_, _ = fmt.Fprintf(w, "Wrote: %s\n", res.TextPath)
	_, _ = fmt.Fprintf(w, "Wrote: %s\n", res.LiteralPath)

	return res, nil
}

// writeFile replaces path with data through a temporary file in the same
// directory, so readers never see a half-written list.
func writeFile(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()

	defer func() {
		if err != nil {
			if rmErr := os.Remove(tmp); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
				log.Error().Err(rmErr).Str("path", tmp).Msg("Failed to remove temp file")
			}
		}
	}()

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err = os.Chmod(tmp, 0644); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
