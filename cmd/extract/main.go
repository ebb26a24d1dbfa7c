package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andrewsheerin/cartox.io/internal/config"
	"github.com/andrewsheerin/cartox.io/internal/logger"
	"github.com/andrewsheerin/cartox.io/internal/names"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

// exitMissing is returned when the input GeoJSON does not exist.
const exitMissing = 2

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile   string `short:"c" long:"config"        env:"CONFIG_FILE"   description:"Path to configuration file"`
	BaseDir      string `short:"b" long:"base-dir"      env:"BASE_DIR"      description:"Directory relative paths resolve against (default: directory of this executable, or the working directory under go run)"`
	Input        string `short:"i" long:"in"            env:"INPUT"         description:"GeoJSON input path (default: static/countries.geo.json)"`
	OutDir       string `short:"o" long:"out-dir"       env:"OUT_DIR"       description:"Output directory (default: base directory)"`
	Property     string `short:"k" long:"property"      env:"PROPERTY"      description:"Feature property holding the name (default: name_en)"`
	Package      string `long:"package"                 env:"PACKAGE"       description:"Package name of the generated Go file"`
	Identifier   string `long:"identifier"              env:"IDENTIFIER"    description:"Variable name in the generated Go file"`
	AllowMissing bool   `long:"allow-missing"           env:"ALLOW_MISSING" description:"Exit 0 when the input file does not exist"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes the extractor and returns the process exit status.
func run(args []string, stdout io.Writer) int {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		return 1
	}

	opts.Logger.Setup()

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return 1
	}

	baseDir, err := resolveBaseDir(opts.BaseDir)
	if err != nil {
		log.Error().Err(err).Msg("Failed to resolve base directory")
		return 1
	}

	e := newExtractor(baseDir, cfg, opts)

	log.Debug().
		Str("base_dir", baseDir).
		Str("input", e.InputPath()).
		Str("property", e.Property).
		Msg("Starting extraction")

	if _, err := e.Run(stdout); err != nil {
		if errors.Is(err, names.ErrNotFound) {
			if opts.AllowMissing {
				return 0
			}
			return exitMissing
		}
		log.Error().Err(err).Str("input", e.InputPath()).Msg("Extraction failed")
		return 1
	}

	return 0
}

// resolveBaseDir anchors relative paths to the installation, not the working
// directory. Binaries built by go run live under the temp directory, so those
// fall back to the working directory.
func resolveBaseDir(flagValue string) (string, error) {
	if flagValue != "" {
		return filepath.Abs(flagValue)
	}

	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	return baseDirFor(exe, os.TempDir(), cwd), nil
}

// baseDirFor returns the directory of exe, or cwd when exe is inside tmpDir.
func baseDirFor(exe, tmpDir, cwd string) string {
	roots := []string{tmpDir}
	if resolved, err := filepath.EvalSymlinks(tmpDir); err == nil && resolved != tmpDir {
		roots = append(roots, resolved)
	}

	for _, root := range roots {
		rel, err := filepath.Rel(root, exe)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return cwd
		}
	}

	return filepath.Dir(exe)
}

// newExtractor layers command line flags over the configuration file.
func newExtractor(baseDir string, cfg *config.Config, opts Options) *names.Extractor {
	e := names.NewExtractor(baseDir)
	e.Input = pick(opts.Input, cfg.GeoJSON, e.Input)
	e.OutDir = pick(opts.OutDir, cfg.Output.Dir, e.OutDir)
	e.Property = pick(opts.Property, cfg.Property, e.Property)
	e.TextFile = pick(cfg.Output.Text, e.TextFile)
	e.LiteralFile = pick(cfg.Output.Literal, e.LiteralFile)
	e.Literal = names.LiteralOptions{
		Package:    pick(opts.Package, cfg.Output.Package),
		Identifier: pick(opts.Identifier, cfg.Output.Identifier),
		Property:   e.Property,
	}

	return e
}

// pick returns the first non-empty value.
func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
