// Command microasm translates one or more assembly source files into
// base-64-encoded object images, plus optional entry and extern side
// files. It owns the collaborators spec.md §1 scopes out of the
// translation core: argument enumeration, file I/O, and diagnostic
// rendering.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/anvil-labs/microasm/internal/assembler"
	"github.com/anvil-labs/microasm/internal/config"
	"github.com/anvil-labs/microasm/internal/objfile"
	"github.com/pkg/errors"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		configPath  = flag.String("config", "", "Path to a TOML settings file overriding the built-in limits")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("microasm %s (%s, %s)\n", Version, Commit, Date)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: microasm [-config file.toml] <base> [<base> ...]")
		os.Exit(1)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}

	for _, base := range args {
		if err := translateOne(base, cfg); err != nil {
			log.Printf("%s: %v", base, err)
		}
	}
}

// translateOne runs the full pipeline for one <base> argument: it reads
// <base>.as, translates it, writes <base>.am whenever
// Output.WriteExpandedSource is set (the default, following
// original_source's behaviour, see SPEC_FULL.md), and writes <base>.ob/.ent/.ext
// only when translation raised no diagnostic. Per-file failure is reported
// but never changes the process exit code (spec.md §6.5).
func translateOne(base string, cfg *config.Config) error {
	if len(base) > cfg.Limits.MaxBaseFileNameLength {
		return errors.Errorf("base name %q exceeds the maximum of %d characters", base, cfg.Limits.MaxBaseFileNameLength)
	}

	lines, err := readLines(base + ".as")
	if err != nil {
		return errors.Wrap(err, "reading source")
	}

	limits := assembler.Limits{
		Base:               cfg.Memory.Base,
		Capacity:           cfg.Memory.Capacity,
		MaxLabelNameLength: cfg.Limits.MaxLabelNameLength,
		MaxLineLength:      cfg.Limits.MaxAssemblyLineLength,
		MacroBodyLimit:     cfg.Limits.MacroBodyCharacterLimit,
	}
	result := assembler.Translate(lines, limits)

	if cfg.Output.WriteExpandedSource {
		if err := writeFile(base+".am", strings.Join(result.Expanded, "\n")); err != nil {
			return errors.Wrap(err, "writing expanded source")
		}
	}

	for _, d := range result.File.Diags.All() {
		fmt.Fprintln(os.Stderr, d.Error())
	}

	if !result.OK {
		return errors.Errorf("%d diagnostic(s) raised; object emission suppressed", result.File.Diags.Count())
	}

	if err := writeFile(base+".ob", objfile.Object(result.File)); err != nil {
		return errors.Wrap(err, "writing object file")
	}
	if listing, ok := objfile.EntryListing(result.File); ok {
		if err := writeFile(base+".ent", listing); err != nil {
			return errors.Wrap(err, "writing entry listing")
		}
	}
	if listing, ok := objfile.ExternListing(result.File); ok {
		if err := writeFile(base+".ext", listing); err != nil {
			return errors.Wrap(err, "writing extern listing")
		}
	}

	log.Printf("%s: translated (%d code words, %d data words)", base, len(result.File.Code), len(result.File.Data))
	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided source file path
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func writeFile(path, content string) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(content), 0o644) // #nosec G306 -- generated assembler artefact, not secret
}
