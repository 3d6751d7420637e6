package hclconfig

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/ostepgo/internal/counter"
	"github.com/specialistvlad/ostepgo/internal/ctxlog"
	"github.com/specialistvlad/ostepgo/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
)

// File is the decoded root of a configuration file.
type File struct {
	Counter *CounterBlock `hcl:"counter,block"`
}

// CounterBlock mirrors counter.Config. Nil fields were not set in the file.
type CounterBlock struct {
	Iterations  *int      `hcl:"iterations,optional"`
	Start       *int      `hcl:"start,optional"`
	Interval    cty.Value `hcl:"interval,optional"`
	ShowAddress *bool     `hcl:"show_address,optional"`
}

// Files is an ordered set of decoded configuration files. Later files
// override earlier ones attribute by attribute.
type Files []*File

// Load reads the configuration at path. A file is decoded on its own; a
// directory contributes every .hcl and .json file beneath it in lexical order.
func Load(ctx context.Context, path string) (Files, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading configuration.", "path", path)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing config %s: %w", path, err)
	}

	paths := []string{path}
	if info.IsDir() {
		paths, err = fsutil.FindFilesByExtension(path, ".hcl", ".json")
		if err != nil {
			return nil, fmt.Errorf("error scanning config directory %s: %w", path, err)
		}
		if len(paths) == 0 {
			return nil, fmt.Errorf("no .hcl or .json files found in %s", path)
		}
	}
	logger.Debug("Discovered configuration files.", "count", len(paths))

	parser := hclparse.NewParser()
	files := make(Files, 0, len(paths))
	for _, p := range paths {
		f, err := decodeFile(parser, p)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	logger.Debug("Configuration loaded.", "path", path, "files", len(files))
	return files, nil
}

func decodeFile(parser *hclparse.Parser, path string) (*File, error) {
	var (
		hclFile *hcl.File
		diags   hcl.Diagnostics
	)
	if filepath.Ext(path) == ".json" {
		hclFile, diags = parser.ParseJSONFile(path)
	} else {
		hclFile, diags = parser.ParseHCLFile(path)
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var root File
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}
	return &root, nil
}

// Apply overlays every file onto cfg in order.
func (fs Files) Apply(cfg *counter.Config) error {
	for _, f := range fs {
		if err := f.Apply(cfg); err != nil {
			return err
		}
	}
	return nil
}

// Apply overlays the values set in the file onto cfg.
func (f *File) Apply(cfg *counter.Config) error {
	if f == nil || f.Counter == nil {
		return nil
	}
	b := f.Counter

	if b.Iterations != nil {
		cfg.Iterations = *b.Iterations
	}
	if b.Start != nil {
		cfg.Start = *b.Start
	}
	if b.ShowAddress != nil {
		cfg.ShowAddress = *b.ShowAddress
	}
	if !b.Interval.IsNull() {
		d, err := durationFromValue(b.Interval)
		if err != nil {
			return fmt.Errorf("counter.interval: %w", err)
		}
		cfg.Interval = d
	}
	return nil
}

// durationFromValue accepts a Go duration string or a number of seconds.
func durationFromValue(v cty.Value) (time.Duration, error) {
	if !v.IsKnown() {
		return 0, errors.New("value must be known")
	}
	switch v.Type() {
	case cty.String:
		d, err := time.ParseDuration(v.AsString())
		if err != nil {
			return 0, err
		}
		return d, nil
	case cty.Number:
		secs := new(big.Float).Mul(v.AsBigFloat(), big.NewFloat(float64(time.Second)))
		ns, _ := secs.Int64()
		return time.Duration(ns), nil
	default:
		return 0, fmt.Errorf("expected a duration string or number of seconds, got %s", v.Type().FriendlyName())
	}
}
