package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/wavegridgo/internal/config"
	"github.com/vk/wavegridgo/internal/ctxlog"
	"github.com/vk/wavegridgo/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes the top-level blocks of a scenario file. There is no
// remain body: anything other than wave blocks is a decode error, so typos
// fail loudly instead of loading zero waves.
type fileRoot struct {
	Waves []*waveBlock `hcl:"wave,block"`
}

// waveBlock captures a `wave` block with its attributes still unevaluated,
// so the loader can report evaluation problems per attribute.
type waveBlock struct {
	Name   string         `hcl:"name,label"`
	Rows   hcl.Expression `hcl:"rows"`
	Cols   hcl.Expression `hcl:"cols"`
	Rounds hcl.Expression `hcl:"rounds"`
	Expect hcl.Expression `hcl:"expect,optional"`
}

// Load orchestrates the entire HCL configuration loading process. Each path
// may be a scenario file or a directory to scan for .hcl files; unlike a
// search path, an explicitly configured path that does not exist is an error.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	hclFiles, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Waves {
			wave, err := l.translateWave(block)
			if err != nil {
				return nil, fmt.Errorf("in file %s: %w", file, err)
			}
			model.Waves = append(model.Waves, wave)
		}
	}

	logger.Debug("HCL loading complete.", "waves", len(model.Waves))
	return model, nil
}

// translateWave evaluates a wave block's attributes into the model form.
// gohcl decodes an absent expression-typed attribute as a synthetic null
// expression rather than a diagnostic, so required attributes are enforced
// here instead of by the decoder.
func (l *Loader) translateWave(block *waveBlock) (*config.Wave, error) {
	wave := &config.Wave{Name: block.Name}

	for _, attr := range []struct {
		name   string
		expr   hcl.Expression
		target *int
	}{
		{"rows", block.Rows, &wave.Rows},
		{"cols", block.Cols, &wave.Cols},
		{"rounds", block.Rounds, &wave.Rounds},
	} {
		val, err := evalNumber(attr.expr)
		if err != nil {
			return nil, fmt.Errorf("wave %q: attribute %q: %w", block.Name, attr.name, err)
		}
		if val.IsNull() {
			return nil, fmt.Errorf("wave %q: missing required attribute %q", block.Name, attr.name)
		}
		if err := gocty.FromCtyValue(val, attr.target); err != nil {
			return nil, fmt.Errorf("wave %q: attribute %q: %w", block.Name, attr.name, err)
		}
	}

	if block.Expect != nil {
		val, err := evalNumber(block.Expect)
		if err != nil {
			return nil, fmt.Errorf("wave %q: attribute %q: %w", block.Name, "expect", err)
		}
		// Null means the attribute was never written; the wave runs unchecked.
		if !val.IsNull() {
			var expect int
			if err := gocty.FromCtyValue(val, &expect); err != nil {
				return nil, fmt.Errorf("wave %q: attribute %q: %w", block.Name, "expect", err)
			}
			wave.Expect = &expect
		}
	}

	return wave, nil
}

// evalNumber evaluates an HCL expression and converts the result to a cty
// number. Evaluation runs without an EvalContext, so literals and arithmetic
// work but variable references do not. A null result passes through so the
// caller can tell an absent attribute from a bad one.
func evalNumber(expr hcl.Expression) (cty.Value, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, diags
	}
	if val.IsNull() {
		return cty.NullVal(cty.Number), nil
	}

	converted, err := convert.Convert(val, cty.Number)
	if err != nil {
		return cty.NilVal, fmt.Errorf("cannot convert %s to number: %w", val.Type().FriendlyName(), err)
	}
	return converted, nil
}

// findAllHCLFiles resolves the given paths to a flat, deduplicated list of
// scenario files. Directories are scanned recursively for .hcl files; a file
// path is taken as-is.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	add := func(path string) {
		if _, wasSeen := seen[path]; !wasSeen {
			allFiles = append(allFiles, path)
			seen[path] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, err
			}
			for _, file := range found {
				add(file)
			}
		} else {
			add(path)
		}
	}
	return allFiles, nil
}
