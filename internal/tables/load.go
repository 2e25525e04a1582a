package tables

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/creatures-addons/internal/game"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

//go:embed tables.hcl
var defaultSource []byte

// DefaultFilename is the name reported in diagnostics for the embedded tables.
const DefaultFilename = "tables.hcl"

// BootstrapDir is the game subdirectory that holds script files. Table
// expressions can refer to it as ${bootstrap}.
const BootstrapDir = "Bootstrap"

// fileRoot is the schema of a tables file.
type fileRoot struct {
	Filetypes  []*filetypeBlock  `hcl:"filetype,block"`
	Exceptions []*exceptionBlock `hcl:"exception,block"`
}

type filetypeBlock struct {
	Ext    string         `hcl:"ext,label"`
	Dir    hcl.Expression `hcl:"dir,optional"`
	ByGame hcl.Expression `hcl:"by_game,optional"`
}

type exceptionBlock struct {
	Name string         `hcl:"name,label"`
	Dir  hcl.Expression `hcl:"dir"`
}

// Default returns the built-in tables. The embedded source is part of the
// binary, so a failure here is a programmer error and panics.
func Default() *Tables {
	t, err := Parse(defaultSource, DefaultFilename)
	if err != nil {
		panic(fmt.Errorf("embedded %s is invalid: %w", DefaultFilename, err))
	}
	return t
}

// Load reads a tables file from disk. The file replaces the built-in tables
// entirely.
func Load(path string) (*Tables, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables file: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes HCL source into Tables.
func Parse(src []byte, filename string) (*Tables, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse tables file %s: %w", filename, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode tables file %s: %w", filename, diags)
	}

	evalCtx := newEvalContext()

	filetypes := make([]Filetype, 0, len(root.Filetypes))
	for _, b := range root.Filetypes {
		ft, diags := b.translate(evalCtx)
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid filetype %q in %s: %w", b.Ext, filename, diags)
		}
		filetypes = append(filetypes, ft)
	}

	exceptions := make(map[string]string, len(root.Exceptions))
	for _, b := range root.Exceptions {
		if _, dup := exceptions[b.Name]; dup {
			return nil, fmt.Errorf("exception %q is declared more than once in %s", b.Name, filename)
		}
		dir, set, diags := evalString(b.Dir, evalCtx)
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid exception %q in %s: %w", b.Name, filename, diags)
		}
		if !set {
			return nil, fmt.Errorf("exception %q in %s: dir cannot be null", b.Name, filename)
		}
		exceptions[b.Name] = dir
	}

	t, err := New(filetypes, exceptions)
	if err != nil {
		return nil, fmt.Errorf("invalid tables file %s: %w", filename, err)
	}
	return t, nil
}

func newEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"bootstrap": cty.StringVal(BootstrapDir),
		},
	}
}

// translate converts the HCL block into a Filetype row. A missing optional
// attribute decodes as a null expression and is left empty.
func (b *filetypeBlock) translate(evalCtx *hcl.EvalContext) (Filetype, hcl.Diagnostics) {
	ft := Filetype{Ext: b.Ext}

	dir, _, diags := evalString(b.Dir, evalCtx)
	if diags.HasErrors() {
		return ft, diags
	}
	ft.Dir = dir

	byGame, diags := evalByGame(b.ByGame, evalCtx)
	if diags.HasErrors() {
		return ft, diags
	}
	ft.ByGame = byGame
	return ft, nil
}

// evalString evaluates expr to a string. set is false when the expression
// is null.
func evalString(expr hcl.Expression, evalCtx *hcl.EvalContext) (string, bool, hcl.Diagnostics) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", false, diags
	}
	if val.IsNull() {
		return "", false, nil
	}

	str, err := convert.Convert(val, cty.String)
	if err != nil || !str.IsKnown() || str.IsNull() {
		return "", false, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid destination",
			Detail:   fmt.Sprintf("A destination must be a string, got %s.", val.Type().FriendlyName()),
			Subject:  expr.Range().Ptr(),
		}}
	}
	return str.AsString(), true, nil
}

// evalByGame evaluates an object such as { C3 = "...", DS = "..." } into a
// per-game destination map.
func evalByGame(expr hcl.Expression, evalCtx *hcl.EvalContext) (map[game.Game]string, hcl.Diagnostics) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}

	m, err := convert.Convert(val, cty.Map(cty.String))
	if err != nil || !m.IsWhollyKnown() {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid by_game",
			Detail:   "by_game must be an object of game identifiers to destination strings.",
			Subject:  expr.Range().Ptr(),
		}}
	}

	out := make(map[game.Game]string, m.LengthInt())
	for k, v := range m.AsValueMap() {
		g, err := game.Parse(k)
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unknown game",
				Detail:   err.Error(),
				Subject:  expr.Range().Ptr(),
			})
			continue
		}
		if v.IsNull() {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid by_game",
				Detail:   fmt.Sprintf("The destination for %s cannot be null.", g),
				Subject:  expr.Range().Ptr(),
			})
			continue
		}
		out[g] = v.AsString()
	}
	return out, diags
}
