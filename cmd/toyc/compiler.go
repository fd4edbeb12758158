package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/llir/llvm/ir"
	"github.com/mewspring/toyada/ast"
	"github.com/mewspring/toyada/lower"
	"github.com/pkg/errors"
)

// compiler tracks the state of the compiler, including any errors encountered
// during compilation.
type compiler struct {
	// Compiler configuration.
	cfg *Config
	// List of errors encountered during compilation.
	errs []error
}

// newCompiler returns a new compiler for tracking the state of compilation.
func newCompiler(cfg *Config) *compiler {
	return &compiler{cfg: cfg}
}

// compileFile lowers the compilation unit of the given JSON AST file to LLVM
// IR and writes it to output, or to the default output path if output is
// empty. A compilation unit with errors produces no output.
func (c *compiler) compileFile(path, output string) {
	dbg.Debugf("compiling %q", path)
	nodes, err := readUnit(path)
	if err != nil {
		c.report(path, err)
		return
	}
	// Error handler to track errors during compilation.
	eh := func(err error) {
		c.report(path, err)
	}
	gen := lower.NewGenerator(eh)
	m := gen.Module()
	m.SourceFilename = filepath.Base(path)
	m.TargetTriple = c.cfg.TargetTriple
	m.DataLayout = c.cfg.DataLayout
	if _, err := gen.Lower(nodes); err != nil {
		// Already reported by eh; discard module.
		return
	}
	for _, name := range gen.Externals() {
		dbg.Debugf("%s: external subprogram %q", path, name)
	}
	if len(output) == 0 {
		output = c.outputPath(path)
	}
	if err := writeModule(output, m); err != nil {
		c.report(path, err)
		return
	}
	dbg.Debugf("wrote %q", output)
}

// report records the error encountered while compiling the given file and
// prints it to standard error.
func (c *compiler) report(path string, err error) {
	c.errs = append(c.errs, err)
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	fmt.Fprintf(os.Stderr, "%s %s: %v\n", red("error:"), path, err)
}

// outputPath returns the default LLVM IR output path of the given input file.
func (c *compiler) outputPath(path string) string {
	llPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".ll"
	if len(c.cfg.OutputDir) > 0 {
		return filepath.Join(c.cfg.OutputDir, filepath.Base(llPath))
	}
	return llPath
}

// readUnit reads the JSON-encoded compilation unit of the given file.
func readUnit(path string) ([]ast.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()
	nodes, err := ast.Decode(f)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return nodes, nil
}

// writeModule writes the LLVM IR assembly of m to the given file.
func writeModule(path string, m *ir.Module) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := m.WriteTo(f); err != nil {
		f.Close()
		return errors.WithStack(err)
	}
	return errors.WithStack(f.Close())
}
