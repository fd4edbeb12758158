// toyc is a compiler of subprogram compilation units to LLVM IR assembly.
//
// Each input file holds the JSON-encoded AST of one compilation unit; the
// generated LLVM IR is written next to the input with a ".ll" extension.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

// dbg is a logger with the "toyc" name which logs debug messages.
var dbg = commonlog.GetLogger("toyc")

func usage() {
	const use = `
Usage: toyc [OPTION]... FILE.json...
`
	fmt.Fprintln(os.Stderr, use[1:])
	flag.PrintDefaults()
}

func main() {
	var (
		// output specifies the output path; valid only with a single input.
		output string
		// configPath specifies the path to a TOML configuration file.
		configPath string
		// verbose enables debug output.
		verbose bool
	)
	flag.StringVar(&output, "o", "", "output path (single input only)")
	flag.StringVar(&configPath, "config", "", "TOML configuration file")
	flag.BoolVar(&verbose, "v", false, "verbose output")
	flag.Usage = usage
	flag.Parse()
	if verbose {
		commonlog.Configure(2, nil)
	} else {
		commonlog.Configure(0, nil)
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}
	if output != "" && flag.NArg() > 1 {
		log.Fatalf("-o flag requires a single input file; got %d", flag.NArg())
	}
	cfg := &Config{}
	if len(configPath) > 0 {
		var err error
		if cfg, err = loadConfig(configPath); err != nil {
			log.Fatalf("unable to load configuration: %+v", err)
		}
	}
	c := newCompiler(cfg)
	for _, path := range flag.Args() {
		c.compileFile(path, output)
	}
	if len(c.errs) > 0 {
		color.New(color.FgRed).Fprintf(os.Stderr, "compilation failed with %d error(s)\n", len(c.errs))
		os.Exit(1)
	}
}
