// Command lexgen drives a lexer built from a TOML or YAML rule-catalog
// manifest against an input file, or prints a summary of the manifest.
package main

import "github.com/alecthomas/kong"

var (
	version string = "dev"
	cli     struct {
		Version  kong.VersionFlag
		Tokenize tokenizeCmd `cmd:"" help:"Tokenize a file using a manifest-defined lexer."`
		Describe describeCmd `cmd:"" help:"Print a summary of a rule-catalog manifest."`
	}
)

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`A command-line tool for lexgen rule-catalog manifests.`),
		kong.Vars{"version": version},
	)
	err := kctx.Run()
	kctx.FatalIfErrorf(err)
}
