package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/alecthomas/repr"

	"github.com/go-lexgen/lexgen"
)

type tokenizeCmd struct {
	Manifest string `arg:"" type:"existingfile" help:"TOML or YAML rule-catalog manifest."`
	Input    string `arg:"" type:"existingfile" help:"Input file to lex."`
	EOF      string `default:"EOF" help:"Token value to emit at end of input."`
	Verbose  bool   `short:"v" help:"Log every pushed/popped source to stderr."`
}

func (c *tokenizeCmd) Run() error {
	manifest, err := loadManifest(c.Manifest)
	if err != nil {
		return err
	}
	registry := buildRegistry(manifest)

	noMatch := lexgen.OptionalAction(func(lx *lexgen.Lexer[string], _ string, _ []string) (string, bool) {
		lx.Fatalf("no rule matched remaining input")
		return "", true
	})
	cfg, err := lexgen.BuildManifest(manifest, registry, lexgen.PopOrEOF(c.EOF), noMatch)
	if err != nil {
		return err
	}

	lex, err := lexgen.New(cfg)
	if err != nil {
		return err
	}
	if err := lex.PushFile(c.Input); err != nil {
		return err
	}
	if c.Verbose {
		log.Printf("tokenize: pushed %s", c.Input)
	}

	for {
		tok, err := lex.Lex()
		if err != nil {
			var fatal *lexgen.FatalError
			if errors.As(err, &fatal) {
				return fmt.Errorf("%s: %s", c.Input, fatal.Message())
			}
			return err
		}
		repr.Println(tok)
		if tok == c.EOF {
			if c.Verbose {
				log.Printf("tokenize: popped %s", c.Input)
			}
			return nil
		}
	}
}
