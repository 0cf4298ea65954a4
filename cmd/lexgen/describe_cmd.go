package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/template"
	yaml "gopkg.in/yaml.v2"
)

type describeCmd struct {
	Manifest string `arg:"" type:"existingfile" help:"TOML or YAML rule-catalog manifest."`
	Format   string `enum:"text,yaml" default:"text" help:"Output format: text or yaml."`
}

var describeTemplate = template.Must(template.New("describe").Parse(`States:
{{range .States}}  {{.Name}} (id={{.ID}}{{if .Exclusive}}, exclusive{{end}})
{{end}}
Rules:
{{range .Rules}}  {{.Name}}: /{{.Pattern}}/ -> {{if .Action}}{{.Action}}{{else}}(no action){{end}} [{{range .States}}{{.}} {{end}}]
{{end}}`))

func (c *describeCmd) Run() error {
	manifest, err := loadManifest(c.Manifest)
	if err != nil {
		return err
	}

	if c.Format == "yaml" {
		out, err := yaml.Marshal(manifest)
		if err != nil {
			return fmt.Errorf("marshal manifest: %w", err)
		}
		_, err = os.Stdout.Write(out)
		return err
	}

	return describeTemplate.Execute(os.Stdout, manifest)
}
