// Package present renders parts for humans and machines.
package present

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	json "github.com/goccy/go-json"
	yaml "gopkg.in/yaml.v3"

	"purl/common"
	"purl/config"
	"purl/part"
)

// Renderer writes parts to underlying writer in configured format. Structured
// formats produce a stream of yaml documents or json values.
type Renderer struct {
	w    io.Writer
	cfg  config.OutputConfig
	tmpl *template.Template
	yenc *yaml.Encoder
}

// New prepares renderer, template is parsed once here so errors surface
// before any input is processed.
func New(w io.Writer, cfg config.OutputConfig) (*Renderer, error) {
	r := &Renderer{w: w, cfg: cfg}

	switch cfg.Format {
	case common.OutputFormatTemplate:
		tmpl, err := template.New(string(config.OutputTemplateFieldName)).Funcs(sprig.FuncMap()).Parse(cfg.Template)
		if err != nil {
			return nil, fmt.Errorf("unable to parse template field %s: %w", config.OutputTemplateFieldName, err)
		}
		r.tmpl = tmpl
	case common.OutputFormatYaml:
		r.yenc = yaml.NewEncoder(w)
		r.yenc.SetIndent(cfg.Indent)
	case common.OutputFormatJson, common.OutputFormatTree:
	default:
		return nil, fmt.Errorf("unsupported output format %s", cfg.Format)
	}
	return r, nil
}

// Render writes single part. Part itself is never modified.
func (r *Renderer) Render(p part.Part) error {
	p = r.prepare(p)

	switch r.cfg.Format {
	case common.OutputFormatTemplate:
		buf := new(bytes.Buffer)
		if err := r.tmpl.Execute(buf, valuesOf(p)); err != nil {
			return fmt.Errorf("unable to expand template: %w", err)
		}
		if !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
			buf.WriteByte('\n')
		}
		_, err := r.w.Write(buf.Bytes())
		return err
	case common.OutputFormatYaml:
		return r.yenc.Encode(fieldsOf(p))
	case common.OutputFormatJson:
		return r.renderJSON(p)
	default:
		_, err := io.WriteString(r.w, part.DumpIndent(p, r.cfg.Indent))
		return err
	}
}

func (r *Renderer) renderJSON(p part.Part) error {
	buf := new(bytes.Buffer)
	if err := fieldsOf(p).appendJSON(buf); err != nil {
		return fmt.Errorf("unable to encode json: %w", err)
	}
	if r.cfg.Indent > 0 {
		out := new(bytes.Buffer)
		if err := json.Indent(out, buf.Bytes(), "", strings.Repeat(" ", r.cfg.Indent)); err != nil {
			return fmt.Errorf("unable to indent json: %w", err)
		}
		buf = out
	}
	buf.WriteByte('\n')
	_, err := r.w.Write(buf.Bytes())
	return err
}

// Close flushes buffered structured output.
func (r *Renderer) Close() error {
	if r.yenc != nil {
		return r.yenc.Close()
	}
	return nil
}
