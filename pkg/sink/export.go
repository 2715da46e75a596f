package sink

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/arthur-debert/overlay/pkg/errors"
	"github.com/arthur-debert/overlay/pkg/types"
	"github.com/beevik/etree"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ExportFormat names a machine-readable plan encoding
type ExportFormat string

// Supported export formats
const (
	ExportJSON ExportFormat = "json"
	ExportYAML ExportFormat = "yaml"
	ExportTOML ExportFormat = "toml"
	ExportXML  ExportFormat = "xml"
)

// ExportFormats lists the supported formats
var ExportFormats = []ExportFormat{ExportJSON, ExportYAML, ExportTOML, ExportXML}

// ParseExportFormat validates a format name
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(s)); f {
	case ExportJSON, ExportYAML, ExportTOML, ExportXML:
		return f, nil
	case "yml":
		return ExportYAML, nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown export format: %s", s).
		WithDetail("format", s)
}

// planDocument is the envelope shared by the structured encodings
type planDocument struct {
	Mutations []types.Mutation `json:"mutations" yaml:"mutations" toml:"mutation"`
}

// orderDocument is the envelope for a pack order
type orderDocument struct {
	Packs []string `json:"packs" yaml:"packs" toml:"packs"`
}

// Export writes mutations to w in the given format
func Export(w io.Writer, mutations []types.Mutation, format ExportFormat) error {
	if mutations == nil {
		mutations = []types.Mutation{}
	}
	return encode(w, planDocument{Mutations: mutations}, format, func() error {
		return exportXML(w, mutations)
	})
}

// ExportOrder writes pack names, in build order, to w in the given format
func ExportOrder(w io.Writer, names []string, format ExportFormat) error {
	if names == nil {
		names = []string{}
	}
	return encode(w, orderDocument{Packs: names}, format, func() error {
		doc := etree.NewDocument()
		doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
		root := doc.CreateElement("order")
		for _, name := range names {
			root.CreateElement("pack").CreateAttr("name", name)
		}
		doc.Indent(2)
		_, err := doc.WriteTo(w)
		return err
	})
}

func encode(w io.Writer, doc interface{}, format ExportFormat, xml func() error) error {
	var err error
	switch format {
	case ExportJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(doc)
	case ExportYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(doc)
		if err == nil {
			err = enc.Close()
		}
	case ExportTOML:
		err = toml.NewEncoder(w).Encode(doc)
	case ExportXML:
		err = xml()
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown export format: %s", format).
			WithDetail("format", string(format))
	}

	if err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "cannot write output").
			WithDetail("format", string(format))
	}
	return nil
}

func exportXML(w io.Writer, mutations []types.Mutation) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("repository")
	for _, m := range mutations {
		el := root.CreateElement(string(m.Op))
		el.CreateAttr("path", m.Path)
		switch m.Op {
		case types.OpAdd:
			el.CreateAttr("directory", m.Directory)
		case types.OpTag:
			el.CreateAttr("tag", m.Tag)
		}
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}
