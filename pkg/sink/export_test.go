package sink_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/overlay/pkg/errors"
	"github.com/arthur-debert/overlay/pkg/sink"
	"github.com/arthur-debert/overlay/pkg/types"
	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var exported = []types.Mutation{
	types.AddMutation("/acme/package", types.NewDirectory("/src/package1/resources")),
	types.AddMutation("/acme/package", types.NewDirectory("/src/package2/override")),
	types.TagMutation("/acme/package", "acme/tag"),
}

func TestParseExportFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    sink.ExportFormat
		wantErr bool
	}{
		{input: "json", want: sink.ExportJSON},
		{input: "YAML", want: sink.ExportYAML},
		{input: "yml", want: sink.ExportYAML},
		{input: "toml", want: sink.ExportTOML},
		{input: "xml", want: sink.ExportXML},
		{input: "csv", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := sink.ParseExportFormat(tt.input)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sink.Export(&buf, exported, sink.ExportJSON))

	var doc struct {
		Mutations []types.Mutation `json:"mutations"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, exported, doc.Mutations)
	assert.NotContains(t, buf.String(), `"tag": ""`)
}

func TestExportYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sink.Export(&buf, exported, sink.ExportYAML))

	var doc struct {
		Mutations []types.Mutation `yaml:"mutations"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, exported, doc.Mutations)
}

func TestExportTOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sink.Export(&buf, exported, sink.ExportTOML))

	out := buf.String()
	assert.Contains(t, out, "[[mutation]]")
	assert.Contains(t, out, "/src/package2/override")
	assert.Contains(t, out, "acme/tag")
}

func TestExportXML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sink.Export(&buf, exported, sink.ExportXML))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))

	root := doc.SelectElement("repository")
	require.NotNil(t, root)

	adds := root.SelectElements("add")
	require.Len(t, adds, 2)
	assert.Equal(t, "/acme/package", adds[0].SelectAttrValue("path", ""))
	assert.Equal(t, "/src/package1/resources", adds[0].SelectAttrValue("directory", ""))
	assert.Equal(t, "/src/package2/override", adds[1].SelectAttrValue("directory", ""))

	tags := root.SelectElements("tag")
	require.Len(t, tags, 1)
	assert.Equal(t, "acme/tag", tags[0].SelectAttrValue("tag", ""))
}

func TestExportEmptyPlan(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sink.Export(&buf, nil, sink.ExportJSON))
	assert.JSONEq(t, `{"mutations": []}`, buf.String())
}

func TestExportUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := sink.Export(&buf, exported, sink.ExportFormat("csv"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Zero(t, buf.Len())
}

func TestExportOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sink.ExportOrder(&buf, []string{"acme/base", "acme/site"}, sink.ExportJSON))
	assert.JSONEq(t, `{"packs": ["acme/base", "acme/site"]}`, buf.String())

	buf.Reset()
	require.NoError(t, sink.ExportOrder(&buf, []string{"acme/base"}, sink.ExportXML))
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))
	packs := doc.FindElements("//order/pack")
	require.Len(t, packs, 1)
	assert.Equal(t, "acme/base", packs[0].SelectAttrValue("name", ""))

	buf.Reset()
	require.NoError(t, sink.ExportOrder(&buf, nil, sink.ExportYAML))
	assert.Equal(t, "packs: []\n", buf.String())
}
