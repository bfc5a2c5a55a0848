package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"lazily/seqs"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var errUnknownFormat = errors.New("unknown output format (known: table, json, yaml)")

// renderer writes rows of a sequence as they are pulled.
type renderer interface {
	render(headers []string, rows seqs.Sequence[[]any]) error
}

func newRenderer(format string, w io.Writer) (renderer, error) {
	switch format {
	case formatTable:
		return tableRenderer{w: w}, nil
	case formatJSON:
		return jsonRenderer{w: w}, nil
	case formatYAML:
		return yamlRenderer{w: w}, nil
	default:
		return nil, errors.Wrapf(errUnknownFormat, "%q", format)
	}
}

type tableRenderer struct{ w io.Writer }

func (r tableRenderer) render(headers []string, rows seqs.Sequence[[]any]) error {
	table := tablewriter.NewWriter(r.w)
	table.SetHeader(headers)
	for row, err := range seqs.TryValues(rows) {
		if err != nil {
			return err
		}
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprint(v)
		}
		table.Append(cells)
	}
	table.Render()
	return nil
}

// jsonRenderer writes one JSON array per row.
type jsonRenderer struct{ w io.Writer }

func (r jsonRenderer) render(_ []string, rows seqs.Sequence[[]any]) error {
	enc := json.NewEncoder(r.w)
	for row, err := range seqs.TryValues(rows) {
		if err != nil {
			return err
		}
		if err := enc.Encode(row); err != nil {
			return errors.Wrap(err, "encoding row")
		}
	}
	return nil
}

// yamlRenderer writes a single document holding a list of mappings keyed by
// header, so it has to drain the rows before encoding.
type yamlRenderer struct{ w io.Writer }

func (r yamlRenderer) render(headers []string, rows seqs.Sequence[[]any]) error {
	doc := &yaml.Node{Kind: yaml.SequenceNode}
	for row, err := range seqs.TryValues(rows) {
		if err != nil {
			return err
		}
		item := &yaml.Node{Kind: yaml.MappingNode}
		for i, v := range row {
			var value yaml.Node
			if err := value.Encode(v); err != nil {
				return errors.Wrap(err, "encoding row")
			}
			item.Content = append(item.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: headers[i]},
				&value)
		}
		doc.Content = append(doc.Content, item)
	}

	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "encoding yaml")
	}
	return enc.Close()
}
