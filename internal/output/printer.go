// Package output renders Retail API messages as text, JSON, YAML or tables.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fivetwenty-io/retail-samples/internal/constants"
	"github.com/olekukonko/tablewriter"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"gopkg.in/yaml.v3"
)

// Printer writes messages in one output format.
type Printer struct {
	format   string
	out      io.Writer
	info     io.Writer
	yamlDocs int
}

// NewPrinter creates a printer for format writing data to out. Progress
// messages go to out for human formats and to stderr for machine formats.
func NewPrinter(format string, out io.Writer) (*Printer, error) {
	return NewPrinterWithInfo(format, out, os.Stderr)
}

// NewPrinterWithInfo is NewPrinter with an explicit writer for progress
// messages in machine formats.
func NewPrinterWithInfo(format string, out, info io.Writer) (*Printer, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = constants.FormatText
	}

	switch format {
	case constants.FormatText, constants.FormatTable:
		info = out
	case constants.FormatJSON, constants.FormatYAML:
	default:
		return nil, fmt.Errorf("%w: %s", constants.ErrInvalidOutputFormat, format)
	}

	return &Printer{format: format, out: out, info: info}, nil
}

// Format returns the output format.
func (p *Printer) Format() string {
	return p.format
}

// Messagef writes a progress message followed by a newline.
func (p *Printer) Messagef(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.info, format+"\n", args...)
}

// Message writes label and msg. Text output is "label: <message>"; machine
// formats write only the message.
func (p *Printer) Message(label string, msg proto.Message) error {
	switch p.format {
	case constants.FormatJSON:
		data, err := marshalJSON(msg)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(p.out, string(data))

		return err
	case constants.FormatYAML:
		doc, err := toDocument(msg)
		if err != nil {
			return err
		}

		return p.encodeYAML(doc)
	case constants.FormatTable:
		rows, header, ok := Rows(msg)
		if !ok {
			_, err := fmt.Fprintf(p.out, "%s: %v\n", label, msg)

			return err
		}

		p.Messagef("%s:", label)

		return p.Table(header, rows)
	default:
		_, err := fmt.Fprintf(p.out, "%s: %v\n", label, msg)

		return err
	}
}

// Value writes a plain Go value such as a report.
func (p *Printer) Value(label string, value interface{}) error {
	switch p.format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(p.out)
		encoder.SetIndent("", "  ")

		return encoder.Encode(value)
	case constants.FormatYAML:
		return p.encodeYAML(value)
	default:
		_, err := fmt.Fprintf(p.out, "%s: %+v\n", label, value)

		return err
	}
}

// Table renders rows under header.
func (p *Printer) Table(header []string, rows [][]string) error {
	table := tablewriter.NewWriter(p.out)

	table.Header(toCells(header)...)

	for _, row := range rows {
		if err := table.Append(toCells(row)...); err != nil {
			return fmt.Errorf("failed to append table row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func toCells(values []string) []any {
	cells := make([]any, len(values))
	for i, value := range values {
		cells[i] = value
	}

	return cells
}

// encodeYAML writes value as its own YAML document, separating it from any
// previous one.
func (p *Printer) encodeYAML(value interface{}) error {
	if p.yamlDocs > 0 {
		if _, err := io.WriteString(p.out, "---\n"); err != nil {
			return err
		}
	}

	p.yamlDocs++

	encoder := yaml.NewEncoder(p.out)
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}

	return encoder.Close()
}

func marshalJSON(msg proto.Message) ([]byte, error) {
	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", msg, err)
	}

	return data, nil
}

// toDocument converts msg into generic maps so it can be encoded as YAML with
// the protobuf JSON field names.
func toDocument(msg proto.Message) (interface{}, error) {
	data, err := protojson.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", msg, err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode %T: %w", msg, err)
	}

	return doc, nil
}
