package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rawbytedev/otherdata"
	"gopkg.in/yaml.v3"
)

const (
	kindString  = "string"
	kindNumeric = "numeric"
	kindNamed   = "named"
)

// itemRecord is the JSON/YAML shape of one item.
type itemRecord struct {
	Kind   string   `json:"kind" yaml:"kind"`
	Text   string   `json:"text,omitempty" yaml:"text,omitempty"`
	Number *float64 `json:"number,omitempty" yaml:"number,omitempty"`
	Name   string   `json:"name,omitempty" yaml:"name,omitempty"`
	Value  string   `json:"value,omitempty" yaml:"value,omitempty"`
}

func toRecords(items otherdata.Items) []itemRecord {
	out := make([]itemRecord, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case otherdata.StringValue:
			out = append(out, itemRecord{Kind: kindString, Text: v.Text})
		case otherdata.NumericValue:
			n := v.Value
			out = append(out, itemRecord{Kind: kindNumeric, Number: &n})
		case otherdata.NamedValue:
			out = append(out, itemRecord{Kind: kindNamed, Name: v.Name, Value: v.Value})
		}
	}
	return out
}

func fromRecords(recs []itemRecord) (otherdata.Items, error) {
	items := make(otherdata.Items, 0, len(recs))
	for i, r := range recs {
		switch r.Kind {
		case kindString, "":
			items = append(items, otherdata.StringValue{Text: r.Text})
		case kindNumeric:
			if r.Number == nil {
				return nil, fmt.Errorf("item %d: numeric item without number", i)
			}
			items = append(items, otherdata.NumericValue{Value: *r.Number})
		case kindNamed:
			items = append(items, otherdata.NamedValue{Name: r.Name, Value: r.Value})
		default:
			return nil, fmt.Errorf("item %d: unknown kind %q", i, r.Kind)
		}
	}
	return items, nil
}

func writeItems(w io.Writer, format string, items otherdata.Items) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toRecords(items))
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(toRecords(items)); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, r := range toRecords(items) {
			var err error
			switch r.Kind {
			case kindNumeric:
				_, err = fmt.Fprintf(w, "%s\t%s\n", r.Kind, otherdata.NumericValue{Value: *r.Number})
			case kindNamed:
				_, err = fmt.Fprintf(w, "%s\t%s\t%s\n", r.Kind, r.Name, r.Value)
			default:
				_, err = fmt.Fprintf(w, "%s\t%s\n", r.Kind, r.Text)
			}
			if err != nil {
				return err
			}
		}
		return nil
	}
}
