package op

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/w4/1p/backend"
)

// The structures below mirror the JSON emitted by the legacy op tool. Field
// names in overviews are terse ("ainfo", "l", "u") or single letters for
// section fields ("k", "n", "t", "v"); decoding normalises everything into
// the backend types.

type getAccount struct {
	Name   string `json:"name"`
	Domain string `json:"domain"`
}

type listVault struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

type listItem struct {
	UUID      string       `json:"uuid"`
	VaultUUID string       `json:"vaultUuid"`
	Overview  itemOverview `json:"overview"`
}

func (l listItem) summary() backend.ItemSummary {
	return backend.ItemSummary{
		UUID:        l.UUID,
		VaultUUID:   l.VaultUUID,
		Title:       l.Overview.Title,
		AccountInfo: l.Overview.AccountInfo,
		URLs:        l.Overview.urls(),
		Tags:        l.Overview.Tags,
	}
}

type itemOverview struct {
	Title       string            `json:"title"`
	AccountInfo string            `json:"ainfo"`
	URL         string            `json:"url"`
	URLs        []itemOverviewURL `json:"URLs"`
	Tags        []string          `json:"tags"`
}

// urls flattens the overview's URL list, falling back to the legacy
// singular field when the list is absent.
func (o itemOverview) urls() []string {
	var out []string
	for _, u := range o.URLs {
		if u.URL != "" {
			out = append(out, u.URL)
		}
	}
	if out == nil && o.URL != "" {
		out = []string{o.URL}
	}
	return out
}

type itemOverviewURL struct {
	Label string `json:"l"`
	URL   string `json:"u"`
}

type getItem struct {
	UUID     string         `json:"uuid"`
	Overview itemOverview   `json:"overview"`
	Details  getItemDetails `json:"details"`
}

func (g getItem) item() *backend.Item {
	item := &backend.Item{
		UUID:  g.UUID,
		Title: g.Overview.Title,
	}

	for _, f := range g.Details.Fields {
		if field, ok := f.field(); ok {
			item.Fields = append(item.Fields, field)
		}
	}

	for _, s := range g.Details.Sections {
		section := backend.Section{Name: s.Title}
		for _, f := range s.Fields {
			if field, ok := f.field(); ok {
				section.Fields = append(section.Fields, field)
			}
		}
		item.Sections = append(item.Sections, section)
	}
	return item
}

type getItemDetails struct {
	Fields   []detailsField `json:"fields"`
	Sections []itemSection  `json:"sections"`
}

type detailsField struct {
	Name        string      `json:"name"`
	Designation string      `json:"designation"`
	Value       scalarValue `json:"value"`
}

// field converts a top-level details field, preferring the designation
// ("username", "password") over the raw field name. Fields with empty
// values are dropped.
func (f detailsField) field() (backend.Field, bool) {
	if f.Value == "" {
		return backend.Field{}, false
	}

	name := f.Name
	if f.Designation != "" {
		name = f.Designation
	}

	kind := backend.FieldKindUnknown
	switch f.Designation {
	case "username":
		kind = backend.FieldKindUsername
	case "password":
		kind = backend.FieldKindPassword
	}

	return backend.Field{Name: name, Value: string(f.Value), Kind: kind}, true
}

type itemSection struct {
	Title  string         `json:"title"`
	Fields []sectionField `json:"fields"`
}

type sectionField struct {
	Kind  string      `json:"k"`
	Name  string      `json:"n"`
	Label string      `json:"t"`
	Value scalarValue `json:"v"`
}

// field converts a section field. op marks stored one-time password seeds
// by prefixing the internal field name with "TOTP_".
func (f sectionField) field() (backend.Field, bool) {
	if f.Value == "" {
		return backend.Field{}, false
	}

	kind := backend.FieldKindUnknown
	if strings.HasPrefix(f.Name, "TOTP_") {
		kind = backend.FieldKindTOTP
	}

	return backend.Field{Name: f.Label, Value: string(f.Value), Kind: kind}, true
}

type createItem struct {
	UUID      string `json:"uuid"`
	VaultUUID string `json:"vaultUuid"`
}

// scalarValue decodes op's loosely typed field values: strings pass
// through, numbers and booleans render as their literal text, null becomes
// empty. Arrays and objects are rejected.
type scalarValue string

func (s *scalarValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		*s = ""
	case string:
		*s = scalarValue(value)
	case json.Number:
		*s = scalarValue(value.String())
	case bool:
		if value {
			*s = "true"
		} else {
			*s = "false"
		}
	default:
		return fmt.Errorf("field value must be a scalar, got %T", v)
	}
	return nil
}
