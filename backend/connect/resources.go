package connect

import "github.com/w4/1p/backend"

// Connect field designators, upper-cased on the wire.
const (
	fieldTypeOTP         = "OTP"
	fieldPurposeUsername = "USERNAME"
	fieldPurposePassword = "PASSWORD"
)

type healthResource struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type vaultResource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type vaultRef struct {
	ID string `json:"id"`
}

type urlResource struct {
	Label   string `json:"label,omitempty"`
	Primary bool   `json:"primary,omitempty"`
	HRef    string `json:"href"`
}

type sectionResource struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}

type sectionRef struct {
	ID string `json:"id"`
}

// generateRecipe asks the server to mint the field value itself.
type generateRecipe struct {
	Length        int      `json:"length,omitempty"`
	CharacterSets []string `json:"characterSets,omitempty"`
}

type fieldResource struct {
	ID       string          `json:"id,omitempty"`
	Type     string          `json:"type,omitempty"`
	Purpose  string          `json:"purpose,omitempty"`
	Label    string          `json:"label,omitempty"`
	Value    string          `json:"value,omitempty"`
	TOTP     string          `json:"totp,omitempty"`
	Generate bool            `json:"generate,omitempty"`
	Recipe   *generateRecipe `json:"recipe,omitempty"`
	Section  *sectionRef     `json:"section,omitempty"`
}

type itemResource struct {
	ID             string            `json:"id,omitempty"`
	Title          string            `json:"title"`
	Vault          *vaultRef         `json:"vault,omitempty"`
	Category       string            `json:"category,omitempty"`
	URLs           []urlResource     `json:"urls,omitempty"`
	Tags           []string          `json:"tags,omitempty"`
	AdditionalInfo string            `json:"additional_information,omitempty"`
	Fields         []fieldResource   `json:"fields,omitempty"`
	Sections       []sectionResource `json:"sections,omitempty"`
}

func (r itemResource) summary() backend.ItemSummary {
	var urls []string
	for _, u := range r.URLs {
		if u.HRef != "" {
			urls = append(urls, u.HRef)
		}
	}

	vaultUUID := ""
	if r.Vault != nil {
		vaultUUID = r.Vault.ID
	}

	return backend.ItemSummary{
		UUID:        r.ID,
		VaultUUID:   vaultUUID,
		Title:       r.Title,
		AccountInfo: r.AdditionalInfo,
		URLs:        urls,
		Tags:        r.Tags,
	}
}

// item converts the wire representation, slotting fields into their declared
// sections and keeping section order as the server sent it.
func (r itemResource) item() *backend.Item {
	item := &backend.Item{UUID: r.ID, Title: r.Title}

	sections := make([]backend.Section, len(r.Sections))
	sectionIdx := make(map[string]int, len(r.Sections))
	for i, s := range r.Sections {
		sections[i] = backend.Section{Name: s.Label}
		sectionIdx[s.ID] = i
	}

	for _, f := range r.Fields {
		field, ok := f.field()
		if !ok {
			continue
		}

		if f.Section != nil {
			if i, known := sectionIdx[f.Section.ID]; known {
				sections[i].Fields = append(sections[i].Fields, field)
				continue
			}
		}
		item.Fields = append(item.Fields, field)
	}

	item.Sections = sections
	return item
}

// field converts a wire field, dropping valueless ones the same way the op
// backend does.
func (f fieldResource) field() (backend.Field, bool) {
	if f.Value == "" {
		return backend.Field{}, false
	}

	kind := backend.FieldKindUnknown
	switch {
	case f.Type == fieldTypeOTP:
		kind = backend.FieldKindTOTP
	case f.Purpose == fieldPurposeUsername:
		kind = backend.FieldKindUsername
	case f.Purpose == fieldPurposePassword:
		kind = backend.FieldKindPassword
	}

	name := f.Label
	if name == "" {
		switch f.Purpose {
		case fieldPurposeUsername:
			name = "username"
		case fieldPurposePassword:
			name = "password"
		default:
			name = f.ID
		}
	}

	return backend.Field{Name: name, Value: f.Value, Kind: kind}, true
}
