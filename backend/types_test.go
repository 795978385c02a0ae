package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountString(t *testing.T) {
	a := Account{Name: "Jordan Doyle", Domain: "my.1password.com"}
	assert.Equal(t, "Jordan Doyle (my.1password.com)", a.String())
}

func TestItemSummaryFolderPath(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want []string
	}{
		{
			name: "no tags",
			tags: nil,
			want: nil,
		},
		{
			name: "plain tags only",
			tags: []string{"work", "personal"},
			want: nil,
		},
		{
			name: "single folder tag",
			tags: []string{"Finance/Banks"},
			want: []string{"Finance", "Banks"},
		},
		{
			name: "first slash tag wins",
			tags: []string{"work", "Infra/Network/Switches", "Other/Path"},
			want: []string{"Infra", "Network", "Switches"},
		},
		{
			name: "empty segments dropped",
			tags: []string{"Infra//Switches/"},
			want: []string{"Infra", "Switches"},
		},
		{
			name: "slashes only",
			tags: []string{"///"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ItemSummary{Tags: tt.tags}
			assert.Equal(t, tt.want, s.FolderPath())
		})
	}
}

func TestItemFieldByKind(t *testing.T) {
	item := &Item{
		UUID:  "abc123",
		Title: "GitHub",
		Fields: []Field{
			{Name: "username", Value: "jordan@doyle.la", Kind: FieldKindUsername},
			{Name: "password", Value: "hunter2", Kind: FieldKindPassword},
		},
		Sections: []Section{
			{
				Name: "Security",
				Fields: []Field{
					{Name: "TOTP_SEED", Value: "otpauth://totp/x?secret=AAAA", Kind: FieldKindTOTP},
				},
			},
		},
	}

	pw, ok := item.FieldByKind(FieldKindPassword)
	assert.True(t, ok)
	assert.Equal(t, "hunter2", pw.Value)

	// section fields are reachable too
	totp, ok := item.FieldByKind(FieldKindTOTP)
	assert.True(t, ok)
	assert.Equal(t, "otpauth://totp/x?secret=AAAA", totp.Value)

	_, ok = item.FieldByKind(FieldKindUnknown)
	assert.False(t, ok)
}

func TestItemFieldByKind_PrefersTopLevel(t *testing.T) {
	item := &Item{
		Fields: []Field{
			{Name: "password", Value: "top", Kind: FieldKindPassword},
		},
		Sections: []Section{
			{Fields: []Field{{Name: "password", Value: "nested", Kind: FieldKindPassword}}},
		},
	}

	f, ok := item.FieldByKind(FieldKindPassword)
	assert.True(t, ok)
	assert.Equal(t, "top", f.Value)
}
