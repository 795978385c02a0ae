// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jordan Doyle

package display

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/w4/1p/backend"
)

func TestCard_TitleCenteredValuesRightAligned(t *testing.T) {
	item := &backend.Item{
		Title: "SoundCloud",
		Fields: []backend.Field{
			{Name: "username", Value: "jordan", Kind: backend.FieldKindUsername},
			{Name: "password", Value: "hunter2", Kind: backend.FieldKindPassword},
		},
	}

	var sb strings.Builder
	require.NoError(t, plainRenderer().Card(&sb, item))

	want := `╔═══════════════════╗
║    SoundCloud     ║
║ username   jordan ║
║ password  hunter2 ║
╚═══════════════════╝
`
	assert.Equal(t, want, sb.String())
}

func TestCard_SectionsGetTheirOwnBox(t *testing.T) {
	item := &backend.Item{
		Title: "SoundCloud",
		Fields: []backend.Field{
			{Name: "username", Value: "jordan"},
			{Name: "password", Value: "hunter2"},
		},
		Sections: []backend.Section{
			{Name: "", Fields: []backend.Field{{Name: "notes", Value: "top secret"}}},
			{Name: "Linked Apps"}, // no fields, skipped entirely
		},
	}

	var sb strings.Builder
	require.NoError(t, plainRenderer().Card(&sb, item))

	want := `╔═══════════════════╗
║    SoundCloud     ║
║ username   jordan ║
║ password  hunter2 ║
╚═══════════════════╝
╔═══════════════════╗
║ notes  top secret ║
╚═══════════════════╝
`
	assert.Equal(t, want, sb.String())
	assert.NotContains(t, sb.String(), "Linked Apps")
}

func TestCard_TitleOnly(t *testing.T) {
	item := &backend.Item{Title: "Note"}

	var sb strings.Builder
	require.NoError(t, plainRenderer().Card(&sb, item))

	want := `╔══════╗
║ Note ║
╚══════╝
`
	assert.Equal(t, want, sb.String())
}

func TestCard_NamedSectionHeadingCentered(t *testing.T) {
	item := &backend.Item{
		Title: "Bank",
		Sections: []backend.Section{
			{Name: "PIN", Fields: []backend.Field{{Name: "code", Value: "0000"}}},
		},
	}

	var sb strings.Builder
	require.NoError(t, plainRenderer().Card(&sb, item))

	want := `╔══════╗
║ Bank ║
╚══════╝
╔════════════╗
║    PIN     ║
║ code  0000 ║
╚════════════╝
`
	assert.Equal(t, want, sb.String())
}
