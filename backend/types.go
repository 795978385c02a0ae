// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jordan Doyle

package backend

import (
	"fmt"
	"strings"
)

// Account identifies the signed-in 1Password account.
type Account struct {
	// Name is the account's display name.
	Name string `json:"name"`

	// Domain is the sign-in address of the account, e.g. "my.1password.com".
	Domain string `json:"domain"`
}

// String renders the account the way listings caption it: "Name (domain)".
func (a Account) String() string {
	return fmt.Sprintf("%s (%s)", a.Name, a.Domain)
}

// Vault is a named container of items within an account.
type Vault struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

// ItemSummary carries the non-secret metadata of a vault item, enough to
// list, search, and group it. Full field values require a [VaultSource.Get].
type ItemSummary struct {
	// UUID uniquely identifies the item within the account.
	UUID string `json:"uuid"`

	// VaultUUID identifies the vault the item belongs to.
	VaultUUID string `json:"vault_uuid"`

	// Title is the item's display name.
	Title string `json:"title"`

	// AccountInfo is the secondary descriptor shown next to the title,
	// usually the login's username or email address.
	AccountInfo string `json:"account_info"`

	// URLs lists the websites the item applies to.
	URLs []string `json:"urls,omitempty"`

	// Tags are the item's free-form labels. A tag containing slashes is
	// treated as a folder path, the common way 1Password users emulate
	// folders; see [ItemSummary.FolderPath].
	Tags []string `json:"tags,omitempty"`
}

// FolderPath derives the item's folder segments from its first
// slash-delimited tag. Items without such a tag sit directly under their
// vault and return nil.
func (s ItemSummary) FolderPath() []string {
	for _, tag := range s.Tags {
		if !strings.Contains(tag, "/") {
			continue
		}
		var segments []string
		for _, part := range strings.Split(tag, "/") {
			if part = strings.TrimSpace(part); part != "" {
				segments = append(segments, part)
			}
		}
		if len(segments) > 0 {
			return segments
		}
	}
	return nil
}

// FieldKind classifies an item field so callers can locate the value they
// need without relying on provider-specific field names.
type FieldKind int

const (
	// FieldKindUnknown marks a field with no recognised designation.
	FieldKindUnknown FieldKind = iota

	// FieldKindUsername marks the login identifier field.
	FieldKindUsername

	// FieldKindPassword marks the secret credential field.
	FieldKindPassword

	// FieldKindTOTP marks a field holding a one-time password seed
	// (an otpauth:// URL or a bare base32 secret) or, for providers that
	// compute codes server-side, the current code itself.
	FieldKindTOTP
)

// Field is a single named value on an item.
type Field struct {
	Name  string    `json:"name"`
	Value string    `json:"value"`
	Kind  FieldKind `json:"kind"`
}

// Section groups related fields under a heading, mirroring how 1Password
// organises extended item details.
type Section struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields,omitempty"`
}

// Item is the full representation of a vault entry, secret values included.
// It is fetched on demand and never persisted locally.
type Item struct {
	UUID     string    `json:"uuid"`
	Title    string    `json:"title"`
	Fields   []Field   `json:"fields,omitempty"`
	Sections []Section `json:"sections,omitempty"`
}

// FieldByKind returns the first field of the given kind, searching top-level
// fields before section fields.
func (i *Item) FieldByKind(kind FieldKind) (Field, bool) {
	for _, f := range i.Fields {
		if f.Kind == kind {
			return f, true
		}
	}
	for _, s := range i.Sections {
		for _, f := range s.Fields {
			if f.Kind == kind {
				return f, true
			}
		}
	}
	return Field{}, false
}

// GenerateRequest describes a login item to be created with a
// provider-generated password.
type GenerateRequest struct {
	// Name is the title of the new item. Required.
	Name string

	// Username is stored as the login identifier when non-empty.
	Username string

	// URL associates the login with a website when non-empty.
	URL string

	// Tags are attached to the new item verbatim.
	Tags []string

	// Vault selects the destination vault by name or UUID. Providers that
	// have a default vault accept an empty value.
	Vault string
}
