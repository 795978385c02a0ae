// Package display turns accounts, items, and vaults into the text the cli
// prints. It owns every colour and layout decision so commands stay thin;
// secrets pass through untouched and are never logged here.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/w4/1p/backend"
	"github.com/w4/1p/internal/tree"
)

// Renderer writes human-oriented output using a fixed style palette.
type Renderer struct {
	styles Styles
}

// New returns a Renderer using the given palette.
func New(styles Styles) *Renderer {
	return &Renderer{styles: styles}
}

// ListOptions control the annotation lines printed beneath each item in a
// listing.
type ListOptions struct {
	// ShowUUIDs prints the item uuid under each entry.
	ShowUUIDs bool

	// ShowAccountNames prints the account info under each entry when the
	// item has one.
	ShowAccountNames bool
}

// Listing renders the account header followed by every item grouped under
// its vault, folders derived from slash-delimited tags in between. Items
// whose vault is missing from vaults are grouped under an "Unknown Vault"
// placeholder so nothing silently disappears.
func (r *Renderer) Listing(w io.Writer, account backend.Account, vaults []backend.Vault, items []backend.ItemSummary, opts ListOptions) error {
	t := tree.New(fmt.Sprintf("%s (%s)", account.Name, account.Domain))

	names := make(map[string]string, len(vaults))
	for _, v := range vaults {
		names[v.UUID] = v.Name
	}

	for _, item := range items {
		vault, ok := names[item.VaultUUID]
		if !ok {
			vault = fmt.Sprintf("Unknown Vault (%s)", item.VaultUUID)
		}

		path := []string{r.styles.Vault.Render(vault)}
		path = append(path, item.FolderPath()...)
		path = append(path, strings.TrimSpace(item.Title))

		var annotations []string
		if opts.ShowAccountNames {
			if info := strings.TrimSpace(item.AccountInfo); info != "" {
				annotations = append(annotations, r.styles.AccountInfo.Render(info))
			}
		}
		if opts.ShowUUIDs {
			annotations = append(annotations, r.styles.UUID.Render(item.UUID))
		}

		if err := t.Insert(tree.Entry{Path: path, Annotations: annotations}); err != nil {
			return fmt.Errorf("insert item %q: %w", item.UUID, err)
		}
	}

	return t.Render(w)
}

// SearchResults prints one block per match: the title in brackets, the
// account info, and the uuid, with a blank line between blocks.
func (r *Renderer) SearchResults(w io.Writer, items []backend.ItemSummary) error {
	for _, item := range items {
		title := r.styles.ItemTitle.Render(strings.TrimSpace(item.Title))
		if _, err := fmt.Fprintf(w, "[%s]\n%s\n%s\n\n", title, item.AccountInfo, item.UUID); err != nil {
			return fmt.Errorf("write search result: %w", err)
		}
	}
	return nil
}
