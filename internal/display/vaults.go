package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/w4/1p/backend"
)

// VaultTable lists every vault's name and uuid in a bordered table,
// preserving the order the backend returned them in.
func (r *Renderer) VaultTable(w io.Writer, vaults []backend.Vault) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(int, int) lipgloss.Style { return r.styles.Cell }).
		Headers("NAME", "UUID")

	for _, v := range vaults {
		t.Row(v.Name, v.UUID)
	}

	if _, err := fmt.Fprintln(w, t); err != nil {
		return fmt.Errorf("write vault table: %w", err)
	}
	return nil
}
