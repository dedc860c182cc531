// Package status renders tracked accounts and their monitoring state for
// the terminal.
package status

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/luoyen/weibot/internal/domain"
)

type Row struct {
	Account  domain.Account
	Nickname string
	HasState bool
	// Processed and MaxID are zero when HasState is false.
	Processed int
	MaxID     int64
}

func Render(rows []Row) string {
	return renderView(rows, newStyles())
}

func renderView(rows []Row, s styles) string {
	lines := []string{
		s.title.Render("Tracked Accounts"),
		s.header.Render(fmt.Sprintf("accounts: %d", len(rows))),
	}

	if len(rows) == 0 {
		lines = append(lines, s.empty.Render("No accounts configured."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, row := range rows {
		name := row.Nickname
		if name == "" {
			name = string(row.Account.ID)
		}

		header := s.account.Render(fmt.Sprintf("%s (%s)", name, row.Account.ID))
		if !row.Account.Enabled {
			header += " " + s.disabled.Render("[disabled]")
		}
		lines = append(lines, header)

		if row.HasState {
			lines = append(lines, s.detail.Render(fmt.Sprintf("  processed: %d  high-water mark: %d", row.Processed, row.MaxID)))
		} else {
			lines = append(lines, s.empty.Render("  not yet bootstrapped"))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
