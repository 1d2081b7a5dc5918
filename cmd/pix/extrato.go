package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/Veraticus/pix-flow/internal/cli"
	"github.com/Veraticus/pix-flow/internal/common"
	"github.com/Veraticus/pix-flow/internal/format"
	"github.com/Veraticus/pix-flow/internal/model"
	"github.com/Veraticus/pix-flow/internal/statement"
	"github.com/spf13/cobra"
)

// Statement output formats.
const (
	extratoText = "text"
	extratoOFX  = "ofx"
)

func (a *app) extratoCmd() *cobra.Command {
	var outFormat, output string

	cmd := &cobra.Command{
		Use:   "extrato",
		Short: "Print or export the account statement",
		Long: `Print the account statement grouped by day, or export it as an OFX bank
statement with --format ofx.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := time.Now()
			rng := rand.New(rand.NewSource(now.UnixNano())) //nolint:gosec // statement minutes are decorative
			groups := statement.Build(now, rng)

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", output, err)
				}
				defer func() {
					if err := f.Close(); err != nil {
						slog.Error("Failed to close statement file", "error", err)
					}
				}()
				w = f
			}

			return writeExtrato(w, outFormat, groups, now)
		},
	}

	cmd.Flags().StringVar(&outFormat, "format", extratoText, "output format (text, ofx)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

func writeExtrato(w io.Writer, outFormat string, groups []model.StatementGroup, now time.Time) error {
	switch outFormat {
	case extratoText:
		_, err := fmt.Fprintln(w, renderExtrato(groups))
		return err
	case extratoOFX:
		return statement.ExportOFX(w, groups, statement.DefaultAccount, now)
	default:
		return fmt.Errorf("%w: format %q", common.ErrInvalidConfig, outFormat)
	}
}

func renderExtrato(groups []model.StatementGroup) string {
	var b strings.Builder
	b.WriteString(cli.FormatTitle("Extrato"))
	b.WriteString("\n")
	b.WriteString(cli.FormatField("Saldo", format.Money(statement.Balance(groups))))
	b.WriteString("\n")

	for _, g := range groups {
		b.WriteString("\n")
		b.WriteString(cli.BoldStyle.Render(format.CapitalizeFirst(g.Header)))
		b.WriteString("\n")
		for _, t := range g.Items {
			amount := format.SignedMoney(t.SignedCents())
			if t.Direction == model.DirectionOut {
				amount = cli.ErrorStyle.Render(amount)
			} else {
				amount = cli.SuccessStyle.Render(amount)
			}
			fmt.Fprintf(&b, "  %s %s  %s  %s  %s\n",
				t.Icon, t.Title, cli.SubtleStyle.Render(t.Counterparty), format.Clock(t.At), amount)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
