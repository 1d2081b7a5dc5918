package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/Veraticus/pix-flow/internal/cli"
	"github.com/Veraticus/pix-flow/internal/common"
	"github.com/Veraticus/pix-flow/internal/model"
	"github.com/Veraticus/pix-flow/internal/payment"
	"github.com/Veraticus/pix-flow/internal/receipt"
	"github.com/Veraticus/pix-flow/internal/scanner"
	"github.com/spf13/cobra"
)

func (a *app) scanCmd() *cobra.Command {
	var pay bool

	cmd := &cobra.Command{
		Use:   "scan <image>",
		Short: "Read a Pix QR code from an image",
		Long: `Decode the QR code in an image (png, jpeg, gif, heic or pdf) and show the
payment it starts. With --pay the payment is processed and the receipt is
printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			now := time.Now()

			result, err := scanner.DecodeFile(args[0])
			if err != nil {
				return fmt.Errorf("no QR code found in %s: %w", args[0], err)
			}
			slog.Debug("QR decoded", "format", result.Format, "length", len(result.Text))

			data := payment.FromScan(result.Text, now)
			fmt.Fprintln(out, cli.RenderBox("Pagamento Pix", renderPayment(data)))

			if !pay {
				return nil
			}

			store, cleanup, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			user, err := store.LoadProfile(ctx)
			if err != nil && !errors.Is(err, common.ErrNotFound) {
				return fmt.Errorf("failed to load profile: %w", err)
			}

			handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
			payCtx := handler.HandleInterrupts(ctx, true)
			defer handler.Stop()
			if err := cli.WaitWithProgress(payCtx, cmd.ErrOrStderr(), a.settings.Payment.ProcessingDelay, "Processando pagamento..."); err != nil {
				return fmt.Errorf("payment interrupted: %w", err)
			}

			rng := rand.New(rand.NewSource(now.UnixNano())) //nolint:gosec // receipt ids are not secrets
			r := receipt.Generate(&data, user, time.Now(), rng)
			fmt.Fprintln(out, cli.RenderBox("Comprovante de Pix", renderReceipt(r)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&pay, "pay", false, "process the payment and print the receipt")

	return cmd
}

func renderPayment(p model.PaymentData) string {
	return strings.Join([]string{
		cli.FormatField("Para", p.Payee),
		cli.FormatField("Valor", "R$ "+p.Amount),
		cli.FormatField("Data", p.Date),
	}, "\n")
}

func renderReceipt(r model.Receipt) string {
	lines := []string{
		cli.FormatSuccess("Pix realizado"),
		cli.FormatField("Valor", "R$ "+r.Amount),
		cli.FormatField("Para", r.Payee),
		cli.FormatField("Data", r.FullDate+" às "+r.Time),
	}
	if r.PayerName != "" {
		lines = append(lines,
			cli.FormatField("Pagador", r.PayerName),
			cli.FormatField("CPF", r.PayerCPF))
	}
	lines = append(lines, cli.FormatField("ID da transação", r.ID))
	return strings.Join(lines, "\n")
}

