package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/pix-flow/internal/cli"
	"github.com/Veraticus/pix-flow/internal/common"
	"github.com/Veraticus/pix-flow/internal/model"
	"github.com/spf13/cobra"
)

func (a *app) setupCmd() *cobra.Command {
	var name, cpf string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Save the account holder's name and CPF",
		Long: `Save the account holder's name and CPF.

Missing values are asked for interactively. Running setup again replaces the
saved profile.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			reader := cli.NewLineReader(cmd.InOrStdin(), cmd.OutOrStdout())

			var err error
			if name, err = reader.Ask(ctx, "Nome completo", name); err != nil {
				return err
			}
			if cpf, err = reader.Ask(ctx, "CPF", cpf); err != nil {
				return err
			}

			profile, err := model.NewUserProfile(name, cpf)
			if err != nil {
				return errors.New(common.UserMessage(err))
			}

			store, cleanup, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := store.SaveProfile(ctx, &profile); err != nil {
				return fmt.Errorf("failed to save profile: %w", err)
			}
			slog.Debug("Profile saved", "backend", a.settings.Storage.Backend)

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Dados salvos. Olá, "+profile.FirstName()+"!"))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&cpf, "cpf", "", "CPF")

	return cmd
}

func (a *app) profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the saved profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			store, cleanup, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			profile, err := store.LoadProfile(ctx)
			if errors.Is(err, common.ErrNotFound) {
				fmt.Fprintln(out, cli.FormatInfo("Nenhum perfil salvo. Use: pix setup"))
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to load profile: %w", err)
			}

			fmt.Fprintln(out, cli.RenderBox("Seus dados",
				cli.FormatField("Nome", profile.Name)+"\n"+cli.FormatField("CPF", profile.TaxID)))
			return nil
		},
	}
}

func (a *app) resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved profile",
		Long: `Reset deletes the saved name and CPF. The app asks for them again on the
next start.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if !force {
				ok, err := cli.NewLineReader(cmd.InOrStdin(), out).Confirm(ctx, "Apagar seus dados salvos?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(out, cli.FormatInfo("Nada foi apagado."))
					return nil
				}
			}

			store, cleanup, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := store.DeleteProfile(ctx); err != nil {
				return fmt.Errorf("failed to delete profile: %w", err)
			}

			fmt.Fprintln(out, cli.FormatSuccess("Perfil apagado."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}
