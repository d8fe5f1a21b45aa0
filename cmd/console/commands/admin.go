package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yigit/alumnihub/internal/pkg/auth"
)

// AdminCmd creates the commands that produce credentials for the dev backend's admin gate
func AdminCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin credentials",
	}
	cmd.AddCommand(hashSecretCmd(), issueTokenCmd(app))
	return cmd
}

func hashSecretCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-secret [secret]",
		Short: "Print the bcrypt hash to store as auth.adminTokenHash",
		Long:  "Hashes the shared admin secret. With no argument the secret is read from stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var secret string
			if len(args) == 1 {
				secret = args[0]
			} else {
				raw, err := readInput(cmd.InOrStdin(), "-")
				if err != nil {
					return err
				}
				secret = string(raw)
			}
			secret = strings.TrimSpace(secret)
			if secret == "" {
				return errors.New("secret must not be empty")
			}
			hash, err := auth.HashSecret(secret)
			if err != nil {
				return fmt.Errorf("failed to hash secret: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func issueTokenCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "token [subject]",
		Short: "Sign an admin JWT with auth.jwtSecret",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.JWT.Enabled() {
				return errors.New("auth.jwtSecret is not configured")
			}
			subject := "console"
			if len(args) == 1 {
				subject = args[0]
			}
			token, expiresAt, err := app.JWT.GenerateAdminToken(subject)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}
			app.Logger.Info().Str("subject", subject).Time("expiresAt", expiresAt).Msg("Issued admin token")
			return printJSON(cmd.OutOrStdout(), map[string]string{
				"token":     token,
				"expiresAt": expiresAt.UTC().Format(time.RFC3339),
			})
		},
	}
}
