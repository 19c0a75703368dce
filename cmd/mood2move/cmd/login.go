package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/nfrund/mood2move/internal/domain"
	"github.com/spf13/cobra"
)

var loginPassword string

var loginCmd = &cobra.Command{
	Use:   "login <username-or-email>",
	Short: "Sign in and store the access and refresh tokens",
	Long: `Exchanges a username or email and password for a token pair and stores
both tokens in the credential file. Without --password the password is read
from the first line of standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password := loginPassword
		if password == "" {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			password = strings.TrimRight(line, "\r\n")
			if password == "" {
				if err != nil {
					return fmt.Errorf("reading password: %w", err)
				}
				return errors.New("password is required")
			}
		}

		store, err := credentialStore()
		if err != nil {
			return err
		}

		if err := accountService().Login(cmd.Context(), store, args[0], password); err != nil {
			if errors.Is(err, domain.ErrInvalidCredentials) {
				return errors.New("invalid username/email or password")
			}
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Logged in.")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "password (read from stdin when omitted)")
	rootCmd.AddCommand(loginCmd)
}
