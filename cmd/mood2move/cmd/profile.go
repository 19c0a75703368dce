package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// errNotLoggedIn is the only failure the profile command reports; the cause
// is logged, never shown.
var errNotLoggedIn = errors.New("not logged in, run \"mood2move login\" first")

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the signed-in user's profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := credentialStore()
		if err != nil {
			return err
		}

		profile, err := accountService().LoadProfile(cmd.Context(), store)
		if err != nil {
			return errNotLoggedIn
		}

		d := profile.Display()
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "Username\t%s\n", d.Username)
		fmt.Fprintf(w, "Email\t%s\n", d.Email)
		fmt.Fprintf(w, "Mobile\t%s\n", d.Mobile)
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
