package cli

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/internal/auth"
	"github.com/spf13/cobra"
)

// chess-suggest login
func loginCmd(a *app) *cobra.Command {
	var email, name string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Record who is playing",
		Long: heredoc.Doc(`login stores a local user record. Moves can only be
			requested while a user is logged in. Nothing is sent to a
			server.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.deps.Auth.Login(cmd.Context(), email, name)
			if err != nil {
				return err
			}
			a.say(cmd, "auth.welcome", user)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

// chess-suggest logout
func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.deps.Auth.Logout(cmd.Context()); err != nil {
				return err
			}
			a.say(cmd, "auth.logout", nil)
			return nil
		},
	}
}

// chess-suggest whoami
func whoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.deps.Auth.User(cmd.Context())
			if errors.Is(err, auth.ErrNotLoggedIn) {
				return a.loginRequired()
			}
			if err != nil {
				return err
			}
			a.say(cmd, "auth.whoami", user)
			return nil
		},
	}
}

func (a *app) loginRequired() error {
	return fmt.Errorf("%w: %s", errLoginRequired, a.cat.Text("auth.required", nil))
}
