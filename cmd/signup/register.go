package main

import (
	"fmt"

	"github.com/mark3labs/signup/internal/api"
	"github.com/mark3labs/signup/internal/form"
	"github.com/mark3labs/signup/internal/registration"
	"github.com/mark3labs/signup/internal/tui"
	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Run the registration wizard",
	Long: `Run the three step registration wizard.

Fields are validated as you type. Save & Next only advances when every field
of the current step is valid; visited steps stay reachable through their tabs
(alt+1..3). Saving on the last step submits the form. On success the post
listing opens; on failure the form is kept so you can retry.`,
	RunE: runRegister,
}

func runRegister(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	client, err := api.FromConfig(cfg)
	if err != nil {
		return err
	}

	session, err := registration.New(registration.WithDefaults(map[form.Field]string{
		form.FieldCountryCode: cfg.DefaultCountryCode,
	}))
	if err != nil {
		return fmt.Errorf("failed to start registration: %w", err)
	}

	return tui.Run(cmd.Context(), tui.NewRegisterApp(cmd.Context(), session, client))
}
