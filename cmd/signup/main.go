package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/signup/internal/logger"
	"github.com/mark3labs/signup/internal/tui/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█▀ █ █▀▀ █▄ █   █ █ █▀█"
	logoText2 = "▄█ █ █▄█ █ ▀█   █▄█ █▀▀"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "signup",
	Short: "Multi-step registration wizard and post listing in the terminal",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

signup walks you through a three step registration form (account, personal
details, contact), validates every field as you type, submits the result to
the registration endpoint and then shows the published posts.

Configuration is loaded from multiple sources with the following precedence:
  CLI flags > Environment variables > Project config > Global config > Defaults

Project config: ./signup.yml
Global config: ~/.config/signup/signup.yml`

	addEndpointFlags(rootCmd)

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(postsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(setupCmd)
}
