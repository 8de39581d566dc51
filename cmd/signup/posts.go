package main

import (
	"fmt"

	"github.com/mark3labs/signup/internal/api"
	"github.com/mark3labs/signup/internal/tui"
	"github.com/mark3labs/signup/internal/tui/posts"
	"github.com/spf13/cobra"
)

var postsFlags struct {
	plain bool
}

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Show the published posts",
	RunE:  runPosts,
}

func init() {
	postsCmd.Flags().BoolVar(&postsFlags.plain, "plain", false, "Print posts as plain text instead of opening the TUI")
}

func runPosts(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	client, err := api.FromConfig(cfg)
	if err != nil {
		return err
	}

	if !postsFlags.plain {
		return tui.Run(cmd.Context(), tui.NewPostsApp(cmd.Context(), client))
	}

	list, err := client.ListPosts(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list posts: %w", err)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), posts.Plain(list))
	return err
}
