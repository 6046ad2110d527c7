package commands

import (
	"github.com/loykin/scrappa"
	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	var extra []string
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Google web search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(extra)
			if err != nil {
				return err
			}
			c, err := a.client(cmd)
			if err != nil {
				return err
			}
			res, err := c.Search().Search(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), res)
		},
	}
	paramFlag(cmd, &extra)
	return cmd
}

func newImagesCmd(a *app) *cobra.Command {
	var extra []string
	cmd := &cobra.Command{
		Use:   "images <query>",
		Short: "Google image search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(extra)
			if err != nil {
				return err
			}
			c, err := a.client(cmd)
			if err != nil {
				return err
			}
			res, err := c.Images().Images(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), res)
		},
	}
	paramFlag(cmd, &extra)
	return cmd
}

func newTranslateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Google Translate (requires --text, --source and --target)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := scrappa.Params{}
			for _, f := range []string{"text", "source", "target"} {
				setIfChanged(cmd, params, f, f)
			}
			c, err := a.client(cmd)
			if err != nil {
				return err
			}
			res, err := c.Translate().Translate(cmd.Context(), params)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().String("text", "", "text to translate")
	cmd.Flags().String("source", "", "source language code")
	cmd.Flags().String("target", "", "target language code")
	return cmd
}

func newYouTubeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "youtube <url>",
		Short: "YouTube video information",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client(cmd)
			if err != nil {
				return err
			}
			res, err := c.YouTube().Video(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), res)
		},
	}
}
