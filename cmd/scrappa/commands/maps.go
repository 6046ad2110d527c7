package commands

import (
	"github.com/spf13/cobra"
)

func newMapsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maps",
		Short: "Google Maps endpoints",
	}
	cmd.AddCommand(
		newAutocompleteCmd(a),
		newAdvancedSearchCmd(a),
		newReviewsCmd(a),
		newDetailsCmd(a),
	)
	return cmd
}

func newAutocompleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "autocomplete <query>",
		Short: "Place suggestions for a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client(cmd)
			if err != nil {
				return err
			}
			res, err := c.Maps().Autocomplete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), res)
		},
	}
}

func newAdvancedSearchCmd(a *app) *cobra.Command {
	var extra []string
	cmd := &cobra.Command{
		Use:   "advanced-search <query>",
		Short: "Search places (requires --zoom)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(extra)
			if err != nil {
				return err
			}
			for _, f := range []string{"zoom", "lat", "lon", "limit"} {
				setIfChanged(cmd, params, f, f)
			}
			c, err := a.client(cmd)
			if err != nil {
				return err
			}
			res, err := c.Maps().AdvancedSearch(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().String("zoom", "", "map zoom level (required)")
	cmd.Flags().String("lat", "", "latitude")
	cmd.Flags().String("lon", "", "longitude")
	cmd.Flags().String("limit", "", "maximum number of results")
	paramFlag(cmd, &extra)
	return cmd
}

func newReviewsCmd(a *app) *cobra.Command {
	var extra []string
	cmd := &cobra.Command{
		Use:   "reviews <business_id>",
		Short: "Google reviews of a business (requires --sort)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(extra)
			if err != nil {
				return err
			}
			for _, f := range []string{"sort", "search", "limit", "page"} {
				setIfChanged(cmd, params, f, f)
			}
			c, err := a.client(cmd)
			if err != nil {
				return err
			}
			res, err := c.Maps().GoogleReviews(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().String("sort", "", "sort order (required)")
	cmd.Flags().String("search", "", "only reviews matching this text")
	cmd.Flags().String("limit", "", "maximum number of reviews")
	cmd.Flags().String("page", "", "page number")
	paramFlag(cmd, &extra)
	return cmd
}

func newDetailsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "details <business_id>",
		Short: "Details of a business",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client(cmd)
			if err != nil {
				return err
			}
			res, err := c.Maps().BusinessDetails(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), res)
		},
	}
}
