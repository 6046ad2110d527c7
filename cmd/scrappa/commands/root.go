package commands

import (
	"github.com/loykin/scrappa"
	"github.com/loykin/scrappa/internal/config"
	"github.com/loykin/scrappa/internal/constants"
	"github.com/loykin/scrappa/internal/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the state shared by every sub-command of one root command.
type app struct {
	v       *viper.Viper
	headers []string
	output  string
	path    string
}

// NewRootCmd builds the scrappa command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "scrappa",
		Short:         "Query the Scrappa API (Google Maps, Search, Translate, Images, YouTube)",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "path to a yaml/json config file")
	pf.String("api-key", "", "API key (env SCRAPPA_API_KEY)")
	pf.String("base-url", constants.DefaultBaseURL, "API base url (env SCRAPPA_BASE_URL)")
	pf.Int("timeout", constants.DefaultTimeoutSeconds, "request timeout in seconds (env SCRAPPA_TIMEOUT)")
	pf.String("log-level", "", "error, warn, info or debug")
	pf.StringArrayVarP(&a.headers, "header", "H", nil, "extra header as name=value (repeatable)")
	pf.StringVarP(&a.output, "output", "o", "json", "output format: json or yaml")
	pf.StringVar(&a.path, "path", "", "gjson path evaluated against the results, e.g. data.0.name")

	_ = a.v.BindPFlag(constants.KeyAPIKey, pf.Lookup("api-key"))
	_ = a.v.BindPFlag(constants.KeyBaseURL, pf.Lookup("base-url"))
	_ = a.v.BindPFlag(constants.KeyTimeout, pf.Lookup("timeout"))
	_ = a.v.BindPFlag(constants.KeyLogLevel, pf.Lookup("log-level"))

	root.AddCommand(
		newMapsCmd(a),
		newSearchCmd(a),
		newTranslateCmd(a),
		newImagesCmd(a),
		newYouTubeCmd(a),
		newGetCmd(a),
		newEndpointsCmd(),
	)
	return root
}

// client loads configuration and builds a client for one invocation.
func (a *app) client(cmd *cobra.Command) (*scrappa.Client, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(a.v, path)
	if err != nil {
		return nil, err
	}
	if err := cfg.SetupLogging(); err != nil {
		return nil, err
	}

	c := scrappa.New(cfg.Transport())
	for _, h := range a.headers {
		name, value, err := util.SplitKeyValue(h)
		if err != nil {
			return nil, err
		}
		c.AddHeader(name, value)
	}
	return c, nil
}

// paramFlag registers the repeatable --param flag on cmd.
func paramFlag(cmd *cobra.Command, dst *[]string) {
	cmd.Flags().StringArrayVarP(dst, "param", "p", nil, "extra query parameter as key=value (repeatable)")
}

// parseParams turns key=value pairs into Params. Later pairs win.
func parseParams(pairs []string) (scrappa.Params, error) {
	p := scrappa.Params{}
	for _, kv := range pairs {
		k, v, err := util.SplitKeyValue(kv)
		if err != nil {
			return nil, err
		}
		p[k] = v
	}
	return p, nil
}

// setIfChanged copies a string flag into p only when the user set it.
func setIfChanged(cmd *cobra.Command, p scrappa.Params, flag, key string) {
	if !cmd.Flags().Changed(flag) {
		return
	}
	v, _ := cmd.Flags().GetString(flag)
	p[key] = v
}
