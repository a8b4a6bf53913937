package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type versionInfo struct {
	Version  string `json:"version" yaml:"version"`
	Go       string `json:"go" yaml:"go"`
	Platform string `json:"platform" yaml:"platform"`
}

func buildVersion() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return version
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show denlp version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := versionInfo{
				Version:  buildVersion(),
				Go:       runtime.Version(),
				Platform: fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
			}
			return a.render(cmd.OutOrStdout(), info,
				field{"version", info.Version},
				field{"go", info.Go},
				field{"platform", info.Platform},
			)
		},
	}
}

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := a.cfg
			dens := make([]string, len(c.Format.Denominators))
			for i, d := range c.Format.Denominators {
				dens[i] = strconv.Itoa(d)
			}
			return a.render(cmd.OutOrStdout(), c,
				field{"format.places", strconv.Itoa(c.Format.Places)},
				field{"format.use_24hour", strconv.FormatBool(c.Format.Use24Hour)},
				field{"format.use_ampm", strconv.FormatBool(c.Format.UseAmPm)},
				field{"format.denominators", strings.Join(dens, ",")},
				field{"normalize.remove_articles", strconv.FormatBool(c.Normalize.RemoveArticles)},
				field{"datetime.location", c.Datetime.Location},
				field{"log.level", c.Log.Level},
				field{"log.json", strconv.FormatBool(c.Log.JSON)},
				field{"output.format", c.Output.Format},
			)
		},
	}
}
