package cmd

import (
	"fmt"

	overlay "github.com/arl/go-overlay"
	"github.com/arl/go-overlay/internal/dbg"
	"github.com/spf13/cobra"
)

var scenarioPath string

// traceCmd represents the trace command.
var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "run a scenario through the enrichment core and print a trace",
	Long: `Load a scenario file (see 'overlay config'), run its turns through
the colocation/enrichment core, and print a textual trace of each turn's
operations, cluster, discard state and successor links, and of cluster
membership. The per-ring sort order is not printed, and no sectionalization
is run.

This trace is for inspection only: the core exposes no wire protocol or
file format of its own.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg scenarioConfig
		check(unmarshalYAMLFile(scenarioPath, &cfg))

		turns, err := buildTurns(cfg)
		check(err)
		mode, err := modeFromName(cfg.Mode)
		check(err)

		clusters := make(overlay.Clusters)
		geoms := [2]overlay.Geometry{buildRing(cfg.Rings0), buildRing(cfg.Rings1)}

		status := overlay.Enrich(turns, clusters, mode, geoms, overlay.IdentityRobustPolicy{}, false, false)

		fmt.Println("status:", status)
		fmt.Print(dbg.TraceTurns(turns))
		fmt.Print(dbg.TraceClusters(clusters))
	},
}

func init() {
	RootCmd.AddCommand(traceCmd)
	traceCmd.Flags().StringVar(&scenarioPath, "scenario", "scenario.yml", "scenario file (see 'overlay config')")
}
