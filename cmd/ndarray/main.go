// Package main provides the ndarray CLI: a demo of the CPU backend and a
// matmul throughput benchmark.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/born-ml/ndarray/internal/config"
)

const version = "v0.1.0-dev"

// newRootCmd builds the command tree. cfg is filled from --config before any
// subcommand runs.
func newRootCmd() *cobra.Command {
	var (
		cfgPath string
		cfg     = config.Default()
	)

	root := &cobra.Command{
		Use:           "ndarray",
		Short:         "CPU tensor engine for Born",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if cfgPath == "" {
				return nil
			}
			loaded, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			cfg = loaded
			klog.V(1).Infof("loaded configuration from %s", cfgPath)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "YAML configuration file")
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	root.AddCommand(
		&cobra.Command{
			Use:   "version",
			Short: "Show version",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "ndarray %s\n", version)
			},
		},
		newDemoCmd(&cfg),
		newBenchCmd(&cfg),
	)
	return root
}

func main() {
	klog.InitFlags(nil)
	defer klog.Flush()

	if err := newRootCmd().Execute(); err != nil {
		klog.Errorf("%+v", err)
		klog.Flush()
		os.Exit(1)
	}
}
