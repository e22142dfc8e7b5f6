// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"solattr/internal/config"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:               "solattr",
	Short:             "Solidity declaration attribute parser",
	Long:              `solattr parses the attribute lists of Solidity function and variable declarations and renders them canonically`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// cfg is the effective configuration after flags are applied.
var cfg config.Config

func main() {
	rootCmd.Version = version

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(grammarCmd)
	rootCmd.AddCommand(replCmd)

	rootCmd.PersistentFlags().String("config", "", "configuration file (default: nearest "+config.FileName+")")
	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "increase log verbosity")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.Discover(".")
	}
	if err != nil {
		return err
	}

	if c, _ := cmd.Flags().GetString("color"); c != "" {
		cfg.Output.Color = c
	}
	if v, _ := cmd.Flags().GetCount("verbose"); v > 0 {
		cfg.Log.Verbosity = v
	}
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		cfg.Output.Format = f.Value.String()
	}
	if j := cmd.Flags().Lookup("jobs"); j != nil && j.Changed {
		if n, _ := cmd.Flags().GetInt("jobs"); n > 0 {
			cfg.Parse.Jobs = n
		} else {
			cfg.Parse.Jobs = runtime.GOMAXPROCS(0)
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	switch cfg.Output.Color {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	}
	commonlog.Configure(cfg.Log.Verbosity, nil)
	return nil
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
