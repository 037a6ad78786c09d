package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	onlyTID    string
	showMsg    bool
	noCollapse bool
	maxLines   int
	colorize   bool
)

// rootCmd is the whole CLI; depthtree has no subcommands.
var rootCmd = &cobra.Command{
	Use:   "depthtree [logfile...]",
	Short: "Depthtree — call-tree visualizer for depth-instrumented logs",
	Long: `Depthtree reconstructs per-thread call trees from logfmt-ish trace lines
carrying a call-depth counter, like:

  ts="..." level=info depth=2 tid=123 file="x.cpp" line=10 func="foo" msg="..."

and renders one indented ASCII tree per thread. Logs must be in
chronological order per thread; interleaving across threads is fine.

Examples:
  depthtree app.log
  depthtree app.log --show-msg
  depthtree app.log --only-tid 3547698
  depthtree "logs/**/*.log" --max-lines 2000`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTree,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: $HOME/.depthtree.yaml)")
	rootCmd.Flags().StringVar(&onlyTID, "only-tid", "", "show only this tid")
	rootCmd.Flags().BoolVar(&showMsg, "show-msg", false, "include msg in node labels")
	rootCmd.Flags().BoolVar(&noCollapse, "no-collapse", false, "do not collapse identical consecutive nodes")
	rootCmd.Flags().IntVar(&maxLines, "max-lines", 0, "process at most N lines (0 = all)")
	rootCmd.Flags().BoolVar(&colorize, "color", false, "colorize thread headers and repeat counts")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".depthtree")
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("color", false)

	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}
