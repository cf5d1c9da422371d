package cli

import (
	"os"

	"github.com/rileyhilliard/medstock/internal/errors"
	"github.com/spf13/cobra"
)

// stats command flags
var statsNoAnimate bool

// dashboardCmd opens the inventory dashboard
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive inventory dashboard",
	Long: `Open the inventory dashboard: metric cards that count up to the
current totals, the revenue trend, stock health and a table of products
sorted by how close they are to their reorder level.

Keys:
  r     reseed stock levels (cards count up to the new totals)
  tab   cycle the product category filter
  t     switch user type theme
  ?     show all keys
  q     quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		return dashboardCommand(s)
	},
}

// statsCmd prints the landing statistics
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print headline statistics",
	Long: `Print the headline statistics, counting each one up in place.

When output is not a terminal, or with --no-animate, the final values are
printed directly.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		animated := !statsNoAnimate && isTerminal(os.Stdout)
		return statsCommand(cmd.Context(), cmd.OutOrStdout(), s, animated)
	},
}

// registerCmd runs the registration wizard
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account",
	Long: `Walk through account registration: account type, business details,
contact and review.

Press F1-F9 or click a step in the header to go back to it. Steps after
the one you are on unlock as you complete the forms before them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		return registerCommand(cmd.OutOrStdout(), s)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for medstock.

Examples:
  # Bash
  medstock completion bash > /etc/bash_completion.d/medstock

  # Zsh
  medstock completion zsh > "${fpath[1]}/_medstock"

  # Fish
  medstock completion fish > ~/.config/fish/completions/medstock.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(out)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsNoAnimate, "no-animate", false, "print final values without counting up")

	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(completionCmd)
}
