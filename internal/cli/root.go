package cli

import (
	"fmt"
	"strings"

	"github.com/ppiankov/pocheck/internal/config"
	"github.com/ppiankov/pocheck/internal/model"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// Version is the released version, overridden at build time with -ldflags
var Version = "v0.3.0"

var (
	cfgFile  string
	poPath   string
	langCode string
	verbose  bool
	debug    bool
	noColor  bool
)

// rootCmd checks a catalog when invoked without a subcommand
var rootCmd = &cobra.Command{
	Use:   "pocheck --path <file.po>",
	Short: "pocheck - grammar and spelling checks for gettext catalogs",
	Long: `pocheck sends every string of a .po catalog to a grammar checking
service (LanguageTool by default) and prints each issue it finds.

Findings whose flagged text is listed in the custom dictionary of the
config file are skipped. The dictionary is also used to suggest fixes
for project words the grammar checker does not know.

The exit status is 0 when no issues were reported and 1 otherwise.

Example:
  pocheck --path locale/es/LC_MESSAGES/app.po --language es
  pocheck --path app.pot --config ci/poLanguageChecker.json --verbose`,
	Args:          cobra.NoArgs,
	RunE:          runCheck,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pocheck %s\n", Version)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "pocheck config file (JSON)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logs on stderr")

	// Check flags
	rootCmd.Flags().StringVar(&poPath, "path", "", "path to the .po file")
	rootCmd.Flags().StringVar(&langCode, "language", "en-US", "language of the checked strings (examples: en-US, en, es, ca-ES, auto)")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "display additional info such as the triggered rule ID")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	_ = rootCmd.MarkFlagRequired("path")

	rootCmd.AddCommand(versionCmd)
}

// validateLanguage accepts BCP 47 tags and LanguageTool's "auto"
func validateLanguage(code string) error {
	if strings.EqualFold(code, "auto") {
		return nil
	}
	if _, err := language.Parse(code); err != nil {
		return fmt.Errorf("%w: invalid language %q: %v", model.ErrConfiguration, code, err)
	}
	return nil
}
