package cli

import (
	"fmt"

	"github.com/ppiankov/pocheck/internal/catalog"
	"github.com/ppiankov/pocheck/internal/checker"
	"github.com/ppiankov/pocheck/internal/config"
	"github.com/ppiankov/pocheck/internal/logging"
	"github.com/ppiankov/pocheck/internal/model"
	"github.com/ppiankov/pocheck/internal/pipeline"
	"github.com/ppiankov/pocheck/internal/report"
	"github.com/spf13/cobra"
)

func runCheck(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if err := validateLanguage(langCode); err != nil {
		return err
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	logger.Debugw("config loaded",
		"file", cfgFile,
		"check_source", cfg.CheckSourceString,
		"check_translation", cfg.CheckTranslationString,
		"dictionary", len(cfg.CustomDictionary),
		"disabled_rules", len(cfg.DisabledRules))
	if cfg.EnableCorrections {
		logger.Debugw("enableCorrections is reserved and has no effect")
	}

	cat, err := catalog.Load(poPath)
	if err != nil {
		return err
	}
	logger.Debugw("catalog loaded", "path", cat.Path, "entries", len(cat.Entries))

	ctx := cmd.Context()

	opts := checker.OptionsFromConfig(cfg, langCode)
	opts.Logger = logger
	c, err := checker.Open(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := c.Close(); closeErr != nil {
			logger.Warnw("close checker", "error", closeErr)
		}
	}()

	renderer := report.NewRenderer(cmd.OutOrStdout(), verbose)
	if noColor {
		renderer.DisableColor()
	}

	sel := catalog.Selection{
		Source:      cfg.CheckSourceString,
		Translation: cfg.CheckTranslationString,
	}
	sum, err := pipeline.New(c, cfg.CustomDictionary, renderer, logger).Run(ctx, cat.Candidates(sel))
	if err != nil {
		return err
	}
	logger.Debugw("run complete",
		"strings", sum.Strings,
		"findings", sum.Findings,
		"suppressed", sum.Suppressed,
		"issues", sum.Issues)

	if err := renderer.RenderTotal(sum.Issues); err != nil {
		return fmt.Errorf("render total: %w", err)
	}

	if sum.Issues > 0 {
		return fmt.Errorf("%w: %d", model.ErrIssuesFound, sum.Issues)
	}
	return nil
}
