package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/yuxishi/aws-quota-checker/internal/audit"
	"github.com/yuxishi/aws-quota-checker/internal/checks"
	"github.com/yuxishi/aws-quota-checker/internal/config"
	"github.com/yuxishi/aws-quota-checker/internal/logging"
	"github.com/yuxishi/aws-quota-checker/internal/model"
	"github.com/yuxishi/aws-quota-checker/internal/quota"
)

func checkCommand(sessions SessionsFor) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Run checks and report usage against quotas",
		ArgsUsage: "[check keys... | all]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "region", Aliases: []string{"r"}, Usage: "region to check, repeatable"},
			&cli.StringFlag{Name: "scope", Usage: "only checks of this scope (account, region)"},
			&cli.StringFlag{Name: "service", Usage: "only checks of this AWS service"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "table", Usage: "table or json"},
			&cli.FloatFlag{Name: "warning", Usage: "usage fraction flagged as warning"},
			&cli.FloatFlag{Name: "error", Usage: "usage fraction flagged as error"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return checkAction(ctx, cmd, sessions)
		},
	}
}

func checkAction(ctx context.Context, cmd *cli.Command, sessions SessionsFor) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	if p := cmd.String("profile"); p != "" {
		cfg.Profile = p
	}
	if l := cmd.String("log-level"); l != "" {
		cfg.LogLevel = l
	}
	if cmd.IsSet("warning") {
		cfg.Thresholds.Warning = cmd.Float("warning")
	}
	if cmd.IsSet("error") {
		cfg.Thresholds.Error = cmd.Float("error")
	}
	regions := cfg.GetRegions()
	if r := cmd.StringSlice("region"); len(r) > 0 {
		regions = r
	}

	registry, err := checks.NewRegistry()
	if err != nil {
		return err
	}
	if err := registry.Configure(cfg.Overrides, cfg.Defaults); err != nil {
		return err
	}

	filter := quota.Filter{Service: cmd.String("service")}
	if s := cmd.String("scope"); s != "" {
		scope, err := quota.ParseScope(s)
		if err != nil {
			return err
		}
		filter.Scope = &scope
	}

	log := logging.Stderr(cfg.LogLevel)
	runner := audit.NewRunner(registry, sessions(cfg.Profile), cfg.DefaultRegion, cfg.MaxConcurrency, log)
	report, err := runner.Run(ctx, audit.Request{
		Keys:    cmd.Args().Slice(),
		Regions: regions,
		Filter:  filter,
	})
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	if cmd.String("output") == "json" {
		if err := writeJSON(w, report); err != nil {
			return err
		}
	} else {
		writeResultTable(w, report.Results, cfg.Thresholds)
	}

	for _, r := range report.Results {
		if r.Level(cfg.Thresholds) == model.LevelError {
			return ErrThresholdExceeded
		}
	}
	return nil
}
