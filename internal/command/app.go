package command

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/yuxishi/aws-quota-checker/internal/audit"
	"github.com/yuxishi/aws-quota-checker/internal/aws"
)

// ErrThresholdExceeded is returned by check when a result reaches the error
// threshold. main maps it to exit status 2.
var ErrThresholdExceeded = errors.New("quota error threshold exceeded")

// SessionsFor creates the session factory for a profile.
type SessionsFor func(profile string) audit.SessionFactory

func DefaultSessions(profile string) audit.SessionFactory {
	return audit.SessionFactory(aws.SessionFactory(profile))
}

func NewApp(sessions SessionsFor) *cli.Command {
	return &cli.Command{
		Name:  "quotacheck",
		Usage: "Check AWS resource usage against service quotas",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yaml",
				Usage:   "path to the YAML config file",
			},
			&cli.StringFlag{
				Name:  "profile",
				Usage: "AWS shared config profile",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error)",
			},
		},
		Commands: []*cli.Command{
			listCommand(),
			checkCommand(sessions),
		},
	}
}
