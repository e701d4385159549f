package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/yuxishi/aws-quota-checker/internal/checks"
	"github.com/yuxishi/aws-quota-checker/internal/quota"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List available checks",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "scope", Usage: "only checks of this scope (account, region)"},
			&cli.StringFlag{Name: "service", Usage: "only checks of this AWS service"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "table", Usage: "table or json"},
		},
		Action: listAction,
	}
}

func listAction(ctx context.Context, cmd *cli.Command) error {
	registry, err := checks.NewRegistry()
	if err != nil {
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

	list := registry.Filter(filter)
	w := cmd.Root().Writer
	if cmd.String("output") == "json" {
		infos := make([]any, 0, len(list))
		for _, c := range list {
			infos = append(infos, c.Info())
		}
		return writeJSON(w, infos)
	}
	writeCheckTable(w, list)
	return nil
}
