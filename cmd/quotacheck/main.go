package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/yuxishi/aws-quota-checker/internal/command"
)

func main() {
	app := command.NewApp(command.DefaultSessions)
	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, command.ErrThresholdExceeded) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
