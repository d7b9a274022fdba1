package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"piper-tts/config"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "piper-tts",
		Short:        "Text-to-speech HTTP service backed by piper and ffmpeg",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         runServe,
	}
	cmd.Flags().StringP("config", "c", "", "Path to config file (default: ./config.yml or ./config/config.yml)")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	app, err := InitializeApp(config.File(path))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.Run(ctx)
}
