package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/diillson/wlan-autoassign-go/internal/domain/repository"
	"github.com/diillson/wlan-autoassign-go/internal/shared/types"
	"github.com/diillson/wlan-autoassign-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd    *cobra.Command
	version    string
	configRepo repository.ConfigRepository
	exportRepo repository.ExportRepository
	console    types.ConsoleInterface
	quiet      bool
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(
	versionStr string,
	configRepo repository.ConfigRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
) *CLIApp {
	app := &CLIApp{
		version:    versionStr,
		configRepo: configRepo,
		exportRepo: exportRepo,
		console:    console,
	}

	rootCmd := &cobra.Command{
		Use:           "wlan-autoassign",
		Short:         "Create a WLAN service and push it to every profile of the selected sites",
		Version:       version.FormatVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !app.quiet {
				displayWelcomeBanner(cmd.Context(), app.version)
			}
		},
	}

	rootCmd.SetVersionTemplate(`{{printf "WLAN Auto-Assign version: %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.String("controller", "", "Base URL of the controller REST API")
	flags.StringP("username", "u", "", "Controller username")
	flags.StringP("password", "P", "", "Controller password (or set "+passwordEnv+")")
	flags.Bool("insecure", false, "Skip TLS certificate verification")
	flags.IntP("batch-size", "b", 0, "Number of profiles assigned concurrently (default 5)")
	flags.String("call-timeout", "", "Timeout of each assignment call, e.g. 30s")
	flags.String("log-level", "", "Diagnostic log level: debug, info, warn, error")
	flags.String("log-format", "", "Diagnostic log format: json or console")
	flags.StringP("report-name", "n", "", "Base name for the report file (without extension)")
	flags.StringSliceP("report-type", "y", []string{"csv"}, "Report types: csv, json, pdf")
	flags.StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	flags.String("report-bucket", "", "S3 bucket that receives a copy of every report")
	flags.String("history", "", "Path of the run history database")
	flags.Bool("no-history", false, "Do not record or read run history")
	flags.BoolVarP(&app.quiet, "quiet", "q", false, "Do not print the banner")

	rootCmd.AddCommand(
		app.newCreateCommand(),
		app.newDeployCommand(),
		app.newPreviewCommand(),
		app.newValidateCommand(),
		app.newHistoryCommand(),
	)

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application. SIGINT/SIGTERM cancel the running workflow.
func (app *CLIApp) Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.rootCmd.ExecuteContext(ctx)
}
