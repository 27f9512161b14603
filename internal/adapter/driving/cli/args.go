package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/diillson/wlan-autoassign-go/internal/shared/types"
)

// passwordEnv é lida quando a senha não vem da flag nem do arquivo.
const passwordEnv = "WLAN_CONTROLLER_PASSWORD"

// parseArgs parses the persistent flags into a CLIArgs struct.
func parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	flags := cmd.Flags()

	configFile, _ := flags.GetString("config-file")
	controller, _ := flags.GetString("controller")
	username, _ := flags.GetString("username")
	password, _ := flags.GetString("password")
	insecure, _ := flags.GetBool("insecure")
	batchSize, _ := flags.GetInt("batch-size")
	callTimeout, _ := flags.GetString("call-timeout")
	logLevel, _ := flags.GetString("log-level")
	logFormat, _ := flags.GetString("log-format")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	reportBucket, _ := flags.GetString("report-bucket")
	historyPath, _ := flags.GetString("history")
	noHistory, _ := flags.GetBool("no-history")

	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	// report-type tem default; só sobrescreve o arquivo quando foi passado explicitamente
	if !flags.Changed("report-type") {
		reportType = nil
	}

	return &types.CLIArgs{
		ConfigFile:   configFile,
		Controller:   controller,
		Username:     username,
		Password:     password,
		Insecure:     insecure,
		BatchSize:    batchSize,
		CallTimeout:  callTimeout,
		LogLevel:     logLevel,
		LogFormat:    logFormat,
		ReportName:   reportName,
		ReportType:   reportType,
		Dir:          dir,
		ReportBucket: reportBucket,
		HistoryPath:  historyPath,
		NoHistory:    noHistory,
	}, nil
}

// loadConfig lê o arquivo de configuração (se houver), aplica as flags por cima e os defaults no fim.
func (app *CLIApp) loadConfig(args *types.CLIArgs) (*types.Config, error) {
	cfg := &types.Config{}
	if args.ConfigFile != "" {
		loaded, err := app.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		cfg = loaded
	}

	mergeArgs(cfg, args)
	cfg.ApplyDefaults()
	return cfg, nil
}

// mergeArgs sobrescreve os valores do arquivo com as flags informadas.
func mergeArgs(cfg *types.Config, args *types.CLIArgs) {
	if args.Controller != "" {
		cfg.Controller.URL = args.Controller
	}
	if args.Username != "" {
		cfg.Controller.Username = args.Username
	}
	if args.Password != "" {
		cfg.Controller.Password = args.Password
	}
	if cfg.Controller.Password == "" {
		cfg.Controller.Password = os.Getenv(passwordEnv)
	}
	if args.Insecure {
		cfg.Controller.InsecureSkipVerify = true
	}
	if args.BatchSize > 0 {
		cfg.Assignment.BatchSize = args.BatchSize
	}
	if args.CallTimeout != "" {
		cfg.Assignment.CallTimeout = args.CallTimeout
	}
	if args.LogLevel != "" {
		cfg.Log.Level = args.LogLevel
	}
	if args.LogFormat != "" {
		cfg.Log.Format = args.LogFormat
	}
	if args.ReportName != "" {
		cfg.Report.Name = args.ReportName
	}
	if len(args.ReportType) > 0 {
		cfg.Report.Types = args.ReportType
	}
	if len(cfg.Report.Types) == 0 {
		cfg.Report.Types = []string{"csv"}
	}
	if args.Dir != "" {
		cfg.Report.Dir = args.Dir
	}
	if args.ReportBucket != "" {
		cfg.Report.Bucket = args.ReportBucket
	}
	if args.HistoryPath != "" {
		cfg.History.Path = args.HistoryPath
	}
	if args.NoHistory {
		cfg.History.Disabled = true
	}
}
