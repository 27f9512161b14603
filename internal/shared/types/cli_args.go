package types

// CLIArgs represents the command-line arguments shared by every subcommand.
type CLIArgs struct {
	ConfigFile   string
	Controller   string
	Username     string
	Password     string
	Insecure     bool
	BatchSize    int
	CallTimeout  string
	LogLevel     string
	LogFormat    string
	ReportName   string
	ReportType   []string
	Dir          string
	ReportBucket string
	HistoryPath  string
	NoHistory    bool
}
