package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Controller ControllerConfig `json:"controller" yaml:"controller" toml:"controller"`
	Assignment AssignmentConfig `json:"assignment" yaml:"assignment" toml:"assignment"`
	Report     ReportConfig     `json:"report" yaml:"report" toml:"report"`
	History    HistoryConfig    `json:"history" yaml:"history" toml:"history"`
	Log        LogConfig        `json:"log" yaml:"log" toml:"log"`
}

// ControllerConfig descreve como alcançar a API REST do controlador.
type ControllerConfig struct {
	URL                string  `json:"url" yaml:"url" toml:"url"`
	Username           string  `json:"username" yaml:"username" toml:"username"`
	Password           string  `json:"password" yaml:"password" toml:"password"`
	InsecureSkipVerify bool    `json:"insecure_skip_verify" yaml:"insecure_skip_verify" toml:"insecure_skip_verify"`
	Timeout            string  `json:"timeout" yaml:"timeout" toml:"timeout"`
	RequestsPerSecond  float64 `json:"requests_per_second" yaml:"requests_per_second" toml:"requests_per_second"`
	Burst              int     `json:"burst" yaml:"burst" toml:"burst"`
	MaxRetries         int     `json:"max_retries" yaml:"max_retries" toml:"max_retries"`
}

// AssignmentConfig controla o lote e o timeout das chamadas de atribuição.
type AssignmentConfig struct {
	BatchSize   int    `json:"batch_size" yaml:"batch_size" toml:"batch_size"`
	CallTimeout string `json:"call_timeout" yaml:"call_timeout" toml:"call_timeout"`
	SkipSync    bool   `json:"skip_sync" yaml:"skip_sync" toml:"skip_sync"`
}

type ReportConfig struct {
	Name    string   `json:"name" yaml:"name" toml:"name"`
	Types   []string `json:"types" yaml:"types" toml:"types"`
	Dir     string   `json:"dir" yaml:"dir" toml:"dir"`
	Bucket  string   `json:"bucket" yaml:"bucket" toml:"bucket"`
	Prefix  string   `json:"prefix" yaml:"prefix" toml:"prefix"`
	Region  string   `json:"region" yaml:"region" toml:"region"`
	Profile string   `json:"profile" yaml:"profile" toml:"profile"` // perfil AWS usado no upload
}

type HistoryConfig struct {
	Path     string `json:"path" yaml:"path" toml:"path"`
	Disabled bool   `json:"disabled" yaml:"disabled" toml:"disabled"`
}

type LogConfig struct {
	Level  string `json:"level" yaml:"level" toml:"level"`
	Output string `json:"output" yaml:"output" toml:"output"`
	Format string `json:"format" yaml:"format" toml:"format"`
}

// Defaults used when neither the config file nor the flags set a value.
const (
	DefaultBatchSize         = 5
	DefaultCallTimeout       = "30s"
	DefaultControllerTimeout = "30s"
	DefaultRequestsPerSecond = 10
	DefaultBurst             = 5
	DefaultMaxRetries        = 2
	DefaultHistoryFile       = "wlan-autoassign.db"
)

// ApplyDefaults preenche os campos vazios com os valores padrão.
func (c *Config) ApplyDefaults() {
	if c.Assignment.BatchSize <= 0 {
		c.Assignment.BatchSize = DefaultBatchSize
	}
	if c.Assignment.CallTimeout == "" {
		c.Assignment.CallTimeout = DefaultCallTimeout
	}
	if c.Controller.Timeout == "" {
		c.Controller.Timeout = DefaultControllerTimeout
	}
	if c.Controller.RequestsPerSecond <= 0 {
		c.Controller.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if c.Controller.Burst <= 0 {
		c.Controller.Burst = DefaultBurst
	}
	// -1 desativa as novas tentativas
	if c.Controller.MaxRetries == 0 {
		c.Controller.MaxRetries = DefaultMaxRetries
	}
	if c.History.Path == "" {
		c.History.Path = DefaultHistoryFile
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Output == "" {
		c.Log.Output = "stderr"
	}
}
