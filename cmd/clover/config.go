package main

const (
	defaultTextOutput = "output.txt"
	defaultJSONOutput = "output.json"
	defaultBindHost   = "127.0.0.1"
	defaultAPIPort    = 3000
)

// appConfig is internal runtime configuration.
// It is package-private to keep defaults and shape local to the CLI entrypoint.
type appConfig struct {
	LogFile    string `mapstructure:"log-file"`
	TextOutput string `mapstructure:"text-output"`
	JSONOutput string `mapstructure:"json-output"`
	CSVOutput  string `mapstructure:"csv-output"`
	Quiet      bool   `mapstructure:"quiet"`
	Serve      bool   `mapstructure:"serve"`
	APIPort    int    `mapstructure:"api-port"`
	APIAddr    string `mapstructure:"api-addr"`
	ConfigPath string `mapstructure:"-"` // not from config file
}
