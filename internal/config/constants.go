package config

import "crimedata/pkg/contracts"

// Application constants for the crime data extractor
const (
	// Application Info
	AppName    = "Crime Data Extractor"
	AppVersion = contracts.Version

	// EnvPrefix namespaces every environment override (CRIMEDATA_LOGGING_LEVEL, ...)
	EnvPrefix = "CRIMEDATA"

	// File Paths (relative to the base directory)
	DefaultInputDir    = "data"
	DefaultReportsDir  = "reports"
	DefaultLogsDir     = "logs"
	DefaultResultsFile = "results.csv"
	DefaultLogFile     = "extractor.log"

	// Worksheet selection
	R1SheetName = "R1"

	// Telemetry
	TraceExporterNone   = "none"
	TraceExporterStdout = "stdout"
)

// configFileLocations lists the config files probed at startup, in order.
var configFileLocations = []string{
	"config.yaml",
	"config.yml",
	"config.toml",
	"configs/config.yaml",
	"configs/config.toml",
}
