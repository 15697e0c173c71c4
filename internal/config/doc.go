// Package config provides centralized configuration management for the
// extractor. It handles loading configuration from multiple sources,
// validation, and path resolution.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables, including a local .env file (highest priority)
//	2. The first of config.yaml, config.yml, config.toml, configs/config.yaml,
//	   configs/config.toml that exists
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern CRIMEDATA_<SECTION>_<FIELD>:
//
//	CRIMEDATA_PATHS_INPUT_DIR=/srv/reports/xlsx
//	CRIMEDATA_LOGGING_LEVEL=debug
//	CRIMEDATA_PROCESSING_WORKERS=4
//	CRIMEDATA_TELEMETRY_METRICS_FILE=/var/lib/node_exporter/crimedata.prom
//
// # Path Management
//
// Relative paths are resolved against paths.base_dir, which defaults to the
// directory holding the executable. With defaults the extractor reads
// <base>/data and writes <base>/reports/results.csv.
package config
