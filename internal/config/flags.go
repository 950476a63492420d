package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// parseFlags parses the configuration flags in args.
//
// Flags:
//
//	-a processing server base URL (e.g. http://localhost:5000)
//	-process-path processing endpoint path
//	-download-path download endpoint path prefix
//	-request-timeout request timeout (e.g., "30s", "1m"), 0 disables it
//	-download-dir directory for downloaded files
//	-auto-download-delay delay before the automatic download (e.g., "1s")
//	-no-auto-download disable the automatic download
//	-log-file log file path
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)

	var serverAddress string
	var processPath, downloadPath string
	var requestTimeout time.Duration
	var downloadDir string
	var autoDelay time.Duration
	var disableAuto bool
	var logFile string
	var jsonConfigPath string

	fs.StringVar(&serverAddress, "a", "", "Processing server base URL")
	fs.StringVar(&processPath, "process-path", "", "Processing endpoint path")
	fs.StringVar(&downloadPath, "download-path", "", "Download endpoint path prefix")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&downloadDir, "download-dir", "", "Directory for downloaded files")
	fs.DurationVar(&autoDelay, "auto-download-delay", 0, "Delay before the automatic download (e.g., 1s)")
	fs.BoolVar(&disableAuto, "no-auto-download", false, "Disable the automatic download")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	var autoDelayPtr *time.Duration
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "auto-download-delay" {
			autoDelayPtr = &autoDelay
		}
	})

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			ProcessPath:    processPath,
			DownloadPath:   downloadPath,
			RequestTimeout: requestTimeout,
		},
		Download: Download{
			Dir:         downloadDir,
			AutoDelay:   autoDelayPtr,
			DisableAuto: disableAuto,
		},
		Log: Log{
			File: logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func programName() string {
	if len(os.Args) > 0 {
		return os.Args[0]
	}
	return "stego-client"
}
