// chainctl replays an operation script against one of the linked containers and prints the final contents in removal
// order.
package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/iotaledger/linkedds/configuration"
	"github.com/iotaledger/linkedds/ierrors"
	"github.com/iotaledger/linkedds/logger"
	"github.com/iotaledger/linkedds/script"
)

const (
	// envPrefix is the prefix of the environment variables that override loaded settings.
	envPrefix = "CHAINCTL"

	flagConfig = "config"
	flagScript = "script"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	flagSet := newFlagSet()
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	config, err := loadConfiguration(flagSet)
	if err != nil {
		return err
	}

	log, err := logger.NewRootLogger(logger.Config{
		Level:             config.String(logger.ConfigurationKeyLevel),
		DisableCaller:     config.Bool(logger.ConfigurationKeyDisableCaller),
		DisableStacktrace: config.Bool(logger.ConfigurationKeyDisableStacktrace),
		Encoding:          config.String(logger.ConfigurationKeyEncoding),
		OutputPaths:       config.Strings(logger.ConfigurationKeyOutputPaths),
	})
	if err != nil {
		return err
	}
	//nolint:errcheck // nothing to do if flushing the logger fails
	defer log.Sync()

	scriptPath := config.String(flagScript)
	if scriptPath == "" {
		return ierrors.New("no script given (use --script)")
	}

	loadedScript, err := script.Load(scriptPath)
	if err != nil {
		return err
	}

	result, err := script.NewRunner(script.WithLogger(log)).Run(loadedScript)
	if result != nil {
		printResult(stdout, result)
	}

	return err
}

func newFlagSet() *flag.FlagSet {
	flagSet := flag.NewFlagSet("chainctl", flag.ContinueOnError)
	flagSet.String(flagConfig, "", "path to a JSON, YAML or TOML config file")
	flagSet.String(flagScript, "", "path to the YAML or JSON script that shall be replayed")
	flagSet.String(logger.ConfigurationKeyLevel, logger.DefaultCfg.Level, "the minimum enabled logging level")
	flagSet.Bool(logger.ConfigurationKeyDisableCaller, false, "stops annotating logs with the calling function's file name and line number")
	flagSet.Bool(logger.ConfigurationKeyDisableStacktrace, false, "disables automatic stacktrace capturing")
	flagSet.String(logger.ConfigurationKeyEncoding, logger.DefaultCfg.Encoding, "the logger's encoding (options: \"json\", \"console\")")
	flagSet.StringSlice(logger.ConfigurationKeyOutputPaths, []string{"stderr"}, "a list of URLs, file paths or stdout/stderr to write logging output to")

	return flagSet
}

// loadConfiguration merges the config file, the flags and the environment variables (in that order).
func loadConfiguration(flagSet *flag.FlagSet) (*configuration.Configuration, error) {
	config := configuration.New()

	if configPath, _ := flagSet.GetString(flagConfig); configPath != "" {
		if err := config.LoadFile(configPath); err != nil {
			return nil, err
		}
	}

	if err := config.LoadFlagSet(flagSet); err != nil {
		return nil, ierrors.Wrap(err, "unable to load flags")
	}

	if err := config.LoadEnvironmentVars(envPrefix); err != nil {
		return nil, ierrors.Wrap(err, "unable to load environment variables")
	}

	return config, nil
}

func printResult(w io.Writer, result *script.Result) {
	for i, step := range result.Steps {
		if step.Err != nil {
			fmt.Fprintf(w, "%3d %-12s error: %v\n", i, step.Operation.Op, step.Err)

			continue
		}

		fmt.Fprintf(w, "%3d %-12s %s\n", i, step.Operation.Op, step.Output)
	}

	fmt.Fprintf(w, "values: %v\n", result.Values)
}
