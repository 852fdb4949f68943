package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mhr3/skipscan"
	"github.com/mhr3/skipscan/ascii"
	"github.com/mhr3/skipscan/internal/logger"
	"github.com/mhr3/skipscan/search"
)

const stdinSource = "-"

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "skipscan [flags] PATTERN [FILE...]",
		Short: "skipscan finds case-insensitive matches",
		Long: `skipscan prints the 0-based byte offset of every occurrence of PATTERN
in each FILE, ignoring ASCII case. Standard input is read when no FILE is given.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cmd, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, args[0], args[1:])
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is ./.skipscan.yaml or $HOME/.skipscan.yaml)")
	addSearchFlags(cmd.Flags())
	return cmd
}

func addSearchFlags(fs *pflag.FlagSet) {
	fs.StringP("algorithm", "a", search.BoyerMoore.String(), "matching algorithm: boyer-moore or simple")
	fs.StringP("output", "o", "text", "output format: text, json or yaml")
	fs.Bool("verify", false, "re-check every reported position")
	fs.Int("cache-size", 0, "number of results to cache across inputs (0 disables)")
	fs.String("log-level", "warn", "log level: debug, info, warn or error")
	fs.String("log-format", "text", "log format: text or json")
}

func initConfig(v *viper.Viper, cmd *cobra.Command, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".skipscan")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix("SKIPSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

func newLogger(v *viper.Viper, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(v.GetString("log-format"))
	if err != nil {
		return nil, err
	}
	logger.Configure(logger.Options{Level: level, Format: format, Output: w})
	return logger.Get(), nil
}

func run(cmd *cobra.Command, v *viper.Viper, pattern string, files []string) error {
	algo, err := search.ParseAlgorithm(v.GetString("algorithm"))
	if err != nil {
		return err
	}
	format, err := parseOutputFormat(v.GetString("output"))
	if err != nil {
		return err
	}
	log, err := newLogger(v, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if f := v.ConfigFileUsed(); f != "" {
		logger.Debug("config loaded", "file", f)
	}

	eng := skipscan.New(skipscan.Config{
		Verify:    v.GetBool("verify"),
		CacheSize: v.GetInt("cache-size"),
		Logger:    log,
	})
	if _, err := eng.Compile(pattern, algo); err != nil {
		return err
	}

	if len(files) == 0 {
		files = []string{stdinSource}
	}

	reports := make([]report, 0, len(files))
	for _, src := range files {
		text, err := readInput(cmd.InOrStdin(), src)
		if err != nil {
			return err
		}
		srcLog := logger.With("source", src)
		if !ascii.ValidString(text) {
			srcLog.Warn("input is not pure ASCII; only ASCII letters are matched case-insensitively")
		}

		res, err := eng.FindAll(text, pattern, algo)
		if err != nil {
			return fmt.Errorf("%s: %w", src, err)
		}
		srcLog.Debug("input scanned", "matches", res.Count())
		reports = append(reports, newReport(src, pattern, res))
	}

	logger.Info("scan complete", "inputs", len(reports), "algorithm", algo.String())
	return writeReports(cmd.OutOrStdout(), format, reports)
}

func readInput(stdin io.Reader, src string) (string, error) {
	if src == stdinSource {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading standard input: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), nil
}
