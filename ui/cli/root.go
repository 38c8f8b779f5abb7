// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/toeirei/connprompt/core/prompt"
	"github.com/toeirei/connprompt/internal/config"
	"github.com/toeirei/connprompt/internal/db"
	"github.com/toeirei/connprompt/internal/i18n"
	"github.com/toeirei/connprompt/internal/logging"
	"github.com/toeirei/connprompt/ui/tui"
	"gopkg.in/yaml.v3"
)

// ErrCancelled is returned when the user dismissed the prompt.
var ErrCancelled = errors.New("cancelled")

// package level hooks, replaced in tests
var (
	openStore = db.NewStoreFromDSN
	runTUI    = tui.Run
)

// Execute runs the CLI entrypoint. The cmd/connprompt main package should
// call this function and handle process exit.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd creates a fresh root command. Tests build their own instance.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connprompt [server]",
		Short: "Ask for the passwords needed to connect to a database server.",
		Long: `connprompt shows a dialog asking for the database password and, when the
server is reached through an SSH tunnel, the tunnel password of a registered
server. On OK the answers are written to stdout in the selected format; on
cancel nothing is written and the exit code is 1.

Instead of a registered server a prompt description can be read from a
YAML file with --data.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPrompt,
	}
	cmd.Version = versionString(resolveBuildVersion(nil))

	cmd.PersistentFlags().String("config", "", "config file")
	cmd.PersistentFlags().String("db-type", "", `registry database type ("sqlite", "postgres", "mysql")`)
	cmd.PersistentFlags().String("db-dsn", "", "registry database connection string (DSN)")
	cmd.PersistentFlags().String("lang", "", `language ("en", "de")`)
	cmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-file", "", "write logs to this file")

	cmd.Flags().String("format", "", `output format ("form", "multipart", "json", "env")`)
	cmd.Flags().String("errmsg", "", "error message shown above the prompt, e.g. after a failed login")
	cmd.Flags().String("data", "", "read the prompt description from this YAML file (\"-\" for stdin) instead of the registry")
	cmd.Flags().Bool("plain", false, "ask line by line instead of showing the dialog")

	cmd.AddCommand(
		newServersCmd(),
		newVersionCmd(),
	)
	return cmd
}

// setup loads the configuration and applies logging and language settings.
// The returned closer releases the log file, if any.
func setup(cmd *cobra.Command) (config.Config, io.Closer, error) {
	var path *string
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		if _, err := os.Stat(p); err != nil {
			return config.Config{}, nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		path = &p
	}

	cfg, err := config.LoadConfig[config.Config](cmd, config.Defaults(), path)
	if err != nil {
		return cfg, nil, err
	}

	if err := logging.SetLevel(cfg.Log.Level); err != nil {
		return cfg, nil, err
	}
	var closer io.Closer = nopCloser{}
	if cfg.Log.File != "" {
		if closer, err = logging.SetOutputFile(cfg.Log.File); err != nil {
			return cfg, nil, err
		}
	}

	i18n.Init(cfg.Language)
	logging.Debugf("config loaded: db=%s lang=%s format=%s", cfg.Database.Type, i18n.GetLang(), cfg.Format)
	return cfg, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func openRegistry(cfg config.Config) (db.Store, error) {
	store, err := openStore(cfg.Database.Type, cfg.Database.Dsn)
	if err != nil {
		return nil, fmt.Errorf("%s", i18n.T("config.error_init_db", err))
	}
	return store, nil
}

func runPrompt(cmd *cobra.Command, args []string) error {
	cfg, closer, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	if !slices.Contains(prompt.Formats(), strings.ToLower(cfg.Format)) {
		return fmt.Errorf("%w: %q", prompt.ErrUnknownFormat, cfg.Format)
	}

	dataFile, _ := cmd.Flags().GetString("data")
	errMsg, _ := cmd.Flags().GetString("errmsg")

	var data prompt.PromptData
	switch {
	case dataFile == "-":
		// the answers may follow the document on the same stream
		in := bufio.NewReader(cmd.InOrStdin())
		cmd.SetIn(in)
		if data, err = readPromptDocument(in); err != nil {
			return err
		}
		if errMsg != "" {
			data.ErrMsg = errMsg
		}
	case dataFile != "":
		if data, err = readPromptData(dataFile); err != nil {
			return err
		}
		if errMsg != "" {
			data.ErrMsg = errMsg
		}
	case len(args) == 1:
		if data, err = resolveServer(cmd.Context(), cfg, args[0], errMsg); err != nil {
			return err
		}
	default:
		return errors.New("either a server name or --data is required")
	}

	plain, _ := cmd.Flags().GetBool("plain")
	payload, err := ask(cmd, data, plain, cfg.Log.File != "")
	if err != nil {
		return err
	}
	return prompt.Encode(cmd.OutOrStdout(), payload, cfg.Format)
}

func resolveServer(ctx context.Context, cfg config.Config, name, errMsg string) (prompt.PromptData, error) {
	store, err := openRegistry(cfg)
	if err != nil {
		return prompt.PromptData{}, err
	}
	defer store.Close()

	srv, err := store.GetServer(ctx, name)
	if err != nil {
		return prompt.PromptData{}, err
	}
	return prompt.Resolve(*srv, prompt.ResolveOptions{
		AllowSavePassword:       cfg.AllowSavePassword,
		AllowSaveTunnelPassword: cfg.AllowSaveTunnelPassword,
		ErrMsg:                  errMsg,
	})
}

func readPromptData(path string) (prompt.PromptData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return prompt.PromptData{}, fmt.Errorf("reading prompt data: %w", err)
	}
	return parsePromptData(raw, path)
}

// readPromptDocument reads one YAML document from r, up to a "..." end
// marker line or EOF. Anything after the marker stays unread in r.
func readPromptDocument(r *bufio.Reader) (prompt.PromptData, error) {
	var raw []byte
	for {
		line, err := r.ReadString('\n')
		if strings.TrimRight(line, "\r\n") == "..." {
			break
		}
		raw = append(raw, line...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return prompt.PromptData{}, fmt.Errorf("reading prompt data: %w", err)
		}
	}
	return parsePromptData(raw, "stdin")
}

func parsePromptData(raw []byte, source string) (prompt.PromptData, error) {
	var data prompt.PromptData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return data, fmt.Errorf("parsing prompt data %s: %w", source, err)
	}
	return data, nil
}

// ask shows the dialog, or the plain prompt, and returns the submitted
// payload. The dialog draws on stderr so stdout carries only the result.
func ask(cmd *cobra.Command, data prompt.PromptData, plain, logToFile bool) (prompt.Payload, error) {
	if plain {
		return NewPlainPrompter(cmd.InOrStdin(), cmd.ErrOrStderr()).Prompt(data)
	}

	// the dialog owns the terminal
	if !logToFile {
		logging.Discard()
	}
	res, err := runTUI(cmd.Context(), &data, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.ErrOrStderr()))
	if err != nil {
		return prompt.Payload{}, err
	}
	if !res.Submitted {
		return prompt.Payload{}, ErrCancelled
	}
	return res.Payload, nil
}
