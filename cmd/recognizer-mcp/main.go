// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-yaml"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/docscan/recognizer-mcp/internal/bridge"
	"github.com/docscan/recognizer-mcp/internal/config"
	"github.com/docscan/recognizer-mcp/internal/log"
	"github.com/docscan/recognizer-mcp/internal/native"
	"github.com/docscan/recognizer-mcp/internal/report"
	"github.com/docscan/recognizer-mcp/internal/tool"
)

var version = "dev"

type app struct {
	envFile string
	cfg     *config.Config
	bridge  *bridge.Bridge
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(&app{}).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree around a. The merged configuration and
// bridge are stored on a before any subcommand runs.
func newRootCmd(a *app) *cobra.Command {
	var (
		logLevel string
		logFile  string
		noSchema bool
	)

	root := &cobra.Command{
		Use:          "recognizer-mcp",
		Short:        "Typed results and settings for document recognizers",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.envFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("log-file") {
				cfg.LogFile = logFile
			}
			if noSchema {
				cfg.ValidateSchema = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if _, err := log.Setup(log.Options{Level: cfg.LogLevel, File: cfg.LogFile}); err != nil {
				return err
			}

			var opts []bridge.Option
			if cfg.ValidateSchema {
				opts = append(opts, bridge.WithSchemaValidation())
			}
			a.cfg = cfg
			a.bridge = bridge.New(tool.DefaultRegistry(), native.DefaultCodec(), opts...)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "optional .env file with RECOGNIZER_* settings")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "also write logs to this rotated file")
	root.PersistentFlags().BoolVar(&noSchema, "no-schema", false, "skip schema validation of native results")

	root.AddCommand(a.serveCmd(), a.mapCmd(), a.settingsCmd(), a.listCmd())
	return root
}

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the recognizer tools over MCP stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			server := mcp.NewServer(&mcp.Implementation{Name: "recognizer-mcp", Version: version}, nil)
			tool.NewHandlers(a.bridge).Register(server)

			log.Info(log.Fields{"version": version, "recognizers": a.bridge.RecognizerTypes()}, "serving MCP over stdio")
			if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
				return fmt.Errorf("mcp server stopped: %w", err)
			}
			return nil
		},
	}
}

func (a *app) mapCmd() *cobra.Command {
	var (
		types  []string
		format string
		asMD   bool
	)
	cmd := &cobra.Command{
		Use:   "map FILE",
		Short: "Map a native result file (or - for stdin) to typed results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			if format == "" && args[0] == "-" {
				format = a.cfg.DefaultFormat
			}

			run, err := a.bridge.Run(cmd.Context(), bridge.Request{
				RecognizerTypes: types,
				Source:          native.Source{Content: content, Format: format, ID: args[0]},
			})
			if err != nil {
				return err
			}

			if asMD {
				md, err := report.Markdown(run.Results)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), md)
				return err
			}

			docs := make([]map[string]interface{}, 0, len(run.Results))
			for _, res := range run.Results {
				fields, err := report.Fields(res)
				if err != nil {
					return err
				}
				fields["recognizerType"] = res.RecognizerType()
				docs = append(docs, fields)
			}
			out, err := yaml.Marshal(docs)
			if err != nil {
				return fmt.Errorf("failed to marshal results: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringSliceVarP(&types, "type", "t", nil, "recognizer type per native result (one type applies to all)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "native result format: json or yaml (auto-detected when omitted)")
	cmd.Flags().BoolVar(&asMD, "markdown", false, "print a Markdown summary instead of YAML")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func (a *app) settingsCmd() *cobra.Command {
	var (
		recognizerType string
		overridesFile  string
	)
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Print the native settings of a recognizer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var overrides []byte
			if overridesFile != "" {
				var err error
				if overrides, err = readInput(cmd.InOrStdin(), overridesFile); err != nil {
					return err
				}
			}
			settings, err := a.bridge.Settings(recognizerType, overrides)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(settings))
			return err
		},
	}
	cmd.Flags().StringVarP(&recognizerType, "type", "t", "", "recognizer type")
	cmd.Flags().StringVar(&overridesFile, "overrides", "", "YAML or JSON settings file applied over the defaults")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List supported recognizer types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, t := range a.bridge.RecognizerTypes() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), t); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return content, nil
	}
	content, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return content, nil
}
