package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/spf13/cobra"

	contentstudio "github.com/hupe1980/contentstudio"
	"github.com/hupe1980/contentstudio/agent"
	"github.com/hupe1980/contentstudio/config"
	"github.com/hupe1980/contentstudio/logging"
	"github.com/hupe1980/contentstudio/mcpclient"
	"github.com/hupe1980/contentstudio/model"
	"github.com/hupe1980/contentstudio/model/anthropic"
	"github.com/hupe1980/contentstudio/model/openai"
	"github.com/hupe1980/contentstudio/server"
)

var configFlag string

var rootCmd = &cobra.Command{
	Use:   "contentstudio",
	Short: "contentstudio - media generation tools behind a chat agent",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the media tools over MCP on stdio",
	RunE:  runServe,
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive chat session driving the tools through a model",
	RunE:  runChat,
}

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the registered tools",
	RunE:  runTools,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default ~/.contentstudio/config.toml)")
	rootCmd.AddCommand(serveCmd, chatCmd, toolsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, logging.Logger, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.NewSlogLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
	return cfg, logger, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	cs, err := contentstudio.New(func(o *contentstudio.Options) {
		o.OutputDir = cfg.OutputDir
		o.Logger = logger
	})
	if err != nil {
		return err
	}

	srv := server.New(cs.Registry(), func(o *server.Options) {
		o.Logger = logger
	})
	return srv.ServeStdio()
}

func runTools(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	cs, err := contentstudio.New(func(o *contentstudio.Options) {
		o.OutputDir = cfg.OutputDir
		o.Logger = logger
	})
	if err != nil {
		return err
	}

	for _, t := range cs.Registry().Tools() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", t.Name(), t.Description())
	}
	return nil
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.RequireCredential(); err != nil {
		return err
	}

	ctx := context.Background()

	command, serverArgs, err := serverInvocation(cfg, configFlag)
	if err != nil {
		return err
	}

	invoker, err := mcpclient.Connect(ctx, command, serverArgs, func(o *mcpclient.Options) {
		o.Env = os.Environ()
		o.Logger = logger
	})
	if err != nil {
		return err
	}
	defer invoker.Close()

	llm := buildModel(cfg)

	a := agent.New(llm, invoker, func(o *agent.Options) {
		o.MaxIterations = cfg.MaxIterations
		o.Logger = logger
	})

	return chatLoop(ctx, a, cmd.InOrStdin(), cmd.OutOrStdout())
}

// serverInvocation resolves the tool server command line. An empty
// configured command re-execs this binary, forwarding the --config path
// so both halves load the same file.
func serverInvocation(cfg *config.Config, configPath string) (string, []string, error) {
	args := append([]string(nil), cfg.Server.Args...)
	if cfg.Server.Command != "" {
		return cfg.Server.Command, args, nil
	}
	self, err := os.Executable()
	if err != nil {
		return "", nil, fmt.Errorf("resolve executable: %w", err)
	}
	if configPath != "" {
		args = append(args, "--config", configPath)
	}
	return self, args, nil
}

// buildModel selects the provider adapter from configuration.
func buildModel(cfg *config.Config) model.Model {
	if strings.ToLower(cfg.Provider) == "anthropic" {
		return anthropic.NewModel(func(o *anthropic.Options) {
			if cfg.Model != "" {
				o.Model = anthropicsdk.Model(cfg.Model)
			}
			o.Temperature = cfg.Temperature
			o.APIKey = cfg.APIKey
		})
	}
	return openai.NewModel(func(o *openai.Options) {
		if cfg.Model != "" {
			o.Model = cfg.Model
		}
		o.Temperature = cfg.Temperature
		o.APIKey = cfg.APIKey
	})
}

// chatLoop reads free-text lines until quit/exit/q or EOF.
func chatLoop(ctx context.Context, a *agent.Agent, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "ContentStudio chat (type 'quit' to exit)")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\nYou: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		switch strings.ToLower(input) {
		case "quit", "exit", "q":
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}

		reply, err := a.ProcessQuery(ctx, "chat", input)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "\nAssistant: %s\n", reply)
	}
	return scanner.Err()
}
