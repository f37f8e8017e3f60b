// Package cmd implements the tk CLI commands.
//
// A root command dispatches to subcommands (types, check, tree). Every
// command runs against a session holding the loaded configuration, the
// logger and a widget factory built from the configuration.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/go-drift/tk/cmd/tk/internal/config"
	"github.com/go-drift/tk/cmd/tk/internal/logging"
	"github.com/go-drift/tk/pkg/errors"
	"github.com/go-drift/tk/pkg/factory"
	"github.com/go-drift/tk/pkg/metrics"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(s *Session, args []string) error
}

var rootCmd = &Command{
	Name:  "tk",
	Short: "tk - widget factory tools",
	Long: `tk lists the widget types a factory can create and checks UI
descriptions (YAML or HCL) against them.

Use "tk <command> --help" for more information about a command.`,
	Usage: "tk [--config FILE] <command> [flags]",
}

var (
	commands    = make(map[string]*Command)
	subCommands []*Command
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	subCommands = append(subCommands, cmd)
}

// Session is the state shared by a single command invocation.
type Session struct {
	Config   *config.Config
	Log      *zap.Logger
	Factory  *factory.Factory
	Registry *prometheus.Registry
	Metrics  *metrics.Collector
	Out      io.Writer
}

func newSession(cfg *config.Config, log *zap.Logger, out io.Writer) (*Session, error) {
	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return nil, err
	}
	opts := cfg.FactoryOptions(log.Named("factory"))
	opts.Observer = collector
	f := factory.NewWithOptions(opts)
	if err := factory.SetActive(f); err != nil {
		return nil, err
	}
	return &Session{
		Config:   cfg,
		Log:      log,
		Factory:  f,
		Registry: reg,
		Metrics:  collector,
		Out:      out,
	}, nil
}

func (s *Session) close() {
	_ = s.Factory.Destroy()
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run runs the CLI with args, writing command output to stdout and logs
// to stderr.
func Run(args []string, stdout, stderr io.Writer) error {
	var (
		configPath   string
		filteredArgs []string
	)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(stdout)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Fprintf(stdout, "tk version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--config":
			if i+1 >= len(args) {
				return fmt.Errorf("--config requires a file path")
			}
			configPath = args[i+1]
			i++
		default:
			if strings.HasPrefix(arg, "--config=") {
				configPath = strings.TrimPrefix(arg, "--config=")
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(stdout)
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(stderr)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(stdout, cmd)
			return nil
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log, closeLog, err := logging.New(cfg.Log, stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	if cfg.Source != "" {
		log.Debug("config file loaded", zap.String("file", cfg.Source))
	}
	errors.SetHandler(errors.NewLogHandler(log))
	defer errors.SetHandler(nil)

	s, err := newSession(cfg, log, stdout)
	if err != nil {
		return err
	}
	defer s.close()

	log.Debug("running command", zap.String("command", cmd.Name), zap.Strings("args", cmdArgs))
	return cmd.Run(s, cmdArgs)
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, rootCmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", rootCmd.Usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, sub := range subCommands {
		fmt.Fprintf(w, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help           Show help for a command")
	fmt.Fprintln(w, "  -v, --version        Show version information")
	fmt.Fprintln(w, "  --config FILE        Configuration file (default: ./tk.yaml if present)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  TK_<SECTION>__<KEY>  Override a config key, e.g. TK_FACTORY__NAME_LEN=63")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  tk types                  List creatable widget types")
	fmt.Fprintln(w, "  tk check login.yaml       Validate a UI description")
	fmt.Fprintln(w, "  tk tree login.hcl         Print the widget tree a description builds")
}

func printCommandHelp(w io.Writer, cmd *Command) {
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
}
