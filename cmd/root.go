package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/datascribe/datascribe-go/auth"
	"github.com/datascribe/datascribe-go/client"
	"github.com/datascribe/datascribe-go/config"
	"github.com/datascribe/datascribe-go/log"
)

// Environment variables prefixed with "DATASCRIBE_" can override settings e.g. "DATASCRIBE_BASE_URL"
const envVarPrefix = "datascribe"

// Exit codes
const (
	ExitOK      = 0
	ExitRuntime = 1
	ExitUsage   = 2
)

var errNoCommand = errors.New("no command given")

// runtimeError marks failures that happened after the command line was accepted
type runtimeError struct {
	err error
}

func (e *runtimeError) Error() string { return e.err.Error() }
func (e *runtimeError) Unwrap() error { return e.err }

type cli struct {
	v       *viper.Viper
	cfgFile string
	stdout  io.Writer
	stderr  io.Writer
	naming  config.NamingConvention
	logger  log.Logger
}

// NewRootCommand builds the datascribe command tree writing to stdout and stderr
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{
		v:      viper.New(),
		stdout: stdout,
		stderr: stderr,
		naming: config.NewDefaultNaming(),
		logger: log.NewNopLogger(),
	}

	rootCmd := &cobra.Command{
		Use:           "datascribe",
		Short:         "DataScribe CLI - Interact with the DataScribe API.",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errNoCommand
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initialize()
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "config file")
	flags.String("api-key", "", fmt.Sprintf("DataScribe API key (env %s)", auth.EnvAPIToken))
	flags.String("admin-api-key", "", fmt.Sprintf("API key used for privileged commands (env %s)", auth.EnvAdminAPIToken))
	flags.String("base-url", client.DefaultBaseURL, "DataScribe API base URL")
	flags.Duration("timeout", client.DefaultTimeout, "per request timeout")
	flags.Int("max-retries", client.DefaultMaxRetries, "retries for transient failures")
	flags.Bool("request-logging", false, "enable request logging")
	flags.Bool("verbose", false, "enable debug logging")

	flags.VisitAll(func(flag *pflag.Flag) {
		if flag.Name != "config" {
			_ = c.v.BindPFlag(flag.Name, flags.Lookup(flag.Name))
		}
	})

	c.v.SetEnvPrefix(envVarPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	_ = c.v.BindEnv("api-key", auth.EnvAPIToken)
	_ = c.v.BindEnv("admin-api-key", auth.EnvAdminAPIToken)

	for _, cmd := range c.routeCommands() {
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(c.materialByIDCommand(), c.searchMaterialsCommand())

	return rootCmd
}

// Execute runs the CLI with the process arguments and exits with its status
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Run executes args and returns the exit code: 0 on success, 1 for failures reported by the service or the
// transport and 2 for usage errors
func Run(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCommand(stdout, stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errNoCommand):
		return ExitUsage
	}

	var runtimeErr *runtimeError
	if errors.As(err, &runtimeErr) {
		fmt.Fprintf(stderr, "Error: %s\n", runtimeErr.err)
		return ExitRuntime
	}

	fmt.Fprintf(stderr, "Error: %s\n", err)
	fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", rootCmd.Name())
	return ExitUsage
}

func (c *cli) initialize() error {
	if c.cfgFile != "" {
		c.v.SetConfigFile(c.cfgFile)
		if err := c.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "unable to read config file %s", c.cfgFile)
		}
	}

	logger, err := log.NewCLILogger(c.v.GetBool("verbose"))
	if err != nil {
		return &runtimeError{errors.Wrap(err, "unable to initialize logger")}
	}
	c.logger = logger
	if c.cfgFile != "" {
		c.logger.Info("using config file",
			"file", c.v.ConfigFileUsed())
	}
	return nil
}

func (c *cli) clientConfig() *client.ClientConfig {
	return client.NewClientConfigWithLogger(c.logger, c.v.GetString("api-key")).
		WithBaseURL(c.v.GetString("base-url")).
		WithTimeout(c.v.GetDuration("timeout")).
		WithMaxRetries(c.v.GetInt("max-retries")).
		WithRequestLogging(c.v.GetBool("request-logging"))
}

// withClient runs fn with a client built from the current settings. Errors are reported as runtime failures.
func (c *cli) withClient(privileged bool, fn func(ctx context.Context, dc *client.Client) error) error {
	ctx := context.Background()
	if admin := c.v.GetString("admin-api-key"); privileged && admin != "" {
		ctx = auth.WithContextAPIKey(ctx, admin)
	}

	err := client.WithClient(c.clientConfig(), func(dc *client.Client) error {
		return fn(ctx, dc)
	})
	if err != nil {
		return &runtimeError{err}
	}
	return nil
}
