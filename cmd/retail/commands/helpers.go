package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fivetwenty-io/retail-samples/internal/config"
	"github.com/fivetwenty-io/retail-samples/internal/constants"
	"github.com/fivetwenty-io/retail-samples/internal/logger"
	"github.com/fivetwenty-io/retail-samples/internal/output"
	"github.com/fivetwenty-io/retail-samples/pkg/retail"
	"github.com/fivetwenty-io/retail-samples/pkg/retailclient"
	"github.com/fivetwenty-io/retail-samples/pkg/samples"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// Common static errors used throughout the commands package.
var (
	ErrConfirmationRequired = errors.New("confirmation required: rerun with --force in non-interactive mode")
	ErrCancelled            = errors.New("cancelled")
)

// Hooks replaced in tests.
var (
	newClient     = retailclient.New
	isInteractive = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) } //nolint:gosec // fd fits in int
)

// session holds everything a command needs to run a tutorial.
type session struct {
	settings *config.Settings
	config   *retail.Config
	logger   *logger.Logger
	printer  *output.Printer
	client   retail.Client
	runner   *samples.Runner
}

// loadSettings resolves the settings bound to the global viper instance.
func loadSettings() (*config.Settings, error) {
	return config.Resolve(viper.GetViper())
}

// newSession builds the logger, printer, client and runner for cmd.
func newSession(ctx context.Context, cmd *cobra.Command) (*session, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}

	if err := settings.RequireProject(); err != nil {
		return nil, err
	}

	log, err := logger.NewWithWriter(settings.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	printer, err := output.NewPrinterWithInfo(settings.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	retailConfig := settings.RetailConfig(log)

	client, err := newClient(ctx, retailConfig)
	if err != nil {
		_ = log.Sync()

		return nil, err
	}

	log.Debug("client created", map[string]interface{}{
		"project":  settings.ProjectNumber,
		"endpoint": settings.Endpoint,
	})

	runner := samples.NewRunnerFromConfig(client, retailConfig, cmd.OutOrStdout(), samples.WithPrinter(printer))

	return &session{
		settings: settings,
		config:   retailConfig,
		logger:   log,
		printer:  printer,
		client:   client,
		runner:   runner,
	}, nil
}

// runnerWith returns a runner like the session runner with opts applied.
func (s *session) runnerWith(cmd *cobra.Command, opts ...samples.Option) *samples.Runner {
	opts = append([]samples.Option{samples.WithPrinter(s.printer)}, opts...)

	return samples.NewRunnerFromConfig(s.client, s.config, cmd.OutOrStdout(), opts...)
}

// Close releases the client and flushes the logger.
func (s *session) Close() error {
	err := s.client.Close()
	_ = s.logger.Sync()

	return err
}

// withSession runs fn with a session bound to the command context.
func withSession(cmd *cobra.Command, fn func(ctx context.Context, s *session) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := newSession(ctx, cmd)
	if err != nil {
		return err
	}

	defer func() { _ = s.Close() }()

	return fn(ctx, s)
}

// confirm asks before destructive operations unless force is set.
func confirm(cmd *cobra.Command, force bool, prompt string) error {
	if force {
		return nil
	}

	if !isInteractive() {
		return ErrConfirmationRequired
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (y/N): ", prompt)

	if !readYes(cmd.InOrStdin()) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")

		return ErrCancelled
	}

	return nil
}

func readYes(in io.Reader) bool {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))

	return answer == constants.ConfirmYes || answer == constants.ConfirmYesFull
}

// ignoreCancelled turns a declined confirmation into a clean exit.
func ignoreCancelled(err error) error {
	if errors.Is(err, ErrCancelled) {
		return nil
	}

	return err
}
