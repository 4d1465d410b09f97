// Package cli implements the cataloger command-line interface: the
// interactive shell as the default command plus scriptable subcommands that
// operate on a single catalog file.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/cataloger/internal/logging"
	"github.com/mesh-intelligence/cataloger/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	catalog   string
	jsonMode  bool
}

var flags rootFlags

// Set by PersistentPreRunE for the running command.
var (
	config    *viper.Viper
	logger    = logging.Discard()
	logCloser io.Closer
)

// NewRootCmd creates the top-level "cataloger" command with global flags
// and all subcommands registered. Without a subcommand it runs the
// interactive shell.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cataloger",
		Short: "A personal video game catalog",
		Long: "Cataloger keeps track of the games you own in a SQLite catalog file,\n" +
			"with the platform and genre of each game and whether you played and completed it.",
		Args:    cobra.NoArgs,
		Version: Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: setup,
		RunE:              runShell,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/cataloger)")
	root.PersistentFlags().StringVar(&flags.catalog, "catalog", "", "catalog file (default: catalog from config.yaml)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newShellCmd())
	root.AddCommand(newNewCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newSearchCmd())
	root.AddCommand(newPlatformsCmd())
	root.AddCommand(newGenresCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newRemoveCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newImportCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	err := root.Execute()
	closeLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cataloger:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// setup resolves the config directory, loads config.yaml and installs the
// logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return sysError(err)
	}
	config = v

	closeLogger()
	logger, logCloser = logging.Setup(logOptions(v, cmd.ErrOrStderr()))
	logger.Debug("config loaded", "dir", configDir, "file", v.ConfigFileUsed())
	return nil
}

func closeLogger() {
	if logCloser == nil {
		return
	}
	if err := logCloser.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "closing log:", err)
	}
	logCloser = nil
	logger = logging.Discard()
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > CATALOGER_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flags.configDir)
}

// resolveCatalog returns the catalog file following the precedence:
// --catalog flag > config.yaml catalog > CATALOGER_CATALOG env.
func resolveCatalog() (string, error) {
	var fromConfig string
	if config != nil {
		fromConfig = config.GetString(cfgKeyCatalog)
	}
	return paths.ResolveCatalogPath(flags.catalog, fromConfig)
}

// cliError carries the exit code for an error returned by a command.
type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

func userError(err error) error { return &cliError{code: exitUserError, err: err} }
func sysError(err error) error  { return &cliError{code: exitSysError, err: err} }

// exitCode returns the exit code for err. Errors that carry no code come
// from cobra's own argument and flag checks and count as user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ce *cliError
	if errors.As(err, &ce) {
		return ce.code
	}
	return exitUserError
}

// classify wraps err with the exit code matching its sentinel.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if isUserError(err) {
		return userError(err)
	}
	return sysError(err)
}
