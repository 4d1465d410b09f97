package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Long: "Create the configuration directory and a default config.yaml. An existing\n" +
			"config.yaml is left untouched. When --catalog is given it is recorded as the\n" +
			"default catalog.",
		Args: cobra.NoArgs,
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	var catalog string
	if flags.catalog != "" {
		if catalog, err = filepath.Abs(flags.catalog); err != nil {
			return userError(fmt.Errorf("resolve catalog: %w", err))
		}
	}

	configPath := filepath.Join(configDir, configFileExt)
	written, err := writeConfigIfMissing(configPath, catalog)
	if err != nil {
		return sysError(err)
	}

	out := cmd.OutOrStdout()
	if written {
		logger.Info("config written", "path", configPath)
		fmt.Fprintln(out, "Cataloger initialized successfully")
	} else {
		fmt.Fprintln(out, "Cataloger already initialized")
	}
	fmt.Fprintln(out, "  config:", configPath)
	return nil
}
