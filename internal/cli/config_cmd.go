// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"

	"vaultstock/internal/config"
	"vaultstock/internal/issue"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

var (
	configInitVault  string
	configInitFolder string
	configInitForce  bool

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage vaultstock configuration",
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Create the config file",
		Long: `Create the config file under the platform config directory
($XDG_CONFIG_HOME/vaultstock on Linux) pointing at your note vault.`,
		RunE: runConfigInit,
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE:  runConfigShow,
	}
)

func init() {
	configInitCmd.Flags().StringVar(&configInitVault, "vault", "", "vault root path")
	configInitCmd.Flags().StringVar(&configInitFolder, "folder", config.DefaultInventoryFolder, "inventory folder inside the vault")
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if configInitVault == "" {
		return issue.NewErrorContext().
			WithOperation("initialize configuration").
			WithSuggestion("Pass the vault root: vaultstock config init --vault ~/vault").
			Wrap(config.ErrNoVaultPath).
			BuildError()
	}

	if _, path, err := config.Load(config.LoadOptions{}); err == nil && path != "" && !configInitForce {
		return issue.NewErrorContext().
			WithOperation("initialize configuration").
			WithResource(path).
			WithSuggestion("Use --force to overwrite the existing config file").
			Wrap(fmt.Errorf("config file already exists")).
			BuildError()
	}

	cfg := config.DefaultConfig()
	cfg.VaultPath = configInitVault
	cfg.InventoryFolder = configInitFolder

	path, err := config.Save(cfg, "")
	if err != nil {
		return issue.WrapWithOperation(err, "write config file")
	}

	fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("✓ Wrote ")+path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, path, err := config.Load(config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		return issue.WrapWithOperation(err, "load configuration")
	}
	if vaultPath != "" {
		cfg.VaultPath = vaultPath
	}

	out := cmd.OutOrStdout()
	if path != "" {
		fmt.Fprintln(out, SubtitleStyle.Render("# from "+path))
	} else {
		fmt.Fprintln(out, SubtitleStyle.Render("# defaults (no config file found)"))
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return issue.WrapWithOperation(err, "encode configuration")
	}
	fmt.Fprint(out, string(data))
	return nil
}
