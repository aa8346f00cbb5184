package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newInventoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "List installed collections as reported by ansible-galaxy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInventory(cmd)
		},
	}
	return cmd
}

func runInventory(cmd *cobra.Command) error {
	service := newAppService()
	versions, err := service.InstalledCollections(cmd.Context())
	if err != nil {
		return err
	}

	names := make([]string, 0, len(versions))
	for name := range versions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s %s\n", name, versions[name])
	}
	return nil
}

// resolveString prefers an explicitly-set flag over the viper key.
func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
