package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"portfolio.dev/internal/server"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed <file>",
		Short: "Store a project collection from a YAML or JSON file",
		Long: `Store a project collection under the configured key.

The file holds a list of projects. JSON files are stored verbatim; YAML files
are converted to JSON first.

Example:
  portfolio seed data/projects.yaml --driver sqlite`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return seed(cmd, rootOpts, args[0])
		},
	}
	return cmd
}

func seed(cmd *cobra.Command, opts *RootOptions, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	data, count, err := collectionJSON(raw, strings.EqualFold(filepath.Ext(path), ".json"))
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	storeCfg := opts.Config.Store
	storeCfg.Watch = false
	store, err := server.OpenStore(cmd.Context(), storeCfg, opts.Logger)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Put(cmd.Context(), storeCfg.Key, data); err != nil {
		return fmt.Errorf("store %s: %w", storeCfg.Key, err)
	}
	opts.Logger.Info("seeded projects",
		zap.String("driver", storeCfg.Driver),
		zap.String("key", storeCfg.Key),
		zap.Int("count", count),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d projects into %s:%s\n", count, storeCfg.Driver, storeCfg.Key)
	return nil
}

// collectionJSON returns the JSON to store for a seed file and the number of
// entries it holds. The top level must be a list.
func collectionJSON(raw []byte, isJSON bool) ([]byte, int, error) {
	if isJSON {
		var list []json.RawMessage
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, 0, fmt.Errorf("expected a JSON list: %w", err)
		}
		return raw, len(list), nil
	}

	var list []any
	if err := yaml.Unmarshal(raw, &list); err != nil {
		return nil, 0, fmt.Errorf("expected a YAML list: %w", err)
	}
	if list == nil {
		list = []any{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return nil, 0, fmt.Errorf("convert to json: %w", err)
	}
	return data, len(list), nil
}
