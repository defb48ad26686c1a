package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/MGTheTrain/hbnb-storage/internal/domain/entities"
	"github.com/MGTheTrain/hbnb-storage/internal/domain/storage"
	"github.com/MGTheTrain/hbnb-storage/internal/infrastructure/persistence"
	"github.com/MGTheTrain/hbnb-storage/internal/pkg/config"
	"github.com/MGTheTrain/hbnb-storage/internal/pkg/logger"
)

// Output formats of the all command
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// EngineOpener returns a Ready engine and the function that releases it.
type EngineOpener func(ctx context.Context, log logger.Logger) (storage.Engine, func() error, error)

// StorageCommandHandler encapsulates logic for handling storage operations via CLI.
type StorageCommandHandler struct {
	logger logger.Logger
	open   EngineOpener
}

// NewStorageCommandHandler initializes a StorageCommandHandler that logs to logOut.
// A nil opener reads the database settings from the environment.
func NewStorageCommandHandler(logOut io.Writer, open EngineOpener) (*StorageCommandHandler, error) {
	loggerInstance, err := setupLogger(logOut, os.Getenv("HBNB_LOG_LEVEL"))
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	if open == nil {
		open = OpenEngineFromEnv
	}

	return &StorageCommandHandler{
		logger: loggerInstance,
		open:   open,
	}, nil
}

// OpenEngineFromEnv connects with the HBNB_* settings (and HBNB_CONFIG_PATH if set)
// and reloads a DBStorage.
func OpenEngineFromEnv(ctx context.Context, log logger.Logger) (storage.Engine, func() error, error) {
	settings, err := config.LoadDatabaseSettings(os.Getenv("HBNB_CONFIG_PATH"))
	if err != nil {
		return nil, nil, err
	}

	db, err := persistence.NewDBConnection(*settings)
	if err != nil {
		return nil, nil, err
	}

	store, err := persistence.NewDBStorage(db, persistence.DefaultRegistry(), log, persistence.Options{
		ResetSchema:    settings.IsTestEnv(),
		ExpireOnCommit: true,
	})
	if err != nil {
		_ = persistence.CloseDB(db)
		return nil, nil, err
	}
	if err := store.Reload(ctx); err != nil {
		_ = persistence.CloseDB(db)
		return nil, nil, err
	}

	release := func() error {
		if err := store.Close(); err != nil {
			return err
		}
		return persistence.CloseDB(db)
	}
	return store, release, nil
}

func (commandHandler *StorageCommandHandler) withEngine(cmd *cobra.Command, fn func(ctx context.Context, engine storage.Engine) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	engine, release, err := commandHandler.open(ctx, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := release(); err != nil {
			commandHandler.logger.Warn("failed to release storage: ", err)
		}
	}()

	return fn(ctx, engine)
}

// MigrateCmd creates all missing tables
func (commandHandler *StorageCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) error {
	return commandHandler.withEngine(cmd, func(_ context.Context, _ storage.Engine) error {
		fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
		return nil
	})
}

// AllCmd prints the string form of every stored entity, optionally of one type only
func (commandHandler *StorageCommandHandler) AllCmd(cmd *cobra.Command, args []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("invalid output flag: %w", err)
	}
	if output != OutputJSON && output != OutputYAML {
		return fmt.Errorf("unsupported output format %q", output)
	}

	typeName := ""
	if len(args) > 0 {
		typeName = args[0]
	}

	return commandHandler.withEngine(cmd, func(ctx context.Context, engine storage.Engine) error {
		objs, err := engine.All(ctx, typeName)
		if err != nil {
			return err
		}
		return writeObjects(cmd.OutOrStdout(), output, objs)
	})
}

// ShowCmd prints one entity
func (commandHandler *StorageCommandHandler) ShowCmd(cmd *cobra.Command, args []string) error {
	return commandHandler.withEngine(cmd, func(ctx context.Context, engine storage.Engine) error {
		e, err := engine.Get(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), e.String())
		return nil
	})
}

// CreateCmd creates an entity from key=value arguments and prints its id
func (commandHandler *StorageCommandHandler) CreateCmd(cmd *cobra.Command, args []string) error {
	typeName := args[0]
	record := ParseAttributes(args[1:])

	return commandHandler.withEngine(cmd, func(ctx context.Context, engine storage.Engine) error {
		e, err := engine.NewEntity(typeName)
		if err != nil {
			return err
		}
		if err := e.FromRecord(record); err != nil {
			return err
		}
		if err := engine.New(ctx, e); err != nil {
			return err
		}
		if err := engine.Save(ctx); err != nil {
			return err
		}

		commandHandler.logger.Info("created ", entities.Ref(e))
		fmt.Fprintln(cmd.OutOrStdout(), e.GetID())
		return nil
	})
}

// DestroyCmd deletes an entity and, per relationship policy, its dependents
func (commandHandler *StorageCommandHandler) DestroyCmd(cmd *cobra.Command, args []string) error {
	typeName, id := args[0], args[1]

	return commandHandler.withEngine(cmd, func(ctx context.Context, engine storage.Engine) error {
		e, err := engine.Get(ctx, typeName, id)
		if err != nil {
			return err
		}
		if err := engine.Delete(ctx, e); err != nil {
			return err
		}
		if err := engine.Save(ctx); err != nil {
			return err
		}

		commandHandler.logger.Info("destroyed ", entities.Ref(e))
		return nil
	})
}

// ParseAttributes turns key=value arguments into a record. Quoted values are
// strings with underscores read as spaces; unquoted values become an int or a
// float when they parse as one. Malformed or empty arguments are skipped.
func ParseAttributes(args []string) entities.Record {
	record := entities.Record{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" || value == "" {
			continue
		}

		if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
			value = value[1 : len(value)-1]
			value = strings.ReplaceAll(value, `\"`, `"`)
			record[key] = strings.ReplaceAll(value, "_", " ")
			continue
		}

		if i, err := cast.ToIntE(value); err == nil && !strings.ContainsAny(value, ".eE") {
			record[key] = i
		} else if f, err := cast.ToFloat64E(value); err == nil {
			record[key] = f
		} else {
			record[key] = value
		}
	}
	return record
}

func writeObjects(w io.Writer, output string, objs map[string]string) error {
	if output == OutputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(objs); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	}

	data, err := json.MarshalIndent(objs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// InitStorageCommands registers storage-related commands
func InitStorageCommands(rootCmd *cobra.Command, open EngineOpener) error {
	handler, err := NewStorageCommandHandler(rootCmd.ErrOrStderr(), open)
	if err != nil {
		return fmt.Errorf("failed to create storage command handler %w", err)
	}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create missing tables",
		Args:  cobra.NoArgs,
		RunE:  handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	var allCmd = &cobra.Command{
		Use:   "all [type]",
		Short: "List stored entities, optionally of one type",
		Args:  cobra.MaximumNArgs(1),
		RunE:  handler.AllCmd,
	}
	allCmd.Flags().StringP("output", "o", OutputJSON, "Output format (json or yaml)")
	rootCmd.AddCommand(allCmd)

	var showCmd = &cobra.Command{
		Use:   "show <type> <id>",
		Short: "Show one entity",
		Args:  cobra.ExactArgs(2),
		RunE:  handler.ShowCmd,
	}
	rootCmd.AddCommand(showCmd)

	var createCmd = &cobra.Command{
		Use:   "create <type> [key=value...]",
		Short: "Create an entity and print its id",
		Args:  cobra.MinimumNArgs(1),
		RunE:  handler.CreateCmd,
	}
	rootCmd.AddCommand(createCmd)

	var destroyCmd = &cobra.Command{
		Use:   "destroy <type> <id>",
		Short: "Delete an entity",
		Args:  cobra.ExactArgs(2),
		RunE:  handler.DestroyCmd,
	}
	rootCmd.AddCommand(destroyCmd)

	return nil
}
