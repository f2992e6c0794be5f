// Package cli arma el comando raíz: carga la config con viper y arranca el
// intérprete sobre un registro en memoria.
package cli

import (
	"context"
	"fmt"
	"strings"

	mem "animal-registry/internal/adapters/storage/memory"
	"animal-registry/internal/config"
	"animal-registry/internal/domain/animals"
	"animal-registry/internal/interpreter"
	"animal-registry/internal/platform/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// NewRootCmd usa su propia instancia de viper para que los tests no
// compartan estado global.
func NewRootCmd(version string) *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:          "animal-registry",
		Short:        "Interactive registry of animals and the commands they know",
		Long:         `An interactive menu to add animals, teach them commands, list them and hear them speak. Nothing is persisted: the registry lives only while the program runs.`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v, cfgFile)
			if err != nil {
				return err
			}

			log := logger.New(cfg.LoggerOptions(cmd.ErrOrStderr()))
			log.Debug("config loaded", map[string]any{
				"log_level":  cfg.LogLevel,
				"log_format": cfg.LogFormat,
				"config":     v.ConfigFileUsed(),
			})

			// Registro volátil: se descarta al salir.
			svc := animals.NewService(mem.NewAnimalRepo())
			it := interpreter.New(svc, cmd.InOrStdin(), cmd.OutOrStdout(), log)
			if err := it.Run(cmd.Context()); err != nil {
				log.Error("interpreter stopped", map[string]any{"error": err.Error()})
				return fmt.Errorf("running registry: %w", err)
			}
			return nil
		},
	}

	defaults := config.Defaults()
	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"optional YAML config file (keys: log_level, log_format, app_name)")
	cmd.Flags().String("log-level", defaults.LogLevel, "log level: debug|info|warn|error")
	cmd.Flags().String("log-format", defaults.LogFormat, "log format: text|json")

	bindFlags(v, cmd.Flags())
	return cmd
}

// bindFlags mapea --log-level a la key log_level, etc.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		_ = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
}

// loadConfig: flag > env (LOG_LEVEL, LOG_FORMAT, APP_NAME) > archivo > defaults.
func loadConfig(v *viper.Viper, cfgFile string) (config.Config, error) {
	defaults := config.Defaults()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_format", defaults.LogFormat)
	v.SetDefault("app_name", defaults.AppName)
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return config.Config{}, fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
	}

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return config.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// Execute corre el comando raíz con ctx.
func Execute(ctx context.Context, version string) error {
	return NewRootCmd(version).ExecuteContext(ctx)
}
