package providers

import (
	"fmt"
	"github.com/spf13/viper"
	"path/filepath"
	"strings"
	"swiped/internal/structures"
)

const defaultMaxBodySize = 32 << 20 // vendor exports can be large, messages included

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "SWIPED_LOG_LEVEL")
	viper.BindEnv("persistence.saveInterval", "SWIPED_SAVE_INTERVAL")
	viper.BindEnv("cache.enabled", "SWIPED_CACHE_ENABLED")
	viper.BindEnv("cache.size", "SWIPED_CACHE_SIZE")
	viper.BindEnv("cache.ttl", "SWIPED_CACHE_TTL")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	if conf.Importer.MaxBodySize <= 0 {
		conf.Importer.MaxBodySize = defaultMaxBodySize
	}

	conf.AppName = "SwipeAnalyticsDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
