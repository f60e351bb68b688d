package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"todo-backend/pkg/util/environment"

	"github.com/spf13/viper"
)

type config struct {
	AppEnv   string `mapstructure:"app_env"`
	AppName  string `mapstructure:"app_name"`
	Database struct {
		// Driver is one of pgx, postgres, mysql or sqlite.
		Driver   string
		User     string
		Password string
		Addr     string
		DBName   string
		Port     string
		MaxConns int32 `mapstructure:"max_conns"`
		Params   struct {
			ParseTime bool `mapstructure:"parse_time"`
			Charset   string
			Loc       string
			SSLMode   string `mapstructure:"ssl_mode"`
		}
	}
	Server struct {
		Address string
	}
	API struct {
		StrictNotFound bool `mapstructure:"strict_not_found"`
	}
	Log struct {
		Level  string
		Format string
	}
	Client struct {
		BaseURL        string `mapstructure:"base_url"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	}
	Cron struct {
		StatsSchedule string `mapstructure:"stats_schedule"`
	}
}

// C is config variable
var C config

// Application Environment name
const (
	Development = environment.Development
	Test        = environment.Test
	E2E         = environment.E2E
	Staging     = environment.Staging
	Production  = environment.Production
)

// ReadConfigOption is a config option
type ReadConfigOption struct {
	AppEnv string
	// Quiet skips the development dump of C.
	Quiet bool
	// AllowMissingFile keeps going with defaults and environment variables
	// when no config file is found.
	AllowMissingFile bool
	// Dir overrides the directory searched for config files.
	Dir string
}

// ReadConfig configures config file
func ReadConfig(option ReadConfigOption) {
	Config := &C

	e := appEnv(option)
	dir := option.Dir
	if dir == "" {
		dir = filepath.Join(rootDir(), "config")
	}

	viper.Reset()
	viper.AddConfigPath(dir)

	switch e {
	case Test:
		setTest()
	case E2E:
		setE2E()
	case Staging:
		setStaging()
	case Development:
		setDev()
	default:
		setProd()
	}

	setDefaults()

	viper.SetConfigType("yml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !option.AllowMissingFile || !errors.As(err, &notFound) {
			fmt.Println(err)
			log.Fatalln(err)
		}
	}

	if err := viper.Unmarshal(&Config); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	C.AppEnv = e

	if e == Development && !option.Quiet {
		spew.Dump(C)
	}
}

func setDefaults() {
	viper.SetDefault("app_name", "todo-backend")
	viper.SetDefault("server.address", "8080")
	viper.SetDefault("database.driver", "pgx")
	viper.SetDefault("database.max_conns", 20)
	viper.SetDefault("database.params.ssl_mode", "disable")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")
	viper.SetDefault("client.base_url", "http://localhost:8080")
	viper.SetDefault("client.timeout_seconds", 10)
	viper.SetDefault("cron.stats_schedule", "@every 1m")
}

func appEnv(option ReadConfigOption) string {
	if option.AppEnv != "" {
		return option.AppEnv
	}
	if os.Getenv("APP_ENV") != "" {
		return os.Getenv("APP_ENV")
	}

	return Development
}

func rootDir() string {
	_, b, _, _ := runtime.Caller(0)
	d := path.Join(path.Dir(b))
	return filepath.Dir(d)
}

func setDev() {
	viper.SetConfigName("config")
}

func setTest() {
	viper.SetConfigName("config.test")
}

func setE2E() {
	viper.SetConfigName("config.e2e")
}

func setStaging() {
	viper.SetConfigName("config.staging")
}

func setProd() {
	viper.SetConfigName("config.production")
}
