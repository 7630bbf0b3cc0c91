package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string  `yaml:"log-level" env-default:"info"`
	HTTPPort   string  `yaml:"http-port" env-default:"9090"`
	SocketPort string  `yaml:"socket-port" env-default:"8080"`
	Redis      Redis   `yaml:"redis"`
	Ledger     Ledger  `yaml:"ledger"`
	Polling    Polling `yaml:"polling"`
	Watcher    Watcher `yaml:"watcher"`
	Wallet     Wallet  `yaml:"wallet"`
	Session    Session `yaml:"session"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

type Ledger struct {
	RPCURL   string `yaml:"rpc-url" env:"LEDGER_RPC_URL" env-default:"http://localhost:8545"`
	Artifact string `yaml:"artifact" env:"LEDGER_ARTIFACT" env-required:"true"`
	GasLimit uint64 `yaml:"gas-limit" env-default:"3000000"`
}

type Polling struct {
	Interval       time.Duration `yaml:"interval" env-default:"1s"`
	MaxInterval    time.Duration `yaml:"max-interval" env-default:"10s"`
	MaxFailures    uint64        `yaml:"max-failures"`
	StopOnTerminal bool          `yaml:"stop-on-terminal"`
}

type Watcher struct {
	Interval    time.Duration `yaml:"interval" env-default:"300ms"`
	MaxInterval time.Duration `yaml:"max-interval" env-default:"300ms"`
	MaxAttempts uint64        `yaml:"max-attempts"`
}

type Wallet struct {
	PollInterval time.Duration `yaml:"poll-interval" env-default:"2s"`
}

// Boolean keys carry no env-default: cleanenv would override an explicit false.
type Session struct {
	Resume bool `yaml:"resume"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
