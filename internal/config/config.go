// =================================
// File: internal/config/config.go
// =================================
package config

import (
	"errors"
	"net/url"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Config is the application-level configuration. Protocol addresses are kept
// as base58 strings here and parsed into typed keys by the multihub package,
// so a malformed address fails loudly at startup instead of at submit time.
type Config struct {
	RPCList []string `mapstructure:"rpc_list"`

	ProgramID              string `mapstructure:"program_id"`
	YotMint                string `mapstructure:"yot_mint"`
	YosMint                string `mapstructure:"yos_mint"`
	SolPool                string `mapstructure:"sol_pool"`
	YotPool                string `mapstructure:"yot_pool"`
	CentralLiquidityWallet string `mapstructure:"central_liquidity_wallet"`
	CentralYotAccount      string `mapstructure:"central_yot_account"`
	LpMint                 string `mapstructure:"lp_mint"`

	KeyFile     string `mapstructure:"key_file"`
	AdminListen string `mapstructure:"admin_listen"`

	Retries        int  `mapstructure:"retries"`
	RetryElapsedMs int  `mapstructure:"retry_elapsed_ms"`
	DebugLogging   bool `mapstructure:"debug_logging"`
}

const (
	DefaultRetries        = 3
	DefaultRetryElapsedMs = 15000
	DefaultAdminListen    = ":8090"
)

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	defaults := map[string]interface{}{
		"retries":          DefaultRetries,
		"retry_elapsed_ms": DefaultRetryElapsedMs,
		"admin_listen":     DefaultAdminListen,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := loadEnvironmentVariables(v, &cfg); err != nil {
		return nil, err
	}

	return &cfg, validateConfig(&cfg)
}

func validateConfig(cfg *Config) error {
	if len(cfg.RPCList) == 0 {
		return errors.New("rpc_list is empty")
	}
	for _, rpcURL := range cfg.RPCList {
		if err := validateURLWithCache(rpcURL, "http"); err != nil {
			return errors.New("invalid RPC URL protocol")
		}
	}
	if cfg.ProgramID == "" {
		return errors.New("missing program_id in configuration")
	}
	if cfg.YotMint == "" || cfg.YosMint == "" {
		return errors.New("missing token mints in configuration")
	}
	if cfg.SolPool == "" || cfg.YotPool == "" {
		return errors.New("missing pool accounts in configuration")
	}
	if cfg.CentralLiquidityWallet == "" {
		return errors.New("missing central_liquidity_wallet in configuration")
	}
	if cfg.Retries < 0 {
		return errors.New("invalid retries count")
	}
	if cfg.RetryElapsedMs <= 0 {
		return errors.New("invalid retry_elapsed_ms")
	}
	return nil
}

var urlCache sync.Map

func validateURLWithCache(rawURL string, protocol string) error {
	if _, ok := urlCache.Load(rawURL); ok {
		return nil
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.New("invalid URL format")
	}
	if !strings.HasPrefix(parsed.Scheme, protocol) {
		return errors.New("invalid URL protocol")
	}
	urlCache.Store(rawURL, parsed)
	return nil
}

func loadEnvironmentVariables(v *viper.Viper, cfg *Config) error {
	v.AutomaticEnv()
	v.SetEnvPrefix("MULTIHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if envKeyFile := v.GetString("KEY_FILE"); envKeyFile != "" {
		cfg.KeyFile = envKeyFile
	}

	envRPCList := v.GetString("RPC_LIST")
	if envRPCList != "" {
		rpcs := strings.Split(envRPCList, ",")
		var cleanRPCs []string
		for _, rpc := range rpcs {
			clean := strings.TrimSpace(rpc)
			if clean != "" {
				cleanRPCs = append(cleanRPCs, clean)
			}
		}
		if len(cleanRPCs) > 0 {
			cfg.RPCList = cleanRPCs
		}
	}
	return nil
}
