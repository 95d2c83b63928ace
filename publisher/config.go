package publisher

import (
	"encoding/json"
	"errors"
	"os"
)

// Config holds the Twitter app credentials plus optional knobs for the rest
// of the pipeline.
type Config struct {
	APIKey            string `json:"api_key"`
	APISecret         string `json:"api_secret"`
	AccessToken       string `json:"access_token"`
	AccessTokenSecret string `json:"access_token_secret"`

	LLM        *LLMConfig `json:"llm,omitempty"`
	ServerAddr string     `json:"server_addr,omitempty"`

	ChartWidth  int    `json:"chart_width,omitempty"`
	ChartHeight int    `json:"chart_height,omitempty"`
	ChartDir    string `json:"chart_dir,omitempty"`
	LogDir      string `json:"log_dir,omitempty"`
	PreviewDir  string `json:"preview_dir,omitempty"`
}

// LLMConfig configures the optional summary-fallback model. Absent means the
// fallback is disabled; publishing never depends on it.
type LLMConfig struct {
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	APIKey   string `json:"api_key,omitempty"`
	BaseURL  string `json:"base_url,omitempty"`
}

// LoadConfig reads JSON config from disk. Credentials left blank in the file
// fall back to environment variables, so a config.json can be committed
// without secrets.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	case errors.Is(err, os.ErrNotExist):
		// env-only setup
	default:
		return Config{}, err
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)

	if cfg.APIKey == "" || cfg.APISecret == "" || cfg.AccessToken == "" || cfg.AccessTokenSecret == "" {
		return Config{}, errors.New("config must include api_key, api_secret, access_token, and access_token_secret (file or TWITTER_* env)")
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	fillFromEnv(&cfg.APIKey, "TWITTER_API_KEY", "TWITTER_CONSUMER_KEY")
	fillFromEnv(&cfg.APISecret, "TWITTER_API_SECRET", "TWITTER_CONSUMER_SECRET")
	fillFromEnv(&cfg.AccessToken, "TWITTER_ACCESS_TOKEN")
	fillFromEnv(&cfg.AccessTokenSecret, "TWITTER_ACCESS_TOKEN_SECRET")
}

func fillFromEnv(dst *string, names ...string) {
	if *dst != "" {
		return
	}
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			*dst = v
			return
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.ChartWidth == 0 {
		cfg.ChartWidth = 1200
	}
	if cfg.ChartHeight == 0 {
		cfg.ChartHeight = 800
	}
	if cfg.ChartDir == "" {
		cfg.ChartDir = "charts"
	}
	if cfg.LogDir == "" {
		cfg.LogDir = "logs"
	}
	if cfg.PreviewDir == "" {
		cfg.PreviewDir = "tweet_previews"
	}
}
