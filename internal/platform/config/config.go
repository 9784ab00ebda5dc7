package config

import (
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/crypto/bcrypt"
)

// Config memuat seluruh pengaturan proses dari environment. Semua field punya
// default, jadi tanpa konfigurasi apa pun perilakunya sama dengan bawaan.
type Config struct {
	DataDir           string `envconfig:"STORE_DATA_DIR" default:"."`
	UsersFile         string `envconfig:"STORE_USERS_FILE" default:"users.json"`
	CatalogFile       string `envconfig:"STORE_CATALOG_FILE" default:"catalog.json"`
	HistoryFile       string `envconfig:"STORE_HISTORY_FILE" default:"purchase_history.json"`
	LowStockThreshold int    `envconfig:"STORE_LOW_STOCK_THRESHOLD" default:"3"`
	BcryptCost        int    `envconfig:"STORE_BCRYPT_COST" default:"10"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return cfg, nil
}

// Path file data relatif terhadap DataDir.

func (c Config) UsersPath() string   { return filepath.Join(c.DataDir, c.UsersFile) }
func (c Config) CatalogPath() string { return filepath.Join(c.DataDir, c.CatalogFile) }
func (c Config) HistoryPath() string { return filepath.Join(c.DataDir, c.HistoryFile) }
