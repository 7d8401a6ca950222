package main

import "github.com/BurntSushi/toml"

// config is the optional TOML configuration of the driver.  Flags only
// ever raise settings above what the file asks for.
type config struct {
	Debug   bool   `toml:"debug"`
	Tree    bool   `toml:"tree"`
	Grammar string `toml:"grammar"` // A semver constraint on the grammar version
}

func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
