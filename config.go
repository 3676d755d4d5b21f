package main

import (
	"os"

	"github.com/pelletier/go-toml"
)

type Configuration struct {
	Contract struct {
		Name      string `toml:"name"`
		Symbol    string `toml:"symbol"`
		Minter    string `toml:"minter"`
		MaxMints  uint64 `toml:"max-mints"`
		MintPrice struct {
			Amount string `toml:"amount"`
			Denom  string `toml:"denom"`
		} `toml:"mint-price"`
		TokenURI string `toml:"token-uri"`
	} `toml:"contract"`
	RPC struct {
		Listen string `toml:"listen"`
	} `toml:"rpc"`
}

func Setup(path string) (*Configuration, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var conf Configuration
	err = toml.Unmarshal(f, &conf)
	if err != nil {
		return nil, err
	}
	if conf.RPC.Listen == "" {
		conf.RPC.Listen = "127.0.0.1:8780"
	}
	return &conf, nil
}
