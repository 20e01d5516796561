package main

import (
	"os"

	"github.com/ezquant/azchart/azchart/plot"

	"gopkg.in/yaml.v3"
)

// Config presets chart options and feature toggles. Toggle flags given
// on the command line win over the file.
type Config struct {
	Symbol    string `yaml:"symbol"`
	Timeframe string `yaml:"timeframe"`
	Style     string `yaml:"style"`
	FigSize   struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"figsize"`
	Indicators struct {
		Volume bool `yaml:"volume"`
		RSI    bool `yaml:"rsi"`
		BBands bool `yaml:"bbands"`
		MA5    bool `yaml:"ma5"`
		MA20   bool `yaml:"ma20"`
		MA60   bool `yaml:"ma60"`
		MA200  bool `yaml:"ma200"`
	} `yaml:"indicators"`
}

func ReadConfig(path string) (config *Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config = &Config{}
	err = yaml.Unmarshal(data, config)

	return
}

func (c *Config) Toggles() plot.Toggles {
	return plot.Toggles{
		Volume: c.Indicators.Volume,
		RSI:    c.Indicators.RSI,
		BBands: c.Indicators.BBands,
		MA5:    c.Indicators.MA5,
		MA20:   c.Indicators.MA20,
		MA60:   c.Indicators.MA60,
		MA200:  c.Indicators.MA200,
	}
}
