package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/ezquant/azchart/azchart"
	"github.com/ezquant/azchart/azchart/exchange"
	"github.com/ezquant/azchart/azchart/plot"
	"github.com/ezquant/azchart/azchart/tools/log"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
)

func init() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04",
	})
}

func main() {
	app := &cli.App{
		Name:     "azchart",
		HelpName: "azchart",
		Usage:    "Candlestick chart-layer composer",
		Commands: []*cli.Command{
			{
				Name:     "render",
				HelpName: "render",
				Usage:    "Compose a chart-layer specification and emit it as JSON",
				Flags: append(inputFlags(),
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Usage:    "eg. ./spec.json (default stdout)",
						Required: false,
					},
				),
				Action: func(c *cli.Context) error {
					spec, err := composeFromFlags(c)
					if err != nil {
						return err
					}

					data, err := json.MarshalIndent(spec, "", "  ")
					if err != nil {
						return err
					}

					if output := c.String("output"); output != "" {
						return os.WriteFile(output, data, 0644)
					}

					fmt.Println(string(data))
					return nil
				},
			},
			{
				Name:     "describe",
				HelpName: "describe",
				Usage:    "Compose a chart-layer specification and print a summary table",
				Flags:    inputFlags(),
				Action: func(c *cli.Context) error {
					spec, err := composeFromFlags(c)
					if err != nil {
						return err
					}

					describe(spec)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "csv",
			Usage:    "eg. ./aapl-1d.csv",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "symbol",
			Aliases:  []string{"s"},
			Usage:    "eg. AAPL",
			Required: false,
		},
		&cli.StringFlag{
			Name:     "timeframe",
			Aliases:  []string{"t"},
			Usage:    "timeframe of the CSV rows, eg. 1d",
			Required: false,
		},
		&cli.StringFlag{
			Name:     "resample",
			Aliases:  []string{"r"},
			Usage:    "target timeframe, eg. 1w or 1mo",
			Required: false,
		},
		&cli.StringFlag{
			Name:     "config",
			Aliases:  []string{"c"},
			Usage:    "eg. ./chart.yml",
			Required: false,
		},
		&cli.BoolFlag{Name: "volume", Usage: "show the volume panel"},
		&cli.BoolFlag{Name: "rsi", Usage: "add an RSI overlay (secondary panel)"},
		&cli.BoolFlag{Name: "bbands", Usage: "add Bollinger Band overlays (price panel)"},
		&cli.BoolFlag{Name: "ma5", Usage: "add a 5-period moving average"},
		&cli.BoolFlag{Name: "ma20", Usage: "add a 20-period moving average"},
		&cli.BoolFlag{Name: "ma60", Usage: "add a 60-period moving average"},
		&cli.BoolFlag{Name: "ma200", Usage: "add a 200-period moving average"},
	}
}

func composeFromFlags(c *cli.Context) (*plot.Spec, error) {
	config := &Config{}
	if path := c.String("config"); path != "" {
		var err error
		config, err = ReadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read config file: %w", err)
		}
	}

	toggles := config.Toggles()
	for flag, target := range map[string]*bool{
		"volume": &toggles.Volume,
		"rsi":    &toggles.RSI,
		"bbands": &toggles.BBands,
		"ma5":    &toggles.MA5,
		"ma20":   &toggles.MA20,
		"ma60":   &toggles.MA60,
		"ma200":  &toggles.MA200,
	} {
		if c.IsSet(flag) {
			*target = c.Bool(flag)
		}
	}

	symbol := c.String("symbol")
	if symbol == "" {
		symbol = config.Symbol
	}

	timeframe := c.String("timeframe")
	if timeframe == "" {
		timeframe = config.Timeframe
	}
	if timeframe == "" {
		timeframe = "1d"
	}

	target := c.String("resample")
	if target == "" {
		target = timeframe
	}

	df, err := exchange.NewCSVFeed(target, exchange.PairFeed{
		Symbol:    symbol,
		File:      c.String("csv"),
		Timeframe: timeframe,
	})
	if err != nil {
		return nil, err
	}

	var options []plot.Option
	if config.Style != "" {
		options = append(options, plot.WithStyle(config.Style))
	}
	if config.FigSize.Width > 0 && config.FigSize.Height > 0 {
		options = append(options, plot.WithFigSize(config.FigSize.Width, config.FigSize.Height))
	}

	return azchart.Compose(df, toggles, options...)
}

func describe(spec *plot.Spec) {
	fmt.Printf("%s | type: %s | style: %s | volume: %t | figsize: %dx%d\n",
		spec.Symbol, spec.Type, spec.Style, spec.ShowVolume,
		spec.FigSize.Width, spec.FigSize.Height)

	if spec.MovingAverages != nil {
		fmt.Printf("moving averages: %v\n", spec.MovingAverages)
	} else {
		fmt.Println("moving averages: none")
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Overlay", "Panel", "Color", "Style", "Defined", "Points"})
	for _, row := range lo.Map(spec.Overlays, func(o plot.Overlay, _ int) []string {
		return []string{
			o.Label,
			string(o.Panel),
			o.Color,
			string(o.Style),
			strconv.Itoa(o.Values.DefinedCount()),
			strconv.Itoa(o.Values.Len()),
		}
	}) {
		table.Append(row)
	}
	table.Render()
}
