package main

import (
	"flag"
	"os"
	"time"

	"ludo/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML experiment")
	preset := flag.String("preset", "", "Name of a built-in experiment, used when -config is empty")
	output := flag.String("output", "", "Directory for the results, overrides the experiment")
	parquet := flag.Bool("parquet", false, "Also write Parquet records")
	debug := flag.Bool("debug", false, "Log every game transition")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var config experiments.Config
	var err error
	if *configPath != "" {
		config, err = experiments.LoadConfig(*configPath)
	} else {
		config, err = experiments.Preset(*preset)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load experiment")
	}
	if *output != "" {
		config.Output = *output
	}
	if *parquet {
		config.Parquet = true
	}

	result, err := experiments.Run(config)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	dir, err := experiments.Store(config, result)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to store results")
	}
	for _, s := range result.Summaries {
		log.Info().Msgf("matchup %d agent %d: %d/%d wins, mean place %.2f ± %.2f, mean rolls %.1f",
			s.Matchup, s.Agent, s.Wins, s.Games, s.MeanPlace, s.StdPlace, s.MeanRolls)
	}
	log.Info().Msgf("results stored in %s", dir)
}
