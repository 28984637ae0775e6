package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/climgabriel/SuperStatsFootball/internal/logger"
	"github.com/climgabriel/SuperStatsFootball/pkg/predict"
)

func main() {
	// Configure logging
	logger.SetShowDateTime(true)
	logger.SetLogOutput('c')

	// Pick up SUPERSTATS_* overrides from a local .env if present
	_ = godotenv.Load()

	dbPath := os.Getenv("SUPERSTATS_DB")
	if dbPath == "" {
		dbPath = "superstats.db"
	}

	if len(os.Args) < 2 {
		usage()
		return
	}

	store, err := predict.OpenStore(dbPath, predict.DefaultConfig())
	if err != nil {
		logger.Error("Failed to open strength store:", err)
		os.Exit(1)
	}
	defer store.Close()

	engine, err := predict.NewEngine(predict.DefaultConfig())
	if err != nil {
		logger.Error("Failed to create engine:", err)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "seed-demo":
		if err := seedDemo(store); err != nil {
			logger.Error("Seeding demo data failed:", err)
			os.Exit(1)
		}
		logger.Info("Demo strength profiles written")

	case "predict":
		if len(os.Args) < 4 {
			usage()
			os.Exit(1)
		}
		if err := runPrediction(store, engine, os.Args[2], os.Args[3]); err != nil {
			logger.Error("Prediction failed:", err)
			os.Exit(1)
		}

	case "result":
		if len(os.Args) < 6 {
			usage()
			os.Exit(1)
		}
		homeGoals, err1 := strconv.Atoi(os.Args[4])
		awayGoals, err2 := strconv.Atoi(os.Args[5])
		if err1 != nil || err2 != nil {
			logger.Error("Goals must be integers")
			os.Exit(1)
		}
		if err := store.RecordResult(os.Args[2], os.Args[3], demoLeague, demoSeason, homeGoals, awayGoals); err != nil {
			logger.Error("Recording result failed:", err)
			os.Exit(1)
		}

	default:
		usage()
		os.Exit(1)
	}
}

const (
	demoLeague = "premier-league"
	demoSeason = "2025/2026"
)

func usage() {
	fmt.Println("usage: superstats <command>")
	fmt.Println("  seed-demo                         write demo strength profiles")
	fmt.Println("  predict <home> <away>             predict a fixture")
	fmt.Println("  result <home> <away> <hg> <ag>    record a result and update ratings")
}

func seedDemo(store *predict.StrengthStore) error {
	profiles := []predict.StrengthProfile{
		{Team: "arsenal", League: demoLeague, Season: demoSeason, Attack: 1.35, Defense: 0.80, EloRating: 1610},
		{Team: "chelsea", League: demoLeague, Season: demoSeason, Attack: 1.15, Defense: 0.95, EloRating: 1540},
		{Team: "everton", League: demoLeague, Season: demoSeason, Attack: 0.90, Defense: 1.10, EloRating: 1460},
		{Team: "burnley", League: demoLeague, Season: demoSeason, Attack: 0.75, Defense: 1.30, EloRating: 1395},
	}

	for _, p := range profiles {
		if err := store.UpsertStrength(p); err != nil {
			return err
		}
	}
	return nil
}

func runPrediction(store *predict.StrengthStore, engine *predict.Engine, homeTeam, awayTeam string) error {
	input, err := store.MatchInput(homeTeam, awayTeam, demoLeague, demoSeason)
	if err != nil {
		return err
	}

	result, err := engine.Predict(input, predict.AllModels())
	if err != nil {
		return err
	}

	id, err := store.SavePrediction(homeTeam, awayTeam, demoLeague, demoSeason, result)
	if err != nil {
		return err
	}
	logger.Info("Prediction saved", id)

	fmt.Printf("%s v %s\n", homeTeam, awayTeam)
	fmt.Printf("consensus: home %.2f%%  draw %.2f%%  away %.2f%%\n",
		result.Consensus.HomeWin, result.Consensus.Draw, result.Consensus.AwayWin)
	fmt.Printf("recommendation: %s (confidence %.2f, %d models)\n",
		result.Consensus.Recommendation, result.Consensus.Confidence, result.Consensus.ModelsCount)

	fmt.Println()
	for _, c := range predict.CompareModels(result.Predictions) {
		fmt.Printf("%-22s home %6.2f%%  draw %6.2f%%  away %6.2f%%  -> %s\n",
			c.Model, c.HomeWin, c.Draw, c.AwayWin, c.Prediction)
	}
	return nil
}
