package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"

	"github.com/smasonuk/cubeworld"
	"github.com/smasonuk/cubeworld/internal/config"
	"github.com/smasonuk/cubeworld/internal/viewer"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	worldPath := flag.String("world", "", "world file to load (overrides config)")
	generate := flag.Bool("generate", false, "generate terrain instead of loading a world file")
	seed := flag.Int64("seed", 0, "terrain seed used with -generate")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *worldPath != "" {
		cfg.World.Path = *worldPath
	}
	if *generate {
		cfg.World.Generate = true
	}
	if *seed != 0 {
		cfg.World.Seed = *seed
	}

	world, err := loadWorld(cfg)
	if err != nil {
		log.Fatal(err)
	}

	session := cubeworld.NewSession(world, cfg.SessionOptions())
	if err := viewer.Run(session, cfg); err != nil {
		log.Fatal(err)
	}
	log.Println("Bye.")
}

// loadWorld reads the configured world file, generating terrain when asked
// to or when there is no file yet.
func loadWorld(cfg *config.Config) (*cubeworld.World, error) {
	if !cfg.World.Generate {
		w, err := cubeworld.LoadWorldFile(cfg.World.GetPath())
		if err == nil {
			return w, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		log.Printf("No world at %s, generating one", cfg.World.GetPath())
	}
	return cubeworld.GenerateWorld(cfg.World.Seed, cfg.World.GetSize(), cfg.World.GetHeight()), nil
}
