package main

import (
	"context"
	"flag"
	"fmt"
	"jump-route-service/internal/adapters/catalog"
	"jump-route-service/internal/adapters/render"
	"jump-route-service/internal/config"
	"jump-route-service/internal/domain"
	"jump-route-service/internal/services"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// planner is the batch CLI: load a CSV catalogue, plan the jump route, print
// the route table, write the output CSV, and optionally render a PNG.
// Defaults come from a small persisted config so repeat runs only override
// what changed.
func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env")
	}

	configPath := flag.String("config", "planner_config.json", "path to the persisted planner defaults")
	// Defaults below are resolved against the config file after parsing.
	jumpRange := flag.Float64("range", 0, "max jump range in light-years")
	file := flag.String("file", "", "system catalogue CSV file")
	modeFlag := flag.String("mode", "", "routing mode: loop, end_at_last, or open")
	out := flag.String("out", "route_output.csv", "route output CSV file (empty to skip)")
	png := flag.String("png", "", "render the route to this PNG file (empty to skip)")
	flag.Parse()

	cfg := config.LoadFile(*configPath)
	if *jumpRange == 0 {
		*jumpRange = cfg.MaxJumpRange
	}
	if *file == "" {
		*file = cfg.Filename
	}
	if *modeFlag == "" {
		*modeFlag = cfg.Mode
	}

	mode, err := domain.ParseRouteMode(*modeFlag)
	if err != nil {
		log.Fatal(err)
	}

	systems, err := catalog.LoadSystems(*file)
	if err != nil {
		log.Fatal(err)
	}
	if len(systems) == 0 {
		log.Fatalf("no systems loaded from %q", *file)
	}
	log.Printf("loaded %d systems from %q", len(systems), *file)

	plan, err := services.PlanRoute(context.Background(), systems, *jumpRange, mode)
	if err != nil {
		log.Fatal(err)
	}

	printRoute(plan)

	if *out != "" {
		if err := catalog.WriteRoute(*out, plan); err != nil {
			log.Fatal(err)
		}
		log.Printf("route CSV saved to %q", *out)
	}

	if *png != "" {
		if err := render.RoutePNG(plan, *png, render.Options{}); err != nil {
			log.Fatal(err)
		}
		log.Printf("route PNG saved to %q", *png)
	}

	// Persist the effective settings as the next run's defaults.
	cfg.MaxJumpRange = *jumpRange
	cfg.Filename = *file
	cfg.Mode = string(mode)
	if err := cfg.Save(*configPath); err != nil {
		log.Printf("could not persist planner defaults: %v", err)
	}
}

func printRoute(plan *domain.RouteResult) {
	w := os.Stdout

	fmt.Fprintln(w, "FINAL ROUTE")
	cumulative := 0.0
	for i, s := range plan.Systems {
		jumps := 0
		if i > 0 {
			leg := plan.Legs[i-1]
			jumps = leg.Jumps
			cumulative += leg.Distance
		}

		marker := ""
		switch {
		case i == 0:
			marker = "START"
		case i == len(plan.Systems)-1 && s == plan.Systems[0]:
			marker = "LOOP"
		case i == len(plan.Systems)-1:
			marker = "END"
		}

		fmt.Fprintf(w, "%3d | %-38s | %3d jumps | %8.1f LY  %s\n", i+1, s.Name, jumps, cumulative, marker)
	}

	visited := len(plan.Systems)
	if visited > 1 && plan.Systems[0] == plan.Systems[visited-1] {
		visited--
	}
	fmt.Fprintf(w, "Systems visited: %d | Total jumps: %d | Total distance: %.1f LY\n",
		visited, plan.TotalJumps, plan.TotalDistance)
}
