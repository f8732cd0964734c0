// Package main runs the anime arena demo: a roster of fighters, one
// showcase battle with a full transcript, and an optional batch of
// random pairings.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/profile"

	"animearena/internal/combat"
	"animearena/internal/config"
	"animearena/internal/console"
	"animearena/internal/i18n"
	"animearena/internal/util"
)

type arenaConfig struct {
	Seed    int64  `env:"ARENASIM_SEED" envDefault:"12345"`
	Locale  string `env:"ARENASIM_LOCALE" envDefault:"en-US"`
	Color   bool   `env:"ARENASIM_COLOR" envDefault:"true"`
	Roster  string `env:"ARENASIM_ROSTER"`
	Battles int    `env:"ARENASIM_BATTLES" envDefault:"1"`
	Profile string `env:"ARENASIM_PROFILE"`
}

// parseConfig layers command-line flags over environment defaults.
func parseConfig(fs *flag.FlagSet, args []string) (arenaConfig, error) {
	var cfg arenaConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for random picks and batch pairings")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "transcript locale (en-US, ja-JP)")
	fs.BoolVar(&cfg.Color, "color", cfg.Color, "colorize the transcript")
	fs.StringVar(&cfg.Roster, "roster", cfg.Roster, "roster yaml path, empty for the built-in roster")
	fs.IntVar(&cfg.Battles, "battles", cfg.Battles, "number of battles; above 1 switches to random pairings with a summary")
	fs.StringVar(&cfg.Profile, "profile", cfg.Profile, "write a cpu or mem profile to ./prof")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func main() {
	cfg, err := parseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		exitf("arenasim: %v", err)
	}

	stop := func() {}
	if cfg.Profile != "" {
		p, err := startProfile(cfg.Profile)
		if err != nil {
			exitf("arenasim: %v", err)
		}
		stop = p.Stop
	}

	err = run(cfg, os.Stdout)
	stop()
	if err != nil {
		exitf("arenasim: %v", err)
	}
}

// run executes the configured mode and writes the transcript to out.
func run(cfg arenaConfig, out io.Writer) error {
	bundle, err := i18n.Load()
	if err != nil {
		return err
	}
	renderer := console.New(out, bundle.Printer(cfg.Locale), cfg.Color)

	rosterCfg, err := config.LoadRoster(cfg.Roster)
	if err != nil {
		return err
	}
	roster, err := combat.BuildRoster(rosterCfg)
	if err != nil {
		return err
	}
	if len(roster) < 2 {
		return fmt.Errorf("roster needs at least two fighters, got %d", len(roster))
	}

	rng := util.New(cfg.Seed)
	if cfg.Battles > 1 {
		return runBatch(cfg, renderer, rosterCfg, rng)
	}
	runDemo(renderer, roster, rng)
	return nil
}

// runDemo plays the single showcase: roster status, healing check, a
// deliberately broken pairing, the headline battle between the first
// two fighters, then the collection helpers.
func runDemo(r *console.Renderer, roster []*combat.Character, rng *rand.Rand) {
	for _, c := range roster {
		c.Emit = r.HandleEvent
	}

	// ---- Roster ----
	r.Headerf("roster.header", len(roster))
	for _, c := range roster {
		c.Status()
	}

	// ---- Heal check ----
	for _, c := range roster {
		var f combat.Fighter = c
		if h, ok := f.(combat.Healer); ok {
			r.HealLine(c.Name(), h.Heal())
		}
	}

	// ---- Validation + battle ----
	a, b := roster[0], roster[1]

	// show the gate catching a bad pairing before the real one runs
	r.ValidationResult(a.Name(), a.Name(), combat.ValidateForBattle(a, a))

	if err := combat.ValidateForBattle(a, b); err != nil {
		r.ValidationResult(a.Name(), b.Name(), err)
	} else {
		r.ValidationResult(a.Name(), b.Name(), nil)
		arena := &combat.Arena{Observer: r, Emit: r.HandleEvent}
		arena.Fight(a, b)
	}

	// ---- Picks and transforms ----
	if pick, ok := util.PickRandom(rng, roster); ok {
		r.PickResult(pick.Name(), true)
	} else {
		r.PickResult("", false)
	}

	r.Linef("transform.summaries")
	for _, s := range util.Map(roster, fighterSummary) {
		r.Linef("transform.item", s)
	}
	r.Linef("transform.standing")
	for _, c := range util.Filter(roster, func(c *combat.Character) bool { return c.HP() > 50 }) {
		r.Linef("transform.item", c.Name())
	}
	r.Linef("transform.by_power")
	for _, c := range util.SortedBy(roster, func(x, y *combat.Character) bool { return x.Power() > y.Power() }) {
		r.Linef("transform.item", c.Name())
	}
}

// fighterSummary derives the plain string shown by the map demo.
func fighterSummary(c *combat.Character) string {
	return fmt.Sprintf("%s fights for %s at power %d", c.Name(), c.Universe().Title(), c.Power())
}

// runBatch fights random pairings on one reused arena, rebuilding the
// roster each time so every battle starts fresh. Wins are reported in
// roster order; pairings the gate rejects are skipped and counted.
func runBatch(cfg arenaConfig, r *console.Renderer, rosterCfg *config.RosterConfig, rng *rand.Rand) error {
	r.Headerf("batch.header", cfg.Battles, cfg.Seed)
	arena := &combat.Arena{}
	wins := map[string]int{}
	fights := map[string]int{}
	skipped := 0

	for i := 0; i < cfg.Battles; i++ {
		roster, err := combat.BuildRoster(rosterCfg)
		if err != nil {
			return err
		}
		a, _ := util.PickRandom(rng, roster)
		b, _ := util.PickRandom(rng, roster)
		if err := combat.ValidateForBattle(a, b); err != nil {
			skipped++
			continue
		}
		winner := arena.Fight(a, b)
		fights[a.Name()]++
		fights[b.Name()]++
		wins[winner.Name()]++
	}

	for _, def := range rosterCfg.Fighters {
		if fights[def.Name] == 0 {
			continue
		}
		r.Linef("batch.row", def.Name, wins[def.Name], fights[def.Name])
	}
	if skipped > 0 {
		r.Linef("batch.skipped", skipped)
	}
	return nil
}

// startProfile enables profiling for the whole run; profiles land under
// ./prof.
func startProfile(mode string) (interface{ Stop() }, error) {
	switch mode {
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.NoShutdownHook, profile.ProfilePath("./prof")), nil
	case "mem":
		return profile.Start(profile.MemProfile, profile.NoShutdownHook, profile.ProfilePath("./prof")), nil
	default:
		return nil, fmt.Errorf("unknown profile mode %q", mode)
	}
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
