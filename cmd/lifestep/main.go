// Command lifestep advances a life file, or a random grid, a number of
// generations and writes the result as a life file.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"life-ca/internal/config"
	"life-ca/internal/core"
	"life-ca/pkg/life"
	"life-ca/pkg/life/lifefile"
	"life-ca/pkg/life/parallel"
)

type options struct {
	In       string `env:"LIFE_CA_PATTERN"`
	Out      string
	Gens     int
	Print    bool
	TPS      int    `env:"LIFE_CA_TPS"`
	Workers  int    `env:"LIFE_CA_WORKERS"`
	Rule     string `env:"LIFE_CA_RULE"`
	Topology string
	Width    int   `env:"LIFE_CA_WIDTH"`
	Height   int   `env:"LIFE_CA_HEIGHT"`
	Seed     int64 `env:"LIFE_CA_SEED"`
}

func defaultOptions() options {
	return options{Gens: 1, TPS: 10, Topology: "toroidal", Width: 64, Height: 32, Seed: 1337}
}

func (o *options) bind(fs *flag.FlagSet) {
	fs.StringVar(&o.In, "in", o.In, "life file to load; empty starts from a random grid")
	fs.StringVar(&o.Out, "out", o.Out, "where to write the final generation; empty writes to stdout")
	fs.IntVar(&o.Gens, "gens", o.Gens, "generations to advance")
	fs.BoolVar(&o.Print, "print", o.Print, "print every generation as text")
	fs.IntVar(&o.TPS, "tps", o.TPS, "generations per second when printing")
	fs.IntVar(&o.Workers, "workers", o.Workers, "parallel stepping workers, 0 for serial")
	fs.StringVar(&o.Rule, "rule", o.Rule, "rule override, e.g. S23/B36")
	fs.StringVar(&o.Topology, "topology", o.Topology, "random grid topology (toroidal, bounded)")
	fs.IntVar(&o.Width, "w", o.Width, "random grid width")
	fs.IntVar(&o.Height, "h", o.Height, "random grid height")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "random grid seed")
}

func main() {
	opts := defaultOptions()
	if err := config.ParseEnv(&opts); err != nil {
		log.Fatal(err)
	}
	opts.bind(flag.CommandLine)
	flag.Parse()

	g, err := run(opts, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	b, _ := life.PatternBoundaries(g)
	log.Printf("%d generations: population %d, grid %dx%d, pattern at %v size %v",
		opts.Gens, g.Population(), g.Width(), g.Height(), b.Origin(), b.Size())
}

func load(opts options) (*life.Grid, error) {
	var g *life.Grid
	if opts.In != "" {
		loaded, err := lifefile.LoadFile(opts.In)
		if err != nil {
			return nil, err
		}
		g = loaded
	} else {
		topo, err := life.ParseTopology(opts.Topology)
		if err != nil {
			return nil, err
		}
		if err := life.CheckSize(opts.Width, opts.Height); err != nil {
			return nil, err
		}
		g = life.NewRandom(opts.Width, opts.Height, topo, life.DefaultRuleSet(), opts.Seed)
		if topo == life.Bounded {
			g = life.Recenter(g, life.DefaultBorder)
		}
	}
	if opts.Rule != "" {
		rules, err := life.ParseRuleSet(opts.Rule)
		if err != nil {
			return nil, err
		}
		g.SetRules(rules)
	}
	return g, nil
}

// run steps the configured grid and writes the final generation to opts.Out,
// or to w when Out is empty. Printed generations always go to w.
func run(opts options, w io.Writer) (*life.Grid, error) {
	g, err := load(opts)
	if err != nil {
		return nil, err
	}
	var stepper life.Stepper
	if opts.Workers > 0 {
		stepper.Backend = parallel.New(opts.Workers)
	}

	var pace *core.FixedStep
	if opts.Print {
		pace = core.NewFixedStep(opts.TPS)
		fmt.Fprintf(w, "generation 0, population %d\n%s\n", g.Population(), g)
	}
	for gen := 1; gen <= opts.Gens; gen++ {
		g = stepper.Step(g)
		if pace != nil {
			pace.Wait()
			fmt.Fprintf(w, "generation %d, population %d\n%s\n", gen, g.Population(), g)
		}
	}

	if opts.Out != "" {
		return g, lifefile.SaveFile(opts.Out, g)
	}
	return g, lifefile.Save(w, g)
}
