package uisound

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/tphakala/go-uisound/internal/envelope"
	"github.com/tphakala/go-uisound/internal/mix"
	"github.com/tphakala/go-uisound/internal/pcm"
	"github.com/tphakala/go-uisound/internal/pipeline"
	"github.com/tphakala/go-uisound/internal/source"
)

// Sound is a rendered recipe.
type Sound struct {
	// Name is the recipe name.
	Name string

	// Buffer holds the normalized floating point samples.
	Buffer Buffer

	// Container holds the quantized samples ready to be written.
	Container *Container

	// Clipped counts samples clamped during quantization. It is zero unless
	// normalization failed upstream.
	Clipped int
}

// Render synthesizes a catalog recipe. The noise generator is seeded from
// cfg.Seed and the recipe ID, so each recipe draws an independent stream.
func Render(id RecipeID, cfg Config) (*Sound, error) {
	recipe, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return RenderRecipe(recipe, cfg, source.NewRand(cfg.Seed, uint64(id)))
}

// RenderCustom synthesizes a recipe outside the catalog with a generator
// seeded from cfg.Seed.
func RenderCustom(recipe Recipe, cfg Config) (*Sound, error) {
	return RenderRecipe(recipe, cfg, source.NewRand(cfg.Seed, customStream))
}

// RenderRecipe synthesizes recipe with the given generator. The recipe is
// fully validated before any sample is generated.
func RenderRecipe(recipe Recipe, cfg Config, rng *rand.Rand) (*Sound, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: random generator is nil", ErrInvalidConfig)
	}

	peak := recipe.Peak
	if cfg.Peak > 0 {
		peak = cfg.Peak
	}
	rate := cfg.SampleRate
	if err := recipe.validate(rate, peak); err != nil {
		return nil, err
	}
	chain, err := pipeline.BuildPipeline(recipe.pipelineSpec(peak), rate)
	if err != nil {
		return nil, fmt.Errorf("recipe %s: %w", recipe.Name, err)
	}

	components := make([]mix.Component, 0, len(recipe.Layers))
	for i, l := range recipe.Layers {
		buf, err := source.Generate(l.Source, rate, rng)
		if err != nil {
			return nil, fmt.Errorf("recipe %s layer %d: %w", recipe.Name, i, err)
		}
		if l.Envelope != nil {
			if buf, err = envelope.Shape(*l.Envelope, buf); err != nil {
				return nil, fmt.Errorf("recipe %s layer %d: %w", recipe.Name, i, err)
			}
		}
		components = append(components, mix.Component{
			Buffer: buf,
			Weight: l.Weight,
			Offset: offsetSamples(l.Offset, rate),
		})
	}

	mixed, err := mix.Mix(components...)
	if err != nil {
		return nil, fmt.Errorf("recipe %s: %w", recipe.Name, err)
	}
	out, err := chain.Run(mixed)
	if err != nil {
		return nil, fmt.Errorf("recipe %s: %w", recipe.Name, err)
	}

	container, clipped, err := pcm.Encode(out)
	if err != nil {
		return nil, fmt.Errorf("recipe %s: %w", recipe.Name, err)
	}
	if clipped > 0 {
		cfg.warnf("recipe %s: clamped %d samples during quantization", recipe.Name, clipped)
	}

	return &Sound{
		Name:      recipe.Name,
		Buffer:    out,
		Container: container,
		Clipped:   clipped,
	}, nil
}

// Result is the outcome of one recipe in RenderAll or RenderRecipes.
// Exactly one of Sound and Err is set.
//
// ID is only meaningful when Catalog is set; recipes rendered through
// RenderRecipes leave both zero.
type Result struct {
	ID      RecipeID
	Catalog bool
	Name    string
	Sound   *Sound
	Err     error
}

// RenderAll renders the whole catalog. A failing recipe never stops the
// others; its error is reported in its own Result. When cfg.EnableParallel
// is set, recipes are rendered concurrently. Output is identical either way.
func RenderAll(cfg Config) []Result {
	ids := IDs()
	return renderEach(len(ids), cfg.EnableParallel, func(i int) Result {
		id := ids[i]
		s, err := Render(id, cfg)
		return Result{ID: id, Catalog: true, Name: id.String(), Sound: s, Err: err}
	})
}

// RenderRecipes renders a recipe collection such as one returned by
// LoadRecipes. Recipe i draws noise from its own stream of cfg.Seed, so
// results do not depend on rendering order.
func RenderRecipes(recipes []Recipe, cfg Config) []Result {
	return renderEach(len(recipes), cfg.EnableParallel, func(i int) Result {
		rng := source.NewRand(cfg.Seed, customStream+uint64(i))
		s, err := RenderRecipe(recipes[i], cfg, rng)
		return Result{Name: recipes[i].Name, Sound: s, Err: err}
	})
}

func renderEach(n int, parallel bool, renderOne func(i int) Result) []Result {
	results := make([]Result, n)

	if !parallel {
		for i := range n {
			results[i] = renderOne(i)
		}
		return results
	}

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			results[index] = renderOne(index)
		}(i)
	}
	wg.Wait()

	return results
}
