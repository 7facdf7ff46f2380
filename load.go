package uisound

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// recipeFile is the YAML layout of a recipe collection.
type recipeFile struct {
	Recipes []Recipe `yaml:"recipes"`
}

// LoadRecipes decodes a YAML recipe collection and validates every recipe
// against rate. Unknown fields are rejected.
//
//	recipes:
//	  - name: soft-click
//	    layers:
//	      - source: {kind: pink, duration: 0.01}
//	        weight: 1
//	    envelope: {kind: exponential_decay, time_constant: 0.3}
//	    filter: {kind: highpass, order: 3, cutoff_hz: 800}
//	    order: envelope_then_filter
//	    peak: 0.3
func LoadRecipes(r io.Reader, rate float64) ([]Recipe, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file recipeFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: recipe file is empty", ErrInvalidConfig)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if len(file.Recipes) == 0 {
		return nil, fmt.Errorf("%w: recipe file has no recipes", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(file.Recipes))
	for i := range file.Recipes {
		rec := &file.Recipes[i]
		if err := rec.Validate(rate); err != nil {
			return nil, err
		}
		if seen[rec.Name] {
			return nil, fmt.Errorf("%w: duplicate recipe name %q", ErrInvalidConfig, rec.Name)
		}
		seen[rec.Name] = true
	}
	return file.Recipes, nil
}

// WriteRecipes encodes recipes in the format LoadRecipes reads.
func WriteRecipes(w io.Writer, recipes []Recipe) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(recipeFile{Recipes: recipes}); err != nil {
		return fmt.Errorf("failed to encode recipes: %w", err)
	}
	return enc.Close()
}
