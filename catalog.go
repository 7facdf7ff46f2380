package uisound

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tphakala/go-uisound/internal/envelope"
	"github.com/tphakala/go-uisound/internal/filter"
	"github.com/tphakala/go-uisound/internal/source"
)

// RecipeID identifies a sound in the built-in catalog.
type RecipeID int

const (
	// ClickWhiteNoise is a 10 ms decaying white noise burst, highpassed at 1 kHz.
	ClickWhiteNoise RecipeID = iota

	// ClickImpulseNoise mixes a 50-sample impulse with decaying noise,
	// bandpassed to 2-6 kHz.
	ClickImpulseNoise

	// ClickPinkSoft is decaying pink noise highpassed at 800 Hz.
	ClickPinkSoft

	// ClickShortBurst is a 3 ms burst highpassed at 1.5 kHz.
	ClickShortBurst

	// ClickPercussive layers a 1.4 kHz sine and an 800 Hz sawtooth.
	ClickPercussive

	// ClickLowPulse mixes a 200 Hz square pulse with noise, bandpassed to
	// 500 Hz-3 kHz.
	ClickLowPulse

	// ClickSnap is a 4 ms noise snap with a sharp attack.
	ClickSnap

	// ClickSoftTap is a longer pink noise tap bandpassed to 1-4 kHz.
	ClickSoftTap

	// NotificationChime is a C6+E6 chord followed by a softer A5 echo.
	NotificationChime

	// NotificationTwoChord is a C6+E6 chord followed by an A5+C6 chord.
	NotificationTwoChord

	// NotificationSimple is a half second C6+E6 beep with a logarithmic tail.
	NotificationSimple

	numRecipes
)

var recipeNames = [numRecipes]string{
	ClickWhiteNoise:      "click-white",
	ClickImpulseNoise:    "click-impulse",
	ClickPinkSoft:        "click-pink",
	ClickShortBurst:      "click-burst",
	ClickPercussive:      "click-percussive",
	ClickLowPulse:        "click-low",
	ClickSnap:            "click-snap",
	ClickSoftTap:         "click-tap",
	NotificationChime:    "notify-chime",
	NotificationTwoChord: "notify-two-chord",
	NotificationSimple:   "notify-simple",
}

// Valid reports whether id names a catalog entry.
func (id RecipeID) Valid() bool {
	return id >= 0 && id < numRecipes
}

// IsClick reports whether id is one of the keyboard click variants.
func (id RecipeID) IsClick() bool {
	return id >= ClickWhiteNoise && id <= ClickSoftTap
}

func (id RecipeID) String() string {
	if id.Valid() {
		return recipeNames[id]
	}
	return fmt.Sprintf("RecipeID(%d)", int(id))
}

// IDs returns every catalog identifier in order.
func IDs() []RecipeID {
	ids := make([]RecipeID, numRecipes)
	for i := range ids {
		ids[i] = RecipeID(i)
	}
	return ids
}

// ParseRecipeID accepts a catalog name such as "click-snap" or a 1-based
// catalog number.
func ParseRecipeID(s string) (RecipeID, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for id, n := range recipeNames {
		if n == name {
			return RecipeID(id), nil
		}
	}
	if n, err := strconv.Atoi(name); err == nil && n >= 1 && n <= int(numRecipes) {
		return RecipeID(n - 1), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRecipe, s)
}

// Lookup returns a copy of the catalog recipe for id.
func Lookup(id RecipeID) (Recipe, error) {
	if !id.Valid() {
		return Recipe{}, fmt.Errorf("%w: %d", ErrUnknownRecipe, int(id))
	}
	return catalog[id].Clone(), nil
}

// Catalog returns copies of every built-in recipe in ID order.
func Catalog() []Recipe {
	out := make([]Recipe, numRecipes)
	for i := range out {
		out[i] = catalog[i].Clone()
	}
	return out
}

// Musical pitches used by the notifications.
const (
	pitchA5 = 880.0
	pitchC6 = 1046.5
	pitchE6 = 1318.5
)

func ptr[T any](v T) *T { return &v }

func noise(kind source.Kind, duration float64) SourceSpec {
	return SourceSpec{Kind: kind, Duration: duration}
}

func tone(wf source.Waveform, freq, duration, amplitude float64) SourceSpec {
	return SourceSpec{Kind: source.KindTone, Duration: duration, Frequency: freq, Amplitude: amplitude, Waveform: wf}
}

// chimeLayer is a sine tone with its own attack/release, started at offset.
func chimeLayer(freq, duration, amplitude, offset, release float64) Layer {
	return Layer{
		Source:   tone(source.Sine, freq, duration, amplitude),
		Weight:   1,
		Offset:   offset,
		Envelope: ptr(envelope.NewLinearAttackRelease(0.01, release)),
	}
}

// catalog is read-only after initialization; Lookup hands out copies.
var catalog = [numRecipes]Recipe{
	ClickWhiteNoise: {
		Name:        recipeNames[ClickWhiteNoise],
		Description: "white noise, highpassed",
		Layers:      []Layer{{Source: noise(source.KindUniform, 0.01), Weight: 1}},
		Envelope:    ptr(envelope.NewExponentialDecay(0.3)),
		Filter:      ptr(filter.Spec{Kind: filter.Highpass, Order: 4, CutoffHz: 1000}),
		Order:       EnvelopeThenFilter,
		Peak:        0.3,
	},
	ClickImpulseNoise: {
		Name:        recipeNames[ClickImpulseNoise],
		Description: "impulse plus noise",
		Layers: []Layer{
			{Source: SourceSpec{Kind: source.KindImpulse, Duration: 0.005, ImpulseWidth: 50}, Weight: 0.5},
			{Source: noise(source.KindUniform, 0.005), Weight: 0.5, Envelope: ptr(envelope.NewExponentialDecay(0.15))},
		},
		Filter: ptr(filter.Spec{Kind: filter.Bandpass, Order: 2, LowHz: 2000, HighHz: 6000}),
		Peak:   0.3,
	},
	ClickPinkSoft: {
		Name:        recipeNames[ClickPinkSoft],
		Description: "pink noise, soft",
		Layers:      []Layer{{Source: noise(source.KindPink, 0.008), Weight: 1}},
		Envelope:    ptr(envelope.NewExponentialDecay(0.2)),
		Filter:      ptr(filter.Spec{Kind: filter.Highpass, Order: 3, CutoffHz: 800}),
		Order:       EnvelopeThenFilter,
		Peak:        0.3,
	},
	ClickShortBurst: {
		Name:        recipeNames[ClickShortBurst],
		Description: "short noise burst",
		Layers:      []Layer{{Source: noise(source.KindUniform, 0.003), Weight: 1}},
		Envelope:    ptr(envelope.NewExponentialDecay(0.1)),
		Filter:      ptr(filter.Spec{Kind: filter.Highpass, Order: 5, CutoffHz: 1500}),
		Order:       EnvelopeThenFilter,
		Peak:        0.4,
	},
	ClickPercussive: {
		Name:        recipeNames[ClickPercussive],
		Description: "percussive, high plus mid",
		Layers: []Layer{
			{
				Source:   tone(source.Sine, 1400, 0.012, 1),
				Weight:   0.5,
				Envelope: ptr(envelope.NewDecaySeconds(0.015)),
			},
			{
				Source:   tone(source.Sawtooth, 800, 0.012, 1),
				Weight:   0.3,
				Envelope: ptr(envelope.NewDecaySeconds(0.012)),
			},
		},
		Peak: 0.3,
	},
	ClickLowPulse: {
		Name:        recipeNames[ClickLowPulse],
		Description: "clicky, low end emphasis",
		Layers: []Layer{
			{Source: tone(source.Square, 200, 0.006, 1), Weight: 0.3},
			{Source: noise(source.KindUniform, 0.006), Weight: 0.7},
		},
		Envelope: ptr(envelope.NewExponentialDecay(0.15)),
		Filter:   ptr(filter.Spec{Kind: filter.Bandpass, Order: 2, LowHz: 500, HighHz: 3000}),
		Order:    EnvelopeThenFilter,
		Peak:     0.3,
	},
	ClickSnap: {
		Name:        recipeNames[ClickSnap],
		Description: "snap",
		Layers:      []Layer{{Source: noise(source.KindUniform, 0.004), Weight: 1}},
		Envelope:    ptr(envelope.NewAttackExpDecay(0.1, 0.05)),
		Filter:      ptr(filter.Spec{Kind: filter.Highpass, Order: 4, CutoffHz: 2000}),
		Order:       EnvelopeThenFilter,
		Peak:        0.35,
	},
	ClickSoftTap: {
		Name:        recipeNames[ClickSoftTap],
		Description: "soft tap",
		Layers:      []Layer{{Source: noise(source.KindPink, 0.015), Weight: 1}},
		Envelope:    ptr(envelope.NewExponentialDecay(0.4)),
		Filter:      ptr(filter.Spec{Kind: filter.Bandpass, Order: 2, LowHz: 1000, HighHz: 4000}),
		Order:       EnvelopeThenFilter,
		Peak:        0.25,
	},
	NotificationChime: {
		Name:        recipeNames[NotificationChime],
		Description: "two-tone chime with echo",
		Layers: []Layer{
			chimeLayer(pitchC6, 0.15, 0.3, 0, 0.08),
			chimeLayer(pitchE6, 0.15, 0.24, 0, 0.08),
			// 50 ms of silence after the chord
			chimeLayer(pitchA5, 0.2, 0.15, 0.2, 0.15),
		},
		Peak: 0.9,
	},
	NotificationTwoChord: {
		Name:        recipeNames[NotificationTwoChord],
		Description: "two chords with a short gap",
		Layers: []Layer{
			chimeLayer(pitchC6, 0.15, 0.3, 0, 0.08),
			chimeLayer(pitchE6, 0.15, 0.24, 0, 0.08),
			chimeLayer(pitchA5, 0.15, 0.18, 0.18, 0.12),
			chimeLayer(pitchC6, 0.15, 0.15, 0.18, 0.12),
		},
		Peak: 0.9,
	},
	NotificationSimple: {
		Name:        recipeNames[NotificationSimple],
		Description: "simple chord beep",
		Layers: []Layer{
			{Source: tone(source.Sine, pitchC6, 0.5, 0.25), Weight: 1},
			{Source: tone(source.Sine, pitchE6, 0.5, 0.225), Weight: 1},
		},
		Envelope: ptr(envelope.NewLogRelease(0.05, 0.45, 0.01)),
		Peak:     0.466, // peak of the enveloped chord, so normalization keeps its level
	},
}
