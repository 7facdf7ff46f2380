// Package uisound synthesizes short user interface sounds, keyboard clicks
// and notification chimes, from noise and oscillators. No recorded samples
// are involved.
//
// # Features
//
//   - Eleven built-in recipes: eight click variants and three notifications
//   - Uniform and pink noise, sine, sawtooth and square oscillators, impulse bursts
//   - Butterworth highpass, lowpass and bandpass filters as second-order sections
//   - Exponential, linear attack/release and logarithmic release envelopes
//   - Peak normalization and 16-bit mono RIFF/WAVE encoding
//   - Recipes as plain data, loadable from YAML
//   - Deterministic output for a given seed; no package level random state
//
// # Quick Start
//
// Render one catalog sound and write it out:
//
//	snd, err := uisound.Render(uisound.ClickSnap, uisound.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("snap.wav", snd.Container.Bytes(), 0o644)
//
// Render the whole catalog, one result per recipe:
//
//	cfg := uisound.DefaultConfig()
//	cfg.EnableParallel = true
//	for _, res := range uisound.RenderAll(cfg) {
//	    if res.Err != nil {
//	        log.Printf("%s: %v", res.ID, res.Err)
//	        continue
//	    }
//	    // persist res.Sound.Container
//	}
//
// # Pipeline
//
// Every recipe runs the same stages:
//
//	layers -> [layer envelope] -> mix -> [filter] <-> [envelope] -> normalize -> PCM
//
// Each layer is generated from its [SourceSpec], optionally shaped by its own
// envelope, delayed by its offset and weighted into the mix. The recipe's
// filter and envelope then run in the recipe's [StageOrder], and the result
// is scaled to the target peak before quantization. Clicks shape the noise
// before filtering it; notifications shape each tone on its own.
//
// # Errors
//
// Configuration problems (a cutoff at or above Nyquist, a bandpass with
// low >= high, a non-positive tone frequency, an empty buffer) are reported
// as [ErrInvalidConfig] before any sample is generated. A silent mix is not
// an error: normalization leaves it silent.
//
// # Concurrency
//
// All functions are safe for concurrent use. Randomness comes from the
// generator each render creates from [Config.Seed], so concurrent renders
// never share state.
package uisound
