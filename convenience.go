package uisound

import "fmt"

// Common sample rates.
const (
	// RateCD is the CD quality sample rate (Red Book standard).
	RateCD = 44100

	// RateDAT is the DAT/DVD sample rate.
	RateDAT = 48000

	// RateHiRes88 is the high-resolution 2x CD sample rate.
	RateHiRes88 = 88200

	// RateHiRes96 is the high-resolution 2x DAT sample rate.
	RateHiRes96 = 96000

	// RateHiRes192 is the very high resolution 4x DAT sample rate.
	RateHiRes192 = 192000

	// RateTelephony is the telephony (PSTN narrowband) sample rate.
	RateTelephony = 8000

	// RateVoIP is the VoIP wideband sample rate.
	RateVoIP = 16000

	// RateSpeech is the speech recognition common sample rate.
	RateSpeech = 22050
)

// RenderWAV renders a catalog sound with the default configuration and
// returns the complete WAV file.
func RenderWAV(id RecipeID) ([]byte, error) {
	s, err := Render(id, DefaultConfig())
	if err != nil {
		return nil, err
	}
	return s.Container.Bytes(), nil
}

// Click renders one of the keyboard click variants at rate with the given seed.
func Click(id RecipeID, rate float64, seed uint64) (*Sound, error) {
	if !id.IsClick() {
		return nil, fmt.Errorf("%w: %s is not a click", ErrUnknownRecipe, id)
	}
	cfg := DefaultConfig()
	cfg.SampleRate = rate
	cfg.Seed = seed
	return Render(id, cfg)
}

// Notification renders one of the notification chimes at rate.
func Notification(id RecipeID, rate float64) (*Sound, error) {
	if id.IsClick() || !id.Valid() {
		return nil, fmt.Errorf("%w: %s is not a notification", ErrUnknownRecipe, id)
	}
	cfg := DefaultConfig()
	cfg.SampleRate = rate
	return Render(id, cfg)
}
