// Package profile holds the user's accessibility and preference record.
// A missing or invalid record always degrades to the zero configuration:
// no accessibility flags, typed answers, no spoken output.
package profile

import (
	"encoding/json"
	"fmt"
)

// InputMethod selects how answers are entered.
type InputMethod string

const (
	InputText  InputMethod = "text"
	InputVoice InputMethod = "voice"
)

// Profile is the persisted user record read at session start.
type Profile struct {
	Name                string      `json:"name,omitempty"`
	HasSpeechImpairment bool        `json:"hasSpeechImpairment"`
	HasVisualImpairment bool        `json:"hasVisualImpairment"`
	InputMethod         InputMethod `json:"inputMethod"`
	VoiceOutput         bool        `json:"voiceOutput"`
}

// Default returns the empty configuration used when no record exists.
func Default() Profile {
	return Profile{InputMethod: InputText}
}

// Parse validates raw JSON against the profile schema and decodes it.
// Callers should fall back to Default() on any error.
func Parse(raw []byte) (Profile, error) {
	if err := validate(raw); err != nil {
		return Profile{}, err
	}

	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	if p.InputMethod == "" {
		p.InputMethod = InputText
	}
	return p, nil
}

// Encode serializes a profile for storage.
func Encode(p Profile) ([]byte, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}
	return raw, nil
}
