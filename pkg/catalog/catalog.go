package catalog

import (
	"fmt"
	"slices"
	"strings"
)

const (
	DefaultVoice     = "th-TH-NiwatNeural"
	DefaultCharacter = "harry"
	DefaultStyle     = "casual"
)

// Avatars maps each avatar character to its supported styles.
var Avatars = map[string][]string{
	"harry": {"business", "casual", "youthful"},
	"jeff":  {"business", "formal"},
	"lisa":  {"casual-sitting", "graceful-sitting", "graceful-standing", "technical-sitting", "technical-standing"},
	"lori":  {"casual", "graceful", "formal"},
	"max":   {"business", "casual", "formal"},
	"meg":   {"formal", "casual", "business"},
}

// Voices groups the available neural voices by gender.
var Voices = map[string][]string{
	"female": {"th-TH-PremwadeeNeural", "th-TH-AcharaNeural"},
	"male":   {"th-TH-NiwatNeural"},
}

func ValidateVoice(voice string) error {
	for _, voices := range Voices {
		if slices.Contains(voices, voice) {
			return nil
		}
	}

	return fmt.Errorf("invalid voice %q. See GET /voices for options", voice)
}

func ValidateAvatar(character, style string) error {
	styles, ok := Avatars[character]

	if !ok {
		return fmt.Errorf("invalid character %q. See GET /models for options", character)
	}

	if !slices.Contains(styles, style) {
		return fmt.Errorf("invalid style %q for character %q. Valid: %s", style, character, strings.Join(styles, ", "))
	}

	return nil
}
