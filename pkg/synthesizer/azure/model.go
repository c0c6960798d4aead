package azure

import (
	"github.com/adrianliechti/avatar/pkg/synthesizer"
)

type Status string

const (
	StatusNotStarted Status = "NotStarted"
	StatusRunning    Status = "Running"
	StatusSucceeded  Status = "Succeeded"
	StatusFailed     Status = "Failed"
)

// convertStatus maps the service's status vocabulary onto job states.
// Unknown values map to Running so a job is never abandoned over a status
// this client does not know yet.
func convertStatus(status Status) synthesizer.JobState {
	switch status {
	case StatusNotStarted:
		return synthesizer.JobSubmitted

	case StatusRunning:
		return synthesizer.JobRunning

	case StatusSucceeded:
		return synthesizer.JobSucceeded

	case StatusFailed:
		return synthesizer.JobFailed
	}

	return synthesizer.JobRunning
}

// https://learn.microsoft.com/en-us/azure/ai-services/speech-service/batch-synthesis-avatar
type BatchSynthesis struct {
	InputKind string `json:"inputKind"`

	SynthesisConfig SynthesisConfig `json:"synthesisConfig"`

	CustomVoices map[string]string `json:"customVoices"`

	Inputs []SynthesisInput `json:"inputs"`

	AvatarConfig AvatarConfig `json:"avatarConfig"`
}

type SynthesisConfig struct {
	Voice string `json:"voice"`
}

type SynthesisInput struct {
	Content string `json:"content"`
}

type AvatarConfig struct {
	Character string `json:"talkingAvatarCharacter"`
	Style     string `json:"talkingAvatarStyle"`

	Customized bool `json:"customized"`

	VideoFormat  string `json:"videoFormat"`
	VideoCodec   string `json:"videoCodec"`
	SubtitleType string `json:"subtitleType"`

	UseBuiltInVoice bool `json:"useBuiltInVoice"`

	BackgroundColor string `json:"backgroundColor,omitempty"`
	BackgroundImage string `json:"backgroundImage,omitempty"`
}

type BatchSynthesisStatus struct {
	ID string `json:"id"`

	Status Status `json:"status"`

	Outputs SynthesisOutputs `json:"outputs"`
}

type SynthesisOutputs struct {
	Result string `json:"result"`
}
