package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/adrianliechti/avatar/pkg/synthesizer"

	"github.com/google/uuid"
)

var _ synthesizer.Client = (*Client)(nil)

const apiVersion = "2024-08-01"

// Client talks to the Azure avatar batch synthesis API. Job ids are
// generated client-side, as the API expects the caller to name the job.
type Client struct {
	*Config
}

func New(url string, options ...Option) (*Client, error) {
	if url == "" {
		return nil, errors.New("invalid url")
	}

	cfg := newConfig(url)

	for _, option := range options {
		option(cfg)
	}

	return &Client{
		Config: cfg,
	}, nil
}

func (c *Client) Submit(ctx context.Context, input string, options *synthesizer.SynthesizeOptions) (string, error) {
	if options == nil {
		options = new(synthesizer.SynthesizeOptions)
	}

	id := uuid.NewString()

	avatar := AvatarConfig{
		Character: options.Character,
		Style:     options.Style,

		VideoFormat:  "mp4",
		VideoCodec:   "h264",
		SubtitleType: "soft_embedded",
	}

	if options.Background != "" {
		avatar.BackgroundImage = options.Background
	} else {
		avatar.BackgroundColor = "#FFFFFFFF"
	}

	body := BatchSynthesis{
		InputKind: "PlainText",

		SynthesisConfig: SynthesisConfig{
			Voice: options.Voice,
		},

		CustomVoices: map[string]string{},

		Inputs: []SynthesisInput{
			{
				Content: input,
			},
		},

		AvatarConfig: avatar,
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodPut, c.jobURL(id), jsonReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.token)

	resp, err := c.client.Do(req)

	if err != nil {
		return "", err
	}

	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", convertError(resp)
	}

	return id, nil
}

func (c *Client) Poll(ctx context.Context, jobID string) (*synthesizer.PollOutcome, error) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, c.jobURL(jobID), nil)
	req.Header.Set("Ocp-Apim-Subscription-Key", c.token)

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	var status BatchSynthesisStatus

	if err := json.Unmarshal(data, &status); err != nil {
		return nil, err
	}

	outcome := &synthesizer.PollOutcome{
		State: convertStatus(status.Status),
	}

	switch outcome.State {
	case synthesizer.JobSucceeded:
		outcome.OutputURL = status.Outputs.Result

	case synthesizer.JobFailed:
		outcome.Error = string(data)
	}

	return outcome, nil
}

func (c *Client) jobURL(id string) string {
	u, _ := url.Parse(strings.TrimRight(c.url, "/") + "/avatar/batchsyntheses/" + id)

	query := u.Query()
	query.Set("api-version", apiVersion)

	u.RawQuery = query.Encode()

	return u.String()
}

func jsonReader(v any) io.Reader {
	data, _ := json.Marshal(v)
	return bytes.NewReader(data)
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	if len(data) == 0 {
		return errors.New(http.StatusText(resp.StatusCode))
	}

	return errors.New(string(data))
}
