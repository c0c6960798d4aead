package generator_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/adrianliechti/avatar/pkg/generator"
	"github.com/adrianliechti/avatar/pkg/synthesizer"

	"github.com/stretchr/testify/require"
)

type mockSynthesizer struct {
	calls int

	job func(n int) *synthesizer.Job

	lastInput   string
	lastOptions *synthesizer.SynthesizeOptions
}

func (m *mockSynthesizer) Synthesize(ctx context.Context, input string, options *synthesizer.SynthesizeOptions) (*synthesizer.Job, error) {
	m.calls++

	m.lastInput = input
	m.lastOptions = options

	return m.job(m.calls), nil
}

type mockUploader struct {
	calls int
	err   error

	lastURL string
}

func (m *mockUploader) Upload(ctx context.Context, url string) (string, error) {
	m.calls++
	m.lastURL = url

	if m.err != nil {
		return "", m.err
	}

	return "https://cdn.example/relay.mp4", nil
}

func succeededJob(n int) *synthesizer.Job {
	return &synthesizer.Job{
		ID:    fmt.Sprintf("job-%d", n),
		State: synthesizer.JobSucceeded,

		OutputURL: "https://provider/x.mp4",
	}
}

func TestGenerate(t *testing.T) {
	s := &mockSynthesizer{job: succeededJob}
	u := &mockUploader{}

	g, err := generator.New(s, u)
	require.NoError(t, err)

	result, err := g.Generate(context.Background(), generator.Request{
		Text: "สวัสดี",

		Voice: "th-TH-NiwatNeural",

		Character: "harry",
		Style:     "casual",
	})

	require.NoError(t, err)

	require.Equal(t, "job-1", result.JobID)
	require.Equal(t, "https://cdn.example/relay.mp4", result.URL)

	require.Equal(t, "สวัสดี", s.lastInput)
	require.Equal(t, "th-TH-NiwatNeural", s.lastOptions.Voice)

	require.Equal(t, "https://provider/x.mp4", u.lastURL)
}

func TestGenerateInvalidInput(t *testing.T) {
	s := &mockSynthesizer{job: succeededJob}
	u := &mockUploader{}

	g, err := generator.New(s, u)
	require.NoError(t, err)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := g.Generate(context.Background(), generator.Request{Text: text})
		require.ErrorIs(t, err, generator.ErrInvalidInput)
	}

	require.Zero(t, s.calls)
	require.Zero(t, u.calls)
}

func TestGenerateUpstream(t *testing.T) {
	s := &mockSynthesizer{
		job: func(n int) *synthesizer.Job {
			return &synthesizer.Job{
				ID:    "job-1",
				State: synthesizer.JobFailed,
				Error: "render error",
			}
		},
	}

	u := &mockUploader{}

	g, err := generator.New(s, u)
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), generator.Request{Text: "hello"})

	require.ErrorIs(t, err, generator.ErrUpstream)
	require.ErrorContains(t, err, "render error")

	require.Zero(t, u.calls)
}

func TestGenerateTimeout(t *testing.T) {
	s := &mockSynthesizer{
		job: func(n int) *synthesizer.Job {
			return &synthesizer.Job{
				ID:    "job-1",
				State: synthesizer.JobTimedOut,
			}
		},
	}

	u := &mockUploader{}

	g, err := generator.New(s, u)
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), generator.Request{Text: "hello"})

	require.ErrorIs(t, err, generator.ErrTimeout)
	require.ErrorContains(t, err, "job-1")

	require.Zero(t, u.calls)
}

func TestGenerateUploadFailure(t *testing.T) {
	s := &mockSynthesizer{job: succeededJob}
	u := &mockUploader{err: errors.New("storage unavailable")}

	g, err := generator.New(s, u)
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), generator.Request{Text: "hello"})

	require.ErrorIs(t, err, generator.ErrUpstream)
	require.ErrorContains(t, err, "storage unavailable")
}

func TestGenerateIndependentJobs(t *testing.T) {
	s := &mockSynthesizer{job: succeededJob}
	u := &mockUploader{}

	g, err := generator.New(s, u)
	require.NoError(t, err)

	first, err := g.Generate(context.Background(), generator.Request{Text: "hello"})
	require.NoError(t, err)

	second, err := g.Generate(context.Background(), generator.Request{Text: "hello"})
	require.NoError(t, err)

	require.NotEqual(t, first.JobID, second.JobID)
}

func TestHTTPStatus(t *testing.T) {
	s := &mockSynthesizer{
		job: func(n int) *synthesizer.Job {
			return &synthesizer.Job{ID: "job-1", State: synthesizer.JobTimedOut}
		},
	}

	g, err := generator.New(s, &mockUploader{})
	require.NoError(t, err)

	_, invalid := g.Generate(context.Background(), generator.Request{})
	require.Equal(t, http.StatusBadRequest, generator.HTTPStatus(invalid))

	_, timedout := g.Generate(context.Background(), generator.Request{Text: "hello"})
	require.Equal(t, http.StatusGatewayTimeout, generator.HTTPStatus(timedout))

	require.Equal(t, http.StatusBadGateway, generator.HTTPStatus(generator.ErrUpstream))
	require.Equal(t, http.StatusInternalServerError, generator.HTTPStatus(errors.New("boom")))
}
