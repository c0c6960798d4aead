package azure_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/adrianliechti/avatar/pkg/synthesizer"
	"github.com/adrianliechti/avatar/pkg/synthesizer/azure"

	"github.com/stretchr/testify/require"
)

func TestSubmit(t *testing.T) {
	var request *http.Request
	var payload map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		request = r.Clone(context.Background())

		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
	}))

	defer server.Close()

	c, err := azure.New(server.URL, azure.WithToken("test-token"))
	require.NoError(t, err)

	id, err := c.Submit(context.Background(), "สวัสดี", &synthesizer.SynthesizeOptions{
		Voice: "th-TH-NiwatNeural",

		Character: "harry",
		Style:     "casual",
	})

	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.Equal(t, http.MethodPut, request.Method)
	require.True(t, strings.HasPrefix(request.URL.Path, "/avatar/batchsyntheses/"))
	require.Contains(t, request.URL.Path, id)
	require.Equal(t, "2024-08-01", request.URL.Query().Get("api-version"))
	require.Equal(t, "test-token", request.Header.Get("Ocp-Apim-Subscription-Key"))

	require.Equal(t, "PlainText", payload["inputKind"])

	avatar := payload["avatarConfig"].(map[string]any)
	require.Equal(t, "harry", avatar["talkingAvatarCharacter"])
	require.Equal(t, "casual", avatar["talkingAvatarStyle"])
	require.Equal(t, "mp4", avatar["videoFormat"])
	require.Equal(t, "#FFFFFFFF", avatar["backgroundColor"])

	inputs := payload["inputs"].([]any)
	require.Len(t, inputs, 1)
	require.Equal(t, "สวัสดี", inputs[0].(map[string]any)["content"])
}

func TestSubmitBackground(t *testing.T) {
	var payload map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
	}))

	defer server.Close()

	c, err := azure.New(server.URL)
	require.NoError(t, err)

	_, err = c.Submit(context.Background(), "hello", &synthesizer.SynthesizeOptions{
		Background: "https://images.example/office.png",
	})

	require.NoError(t, err)

	avatar := payload["avatarConfig"].(map[string]any)
	require.Equal(t, "https://images.example/office.png", avatar["backgroundImage"])
	require.NotContains(t, avatar, "backgroundColor")
}

func TestSubmitRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "unsupported voice"}`, http.StatusBadRequest)
	}))

	defer server.Close()

	c, err := azure.New(server.URL)
	require.NoError(t, err)

	_, err = c.Submit(context.Background(), "hello", nil)
	require.ErrorContains(t, err, "unsupported voice")
}

func TestPoll(t *testing.T) {
	tests := []struct {
		name string
		body string

		state synthesizer.JobState
		url   string
	}{
		{
			name:  "not started",
			body:  `{"status": "NotStarted"}`,
			state: synthesizer.JobSubmitted,
		},
		{
			name:  "running",
			body:  `{"status": "Running"}`,
			state: synthesizer.JobRunning,
		},
		{
			name:  "succeeded",
			body:  `{"status": "Succeeded", "outputs": {"result": "https://provider/x.mp4"}}`,
			state: synthesizer.JobSucceeded,
			url:   "https://provider/x.mp4",
		},
		{
			name:  "failed",
			body:  `{"status": "Failed", "properties": {"error": "render error"}}`,
			state: synthesizer.JobFailed,
		},
		{
			name:  "unknown status keeps polling",
			body:  `{"status": "Migrating"}`,
			state: synthesizer.JobRunning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			}))

			defer server.Close()

			c, err := azure.New(server.URL)
			require.NoError(t, err)

			outcome, err := c.Poll(context.Background(), "job-1")
			require.NoError(t, err)

			require.Equal(t, tt.state, outcome.State)
			require.Equal(t, tt.url, outcome.OutputURL)

			if tt.state == synthesizer.JobFailed {
				require.Contains(t, outcome.Error, "render error")
			}
		})
	}
}

func TestSynthesizer(t *testing.T) {
	var polls int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			return
		}

		polls++

		w.Header().Set("Content-Type", "application/json")

		if polls == 1 {
			w.Write([]byte(`{"status": "Running"}`))
			return
		}

		w.Write([]byte(`{"status": "Succeeded", "outputs": {"result": "https://provider/x.mp4"}}`))
	}))

	defer server.Close()

	s, err := azure.NewSynthesizer(server.URL,
		azure.WithToken("test-token"),
		azure.WithInterval(time.Millisecond),
	)

	require.NoError(t, err)

	job, err := s.Synthesize(context.Background(), "สวัสดี", nil)
	require.NoError(t, err)

	require.Equal(t, synthesizer.JobSucceeded, job.State)
	require.Equal(t, "https://provider/x.mp4", job.OutputURL)
	require.Equal(t, 2, polls)
}
