package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/adrianliechti/avatar/pkg/catalog"
	"github.com/adrianliechti/avatar/pkg/generator"
)

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, errors.New("missing 'text' field"))
		return
	}

	if req.Voice == "" {
		req.Voice = catalog.DefaultVoice
	}

	if req.Character == "" {
		req.Character = catalog.DefaultCharacter
	}

	if req.Style == "" {
		req.Style = catalog.DefaultStyle
	}

	if err := catalog.ValidateVoice(req.Voice); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := catalog.ValidateAvatar(req.Character, req.Style); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s, err := h.Synthesizer("")

	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	u, err := h.Uploader("")

	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	g, err := generator.New(s, u)

	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	result, err := g.Generate(r.Context(), generator.Request{
		Text: req.Text,

		Voice: req.Voice,

		Character: req.Character,
		Style:     req.Style,

		Background: req.Background,
	})

	if err != nil {
		writeError(w, generator.HTTPStatus(err), err)
		return
	}

	writeJson(w, GenerateResponse{
		Success: true,

		VideoURL: result.URL,
		JobID:    result.JobID,
	})
}
