package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rahulpawar166/folio/pkg/domain/interfaces"
	"github.com/rahulpawar166/folio/pkg/domain/model"
	"github.com/rahulpawar166/folio/pkg/domain/types"
	"github.com/rahulpawar166/folio/pkg/utils/errutil"
)

// maxBodySize limits request bodies of the JSON endpoints.
const maxBodySize = 64 * 1024

type preferenceResponse struct {
	Theme  types.Theme `json:"theme"`
	IsDark bool        `json:"is_dark"`
}

func newPreferenceResponse(pref model.DisplayPreference) preferenceResponse {
	return preferenceResponse{
		Theme:  pref.Theme(),
		IsDark: pref.IsDark,
	}
}

type preferenceRequest struct {
	Theme types.Theme `json:"theme"`
}

type contactResponse struct {
	Mailto string `json:"mailto"`
}

func decodeBody(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return goerr.Wrap(err, "failed to read request body")
	}
	if err := json.Unmarshal(body, v); err != nil {
		return goerr.Wrap(types.ErrValidationFailed, "request body is not valid JSON")
	}
	return nil
}

func getPreference(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pref, err := uc.LoadPreference(r.Context())
		if err != nil {
			errutil.HandleError(r.Context(), "fail to load preference", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load preference"})
			return
		}
		writeJSON(w, http.StatusOK, newPreferenceResponse(pref))
	}
}

func putPreference(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req preferenceRequest
		if err := decodeBody(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		if !req.Theme.Valid() {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "theme must be dark or light"})
			return
		}

		pref, err := uc.SetPreference(r.Context(), req.Theme == types.ThemeDark)
		if err != nil {
			errutil.HandleError(r.Context(), "fail to save preference", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to save preference"})
			return
		}
		writeJSON(w, http.StatusOK, newPreferenceResponse(pref))
	}
}

func togglePreference(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pref, err := uc.TogglePreference(r.Context())
		if err != nil {
			errutil.HandleError(r.Context(), "fail to toggle preference", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to toggle preference"})
			return
		}
		writeJSON(w, http.StatusOK, newPreferenceResponse(pref))
	}
}

func postContact(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg model.ContactMessage
		if err := decodeBody(r, &msg); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}

		mailto, err := uc.ComposeContact(r.Context(), &msg)
		if err != nil {
			if errors.Is(err, types.ErrValidationFailed) {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: model.ContactValidationMessage})
				return
			}
			errutil.HandleError(r.Context(), "fail to compose contact mail", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to compose contact mail"})
			return
		}
		writeJSON(w, http.StatusOK, contactResponse{Mailto: mailto})
	}
}
