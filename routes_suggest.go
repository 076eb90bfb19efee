package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"disaster-suggest/suggest"
)

const maxSuggestBodyBytes = 1 << 20

type suggestRequest struct {
	Location     *string `json:"location"`
	DisasterType *string `json:"disaster_type"`
}

type validationError struct {
	Detail string `json:"detail"`
}

func registerSuggestRoutes(r *mux.Router, svc *suggest.Service) {
	r.HandleFunc("/api/suggest", suggestHandler(svc)).Methods("POST")
}

func suggestHandler(svc *suggest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		req, err := decodeSuggestRequest(http.MaxBytesReader(w, r.Body, maxSuggestBodyBytes))
		if err != nil {
			log.Printf("suggest: rejected request %s: %v", requestIDFrom(r.Context()), err)
			writeJSON(w, http.StatusUnprocessableEntity, validationError{Detail: err.Error()})
			return
		}

		resp := svc.GetSuggestions(r.Context(), req)
		writeJSON(w, http.StatusOK, resp)
	}
}

func decodeSuggestRequest(body io.Reader) (suggest.SuggestionRequest, error) {
	var raw suggestRequest
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return suggest.SuggestionRequest{}, fmt.Errorf("%s must be a string", typeErr.Field)
		}
		return suggest.SuggestionRequest{}, fmt.Errorf("invalid JSON body: %w", err)
	}

	if raw.Location == nil {
		return suggest.SuggestionRequest{}, errors.New("location is required")
	}
	if raw.DisasterType == nil {
		return suggest.SuggestionRequest{}, errors.New("disaster_type is required")
	}

	return suggest.SuggestionRequest{
		Location:     *raw.Location,
		DisasterType: *raw.DisasterType,
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
