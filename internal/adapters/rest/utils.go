package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/nasser0p/realestate/internal/constants"
	"github.com/nasser0p/realestate/internal/core/domain"
)

// WriteJSONError sends a JSON body with an "error" field and the given status.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// RespondWithJSON sends the payload as a JSON body with the given status.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// GetPageOrDefault reads the 1-based page parameter, defaulting to 1.
func GetPageOrDefault(r *http.Request) int {
	pageStr := r.URL.Query().Get("page")
	if pageStr == "" {
		return 1
	}
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// GetPageSizeOrDefault reads the pageSize parameter, clamped to the allowed
// maximum.
func GetPageSizeOrDefault(r *http.Request) int {
	sizeStr := r.URL.Query().Get("pageSize")
	if sizeStr == "" {
		return constants.DefaultPageSize
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil || size < 1 {
		return constants.DefaultPageSize
	}
	if size > constants.MaxPageSize {
		return constants.MaxPageSize
	}
	return size
}

// GetLanguageOrDefault reads the lang parameter, falling back to the default
// display language for unknown values.
func GetLanguageOrDefault(r *http.Request) domain.Language {
	if domain.Language(r.URL.Query().Get("lang")) == domain.LanguageAR {
		return domain.LanguageAR
	}
	return domain.DefaultLanguage
}
