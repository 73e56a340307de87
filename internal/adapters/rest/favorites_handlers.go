package rest

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/nasser0p/realestate/internal/contextkeys"
	"github.com/nasser0p/realestate/internal/core/port"
	"github.com/nasser0p/realestate/internal/core/port/usecases_port"
)

// FavoritesHandler serves the per-user favorites endpoints.
type FavoritesHandler struct {
	toggleUC     usecases_port.ToggleFavoriteUseCasePort
	isFavoriteUC usecases_port.IsFavoriteUseCasePort
	getUC        usecases_port.GetUserFavoritesUseCasePort
	getIDsUC     usecases_port.GetUserFavoriteIDsUseCasePort
}

func NewFavoritesHandler(
	toggleUC usecases_port.ToggleFavoriteUseCasePort,
	isFavoriteUC usecases_port.IsFavoriteUseCasePort,
	getUC usecases_port.GetUserFavoritesUseCasePort,
	getIDsUC usecases_port.GetUserFavoriteIDsUseCasePort,
) *FavoritesHandler {
	return &FavoritesHandler{
		toggleUC:     toggleUC,
		isFavoriteUC: isFavoriteUC,
		getUC:        getUC,
		getIDsUC:     getIDsUC,
	}
}

// userIDFromRequest resolves the caller's user id, uuid.Nil for anonymous
// requests. The favorites use cases treat uuid.Nil as "no identity".
func userIDFromRequest(r *http.Request) uuid.UUID {
	if identity := IdentityFromRequest(r); identity != nil {
		return identity.UserID
	}
	return uuid.Nil
}

// ToggleFavorite handles POST /api/v1/favorites/{propertyID}/toggle. An
// anonymous call is a no-op reporting isFavorite=false.
func (h *FavoritesHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ToggleFavorite"})

	propertyID, ok := parsePropertyID(w, r, logger)
	if !ok {
		return
	}
	userID := userIDFromRequest(r)

	handlerLogger := logger.WithFields(port.Fields{
		"user_id":     userID,
		"property_id": propertyID,
	})
	handlerLogger.Info("Processing favorite toggle", nil)

	isFavorite, err := h.toggleUC.Execute(r.Context(), userID, propertyID)
	if err != nil {
		handlerLogger.Error("Toggle favorite use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to toggle favorite")
		return
	}

	handlerLogger.Info("Favorite toggled", port.Fields{"is_favorite": isFavorite})
	RespondWithJSON(w, http.StatusOK, ToggleFavoriteResponse{IsFavorite: isFavorite})
}

// IsFavorite handles GET /api/v1/favorites/{propertyID}.
func (h *FavoritesHandler) IsFavorite(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "IsFavorite"})

	propertyID, ok := parsePropertyID(w, r, logger)
	if !ok {
		return
	}

	isFavorite, err := h.isFavoriteUC.Execute(r.Context(), userIDFromRequest(r), propertyID)
	if err != nil {
		logger.Error("Is favorite use case failed", err, port.Fields{"property_id": propertyID})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to check favorite")
		return
	}

	RespondWithJSON(w, http.StatusOK, IsFavoriteResponse{IsFavorite: isFavorite})
}

// GetUserFavorites handles GET /api/v1/favorites. The full records are
// returned in the order the favorites were added, oldest first.
func (h *FavoritesHandler) GetUserFavorites(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetUserFavorites"})

	userID := userIDFromRequest(r)
	handlerLogger := logger.WithFields(port.Fields{"user_id": userID})
	handlerLogger.Info("Processing request to get user favorites", nil)

	properties, err := h.getUC.Execute(r.Context(), userID)
	if err != nil {
		handlerLogger.Error("Get user favorites use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve favorites")
		return
	}

	response := make([]PropertyResponse, len(properties))
	for i := range properties {
		response[i] = propertyToResponse(&properties[i])
	}

	handlerLogger.Info("User favorites retrieved", port.Fields{"count": len(response)})
	RespondWithJSON(w, http.StatusOK, response)
}

// GetUserFavoriteIDs handles GET /api/v1/favorites/ids.
func (h *FavoritesHandler) GetUserFavoriteIDs(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetUserFavoriteIDs"})

	ids, err := h.getIDsUC.Execute(r.Context(), userIDFromRequest(r))
	if err != nil {
		logger.Error("Get user favorite ids use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve favorites")
		return
	}

	RespondWithJSON(w, http.StatusOK, ids)
}
