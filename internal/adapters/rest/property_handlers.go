package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nasser0p/realestate/internal/constants"
	"github.com/nasser0p/realestate/internal/contextkeys"
	"github.com/nasser0p/realestate/internal/contracts"
	"github.com/nasser0p/realestate/internal/core/domain"
	"github.com/nasser0p/realestate/internal/core/port"
	"github.com/nasser0p/realestate/internal/core/port/usecases_port"
)

// PropertiesHandler serves the listing discovery and management endpoints.
type PropertiesHandler struct {
	findUC        usecases_port.FindPropertiesUseCasePort
	getByIDUC     usecases_port.GetPropertyByIDUseCasePort
	createUC      usecases_port.CreatePropertyUseCasePort
	updateUC      usecases_port.UpdatePropertyUseCasePort
	deleteUC      usecases_port.DeletePropertyUseCasePort
	uploadMediaUC usecases_port.UploadPropertyMediaUseCasePort
	describeUC    usecases_port.GenerateDescriptionUseCasePort
	optionsUC     usecases_port.GetFilterOptionsUseCasePort
}

func NewPropertiesHandler(
	findUC usecases_port.FindPropertiesUseCasePort,
	getByIDUC usecases_port.GetPropertyByIDUseCasePort,
	createUC usecases_port.CreatePropertyUseCasePort,
	updateUC usecases_port.UpdatePropertyUseCasePort,
	deleteUC usecases_port.DeletePropertyUseCasePort,
	uploadMediaUC usecases_port.UploadPropertyMediaUseCasePort,
	describeUC usecases_port.GenerateDescriptionUseCasePort,
	optionsUC usecases_port.GetFilterOptionsUseCasePort,
) *PropertiesHandler {
	return &PropertiesHandler{
		findUC:        findUC,
		getByIDUC:     getByIDUC,
		createUC:      createUC,
		updateUC:      updateUC,
		deleteUC:      deleteUC,
		uploadMediaUC: uploadMediaUC,
		describeUC:    describeUC,
		optionsUC:     optionsUC,
	}
}

// FindProperties handles GET /api/v1/properties.
func (h *PropertiesHandler) FindProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "FindProperties"})

	criteria := DecodeFilterCriteria(r.URL.Query())
	if err := criteria.Validate(); err != nil {
		logger.Warn("Rejected invalid filter criteria", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	lang := GetLanguageOrDefault(r)
	page := GetPageOrDefault(r)
	pageSize := GetPageSizeOrDefault(r)

	handlerLogger := logger.WithFields(port.Fields{
		"page":      page,
		"page_size": pageSize,
		"lang":      lang,
	})
	handlerLogger.Info("Processing discovery request", nil)

	result, err := h.findUC.Execute(r.Context(), criteria, lang, pageSize, page)
	if err != nil {
		handlerLogger.Error("Find properties use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve properties")
		return
	}

	response := PaginatedPropertiesResponse{
		Data:       make([]PropertyResponse, len(result.Properties)),
		Total:      result.TotalCount,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	}
	for i := range result.Properties {
		response.Data[i] = propertyToResponse(&result.Properties[i])
	}

	handlerLogger.Info("Discovery request served", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(result.Properties),
	})
	RespondWithJSON(w, http.StatusOK, response)
}

// GetProperty handles GET /api/v1/properties/{propertyID}.
func (h *PropertiesHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetProperty"})

	id, ok := parsePropertyID(w, r, logger)
	if !ok {
		return
	}

	property, err := h.getByIDUC.Execute(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		logger.Error("Get property use case failed", err, port.Fields{"property_id": id})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve property")
		return
	}

	RespondWithJSON(w, http.StatusOK, propertyToResponse(property))
}

// CreateProperty handles POST /api/v1/properties.
func (h *PropertiesHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateProperty"})

	payload, ok := decodePropertyPayload(w, r, logger)
	if !ok {
		return
	}

	property := payloadToProperty(*payload)
	created, err := h.createUC.Execute(r.Context(), &property)
	if err != nil {
		logger.Error("Create property use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to create property")
		return
	}

	logger.Info("Property created", port.Fields{"property_id": created.ID})
	RespondWithJSON(w, http.StatusCreated, propertyToResponse(created))
}

// UpdateProperty handles PUT /api/v1/properties/{propertyID}.
func (h *PropertiesHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateProperty"})

	id, ok := parsePropertyID(w, r, logger)
	if !ok {
		return
	}
	payload, ok := decodePropertyPayload(w, r, logger)
	if !ok {
		return
	}

	property := payloadToProperty(*payload)
	property.ID = id

	updated, err := h.updateUC.Execute(r.Context(), &property)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		logger.Error("Update property use case failed", err, port.Fields{"property_id": id})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to update property")
		return
	}

	logger.Info("Property updated", port.Fields{"property_id": id})
	RespondWithJSON(w, http.StatusOK, propertyToResponse(updated))
}

// DeleteProperty handles DELETE /api/v1/properties/{propertyID}.
func (h *PropertiesHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteProperty"})

	id, ok := parsePropertyID(w, r, logger)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		logger.Error("Delete property use case failed", err, port.Fields{"property_id": id})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to delete property")
		return
	}

	logger.Info("Property deleted", port.Fields{"property_id": id})
	w.WriteHeader(http.StatusNoContent)
}

// UploadMedia handles POST /api/v1/properties/{propertyID}/media. Files are
// sent as a multipart form under the "files" field; the optional "kind"
// field selects gallery (default) or floorplan.
func (h *PropertiesHandler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UploadMedia"})

	id, ok := parsePropertyID(w, r, logger)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(constants.MaxUploadSizeBytes); err != nil {
		logger.Warn("Failed to parse multipart form", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	kind := port.MediaGallery
	if r.FormValue("kind") == string(port.MediaFloorPlan) {
		kind = port.MediaFloorPlan
	}

	fileHeaders := r.MultipartForm.File["files"]
	if len(fileHeaders) == 0 {
		WriteJSONError(w, http.StatusBadRequest, "No files provided")
		return
	}

	var uploads []port.MediaUpload
	for _, fh := range fileHeaders {
		if fh.Size > constants.MaxUploadSizeBytes {
			WriteJSONError(w, http.StatusRequestEntityTooLarge, "File exceeds the upload size limit")
			return
		}
		file, err := fh.Open()
		if err != nil {
			logger.Error("Failed to open uploaded file", err, port.Fields{"filename": fh.Filename})
			WriteJSONError(w, http.StatusBadRequest, "Failed to read uploaded file")
			return
		}
		defer file.Close()

		uploads = append(uploads, port.MediaUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Content:     file,
		})
	}

	handlerLogger := logger.WithFields(port.Fields{
		"property_id": id,
		"kind":        kind,
		"file_count":  len(uploads),
	})
	handlerLogger.Info("Processing media upload", nil)

	urls, err := h.uploadMediaUC.Execute(r.Context(), id, kind, uploads)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		handlerLogger.Error("Upload media use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to upload media")
		return
	}

	handlerLogger.Info("Media uploaded", port.Fields{"url_count": len(urls)})
	RespondWithJSON(w, http.StatusCreated, MediaUploadResponse{URLs: urls})
}

// GenerateDescription handles POST /api/v1/properties/generate-description.
func (h *PropertiesHandler) GenerateDescription(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GenerateDescription"})

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	if err := contracts.ValidateDescriptionRequest(body); err != nil {
		logger.Warn("Rejected invalid description request", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var dto GenerateDescriptionRequest
	if err := json.Unmarshal(body, &dto); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req := domain.DescriptionRequest{
		Title:     dto.Title,
		Status:    domain.PropertyStatus(dto.Status),
		Type:      domain.PropertyType(dto.Type),
		City:      dto.City,
		Price:     dto.Price,
		Size:      dto.Size,
		Bedrooms:  dto.Bedrooms,
		Bathrooms: dto.Bathrooms,
		Amenities: dto.Amenities,
		Language:  domain.Language(dto.Language),
	}
	if req.Language == "" {
		req.Language = domain.DefaultLanguage
	}

	description, err := h.describeUC.Execute(r.Context(), req)
	if err != nil {
		logger.Error("Generate description use case failed", err, nil)
		WriteJSONError(w, http.StatusBadGateway, "Failed to generate description")
		return
	}

	RespondWithJSON(w, http.StatusOK, GenerateDescriptionResponse{Description: description})
}

// GetFilterOptions handles GET /api/v1/filter-options.
func (h *PropertiesHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetFilterOptions"})

	options, err := h.optionsUC.Execute(r.Context())
	if err != nil {
		logger.Error("Get filter options use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve filter options")
		return
	}

	response := FilterOptionsResponse{
		Statuses:  make([]string, len(options.Statuses)),
		Types:     make([]string, len(options.Types)),
		Cities:    options.Cities,
		Amenities: options.Amenities,
	}
	for i, s := range options.Statuses {
		response.Statuses[i] = string(s)
	}
	for i, t := range options.Types {
		response.Types[i] = string(t)
	}
	if response.Cities == nil {
		response.Cities = []string{}
	}
	if response.Amenities == nil {
		response.Amenities = []string{}
	}
	if options.Price != nil {
		response.Price = &NumericRangeDTO{Min: options.Price.Min, Max: options.Price.Max}
	}
	if options.Size != nil {
		response.Size = &NumericRangeDTO{Min: options.Size.Min, Max: options.Size.Max}
	}

	RespondWithJSON(w, http.StatusOK, response)
}

func parsePropertyID(w http.ResponseWriter, r *http.Request, logger port.LoggerPort) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "propertyID")
	id, err := uuid.Parse(idStr)
	if err != nil {
		logger.Warn("Invalid propertyID in URL", port.Fields{"provided_id": idStr})
		WriteJSONError(w, http.StatusBadRequest, "Invalid propertyID in URL")
		return uuid.Nil, false
	}
	return id, true
}

func decodePropertyPayload(w http.ResponseWriter, r *http.Request, logger port.LoggerPort) (*PropertyPayload, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return nil, false
	}
	if err := contracts.ValidatePropertyPayload(body); err != nil {
		logger.Warn("Rejected invalid property payload", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}

	var payload PropertyPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	return &payload, true
}
