package content

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/cedarbrook-wellness/content-service/internal/storage"
	"github.com/cedarbrook-wellness/content-service/internal/types"
	"github.com/cedarbrook-wellness/content-service/internal/utils/response"
)

// GetByKey handles fetching a single content record
// @Summary Get one content block
// @Tags content
// @Produce json
// @Param section path string true "Content section"
// @Param key path string true "Content key"
// @Success 200 {object} response.Response "Content record"
// @Failure 404 {object} response.Response "Unknown section/key"
// @Router /content/{section}/{key} [get]
func GetByKey(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		section := r.PathValue("section")
		key := r.PathValue("key")

		record, err := storage.GetContentByKey(section, key)
		if errors.Is(err, sql.ErrNoRows) {
			response.WriteJSON(w, http.StatusNotFound, response.GeneralError(errors.New("content not found")))
			return
		} else if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Content fetched successfully", record))
	}
}

// GetSection handles fetching every record in a section
// @Summary List the content blocks of a section
// @Tags content
// @Produce json
// @Param section path string true "Content section"
// @Success 200 {object} response.Response "Content records"
// @Router /content/{section} [get]
func GetSection(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		section := r.PathValue("section")

		records, err := storage.GetContentBySection(section)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Content fetched successfully", records))
	}
}

// Update handles editing the text fields of a content record
// @Summary Update a content block's title and body
// @Tags content
// @Accept json
// @Produce json
// @Param section path string true "Content section"
// @Param key path string true "Content key"
// @Param request body types.ContentUpdateRequest true "New text fields"
// @Success 200 {object} response.Response "Updated record"
// @Failure 400 {object} response.Response "Bad request"
// @Failure 404 {object} response.Response "Unknown section/key"
// @Security BearerAuth
// @Router /content/{section}/{key} [put]
func Update(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		section := r.PathValue("section")
		key := r.PathValue("key")

		var req types.ContentUpdateRequest

		err := json.NewDecoder(r.Body).Decode(&req)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("request body cannot be empty")))
			return
		} else if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// Validate request
		validate := validator.New()
		err = validate.Struct(req)
		if err != nil {
			if ve, ok := err.(validator.ValidationErrors); ok {
				response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(ve))
				return
			}
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		record, err := storage.UpdateContentText(section, key, req)
		if errors.Is(err, sql.ErrNoRows) {
			response.WriteJSON(w, http.StatusNotFound, response.GeneralError(errors.New("content not found")))
			return
		} else if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Content updated successfully", record))
	}
}
