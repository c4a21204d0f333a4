package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"dealspace-backend/internal/auth"
	"dealspace-backend/internal/database/models"
	apperrors "dealspace-backend/internal/errors"
	"dealspace-backend/internal/logger"
	"dealspace-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Response is the JSON envelope returned by every API endpoint
type Response struct {
	Status  bool                `json:"status" example:"true"`
	Message string              `json:"message" example:"OK"`
	Data    interface{}         `json:"data"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{Status: true, Message: message, Data: data})
}

func respondFail(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Status: false, Message: message})
}

// respondError maps service errors to HTTP statuses
func respondError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	var fieldErr *apperrors.ValidationError

	switch {
	case errors.As(err, &validationErrs):
		fields := make(map[string][]string, len(validationErrs))
		for _, fe := range validationErrs {
			fields[fe.Field()] = append(fields[fe.Field()], describeFieldError(fe))
		}
		c.JSON(http.StatusUnprocessableEntity, Response{Message: "The given data was invalid", Errors: fields})
	case errors.As(err, &fieldErr):
		c.JSON(http.StatusUnprocessableEntity, Response{
			Message: fieldErr.Message,
			Errors:  map[string][]string{fieldErr.Field: {fieldErr.Message}},
		})
	case errors.Is(err, apperrors.ErrGroupHasNoMembers):
		c.JSON(http.StatusUnprocessableEntity, Response{Message: err.Error()})
	case apperrors.IsAuthentication(err):
		respondFail(c, http.StatusUnauthorized, err.Error())
	case apperrors.IsPlanLimit(err), apperrors.IsAuthorization(err):
		respondFail(c, http.StatusForbidden, err.Error())
	case apperrors.IsNotFound(err):
		respondFail(c, http.StatusNotFound, err.Error())
	case apperrors.IsAlreadyExists(err):
		respondFail(c, http.StatusConflict, err.Error())
	default:
		logger.WithContext(c).WithField("error", err.Error()).Error("request failed")
		respondFail(c, http.StatusInternalServerError, "Internal server error")
	}
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_with", "required_without_all":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", fe.Field())
	case "min":
		return fmt.Sprintf("The %s must be at least %s.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s.", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("The %s must be one of: %s.", fe.Field(), fe.Param())
	case "eqfield":
		return fmt.Sprintf("The %s confirmation does not match.", fe.Param())
	default:
		return fmt.Sprintf("The %s is invalid.", fe.Field())
	}
}

// currentActor builds the acting user from the context set by RequireAuth
func currentActor(c *gin.Context) (service.Actor, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondFail(c, http.StatusUnauthorized, apperrors.ErrMissingToken.Error())
		return service.Actor{}, false
	}
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		respondFail(c, http.StatusUnauthorized, apperrors.ErrInvalidToken.Error())
		return service.Actor{}, false
	}
	role, _ := auth.GetRole(c)
	email, _ := auth.GetUserEmail(c)

	return service.Actor{
		UserID:   userID,
		TenantID: tenantID,
		Role:     models.UserRole(role),
		Email:    email,
	}, true
}

// pathUUID parses a UUID path parameter, answering 400 when it is malformed
func pathUUID(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid "+label+" ID")
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

func queryInt(c *gin.Context, key string) int {
	value, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return value
}

// queryUUID returns nil for an absent parameter and false for a malformed one
func queryUUID(c *gin.Context, key string) (*uuid.UUID, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid "+key)
		return nil, false
	}
	return &id, true
}

func queryBool(c *gin.Context, key string) (*bool, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid "+key)
		return nil, false
	}
	return &value, true
}

// sendWorkbook buffers the workbook and sends it as an attachment
func sendWorkbook(c *gin.Context, filename string, write func(buf *bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
