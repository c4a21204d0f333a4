package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// PlanLimitError is returned when a tenant's subscription plan caps a resource
type PlanLimitError struct {
	Resource string
	Limit    int
}

func (e *PlanLimitError) Error() string {
	return fmt.Sprintf("plan limit reached: at most %d %s allowed", e.Limit, e.Resource)
}

// Entity Not Found Errors
var (
	ErrTenantNotFound       = &NotFoundError{Entity: "tenant"}
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrPersonNotFound       = &NotFoundError{Entity: "person"}
	ErrEmailNotFound        = &NotFoundError{Entity: "email"}
	ErrPhoneNotFound        = &NotFoundError{Entity: "phone"}
	ErrAddressNotFound      = &NotFoundError{Entity: "address"}
	ErrTagNotFound          = &NotFoundError{Entity: "tag"}
	ErrCollaboratorNotFound = &NotFoundError{Entity: "collaborator"}
	ErrFileNotFound         = &NotFoundError{Entity: "file"}
	ErrStageNotFound        = &NotFoundError{Entity: "stage"}
	ErrPondNotFound         = &NotFoundError{Entity: "pond"}
	ErrGroupNotFound        = &NotFoundError{Entity: "group"}
	ErrLeadFlowRuleNotFound = &NotFoundError{Entity: "lead flow rule"}
	ErrEnumNotFound         = &NotFoundError{Entity: "enum"}
	ErrObjectNotFound       = &NotFoundError{Entity: "stored object"}
)

// Already Exists Errors
var (
	ErrUserExists         = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrStageExists        = &AlreadyExistsError{Entity: "stage", Context: "with this name"}
	ErrTagExists          = &AlreadyExistsError{Entity: "tag", Context: "with this name for the person"}
	ErrCollaboratorExists = &AlreadyExistsError{Entity: "collaborator", Context: "for the person"}
	ErrPersonClaimed      = &AlreadyExistsError{Entity: "claim", Context: "for the person"}
)

// Business Logic Errors
var (
	ErrDefaultStageDelete      = &ValidationError{Field: "stage", Message: "the default stage cannot be deleted"}
	ErrCurrentPasswordMismatch = &ValidationError{Field: "current_password", Message: "current password is incorrect"}
	ErrUnsupportedImportFormat = &ValidationError{Field: "file", Message: "only .xlsx and .csv files are supported"}
	ErrFileTooLarge            = &ValidationError{Field: "file", Message: "file exceeds the upload size limit"}
	ErrUnsupportedProvider     = &ValidationError{Field: "provider", Message: "provider must be google or facebook"}
	ErrUserNotInTenant         = &ValidationError{Field: "user_id", Message: "user does not belong to this account"}
	ErrGroupHasNoMembers       = errors.New("group has no members")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Authentication Errors
var (
	ErrInvalidCredentials    = &AuthenticationError{Message: "invalid email or password"}
	ErrMissingToken          = &AuthenticationError{Message: "authorization token is required"}
	ErrInvalidToken          = &AuthenticationError{Message: "invalid or expired token"}
	ErrTokenRevoked          = &AuthenticationError{Message: "token has been revoked"}
	ErrSocialAccountNotFound = &AuthenticationError{Message: "no account is linked to this social profile"}
	ErrSocialProfileFetch    = &AuthenticationError{Message: "could not fetch the social profile"}
)

// Authorization Errors
var (
	ErrForbidden          = &AuthorizationError{Message: "you are not allowed to perform this action"}
	ErrCannotDeleteSelf   = &AuthorizationError{Message: "you cannot delete your own account"}
	ErrCannotDeleteOwner  = &AuthorizationError{Message: "the account owner cannot be deleted"}
	ErrNotGroupMember     = &AuthorizationError{Message: "only members of the assigned group can claim this person"}
	ErrClaimWindowExpired = &AuthorizationError{Message: "the claim window for this person has expired"}
)

// Configuration Errors
var (
	ErrStorageNotConfigured = &ConfigurationError{Message: "storage driver is not configured"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.Is(err, &ValidationError{}) || errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.Is(err, &AuthenticationError{}) || errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.Is(err, &AuthorizationError{}) || errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.Is(err, &ConfigurationError{}) || errors.As(err, &configErr)
}

// IsPlanLimit checks if an error is a PlanLimitError
func IsPlanLimit(err error) bool {
	var limitErr *PlanLimitError
	return errors.As(err, &limitErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewPlanLimitError creates a new PlanLimitError
func NewPlanLimitError(resource string, limit int) error {
	return &PlanLimitError{Resource: resource, Limit: limit}
}
