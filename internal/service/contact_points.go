package service

import (
	"fmt"
	"strings"

	"dealspace-backend/internal/database/models"
	apperrors "dealspace-backend/internal/errors"
	"dealspace-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// EmailRequest represents the request to create or replace an email
type EmailRequest struct {
	Value     string             `json:"value" validate:"required,email,max=255"`
	Type      models.EmailType   `json:"type" validate:"omitempty,oneof=home work other"`
	Status    models.EmailStatus `json:"status" validate:"omitempty,oneof=valid bounced unsubscribed"`
	IsPrimary bool               `json:"is_primary"`
}

// PhoneRequest represents the request to create or replace a phone
type PhoneRequest struct {
	Value     string             `json:"value" validate:"required,e164ish"`
	Type      models.PhoneType   `json:"type" validate:"omitempty,oneof=mobile home work fax other"`
	Status    models.PhoneStatus `json:"status" validate:"omitempty,oneof=valid invalid do_not_call"`
	IsPrimary bool               `json:"is_primary"`
}

// AddressRequest represents the request to create or replace an address
type AddressRequest struct {
	Street    string             `json:"street" validate:"required_without_all=City State Code Country,max=255"`
	City      string             `json:"city" validate:"max=100"`
	State     string             `json:"state" validate:"max=100"`
	Code      string             `json:"code" validate:"max=20"`
	Country   string             `json:"country" validate:"max=100"`
	Type      models.AddressType `json:"type" validate:"omitempty,oneof=home work mailing other"`
	IsPrimary bool               `json:"is_primary"`
}

func (r *EmailRequest) normalize() {
	r.Value = normalizeEmail(r.Value)
}

func (r *PhoneRequest) normalize() {
	r.Value = strings.TrimSpace(r.Value)
}

func (r *AddressRequest) normalize() {
	r.Street = strings.TrimSpace(r.Street)
	r.City = strings.TrimSpace(r.City)
	r.State = strings.TrimSpace(r.State)
	r.Code = strings.TrimSpace(r.Code)
	r.Country = strings.TrimSpace(r.Country)
}

// EmailService handles business logic for person emails
type EmailService struct {
	repo      repository.EmailRepositoryInterface
	guard     personGuard
	validator *validator.Validate
}

// NewEmailService creates a new email service
func NewEmailService(repo repository.EmailRepositoryInterface, people repository.PersonRepositoryInterface, validator *validator.Validate) *EmailService {
	return &EmailService{repo: repo, guard: personGuard{people: people}, validator: validator}
}

// List returns the person's emails, primary first
func (s *EmailService) List(actor Actor, personID uuid.UUID) ([]models.Email, error) {
	if err := s.guard.check(actor, personID); err != nil {
		return nil, err
	}
	emails, err := s.repo.ListByPerson(personID)
	if err != nil {
		return nil, fmt.Errorf("failed to list emails: %w", err)
	}
	return emails, nil
}

// Create adds an email to the person
func (s *EmailService) Create(actor Actor, personID uuid.UUID, req *EmailRequest) (*models.Email, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.guard.check(actor, personID); err != nil {
		return nil, err
	}

	email := &models.Email{
		Value:     strings.ToLower(strings.TrimSpace(req.Value)),
		Type:      orDefault(req.Type, models.EmailTypeHome),
		Status:    orDefault(req.Status, models.EmailStatusValid),
		IsPrimary: req.IsPrimary,
	}
	email.PersonID = personID

	if err := s.repo.Create(email); err != nil {
		return nil, fmt.Errorf("failed to create email: %w", err)
	}
	return email, nil
}

// Get retrieves an email of the person
func (s *EmailService) Get(actor Actor, personID, id uuid.UUID) (*models.Email, error) {
	if err := s.guard.check(actor, personID); err != nil {
		return nil, err
	}
	email, err := s.repo.GetByID(personID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrEmailNotFound, "get email")
	}
	return email, nil
}

// Update replaces an email
func (s *EmailService) Update(actor Actor, personID, id uuid.UUID, req *EmailRequest) (*models.Email, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	email, err := s.Get(actor, personID, id)
	if err != nil {
		return nil, err
	}

	email.Value = strings.ToLower(strings.TrimSpace(req.Value))
	email.Type = orDefault(req.Type, email.Type)
	email.Status = orDefault(req.Status, email.Status)
	email.IsPrimary = req.IsPrimary

	if err := s.repo.Update(email); err != nil {
		return nil, fmt.Errorf("failed to update email: %w", err)
	}
	return s.repo.GetByID(personID, id)
}

// Delete removes an email
func (s *EmailService) Delete(actor Actor, personID, id uuid.UUID) error {
	if err := s.guard.check(actor, personID); err != nil {
		return err
	}
	if err := s.repo.Delete(personID, id); err != nil {
		return notFound(err, apperrors.ErrEmailNotFound, "delete email")
	}
	return nil
}

// SetPrimary makes the email the person's primary one
func (s *EmailService) SetPrimary(actor Actor, personID, id uuid.UUID) (*models.Email, error) {
	if err := s.guard.check(actor, personID); err != nil {
		return nil, err
	}
	if err := s.repo.SetPrimary(personID, id); err != nil {
		return nil, notFound(err, apperrors.ErrEmailNotFound, "set primary email")
	}
	email, err := s.repo.GetByID(personID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrEmailNotFound, "get email")
	}
	return email, nil
}

// PhoneService handles business logic for person phones
type PhoneService struct {
	repo      repository.PhoneRepositoryInterface
	guard     personGuard
	validator *validator.Validate
}

// NewPhoneService creates a new phone service
func NewPhoneService(repo repository.PhoneRepositoryInterface, people repository.PersonRepositoryInterface, validator *validator.Validate) *PhoneService {
	return &PhoneService{repo: repo, guard: personGuard{people: people}, validator: validator}
}

// List returns the person's phones, primary first
func (s *PhoneService) List(actor Actor, personID uuid.UUID) ([]models.Phone, error) {
	if err := s.guard.check(actor, personID); err != nil {
		return nil, err
	}
	phones, err := s.repo.ListByPerson(personID)
	if err != nil {
		return nil, fmt.Errorf("failed to list phones: %w", err)
	}
	return phones, nil
}

// Create adds a phone to the person
func (s *PhoneService) Create(actor Actor, personID uuid.UUID, req *PhoneRequest) (*models.Phone, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.guard.check(actor, personID); err != nil {
		return nil, err
	}

	phone := &models.Phone{
		Value:     strings.TrimSpace(req.Value),
		Type:      orDefault(req.Type, models.PhoneTypeMobile),
		Status:    orDefault(req.Status, models.PhoneStatusValid),
		IsPrimary: req.IsPrimary,
	}
	phone.PersonID = personID

	if err := s.repo.Create(phone); err != nil {
		return nil, fmt.Errorf("failed to create phone: %w", err)
	}
	return phone, nil
}

// Get retrieves a phone of the person
func (s *PhoneService) Get(actor Actor, personID, id uuid.UUID) (*models.Phone, error) {
	if err := s.guard.check(actor, personID); err != nil {
		return nil, err
	}
	phone, err := s.repo.GetByID(personID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrPhoneNotFound, "get phone")
	}
	return phone, nil
}

// Update replaces a phone
func (s *PhoneService) Update(actor Actor, personID, id uuid.UUID, req *PhoneRequest) (*models.Phone, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	phone, err := s.Get(actor, personID, id)
	if err != nil {
		return nil, err
	}

	phone.Value = strings.TrimSpace(req.Value)
	phone.Type = orDefault(req.Type, phone.Type)
	phone.Status = orDefault(req.Status, phone.Status)
	phone.IsPrimary = req.IsPrimary

	if err := s.repo.Update(phone); err != nil {
		return nil, fmt.Errorf("failed to update phone: %w", err)
	}
	return s.repo.GetByID(personID, id)
}

// Delete removes a phone
func (s *PhoneService) Delete(actor Actor, personID, id uuid.UUID) error {
	if err := s.guard.check(actor, personID); err != nil {
		return err
	}
	if err := s.repo.Delete(personID, id); err != nil {
		return notFound(err, apperrors.ErrPhoneNotFound, "delete phone")
	}
	return nil
}

// SetPrimary makes the phone the person's primary one
func (s *PhoneService) SetPrimary(actor Actor, personID, id uuid.UUID) (*models.Phone, error) {
	if err := s.guard.check(actor, personID); err != nil {
		return nil, err
	}
	if err := s.repo.SetPrimary(personID, id); err != nil {
		return nil, notFound(err, apperrors.ErrPhoneNotFound, "set primary phone")
	}
	phone, err := s.repo.GetByID(personID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrPhoneNotFound, "get phone")
	}
	return phone, nil
}

// AddressService handles business logic for person addresses
type AddressService struct {
	repo      repository.AddressRepositoryInterface
	guard     personGuard
	validator *validator.Validate
}

// NewAddressService creates a new address service
func NewAddressService(repo repository.AddressRepositoryInterface, people repository.PersonRepositoryInterface, validator *validator.Validate) *AddressService {
	return &AddressService{repo: repo, guard: personGuard{people: people}, validator: validator}
}

// List returns the person's addresses, primary first
func (s *AddressService) List(actor Actor, personID uuid.UUID) ([]models.Address, error) {
	if err := s.guard.check(actor, personID); err != nil {
		return nil, err
	}
	addresses, err := s.repo.ListByPerson(personID)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return addresses, nil
}

// Create adds an address to the person
func (s *AddressService) Create(actor Actor, personID uuid.UUID, req *AddressRequest) (*models.Address, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.guard.check(actor, personID); err != nil {
		return nil, err
	}

	address := &models.Address{
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		Code:      req.Code,
		Country:   req.Country,
		Type:      orDefault(req.Type, models.AddressTypeHome),
		IsPrimary: req.IsPrimary,
	}
	address.PersonID = personID

	if err := s.repo.Create(address); err != nil {
		return nil, fmt.Errorf("failed to create address: %w", err)
	}
	return address, nil
}

// Get retrieves an address of the person
func (s *AddressService) Get(actor Actor, personID, id uuid.UUID) (*models.Address, error) {
	if err := s.guard.check(actor, personID); err != nil {
		return nil, err
	}
	address, err := s.repo.GetByID(personID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrAddressNotFound, "get address")
	}
	return address, nil
}

// Update replaces an address
func (s *AddressService) Update(actor Actor, personID, id uuid.UUID, req *AddressRequest) (*models.Address, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	address, err := s.Get(actor, personID, id)
	if err != nil {
		return nil, err
	}

	address.Street = req.Street
	address.City = req.City
	address.State = req.State
	address.Code = req.Code
	address.Country = req.Country
	address.Type = orDefault(req.Type, address.Type)
	address.IsPrimary = req.IsPrimary

	if err := s.repo.Update(address); err != nil {
		return nil, fmt.Errorf("failed to update address: %w", err)
	}
	return s.repo.GetByID(personID, id)
}

// Delete removes an address
func (s *AddressService) Delete(actor Actor, personID, id uuid.UUID) error {
	if err := s.guard.check(actor, personID); err != nil {
		return err
	}
	if err := s.repo.Delete(personID, id); err != nil {
		return notFound(err, apperrors.ErrAddressNotFound, "delete address")
	}
	return nil
}

// SetPrimary makes the address the person's primary one
func (s *AddressService) SetPrimary(actor Actor, personID, id uuid.UUID) (*models.Address, error) {
	if err := s.guard.check(actor, personID); err != nil {
		return nil, err
	}
	if err := s.repo.SetPrimary(personID, id); err != nil {
		return nil, notFound(err, apperrors.ErrAddressNotFound, "set primary address")
	}
	address, err := s.repo.GetByID(personID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrAddressNotFound, "get address")
	}
	return address, nil
}
