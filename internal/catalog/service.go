package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/altozano/altozano/internal/platform/httpx"
)

// RepositoryPort defines data access methods for master data.
type RepositoryPort interface {
	ListCondominiums(ctx context.Context) ([]Condominium, error)
	GetCondominium(ctx context.Context, id int64) (*Condominium, error)
	CreateCondominium(ctx context.Context, input CondominiumInput) (*Condominium, error)
	UpdateCondominium(ctx context.Context, id int64, input CondominiumInput) error
	DeleteCondominium(ctx context.Context, id int64) error

	ListResidences(ctx context.Context) ([]Residence, error)
	GetResidence(ctx context.Context, id int64) (*Residence, error)
	CreateResidence(ctx context.Context, input ResidenceInput) (*Residence, error)
	UpdateResidence(ctx context.Context, id int64, input ResidenceInput) error
	DeleteResidence(ctx context.Context, id int64) error

	ListDueTypes(ctx context.Context) ([]DueType, error)
	GetDueType(ctx context.Context, id int64) (*DueType, error)
	CreateDueType(ctx context.Context, input DueTypeInput) (*DueType, error)
	UpdateDueType(ctx context.Context, id int64, input DueTypeInput) error
	DeleteDueType(ctx context.Context, id int64) error

	ListPaymentMethods(ctx context.Context) ([]PaymentMethod, error)
	GetPaymentMethod(ctx context.Context, id int64) (*PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, input PaymentMethodInput) (*PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, id int64, input PaymentMethodInput) error
	DeletePaymentMethod(ctx context.Context, id int64) error

	ListVendors(ctx context.Context) ([]Vendor, error)
	GetVendor(ctx context.Context, id int64) (*Vendor, error)
	CreateVendor(ctx context.Context, input VendorInput) (*Vendor, error)
	UpdateVendor(ctx context.Context, id int64, input VendorInput) error
	DeleteVendor(ctx context.Context, id int64) error

	ListNotifications(ctx context.Context) ([]Notification, error)
	GetNotification(ctx context.Context, id int64) (*Notification, error)
	CreateNotification(ctx context.Context, input NotificationInput) (*Notification, error)
	DeleteNotification(ctx context.Context, id int64) error
}

// Service handles master data business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

func requiredField(name string) error {
	return fmt.Errorf("%w: %s is required", httpx.ErrValidation, name)
}

// ListCondominiums returns all condominiums.
func (s *Service) ListCondominiums(ctx context.Context) ([]Condominium, error) {
	return s.repo.ListCondominiums(ctx)
}

// GetCondominium returns one condominium.
func (s *Service) GetCondominium(ctx context.Context, id int64) (*Condominium, error) {
	return s.repo.GetCondominium(ctx, id)
}

// CreateCondominium validates and stores a new condominium.
func (s *Service) CreateCondominium(ctx context.Context, input CondominiumInput) (*Condominium, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, requiredField("name")
	}
	return s.repo.CreateCondominium(ctx, input)
}

// UpdateCondominium validates and updates an existing condominium.
func (s *Service) UpdateCondominium(ctx context.Context, id int64, input CondominiumInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return requiredField("name")
	}
	return s.repo.UpdateCondominium(ctx, id, input)
}

// DeleteCondominium removes a condominium.
func (s *Service) DeleteCondominium(ctx context.Context, id int64) error {
	return s.repo.DeleteCondominium(ctx, id)
}

// ListResidences returns all residences.
func (s *Service) ListResidences(ctx context.Context) ([]Residence, error) {
	return s.repo.ListResidences(ctx)
}

// GetResidence returns one residence.
func (s *Service) GetResidence(ctx context.Context, id int64) (*Residence, error) {
	return s.repo.GetResidence(ctx, id)
}

// CreateResidence validates and stores a new residence.
func (s *Service) CreateResidence(ctx context.Context, input ResidenceInput) (*Residence, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, requiredField("name")
	}
	if input.UserID == 0 {
		return nil, requiredField("user id")
	}
	if input.CondominiumID == 0 {
		return nil, requiredField("condominium id")
	}
	return s.repo.CreateResidence(ctx, input)
}

// UpdateResidence validates and updates an existing residence.
func (s *Service) UpdateResidence(ctx context.Context, id int64, input ResidenceInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return requiredField("name")
	}
	if input.UserID == 0 {
		return requiredField("user id")
	}
	if input.CondominiumID == 0 {
		return requiredField("condominium id")
	}
	return s.repo.UpdateResidence(ctx, id, input)
}

// DeleteResidence removes a residence.
func (s *Service) DeleteResidence(ctx context.Context, id int64) error {
	return s.repo.DeleteResidence(ctx, id)
}

// ListDueTypes returns all due types.
func (s *Service) ListDueTypes(ctx context.Context) ([]DueType, error) {
	return s.repo.ListDueTypes(ctx)
}

// GetDueType returns one due type.
func (s *Service) GetDueType(ctx context.Context, id int64) (*DueType, error) {
	return s.repo.GetDueType(ctx, id)
}

// CreateDueType validates and stores a new due type.
func (s *Service) CreateDueType(ctx context.Context, input DueTypeInput) (*DueType, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, requiredField("name")
	}
	return s.repo.CreateDueType(ctx, input)
}

// UpdateDueType validates and updates an existing due type.
func (s *Service) UpdateDueType(ctx context.Context, id int64, input DueTypeInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return requiredField("name")
	}
	return s.repo.UpdateDueType(ctx, id, input)
}

// DeleteDueType removes a due type.
func (s *Service) DeleteDueType(ctx context.Context, id int64) error {
	return s.repo.DeleteDueType(ctx, id)
}

// ListPaymentMethods returns all payment methods.
func (s *Service) ListPaymentMethods(ctx context.Context) ([]PaymentMethod, error) {
	return s.repo.ListPaymentMethods(ctx)
}

// GetPaymentMethod returns one payment method.
func (s *Service) GetPaymentMethod(ctx context.Context, id int64) (*PaymentMethod, error) {
	return s.repo.GetPaymentMethod(ctx, id)
}

// CreatePaymentMethod validates and stores a new payment method.
func (s *Service) CreatePaymentMethod(ctx context.Context, input PaymentMethodInput) (*PaymentMethod, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, requiredField("name")
	}
	return s.repo.CreatePaymentMethod(ctx, input)
}

// UpdatePaymentMethod validates and updates an existing payment method.
func (s *Service) UpdatePaymentMethod(ctx context.Context, id int64, input PaymentMethodInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return requiredField("name")
	}
	return s.repo.UpdatePaymentMethod(ctx, id, input)
}

// DeletePaymentMethod removes a payment method.
func (s *Service) DeletePaymentMethod(ctx context.Context, id int64) error {
	return s.repo.DeletePaymentMethod(ctx, id)
}

// ListVendors returns all vendors.
func (s *Service) ListVendors(ctx context.Context) ([]Vendor, error) {
	return s.repo.ListVendors(ctx)
}

// GetVendor returns one vendor.
func (s *Service) GetVendor(ctx context.Context, id int64) (*Vendor, error) {
	return s.repo.GetVendor(ctx, id)
}

// CreateVendor validates and stores a new vendor.
func (s *Service) CreateVendor(ctx context.Context, input VendorInput) (*Vendor, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, requiredField("name")
	}
	return s.repo.CreateVendor(ctx, input)
}

// UpdateVendor validates and updates an existing vendor.
func (s *Service) UpdateVendor(ctx context.Context, id int64, input VendorInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return requiredField("name")
	}
	return s.repo.UpdateVendor(ctx, id, input)
}

// DeleteVendor removes a vendor.
func (s *Service) DeleteVendor(ctx context.Context, id int64) error {
	return s.repo.DeleteVendor(ctx, id)
}

// ListNotifications returns all notifications.
func (s *Service) ListNotifications(ctx context.Context) ([]Notification, error) {
	return s.repo.ListNotifications(ctx)
}

// GetNotification returns one notification.
func (s *Service) GetNotification(ctx context.Context, id int64) (*Notification, error) {
	return s.repo.GetNotification(ctx, id)
}

// CreateNotification validates and stores a new notification.
func (s *Service) CreateNotification(ctx context.Context, input NotificationInput) (*Notification, error) {
	if input.ResidenceID == 0 {
		return nil, requiredField("residence id")
	}
	if strings.TrimSpace(input.Message) == "" {
		return nil, requiredField("message")
	}
	if input.SentAt.IsZero() {
		input.SentAt = time.Now()
	}
	return s.repo.CreateNotification(ctx, input)
}

// DeleteNotification removes a notification.
func (s *Service) DeleteNotification(ctx context.Context, id int64) error {
	return s.repo.DeleteNotification(ctx, id)
}
