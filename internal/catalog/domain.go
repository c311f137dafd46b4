package catalog

import "time"

// Condominium model. Residences and expenses hang off a condominium.
type Condominium struct {
	ID      int64
	Name    string
	Address string
}

// Residence model.
type Residence struct {
	ID            int64
	UserID        int64
	Name          string
	Address       string
	Email         string
	Phone         string
	CondominiumID int64
}

// DueType categorizes dues (tipo de cobro).
type DueType struct {
	ID          int64
	Name        string
	Description string
}

// PaymentMethod model (forma de pago).
type PaymentMethod struct {
	ID   int64
	Name string
}

// Vendor model (proveedor). NIT is unique across vendors.
type Vendor struct {
	ID          int64
	Name        string
	ContactName string
	Phone       string
	NIT         string
}

// Notification model addressed to a residence.
type Notification struct {
	ID          int64
	ResidenceID int64
	Message     string
	SentAt      time.Time
	Kind        string
}

// CondominiumInput carries condominium create/update fields.
type CondominiumInput struct {
	Name    string
	Address string
}

// ResidenceInput carries residence create/update fields.
type ResidenceInput struct {
	UserID        int64
	Name          string
	Address       string
	Email         string
	Phone         string
	CondominiumID int64
}

// DueTypeInput carries due type create/update fields.
type DueTypeInput struct {
	Name        string
	Description string
}

// PaymentMethodInput carries payment method create/update fields.
type PaymentMethodInput struct {
	Name string
}

// VendorInput carries vendor create/update fields.
type VendorInput struct {
	Name        string
	ContactName string
	Phone       string
	NIT         string
}

// NotificationInput carries notification create/update fields.
type NotificationInput struct {
	ResidenceID int64
	Message     string
	SentAt      time.Time
	Kind        string
}
