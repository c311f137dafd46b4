package billing

import (
	"time"
)

// DueStatus enumerates due (cuota) statuses.
type DueStatus string

const (
	DueStatusPending DueStatus = "Pendiente"
	DueStatusPaid    DueStatus = "Pagada"
	DueStatusOverdue DueStatus = "Vencida"
)

// FineStatus enumerates fine (multa) statuses.
type FineStatus string

const (
	FineStatusPending  FineStatus = "Pendiente"
	FineStatusPaid     FineStatus = "Pagada"
	FineStatusAnnulled FineStatus = "Anulada"
)

// Due model. One periodic charge against a residence.
type Due struct {
	ID          int64
	ResidenceID int64
	DueTypeID   int64
	Period      string
	Amount      float64
	GeneratedAt *time.Time
	Status      DueStatus
	DueLimit    *time.Time
}

// Payment model. Always settles against exactly one due; the amount is not
// reconciled against the due's amount.
type Payment struct {
	ID              int64
	DueID           int64
	PaymentMethodID int64
	PaidAt          time.Time
	Amount          float64
	Reference       string
}

// Fine model attached to a due.
type Fine struct {
	ID          int64
	DueID       int64
	Description string
	Amount      float64
	GeneratedAt time.Time
	Status      FineStatus
}

// DueInput for creating or updating dues.
type DueInput struct {
	ResidenceID int64
	DueTypeID   int64
	Period      string
	Amount      float64
	GeneratedAt *time.Time
	Status      DueStatus
	DueLimit    *time.Time
}

// PaymentInput for creating or updating payments.
type PaymentInput struct {
	DueID           int64
	PaymentMethodID int64
	PaidAt          time.Time
	Amount          float64
	Reference       string
}

// FineInput for creating or updating fines.
type FineInput struct {
	DueID       int64
	Description string
	Amount      float64
	GeneratedAt time.Time
	Status      FineStatus
}

// PendingDue is one unpaid due line in a residence balance.
type PendingDue struct {
	ID      int64
	DueType string
	Amount  float64
}

// PendingFine is one unpaid fine line in a residence balance.
type PendingFine struct {
	ID          int64
	Description string
	Amount      float64
	DueID       int64
}

// FilteredDue is one Pendiente due in the per-residence due filter.
type FilteredDue struct {
	ID       int64
	DueType  string
	Period   string
	Amount   float64
	DueLimit *time.Time
}

// FilteredDues pairs a residence's Pendiente dues with the sum of its
// Vencida due amounts.
type FilteredDues struct {
	Dues         []FilteredDue
	OverdueTotal float64
}

// PendingBalance aggregates everything a residence still owes.
type PendingBalance struct {
	ResidenceID   int64
	ResidenceName string
	Dues          []PendingDue
	Fines         []PendingFine
	Total         float64
}

// IncomeDetail is one payment recorded against a residence's dues.
type IncomeDetail struct {
	DueID         int64
	DueType       string
	PaymentMethod string
	Amount        float64
}
