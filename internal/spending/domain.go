package spending

import "time"

// Expense is a condominium outflow registered against a vendor.
type Expense struct {
	ID            int64
	CondominiumID int64
	VendorID      int64
	Description   string
	Amount        float64
	Date          time.Time
	Type          string
}

// ExpenseInput carries the fields accepted on create and update.
type ExpenseInput struct {
	CondominiumID int64
	VendorID      int64
	Description   string
	Amount        float64
	Date          time.Time
	Type          string
}

// DetailFilter bounds the expense detail report. Type matches the expense
// type exactly (case-insensitive); VendorName is a case-insensitive
// substring match. Empty filters are ignored.
type DetailFilter struct {
	FromMonth  int
	FromYear   int
	ToMonth    int
	ToYear     int
	Type       string
	VendorName string
}

// ExpenseDetail is one row of the detail report.
type ExpenseDetail struct {
	Date        time.Time
	Type        string
	Description string
	Amount      float64
	VendorName  string
	VendorNIT   string
}

// DetailReport is the full detail report with its server-side total.
type DetailReport struct {
	Expenses []ExpenseDetail
	Total    float64
}
