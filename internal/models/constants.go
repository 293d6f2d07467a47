package models

// Store column names, in file order
const (
	ColumnDate          = "Date"
	ColumnAmount        = "Amount"
	ColumnCategory      = "Category"
	ColumnPaymentMethod = "Payment Method"
)

// Payment methods offered at entry time
const (
	PaymentCash         = "Cash"
	PaymentUPI          = "UPI"
	PaymentCard         = "Card"
	PaymentBankTransfer = "Bank Transfer"
)

// File permissions
const (
	PermissionStoreFile  = 0644
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)

// Columns returns the canonical column set of the store, in file order.
func Columns() []string {
	return []string{ColumnDate, ColumnAmount, ColumnCategory, ColumnPaymentMethod}
}

// PaymentMethods returns the payment methods offered at entry time.
func PaymentMethods() []string {
	return []string{PaymentCash, PaymentUPI, PaymentCard, PaymentBankTransfer}
}
