package order

import (
	"fmt"
	"strings"

	"foodcourt/internal/pkg/errs"
)

// PaymentMethod is the payment instrument declared at checkout.
// Charging and gateway callbacks are handled by an external payment service;
// the order only records the descriptor.
type PaymentMethod string

// Supported payment methods.
const (
	PaymentMethodCOD      PaymentMethod = "COD"
	PaymentMethodCard     PaymentMethod = "CARD"
	PaymentMethodUPI      PaymentMethod = "UPI"
	PaymentMethodRazorpay PaymentMethod = "RAZORPAY"
)

// PaymentStatus is the settlement state reported by the payment service.
type PaymentStatus string

// Payment settlement states.
const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// PaymentInfo describes how an order is paid: method, settlement status and,
// for gateway payments, the transaction identifier.
//
// The zero value is not used directly; NewPaymentInfo applies the COD/pending
// defaults when fields are omitted, mirroring checkout requests that carry no
// payment block.
type PaymentInfo struct {
	method        PaymentMethod
	status        PaymentStatus
	transactionID string
}

// NewPaymentInfo creates a PaymentInfo, defaulting to COD/pending when method
// or status are empty. Unknown methods or statuses are validation errors.
func NewPaymentInfo(method, status, transactionID string) (PaymentInfo, error) {
	if method == "" {
		method = string(PaymentMethodCOD)
	}
	if status == "" {
		status = string(PaymentStatusPending)
	}

	switch PaymentMethod(method) {
	case PaymentMethodCOD, PaymentMethodCard, PaymentMethodUPI, PaymentMethodRazorpay:
	default:
		return PaymentInfo{}, errs.NewValueIsInvalidErrorWithCause(
			"payment method", fmt.Errorf("%q is not a known payment method", method))
	}

	switch PaymentStatus(status) {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
	default:
		return PaymentInfo{}, errs.NewValueIsInvalidErrorWithCause(
			"payment status", fmt.Errorf("%q is not a known payment status", status))
	}

	return PaymentInfo{
		method:        PaymentMethod(method),
		status:        PaymentStatus(status),
		transactionID: strings.TrimSpace(transactionID),
	}, nil
}

// Validate rejects a PaymentInfo that bypassed NewPaymentInfo.
func (p PaymentInfo) Validate() error {
	if p.method == "" || p.status == "" {
		return errs.NewValueIsRequiredError("payment")
	}
	return nil
}

// Method returns the payment method.
func (p PaymentInfo) Method() PaymentMethod {
	return p.method
}

// Status returns the settlement status.
func (p PaymentInfo) Status() PaymentStatus {
	return p.status
}

// TransactionID returns the gateway transaction identifier, empty for COD.
func (p PaymentInfo) TransactionID() string {
	return p.transactionID
}
