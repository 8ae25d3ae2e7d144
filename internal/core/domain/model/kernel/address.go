package kernel

import (
	"errors"
	"fmt"
	"strings"

	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is the delivery destination for an order: recipient name, street
// line, city, state, postal code and contact number. Every field is required.
//
// Address is an immutable value object. The zero value is invalid and fails
// validation; use NewAddress to construct instances.
type Address struct { //nolint:recvcheck //using for validation
	name         string
	addressLine  string
	city         string
	state        string
	pincode      string
	mobileNumber string

	guard guard.ConstructorGuard
}

// NewAddress creates an Address with all fields validated.
// Leading and trailing whitespace is trimmed; fields that are empty after
// trimming produce a ValueIsRequiredError naming the missing field.
func NewAddress(name, addressLine, city, state, pincode, mobileNumber string) (Address, error) {
	address := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setName(name),
		address.setAddressLine(addressLine),
		address.setCity(city),
		address.setState(state),
		address.setPincode(pincode),
		address.setMobileNumber(mobileNumber),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate ensures the Address instance was properly constructed through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Name returns the recipient name.
func (a Address) Name() string {
	return a.name
}

// AddressLine returns the street line of the address.
func (a Address) AddressLine() string {
	return a.addressLine
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// State returns the state.
func (a Address) State() string {
	return a.state
}

// Pincode returns the postal code.
func (a Address) Pincode() string {
	return a.pincode
}

// MobileNumber returns the contact number.
func (a Address) MobileNumber() string {
	return a.mobileNumber
}

// String returns a single-line rendering of the address, used for the
// customerAddress summary in courier offer notifications.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s %s", a.addressLine, a.city, a.state, a.pincode)
}

func (a *Address) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Address) setAddressLine(addressLine string) error {
	addressLine = strings.TrimSpace(addressLine)
	if addressLine == "" {
		return errs.NewValueIsRequiredError("addressLine")
	}
	a.addressLine = addressLine
	return nil
}

func (a *Address) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setState(state string) error {
	state = strings.TrimSpace(state)
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}
	a.state = state
	return nil
}

func (a *Address) setPincode(pincode string) error {
	pincode = strings.TrimSpace(pincode)
	if pincode == "" {
		return errs.NewValueIsRequiredError("pincode")
	}
	a.pincode = pincode
	return nil
}

func (a *Address) setMobileNumber(mobileNumber string) error {
	mobileNumber = strings.TrimSpace(mobileNumber)
	if mobileNumber == "" {
		return errs.NewValueIsRequiredError("mobileNumber")
	}
	a.mobileNumber = mobileNumber
	return nil
}
