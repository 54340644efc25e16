package optics

import (
	"github.com/authcorp/go-functional/functional"
)

// Test fixtures: a nested record type and a payment sum type, with leaf
// optics for each field and variant.

type Profile struct {
	City string
	Zip  string
}

type User struct {
	Name    string
	Age     int
	Profile Profile
}

func userNameLens() Lens[User, string] {
	return NewLens(
		func(u User) string { return u.Name },
		func(u User, name string) User {
			u.Name = name
			return u
		},
	)
}

func userAgeLens() Lens[User, int] {
	return NewLens(
		func(u User) int { return u.Age },
		func(u User, age int) User {
			u.Age = age
			return u
		},
	)
}

func userProfileLens() Lens[User, Profile] {
	return NewLens(
		func(u User) Profile { return u.Profile },
		func(u User, p Profile) User {
			u.Profile = p
			return u
		},
	)
}

func profileCityLens() Lens[Profile, string] {
	return NewLens(
		func(p Profile) string { return p.City },
		func(p Profile, city string) Profile {
			p.City = city
			return p
		},
	)
}

// PaymentMethod is a sum type with two variants.
type PaymentMethod interface {
	isPaymentMethod()
}

type CreditCard struct {
	Number string
	CVV    string
}

type Cash struct{}

func (CreditCard) isPaymentMethod() {}
func (Cash) isPaymentMethod()       {}

func creditCardPrism() Prism[PaymentMethod, CreditCard] {
	return NewPrism(
		func(p PaymentMethod) functional.Either[PaymentMethod, CreditCard] {
			if card, ok := p.(CreditCard); ok {
				return functional.Right[PaymentMethod](card)
			}
			return functional.Left[PaymentMethod, CreditCard](p)
		},
		func(card CreditCard) PaymentMethod { return card },
	)
}

type Transaction struct {
	ID            string
	PaymentMethod PaymentMethod
}

type Order struct {
	Transaction Transaction
}

func orderTransactionLens() Lens[Order, Transaction] {
	return NewLens(
		func(o Order) Transaction { return o.Transaction },
		func(o Order, t Transaction) Order {
			o.Transaction = t
			return o
		},
	)
}

func transactionPaymentLens() Lens[Transaction, PaymentMethod] {
	return NewLens(
		func(t Transaction) PaymentMethod { return t.PaymentMethod },
		func(t Transaction, p PaymentMethod) Transaction {
			t.PaymentMethod = p
			return t
		},
	)
}

func cardCVVLens() Lens[CreditCard, string] {
	return NewLens(
		func(c CreditCard) string { return c.CVV },
		func(c CreditCard, cvv string) CreditCard {
			c.CVV = cvv
			return c
		},
	)
}
