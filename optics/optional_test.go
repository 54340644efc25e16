package optics

import (
	"testing"

	"github.com/authcorp/go-functional/functional"
	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func genOrder() gopter.Gen {
	return gopter.CombineGens(gen.AnyString(), genPayment()).Map(
		func(values []interface{}) Order {
			return Order{Transaction: Transaction{
				ID:            values[0].(string),
				PaymentMethod: values[1].(PaymentMethod),
			}}
		})
}

// cvvOptional is the three-stage chain used by the associativity and
// scenario tests: Order -> Transaction -> PaymentMethod -> CreditCard CVV.
func cvvOptional() Optional[Order, string] {
	cardOptional := ComposePrismLens(creditCardPrism(), cardCVVLens())
	paymentLens := Compose(orderTransactionLens(), transactionPaymentLens())
	return ComposeLensOptional(paymentLens, cardOptional)
}

func TestCompositionAssociativity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	a := LensToOptional(orderTransactionLens())
	b := LensToOptional(transactionPaymentLens())
	c := PrismToOptional(creditCardPrism())

	leftAssoc := ComposeOptional(ComposeOptional(a, b), c)
	rightAssoc := ComposeOptional(a, ComposeOptional(b, c))

	properties.Property("(a∘b)∘c and a∘(b∘c) read identically", prop.ForAll(
		func(o Order) bool {
			l := leftAssoc.GetOption(o)
			r := rightAssoc.GetOption(o)
			return functional.MatchOption(l,
				func(lv CreditCard) bool { return r.IsSome() && r.Unwrap() == lv },
				func() bool { return r.IsNone() },
			)
		},
		genOrder(),
	))

	properties.Property("(a∘b)∘c and a∘(b∘c) write identically", prop.ForAll(
		func(o Order, number, cvv string) bool {
			card := CreditCard{Number: number, CVV: cvv}
			return leftAssoc.Set(o, card) == rightAssoc.Set(o, card)
		},
		genOrder(), gen.AnyString(), gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestCrossKindComposition(t *testing.T) {
	t.Run("modify updates a matching nested variant field", func(t *testing.T) {
		order := Order{Transaction: Transaction{
			ID:            "tx-1",
			PaymentMethod: CreditCard{Number: "4111", CVV: "123"},
		}}
		masked := cvvOptional().Modify(order, func(string) string { return "***" })
		want := Order{Transaction: Transaction{
			ID:            "tx-1",
			PaymentMethod: CreditCard{Number: "4111", CVV: "***"},
		}}
		if diff := cmp.Diff(want, masked); diff != "" {
			t.Errorf("unexpected result (-want +got):\n%s", diff)
		}
	})

	t.Run("modify leaves an order paying cash unchanged", func(t *testing.T) {
		order := Order{Transaction: Transaction{ID: "tx-2", PaymentMethod: Cash{}}}
		modified := cvvOptional().Modify(order, func(string) string { return "***" })
		if modified != order {
			t.Error("expected order unchanged")
		}
	})

	t.Run("read degrades to partial when a prism is in the chain", func(t *testing.T) {
		cashOrder := Order{Transaction: Transaction{PaymentMethod: Cash{}}}
		if cvvOptional().GetOption(cashOrder).IsSome() {
			t.Error("expected None through the cash branch")
		}
		cardOrder := Order{Transaction: Transaction{PaymentMethod: CreditCard{CVV: "123"}}}
		if cvvOptional().GetOption(cardOrder).UnwrapOr("") != "123" {
			t.Error("expected the CVV through the card branch")
		}
	})

	t.Run("GetOrModify carries the outermost original on mismatch", func(t *testing.T) {
		order := Order{Transaction: Transaction{ID: "tx-3", PaymentMethod: Cash{}}}
		result := cvvOptional().GetOrModify(order)
		if !result.IsLeft() {
			t.Fatal("expected Left")
		}
		if result.LeftValue() != order {
			t.Error("expected the original order back")
		}
	})

	t.Run("strict modify reports the mismatch", func(t *testing.T) {
		order := Order{Transaction: Transaction{PaymentMethod: Cash{}}}
		if cvvOptional().ModifyOption(order, func(s string) string { return s }).IsSome() {
			t.Error("expected None on mismatch")
		}
	})

	t.Run("lens then prism composes to an optional", func(t *testing.T) {
		payment := ComposeLensPrism(transactionPaymentLens(), creditCardPrism())
		tx := Transaction{PaymentMethod: CreditCard{Number: "4111", CVV: "1"}}
		updated := payment.Set(tx, CreditCard{Number: "5500", CVV: "2"})
		if updated.PaymentMethod != PaymentMethod(CreditCard{Number: "5500", CVV: "2"}) {
			t.Error("expected payment replaced")
		}
	})
}

func TestIndexOptional(t *testing.T) {
	t.Run("reads in-range elements", func(t *testing.T) {
		if Index[int](1).GetOption([]int{1, 2, 3}).UnwrapOr(-1) != 2 {
			t.Error("expected 2")
		}
	})

	t.Run("out-of-range read returns the slice unchanged", func(t *testing.T) {
		s := []int{1, 2, 3}
		result := Index[int](9).GetOrModify(s)
		if !result.IsLeft() || len(result.LeftValue()) != 3 {
			t.Error("expected Left with original slice")
		}
	})

	t.Run("set copies the slice", func(t *testing.T) {
		s := []int{1, 2, 3}
		updated := Index[int](0).Set(s, 99)
		if updated[0] != 99 || s[0] != 1 {
			t.Error("expected copy-on-write")
		}
	})

	t.Run("modify no-ops out of range", func(t *testing.T) {
		s := []int{1}
		if got := Index[int](5).Modify(s, func(n int) int { return n + 1 }); len(got) != 1 || got[0] != 1 {
			t.Error("expected unchanged slice")
		}
	})
}
