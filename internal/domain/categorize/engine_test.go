package categorize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngineCategorize(t *testing.T) {
	engine := NewEngine(DefaultRules())

	t.Run("KeywordTable", func(t *testing.T) {
		cases := []struct {
			description string
			want        string
		}{
			{"Zomato order #1234", CategoryFood},
			{"SWIGGY BANGALORE", CategoryFood},
			{"Paid via Paytm wallet", CategoryUPIPayment},
			{"UPI/987654/merchant", CategoryUPIPayment},
			{"IMPS/P2A/settlement", CategoryBankTransfer},
			{"NEFT transfer to savings", CategoryBankTransfer},
			{"Quarterly interest credit", CategoryIncome},
			{"SALARY FOR JANUARY", CategoryIncome},
			{"Mobile recharge Airtel", CategoryUtilities},
			{"Electricity bill payment", CategoryUtilities},
			{"Cash withdrawal ATM", CategoryOthers},
			{"", CategoryOthers},
		}

		for _, tc := range cases {
			assert.Equal(t, tc.want, engine.Categorize(tc.description), "description: %q", tc.description)
		}
	})

	t.Run("FirstRuleWinsOnMultipleMatches", func(t *testing.T) {
		// Matches Food (zomato) and UPI Payment (googlepay, upi); the
		// earlier rule takes it.
		got := engine.Categorize("Paid via GooglePay UPI for Zomato order")
		assert.Equal(t, CategoryFood, got)
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		assert.Equal(t, CategoryFood, engine.Categorize("ZOMATO"))
		assert.Equal(t, CategoryFood, engine.Categorize("zOmAtO"))
	})

	t.Run("Deterministic", func(t *testing.T) {
		description := "googlepay upi transfer interest bill zomato"
		first := engine.Categorize(description)
		for i := 0; i < 100; i++ {
			assert.Equal(t, first, engine.Categorize(description))
		}
	})

	t.Run("EmptyRules", func(t *testing.T) {
		empty := NewEngine(nil)
		assert.Equal(t, CategoryOthers, empty.Categorize("zomato"))
	})
}

func TestCategorizeBatch(t *testing.T) {
	engine := NewEngine(DefaultRules())

	got := engine.CategorizeBatch([]string{"zomato", "salary", "unknown"})
	assert.Equal(t, []string{CategoryFood, CategoryIncome, CategoryOthers}, got)
}

func TestCategories(t *testing.T) {
	cats := Categories()
	assert.Equal(t, CategoryFood, cats[0])
	assert.Equal(t, CategoryOthers, cats[len(cats)-1])
	assert.Len(t, cats, 6)
}
