package mealpkg

import "github.com/dinepay/escrow-service/internal/domain"

// DefaultDiscount is the fixed package discount applied when bundling all
// required components.
const DefaultDiscount = 0.15

// Builder aggregates priced components into a discounted bundle. Pure
// function of its input.
type Builder struct {
	discount float64
}

func NewBuilder(discount float64) *Builder {
	if discount <= 0 || discount >= 1 {
		discount = DefaultDiscount
	}
	return &Builder{discount: discount}
}

// Build requires every slot in domain.RequiredSlots; it fails fast naming
// all missing slots.
func (b *Builder) Build(components map[domain.Slot]domain.PricedItem) (*domain.MealPackage, error) {
	var missing []domain.Slot
	for _, slot := range domain.RequiredSlots {
		if _, ok := components[slot]; !ok {
			missing = append(missing, slot)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.MissingComponentError{Slots: missing}
	}

	var individualTotal float64
	items := make(map[domain.Slot]domain.PricedItem, len(domain.RequiredSlots))
	for _, slot := range domain.RequiredSlots {
		items[slot] = components[slot]
		individualTotal += components[slot].Price
	}

	packagePrice := individualTotal * (1 - b.discount)
	return &domain.MealPackage{
		Items:             items,
		IndividualTotal:   individualTotal,
		PackagePrice:      packagePrice,
		SavingsAmount:     individualTotal - packagePrice,
		SavingsPercentage: b.discount * 100,
	}, nil
}
