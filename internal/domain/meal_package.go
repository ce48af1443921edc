package domain

type Slot string

const (
	SlotAppetizer  Slot = "appetizer"
	SlotMainCourse Slot = "main_course"
	SlotDessert    Slot = "dessert"
	SlotBeverage   Slot = "beverage"
)

// RequiredSlots lists every slot a package must fill.
var RequiredSlots = []Slot{SlotAppetizer, SlotMainCourse, SlotDessert, SlotBeverage}

type PricedItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type MealPackage struct {
	Items             map[Slot]PricedItem `json:"items"`
	IndividualTotal   float64             `json:"individual_total"`
	PackagePrice      float64             `json:"package_price"`
	SavingsAmount     float64             `json:"savings_amount"`
	SavingsPercentage float64             `json:"savings_percentage"`
}
