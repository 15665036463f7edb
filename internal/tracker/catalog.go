package tracker

import "github.com/limbo/hydration/pkg/entity"

// SeedCatalog returns a fresh copy of the drinks every tracker starts with.
func SeedCatalog() []entity.DrinkOption {
	return []entity.DrinkOption{
		{Name: "Coffee", Caffeine: entity.Mg(95)},
		{Name: "Black Tea", Caffeine: entity.Mg(47)},
		{Name: "Green Tea", Caffeine: entity.Mg(28)},
		{Name: "Cola", Caffeine: entity.Mg(24)},
		{Name: "Energy Drink", Caffeine: entity.Mg(80)},
	}
}
