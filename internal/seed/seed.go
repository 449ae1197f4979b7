package seed

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nourix/protocol-coach/internal/domain"
)

// Run seeds the database with demo users and a starter food catalog.
// Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.Food{}, &domain.ProtocolWeights{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Name: "Jamie R"},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Name: "Morgan Lee"},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Name: "Sam Okafor"},
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	for _, food := range starterFoods() {
		if err := db.Where("key = ?", food.Key).FirstOrCreate(&food).Error; err != nil {
			return fmt.Errorf("failed to create food %q: %w", food.Key, err)
		}
	}

	log.Println("Seed completed")
	return nil
}

// starterFoods is a compact catalog covering the protocol tags the
// recommendation engine and swap search key on. Values are per 100 g.
func starterFoods() []domain.Food {
	return []domain.Food{
		{
			Key: "lentils", Name: "Lentils",
			Calories: 116, ProteinG: 9.0, FatG: 0.4, CarbsG: 20.1, FiberG: 7.9, SugarG: 1.8,
			IronMg: 3.3, MagnesiumMg: 36, CalciumMg: 19, ZincMg: 1.3, PotassiumMg: 369,
			TryptophanMg: 90, VitaminB6Mg: 0.18,
			ServingSize: "130 g",
			Tags:        []string{"legume", "vegan", "high_fiber", "iron_rich", "gut_protocol", "energy_protocol"},
		},
		{
			Key: "chickpeas", Name: "Chickpeas",
			Calories: 164, ProteinG: 8.9, FatG: 2.6, CarbsG: 27.4, FiberG: 7.6, SugarG: 4.8,
			IronMg: 2.9, MagnesiumMg: 48, CalciumMg: 49, ZincMg: 1.5, PotassiumMg: 291,
			TryptophanMg: 85, VitaminB6Mg: 0.14,
			ServingSize: "130 g",
			Tags:        []string{"legume", "vegan", "high_fiber", "iron_rich", "gut_protocol"},
		},
		{
			Key: "black beans", Name: "Black Beans",
			Calories: 132, ProteinG: 8.9, FatG: 0.5, CarbsG: 23.7, FiberG: 8.7, SugarG: 0.3,
			IronMg: 2.1, MagnesiumMg: 70, CalciumMg: 27, ZincMg: 1.1, PotassiumMg: 355,
			TryptophanMg: 105,
			ServingSize: "130 g",
			Tags:        []string{"legume", "vegan", "high_fiber", "magnesium_rich", "gut_protocol"},
		},
		{
			Key: "tofu", Name: "Tofu",
			Calories: 76, ProteinG: 8.1, FatG: 4.8, CarbsG: 1.9, FiberG: 0.3, SugarG: 0.6,
			IronMg: 5.4, MagnesiumMg: 30, CalciumMg: 350, ZincMg: 0.8, PotassiumMg: 121,
			TryptophanMg: 120,
			ServingSize: "120 g",
			Tags:        []string{"soy", "vegan", "high_protein", "calcium_rich", "muscle_protocol"},
		},
		{
			Key: "tempeh", Name: "Tempeh",
			Calories: 193, ProteinG: 19.0, FatG: 11.0, CarbsG: 9.4, FiberG: 4.5,
			IronMg: 2.7, MagnesiumMg: 81, CalciumMg: 111, ZincMg: 1.1, PotassiumMg: 412,
			TryptophanMg: 190, VitaminB12Ug: 0.1,
			ServingSize: "120 g",
			Tags:        []string{"soy", "vegan", "high_protein", "magnesium_rich", "gut_protocol", "muscle_protocol"},
		},
		{
			Key: "chicken breast", Name: "Chicken Breast",
			Calories: 165, ProteinG: 31.0, FatG: 3.6, CarbsG: 0,
			IronMg: 1.0, MagnesiumMg: 29, ZincMg: 1.0, PotassiumMg: 256,
			TryptophanMg: 340, VitaminB6Mg: 0.6, VitaminB12Ug: 0.3, CholineMg: 85,
			ServingSize: "120 g",
			Tags:        []string{"poultry", "high_protein", "tryptophan_rich", "muscle_protocol"},
		},
		{
			Key: "salmon", Name: "Salmon",
			Calories: 208, ProteinG: 20.4, FatG: 13.4, CarbsG: 0,
			IronMg: 0.4, MagnesiumMg: 27, ZincMg: 0.4, PotassiumMg: 363,
			TryptophanMg: 290, VitaminB6Mg: 0.8, VitaminB12Ug: 3.2, VitaminDUg: 11.0, CholineMg: 90,
			ServingSize: "120 g",
			Tags:        []string{"fish", "high_protein", "b12_rich", "energy_protocol", "sleep_protocol"},
		},
		{
			Key: "eggs", Name: "Eggs",
			Calories: 155, ProteinG: 13.0, FatG: 11.0, CarbsG: 1.1,
			IronMg: 1.8, MagnesiumMg: 12, CalciumMg: 56, ZincMg: 1.3, PotassiumMg: 138,
			TryptophanMg: 165, VitaminB12Ug: 1.1, VitaminDUg: 2.0, CholineMg: 294,
			ServingSize: "60 g",
			Tags:        []string{"vegetarian", "high_protein", "b12_rich", "focus_protocol"},
		},
		{
			Key: "greek yogurt", Name: "Greek Yogurt",
			Calories: 59, ProteinG: 10.2, FatG: 0.4, CarbsG: 3.6, SugarG: 3.2,
			MagnesiumMg: 11, CalciumMg: 110, ZincMg: 0.5, PotassiumMg: 141,
			TryptophanMg: 120, VitaminB12Ug: 0.8,
			ServingSize: "200 g",
			Tags:        []string{"dairy", "vegetarian", "high_protein", "calcium_rich", "gut_protocol", "sleep_protocol"},
		},
		{
			Key: "pumpkin seeds", Name: "Pumpkin Seeds",
			Calories: 559, ProteinG: 30.2, FatG: 49.1, CarbsG: 10.7, FiberG: 6.0,
			IronMg: 8.8, MagnesiumMg: 592, CalciumMg: 46, ZincMg: 7.8, PotassiumMg: 809,
			TryptophanMg: 576,
			ServingSize: "28 g",
			Tags:        []string{"seeds", "vegan", "magnesium_rich", "zinc_rich", "tryptophan_rich", "stress_protocol", "sleep_protocol"},
		},
		{
			Key: "almonds", Name: "Almonds",
			Calories: 579, ProteinG: 21.2, FatG: 49.9, CarbsG: 21.6, FiberG: 12.5, SugarG: 4.4,
			IronMg: 3.7, MagnesiumMg: 270, CalciumMg: 269, ZincMg: 3.1, PotassiumMg: 733,
			TryptophanMg: 210,
			ServingSize: "28 g",
			Tags:        []string{"nuts", "vegan", "magnesium_rich", "high_fiber", "stress_protocol"},
		},
		{
			Key: "spinach", Name: "Spinach",
			Calories: 23, ProteinG: 2.9, FatG: 0.4, CarbsG: 3.6, FiberG: 2.2,
			IronMg: 2.7, MagnesiumMg: 79, CalciumMg: 99, ZincMg: 0.5, PotassiumMg: 558,
			VitaminCMg: 28.1, VitaminB6Mg: 0.2,
			ServingSize: "85 g",
			Tags:        []string{"leafy_green", "vegan", "iron_rich", "magnesium_rich", "stress_protocol", "energy_protocol"},
		},
		{
			Key: "broccoli", Name: "Broccoli",
			Calories: 34, ProteinG: 2.8, FatG: 0.4, CarbsG: 6.6, FiberG: 2.6, SugarG: 1.7,
			IronMg: 0.7, MagnesiumMg: 21, CalciumMg: 47, PotassiumMg: 316,
			VitaminCMg: 89.2, VitaminB6Mg: 0.2,
			ServingSize: "85 g",
			Tags:        []string{"cruciferous", "vegan", "high_fiber", "gut_protocol", "immune_protocol"},
		},
		{
			Key: "oats", Name: "Oats",
			Calories: 389, ProteinG: 16.9, FatG: 6.9, CarbsG: 66.3, FiberG: 10.6,
			IronMg: 4.7, MagnesiumMg: 177, CalciumMg: 54, ZincMg: 4.0, PotassiumMg: 429,
			TryptophanMg: 230,
			ServingSize: "160 g",
			Tags:        []string{"grain", "vegan", "high_fiber", "magnesium_rich", "energy_protocol", "sleep_protocol"},
		},
		{
			Key: "quinoa", Name: "Quinoa",
			Calories: 120, ProteinG: 4.4, FatG: 1.9, CarbsG: 21.3, FiberG: 2.8,
			IronMg: 1.5, MagnesiumMg: 64, CalciumMg: 17, ZincMg: 1.1, PotassiumMg: 172,
			TryptophanMg: 52,
			ServingSize: "180 g",
			Tags:        []string{"grain", "vegan", "high_fiber", "magnesium_rich", "energy_protocol"},
		},
		{
			Key: "banana", Name: "Banana",
			Calories: 89, ProteinG: 1.1, FatG: 0.3, CarbsG: 22.8, FiberG: 2.6, SugarG: 12.2,
			MagnesiumMg: 27, PotassiumMg: 358,
			TryptophanMg: 9, VitaminB6Mg: 0.4, VitaminCMg: 8.7,
			ServingSize: "118 g",
			Tags:        []string{"fruit", "vegan", "energy_protocol", "sleep_protocol"},
		},
		{
			Key: "walnuts", Name: "Walnuts",
			Calories: 654, ProteinG: 15.2, FatG: 65.2, CarbsG: 13.7, FiberG: 6.7,
			IronMg: 2.9, MagnesiumMg: 158, CalciumMg: 98, ZincMg: 3.1, PotassiumMg: 441,
			TryptophanMg: 170,
			ServingSize: "28 g",
			Tags:        []string{"nuts", "vegan", "magnesium_rich", "focus_protocol", "stress_protocol"},
		},
		{
			Key: "sweet potato", Name: "Sweet Potato",
			Calories: 86, ProteinG: 1.6, FatG: 0.1, CarbsG: 20.1, FiberG: 3.0, SugarG: 4.2,
			IronMg: 0.6, MagnesiumMg: 25, CalciumMg: 30, PotassiumMg: 337,
			VitaminCMg: 2.4, VitaminB6Mg: 0.2,
			ServingSize: "150 g",
			Tags:        []string{"tuber", "vegan", "high_fiber", "energy_protocol", "gut_protocol"},
		},
	}
}
