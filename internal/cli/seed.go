package cli

import (
	"flag"
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/framecraft/storefront/internal/infrastructure/config"
	"github.com/framecraft/storefront/internal/infrastructure/storage"
)

// SeedFlags holds the CLI flags for the seed-catalog command.
type SeedFlags struct {
	Products int
	Seed     uint64
}

// ParseSeedFlags parses command line flags for the seed-catalog command.
func ParseSeedFlags() *SeedFlags {
	flags := &SeedFlags{}
	flag.IntVar(&flags.Products, "products", 12, "Number of demo products to generate")
	flag.Uint64Var(&flags.Seed, "seed", 0, "Random seed (0 = random)")
	flag.Parse()
	return flags
}

var frameStyles = []string{
	"Aviator", "Wayfarer", "Round", "Cat Eye", "Browline",
	"Rectangle", "Oval", "Square", "Geometric", "Rimless",
}

var variantNames = []string{
	"Gold", "Silver", "Matte Black", "Tortoise", "Rose Gold", "Gunmetal",
}

var lensTypes = []struct {
	Name        string
	Description string
	Adjustment  float64
}{
	{"Single Vision", "Standard lenses for one field of vision", 0},
	{"Blue Light Filter", "Blocks blue light from screens", 15.00},
	{"Photochromic", "Darkens in sunlight", 35.00},
	{"Progressive", "Seamless near-to-far correction", 49.00},
}

// RunSeed fills the catalog with generated demo data.
func RunSeed(cfg *config.Config, flags *SeedFlags) error {
	if flags.Seed != 0 {
		if err := gofakeit.Seed(flags.Seed); err != nil {
			return err
		}
	}

	store, err := storage.NewStorage(cfg.Storage.DatabasePath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	for i := 0; i < flags.Products; i++ {
		style := frameStyles[i%len(frameStyles)]
		product := &storage.Product{
			ID:                uuid.NewString(),
			Name:              fmt.Sprintf("%s %s", style, gofakeit.LastName()),
			Description:       gofakeit.Sentence(12),
			BasePrice:         float64(gofakeit.Number(2900, 18900)) / 100,
			OffersLensOptions: true,
			Enabled:           true,
			DisplayOrder:      i + 1,
		}

		variantCount := gofakeit.Number(1, 3)
		for v := 0; v < variantCount; v++ {
			product.Variants = append(product.Variants, storage.ProductVariant{
				ID:              uuid.NewString(),
				ProductID:       product.ID,
				Name:            variantNames[(i+v)%len(variantNames)],
				PriceAdjustment: float64(gofakeit.Number(0, 1500)) / 100,
				Stock:           gofakeit.Number(0, 50),
				DisplayOrder:    v + 1,
				Enabled:         true,
			})
		}

		if err := store.SaveProduct(product); err != nil {
			return fmt.Errorf("failed to seed product: %w", err)
		}
	}

	// A couple of accessories that skip the lens flow entirely.
	accessories := []string{"Cleaning Cloth", "Hard Case", "Anti-Fog Spray"}
	for i, name := range accessories {
		product := &storage.Product{
			ID:           uuid.NewString(),
			Name:         name,
			Description:  gofakeit.Sentence(8),
			BasePrice:    float64(gofakeit.Number(500, 2500)) / 100,
			Enabled:      true,
			DisplayOrder: flags.Products + i + 1,
		}
		if err := store.SaveProduct(product); err != nil {
			return fmt.Errorf("failed to seed accessory: %w", err)
		}
	}

	for i, lt := range lensTypes {
		lensType := &storage.LensType{
			ID:              uuid.NewString(),
			Name:            lt.Name,
			Description:     lt.Description,
			PriceAdjustment: lt.Adjustment,
			Enabled:         true,
			DisplayOrder:    i + 1,
		}
		if err := store.SaveLensType(lensType); err != nil {
			return fmt.Errorf("failed to seed lens type: %w", err)
		}
	}

	PrintCatalogSummary(store)
	return nil
}
