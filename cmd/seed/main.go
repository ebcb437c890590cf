package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"superdaily/internal/auth"
	"superdaily/internal/config"
	"superdaily/internal/db"
	"superdaily/internal/model"
	"superdaily/internal/repository"
)

// demoProducts store image paths the way the admin uploader does; the
// listing endpoint rewrites them to public URLs.
var demoProducts = []struct {
	Name     string
	Category string
	Price    string
	Images   []string
}{
	{"Floor Cleaner 1L", "cleaning", "149.00", []string{"storage/products/floor-cleaner.png", "storage/products/floor-cleaner-back.png"}},
	{"Microfiber Mop", "cleaning", "399.00", []string{"storage/products/mop.jpg"}},
	{"Glass Cleaner Spray", "cleaning", "99.50", []string{"glass-cleaner.webp"}},
	{"Kitchen Degreaser", "kitchen", "229.00", nil},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	created, err := seedUser(ctx, repository.NewUserRepository(gormDB), auth.NewBcryptHasher(), cfg.SeedPhone, cfg.SeedPassword)
	if err != nil {
		log.Fatalf("Failed to seed user: %v", err)
	}
	if created {
		log.Printf("Created demo user with phone %s", cfg.SeedPhone)
	} else {
		log.Printf("Reset password of existing user with phone %s", cfg.SeedPhone)
	}

	count, err := seedProducts(ctx, repository.NewProductRepository(gormDB))
	if err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Products ensured: %d", count)
}

// seedUser creates an active user for phone, or resets the password and
// active flag of the existing one.
func seedUser(ctx context.Context, repo repository.UserRepository, hasher auth.PasswordHasher, phone, password string) (bool, error) {
	hash, err := hasher.Hash(password)
	if err != nil {
		return false, err
	}
	active := 1

	existing, err := repo.FindByPhone(ctx, phone)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("error checking user %s: %w", phone, err)
	}

	if existing != nil {
		existing.Password = hash
		existing.IsActive = &active
		if err := repo.Update(ctx, existing); err != nil {
			return false, fmt.Errorf("error updating user %s: %w", phone, err)
		}
		return false, nil
	}

	name := "Demo Customer"
	role := "customer"
	user := &model.User{
		Name:     &name,
		Phone:    phone,
		Password: hash,
		Role:     &role,
		IsActive: &active,
	}
	if err := repo.Create(ctx, user); err != nil {
		return false, fmt.Errorf("error creating user %s: %w", phone, err)
	}
	return true, nil
}

func seedProducts(ctx context.Context, repo repository.ProductRepository) (int, error) {
	for _, p := range demoProducts {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return 0, fmt.Errorf("invalid price %q for %s: %w", p.Price, p.Name, err)
		}

		category := p.Category
		record := &model.ProductRecord{
			Name:     p.Name,
			Category: &category,
			Price:    price,
			IsActive: true,
		}
		images := []**string{&record.Image, &record.Image2, &record.Image3, &record.Image4}
		for i, img := range p.Images {
			if i >= len(images) {
				break
			}
			v := img
			*images[i] = &v
		}

		if err := repo.FirstOrCreate(ctx, record); err != nil {
			return 0, fmt.Errorf("error seeding product %s: %w", p.Name, err)
		}
	}
	return len(demoProducts), nil
}
