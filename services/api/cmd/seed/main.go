package main

import (
	"errors"
	"fmt"

	"sekor-bkc/pkg/config"
	"sekor-bkc/pkg/database"
	"sekor-bkc/pkg/logger"
	"sekor-bkc/services/api/internal/entity"
	"sekor-bkc/services/api/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type seedCategory struct {
	name, nameBn, slug string
}

type seedUser struct {
	email, name, nameBn string
	role                entity.Role
}

var categories = []seedCategory{
	{"Story", "গল্প", "story"},
	{"Poetry", "কবিতা", "poetry"},
	{"Essay", "প্রবন্ধ", "essay"},
	{"History", "ইতিহাস", "history"},
	{"Interview", "সাক্ষাৎকার", "interview"},
	{"Report", "প্রতিবেদন", "report"},
}

var locations = []seedCategory{
	{"Dhaka", "ঢাকা", "dhaka"},
	{"Chattogram", "চট্টগ্রাম", "chattogram"},
	{"Rajshahi", "রাজশাহী", "rajshahi"},
	{"Khulna", "খুলনা", "khulna"},
	{"Sylhet", "সিলেট", "sylhet"},
	{"Kolkata", "কলকাতা", "kolkata"},
}

var users = []seedUser{
	{"admin@sekor.test", "Admin", "অ্যাডমিন", entity.RoleAdmin},
	{"editor@sekor.test", "Nusrat Jahan", "নুসরাত জাহান", entity.RoleEditor},
	{"author@sekor.test", "Arif Hossain", "আরিফ হোসেন", entity.RoleAuthor},
	{"poet@sekor.test", "Mitali Sen", "মিতালী সেন", entity.RoleAuthor},
	{"reader@sekor.test", "Rafiq Islam", "রফিক ইসলাম", entity.RoleReader},
}

const seedPassword = "password123"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.NewWithConfig(logger.Config{Level: cfg.LogLevel, Pretty: true, ServiceName: "seed"})
	db, err := database.New(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}
	defer database.Close(db)

	if cfg.DBAutoMigrate {
		if err := db.AutoMigrate(model.All()...); err != nil {
			log.Error("Failed to auto-migrate: %v", err)
			panic(err)
		}
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	for i, c := range categories {
		row := &model.CategoryModel{Name: c.name, NameBn: c.nameBn, Slug: c.slug, Order: i}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(row).Error; err != nil {
			return fmt.Errorf("failed to create category %s: %w", c.slug, err)
		}
	}
	log.Info("Seeded %d categories", len(categories))

	for _, l := range locations {
		row := &model.LocationModel{Name: l.name, NameBn: l.nameBn, Slug: l.slug}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(row).Error; err != nil {
			return fmt.Errorf("failed to create location %s: %w", l.slug, err)
		}
	}
	log.Info("Seeded %d locations", len(locations))

	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	var readerID string
	authorIDs := make([]string, 0, len(users))
	for _, u := range users {
		var existing model.UserModel
		err := db.Where("email = ?", u.email).First(&existing).Error
		switch {
		case err == nil:
			log.Info("User %s already exists, skipping", u.email)
		case errors.Is(err, gorm.ErrRecordNotFound):
			existing = model.UserModel{
				Email:    u.email,
				Password: string(hashed),
				Name:     u.name,
				NameBn:   u.nameBn,
				Role:     string(u.role),
				Status:   string(entity.UserStatusActive),
			}
			if err := db.Create(&existing).Error; err != nil {
				log.Error("Failed to create user %s: %v", u.email, err)
				continue
			}
			log.Info("Created user: %s (%s)", u.email, u.role)
		default:
			return fmt.Errorf("failed to look up user %s: %w", u.email, err)
		}

		if u.role.IsAuthor() {
			authorIDs = append(authorIDs, existing.ID)
		} else {
			readerID = existing.ID
		}
	}

	if readerID == "" {
		return nil
	}
	for _, authorID := range authorIDs {
		edge := &model.UserFollowModel{FollowerID: readerID, FollowingID: authorID}
		if err := db.Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(edge).Error; err != nil {
			log.Error("Failed to create follow: %v", err)
		}
	}
	log.Info("Reader follows %d authors", len(authorIDs))
	return nil
}
