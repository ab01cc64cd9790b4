package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"fieldops/internal/config"
	"fieldops/internal/database"
	"fieldops/internal/domain"
	jwtsvc "fieldops/internal/pkg/jwt"
	"fieldops/internal/repository"
)

// Seeds a local database with a demo workspace and prints a token for it.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Organization{},
		&domain.AssociateProfile{},
		&domain.Person{},
		&domain.Job{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Wipe old demo data, children first.
	for _, model := range []interface{}{
		&domain.Job{},
		&domain.Person{},
		&domain.AssociateProfile{},
		&domain.Organization{},
		&domain.User{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			log.Fatal("cleanup failed:", err)
		}
	}

	users := repository.NewUserRepository(db)
	user := &domain.User{
		Email: "demo@fieldops.local",
		Name:  "Demo User",
		Role:  domain.RoleMember,
	}
	must(users.Create(context.Background(), user))

	rate := 85.0
	rating := 4.5
	completed := 12
	joined := time.Now().AddDate(-1, 0, 0)

	acme := &domain.Organization{
		UserID:         user.ID,
		Name:           "Acme Mechanical",
		Relation:       "subcontractor",
		Email:          "dispatch@acme.example",
		Phone:          "+1 555 0100",
		City:           "Springfield",
		Classification: domain.ClassificationAssociate,
		Associates: []domain.AssociateProfile{{
			Availability:   domain.AvailabilityAvailable,
			HourlyRate:     &rate,
			Rating:         &rating,
			CompletedJobs:  &completed,
			Skills:         []string{"HVAC", "Plumbing"},
			Certifications: []string{"EPA 608"},
			JoinedAt:       &joined,
		}},
	}
	must(db.Create(acme).Error)

	northside := &domain.Organization{
		UserID:         user.ID,
		Name:           "Northside Property Group",
		Relation:       "client",
		Email:          "office@northside.example",
		Phone:          "+1 555 0199",
		Address:        "12 North Ave",
		City:           "Springfield",
		Classification: domain.ClassificationCustomer,
	}
	must(db.Create(northside).Error)

	// Unclassified: shows up in neither directory.
	must(db.Create(&domain.Organization{
		UserID: user.ID,
		Name:   "Paper Trail LLC",
	}).Error)

	tech := &domain.Person{
		UserID:         user.ID,
		FirstName:      "Jordan",
		LastName:       "Reyes",
		Title:          "Lead Technician",
		Mobile:         "+1 555 0142",
		IsTechnician:   true,
		OrganizationID: acme.ID,
	}
	must(db.Create(tech).Error)

	start := time.Now().AddDate(0, 0, 3)
	must(db.Create(&domain.Job{
		UserID:         user.ID,
		Title:          "Rooftop unit replacement",
		Phase:          "estimate",
		Status:         domain.JobStatusScheduled,
		Priority:       domain.JobPriorityHigh,
		StartDate:      &start,
		CustomerID:     northside.ID,
		OrganizationID: acme.ID,
		PersonID:       tech.ID,
		Tags:           []string{"hvac"},
		AssignedTechs:  []string{tech.ID},
	}).Error)

	token, err := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL).GenerateToken(user.ID, string(user.Role))
	if err != nil {
		log.Fatal("token generation failed:", err)
	}

	fmt.Println("Seeded demo workspace for", user.Email)
	fmt.Println("Bearer token:", token)
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
