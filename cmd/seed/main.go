package main

import (
	"context"
	"log"

	"starwarsblog/internal/config"
	"starwarsblog/internal/database"
	"starwarsblog/internal/domain"
	"starwarsblog/internal/modules/catalog"
	"starwarsblog/internal/modules/favorite"
	"starwarsblog/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL, cfg.DBLogLevel)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (favorites first, they reference users)
	log.Println("Cleaning old data...")
	for _, table := range []string{"favorites", "characters", "vehicles", "planets", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatalf("cleanup %s: %v", table, err)
		}
	}

	ctx := context.Background()
	catalogService := catalog.NewService(
		repository.NewUserRepository(db),
		repository.NewPlanetRepository(db),
		repository.NewVehicleRepository(db),
		repository.NewCharacterRepository(db),
	)
	favoriteService := favorite.NewService(repository.NewFavoriteRepository(db))

	create := func(kind domain.EntityKind, fields map[string]any) domain.Entity {
		e, err := catalogService.Create(ctx, kind, fields)
		if err != nil {
			log.Fatalf("create %s %v: %v", kind, fields["name"], err)
		}
		return e
	}

	// ================== USERS ==================
	log.Println("Creating users...")
	luke := create(domain.KindUser, map[string]any{
		"name": "Luke", "last_name": "Skywalker", "email": "luke@rebellion.org", "password": "force123",
		"date_of_suscription": "2024-05-04",
	})
	leia := create(domain.KindUser, map[string]any{
		"name": "Leia", "last_name": "Organa", "email": "leia@alderaan.gov", "password": "force123",
	})
	create(domain.KindUser, map[string]any{
		"name": "Han", "last_name": "Solo", "email": "han@falcon.net", "password": "force123",
		"is_active": false,
	})
	log.Println("Users created (password: force123)")

	// ================== PLANETS ==================
	log.Println("Creating planets...")
	tatooine := create(domain.KindPlanet, map[string]any{"name": "Tatooine", "population": "200000", "diameter": "10465"})
	create(domain.KindPlanet, map[string]any{"name": "Alderaan", "population": "2000000000", "diameter": "12500"})
	hoth := create(domain.KindPlanet, map[string]any{"name": "Hoth", "population": "unknown", "diameter": "7200"})

	// ================== VEHICLES ==================
	log.Println("Creating vehicles...")
	xwing := create(domain.KindVehicle, map[string]any{"name": "X-wing", "model": "T-65B", "size": "12.5m"})
	create(domain.KindVehicle, map[string]any{"name": "Sand Crawler", "model": "Digger Crawler", "size": "36.8m"})
	create(domain.KindVehicle, map[string]any{"name": "Snowspeeder", "model": "t-47 airspeeder", "size": "4.5m"})

	// ================== CHARACTERS ==================
	log.Println("Creating characters...")
	create(domain.KindCharacter, map[string]any{"name": "Luke Skywalker", "gender": "male", "eye_color": "blue"})
	vader := create(domain.KindCharacter, map[string]any{"name": "Darth Vader", "gender": "male", "eye_color": "yellow"})
	yoda := create(domain.KindCharacter, map[string]any{"name": "Yoda", "gender": "male", "eye_color": "brown"})

	// ================== FAVORITES ==================
	log.Println("Creating favorites...")
	favorites := []struct {
		user   domain.Entity
		target domain.Entity
	}{
		{luke, tatooine},
		{luke, xwing},
		{luke, yoda},
		{leia, hoth},
		{leia, vader},
	}
	for _, f := range favorites {
		kind := string(f.target.EntityKind())
		if _, err := favoriteService.AddFavorite(ctx, f.user.EntityID(), kind, f.target.EntityID()); err != nil {
			log.Fatalf("favorite %s %d: %v", kind, f.target.EntityID(), err)
		}
	}

	log.Println("Seed completed")
}
