//go:build ignore

// Записывает демонстрационный снапшот в redis или в файл.
//
//	go run scripts/seed_snapshot.go -redis localhost:6379
//	go run scripts/seed_snapshot.go -file data/agency.json
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/travel-agency/internal/domain"
	"github.com/travel-agency/internal/repository/snapshot"
)

func main() {
	redisAddr := flag.String("redis", "", "адрес redis")
	key := flag.String("key", "travel-agency:snapshot", "ключ снапшота в redis")
	file := flag.String("file", "", "путь к файлу снапшота")
	flag.Parse()

	if *redisAddr == "" && *file == "" {
		log.Fatal("Specify -redis or -file")
	}

	agency, err := demoAgency()
	if err != nil {
		log.Fatalf("Failed to build demo data: %v", err)
	}

	data, err := snapshot.Encode(agency)
	if err != nil {
		log.Fatalf("Failed to encode snapshot: %v", err)
	}

	if *file != "" {
		if err := os.MkdirAll(filepath.Dir(*file), 0o755); err != nil {
			log.Fatalf("Failed to create directory: %v", err)
		}
		if err := os.WriteFile(*file, data, 0o644); err != nil {
			log.Fatalf("Failed to write snapshot: %v", err)
		}
		fmt.Printf("Snapshot written to %s (%d bytes)\n", *file, len(data))
	}

	if *redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: *redisAddr})
		defer client.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := client.Set(ctx, *key, data, 0).Err(); err != nil {
			log.Fatalf("Failed to store snapshot: %v", err)
		}
		fmt.Printf("Snapshot stored in redis %s key %s (%d bytes)\n", *redisAddr, *key, len(data))
	}

	fmt.Printf("Clients: %d, tours: %d, bookings: %d\n",
		len(agency.Clients()), len(agency.Tours()), len(agency.Bookings()))
}

func demoAgency() (*domain.Agency, error) {
	a := domain.NewAgency()

	address := domain.Address{
		Region:     "Московская",
		City:       "Москва",
		Street:     "Арбат",
		House:      "12",
		Apartment:  "5",
		PostalCode: "119002",
	}
	client, err := a.AddClient(domain.ClientInput{
		LastName:            "Смирнова",
		FirstName:           "Елена",
		MiddleName:          "Андреевна",
		Phone:               "+7 916 555-12-34",
		Email:               "smirnova@mail.ru",
		RegistrationAddress: address,
		ActualAddress:       address,
	})
	if err != nil {
		return nil, err
	}

	sochi, err := a.AddTour(domain.TourInput{
		Name:         "Сочи летом",
		Country:      "Россия",
		TourType:     "Пляжный",
		StartDate:    time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC),
		DurationDays: 10,
		BasePrice:    45000,
		Domestic:     true,
		TravelModes:  []string{domain.ModeTrain, domain.ModePlane},
	})
	if err != nil {
		return nil, err
	}

	alps, err := a.AddTour(domain.TourInput{
		Name:         "Альпы",
		Country:      "Швейцария",
		TourType:     "Активный отдых",
		StartDate:    time.Date(2027, time.January, 15, 0, 0, 0, 0, time.UTC),
		DurationDays: 7,
		BasePrice:    120000,
		VisaRequired: true,
	})
	if err != nil {
		return nil, err
	}

	b, err := a.CreateBooking(client.ID, sochi.ID)
	if err != nil {
		return nil, err
	}
	if _, err := b.AddAdult("Смирнова", "Елена", "Андреевна"); err != nil {
		return nil, err
	}
	if _, err := b.AddChild("Смирнов", "Артём", "", time.Now().AddDate(-6, 0, 0)); err != nil {
		return nil, err
	}
	if _, err := b.AddAnimal("Собака", 8.5, "В купе"); err != nil {
		return nil, err
	}
	b.SetTravelClass("Compartment")

	b2, err := a.CreateBooking(client.ID, alps.ID)
	if err != nil {
		return nil, err
	}
	if _, err := b2.AddAdult("Смирнова", "Елена", "Андреевна"); err != nil {
		return nil, err
	}
	if err := b2.SetDocumentField(0, 0, "number", "753123456"); err != nil {
		return nil, err
	}
	return a, nil
}
