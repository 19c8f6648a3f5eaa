package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"planora/config"
	"planora/database"
	"planora/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Seeds the catalog mirror with sample vendors, events and availability for
// local development, so the API can be exercised without the upstream
// marketplace running.
func main() {
	config.LoadConfig()
	database.InitDB()
	client := database.MongoClient
	db := client.Database("planora")
	vendorColl := db.Collection("vendors")
	eventColl := db.Collection("events")
	availColl := db.Collection("availability")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	for _, coll := range []string{"vendors", "events", "availability"} {
		if _, err := db.Collection(coll).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", coll, err)
		}
	}

	serviceTypes := []string{"Catering", "Florist", "Music", "Photography", "Venue"}
	locations := []string{"Austin, TX", "Dallas, TX", "Houston, TX", "San Antonio, TX"}
	vendorsPerService := 5

	rand.Seed(time.Now().UnixNano())

	var vendors []interface{}
	var availabilities []interface{}
	counter := 1
	for _, service := range serviceTypes {
		for i := 1; i <= vendorsPerService; i++ {
			id := fmt.Sprintf("vendor-%03d", counter)
			minPrice := float64(200 + rand.Intn(20)*100)
			vendors = append(vendors, models.Vendor{
				ID:          id,
				Name:        fmt.Sprintf("%s Studio %d", service, i),
				ServiceType: service,
				PriceRange:  models.PriceRange{Min: minPrice, Max: minPrice * (1.5 + rand.Float64())},
				Location:    locations[rand.Intn(len(locations))],
				Rating:      3.0 + rand.Float64()*2.0,
				Description: fmt.Sprintf("Sample %s vendor for local development", service),
				SyncedAt:    time.Now(),
			})

			// Weekday mornings for phone/virtual, weekend afternoons in person.
			availabilities = append(availabilities, models.VendorAvailability{
				VendorID: id,
				Timezone: "America/Chicago",
				Windows: []models.AvailabilityWindow{
					{DayOfWeek: 1, StartMinute: 540, EndMinute: 720,
						AppointmentTypes: []models.AppointmentType{models.AppointmentPhone, models.AppointmentVirtual}},
					{DayOfWeek: 3, StartMinute: 540, EndMinute: 720,
						AppointmentTypes: []models.AppointmentType{models.AppointmentPhone, models.AppointmentVirtual}},
					{DayOfWeek: 6, StartMinute: 780, EndMinute: 1020,
						AppointmentTypes: []models.AppointmentType{models.AppointmentInPerson}},
				},
				SyncedAt: time.Now(),
			})
			counter++
		}
	}

	budget := 10000.0
	events := []interface{}{
		models.Event{ID: "event-001", Name: "Riverside Wedding", Budget: &budget, SyncedAt: time.Now()},
		models.Event{ID: "event-002", Name: "Product Launch (draft)", SyncedAt: time.Now()},
	}

	if _, err := vendorColl.InsertMany(ctx, vendors); err != nil {
		log.Fatalf("Failed to seed vendors: %v", err)
	}
	if _, err := eventColl.InsertMany(ctx, events); err != nil {
		log.Fatalf("Failed to seed events: %v", err)
	}
	if _, err := availColl.InsertMany(ctx, availabilities); err != nil {
		log.Fatalf("Failed to seed availability: %v", err)
	}

	log.Printf("Seeded %d vendors, %d events, %d availability records",
		len(vendors), len(events), len(availabilities))
}
