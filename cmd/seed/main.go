package main

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"merchant-dashboard-be/internal/model"
	"merchant-dashboard-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seeds one demo merchant with a small menu so the dashboard and assistant
// can be exercised locally without real data.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding demo merchant data\n")

	merchantId := seedMerchant(db)
	seedMenu(db, merchantId)

	color.Green("\nDone. Demo merchant id: %s", merchantId)
}

func seedMerchant(db *gorm.DB) uuid.UUID {
	color.Yellow("\n1. Merchant profile")

	merchant := model.Merchant{
		Id:             uuid.New(),
		BusinessName:   "Warung Makan Sedap",
		OutletName:     "Warung Sedap - Petaling Jaya",
		OutletAddress:  "12, Jalan SS 2/24, SS 2, 47300 Petaling Jaya, Selangor",
		OutletType:     "Restaurant",
		OutletCategory: "Malaysian",
		SsmNumber:      "002312345-K",
		OpenTime:       "09:00",
		CloseTime:      "22:00",
		DeliveryRadius: "5",
		ServiceType:    "Delivery & Pickup",
		OwnerName:      "Aminah binti Hassan",
		OwnerId:        "850101-14-5678",
		Dob:            "1985-01-01",
		Nationality:    "Malaysian",
		OwnerEmail:     "aminah@warungsedap.my",
		OwnerPhone:     "+60123456789",
		Position:       "Owner",
		CompanyEmail:   "hello@warungsedap.my",
		CompanyPhone:   "+60378901234",
		SupportContact: "support@warungsedap.my",
		BankName:       "Maybank",
		BankAccount:    "512345678901",
		AccountHolder:  "Aminah binti Hassan",
		AccountType:    "Current",
		CreatedAt:      time.Now(),
	}

	if err := db.Create(&merchant).Error; err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Created: %s", merchant.BusinessName)
	return merchant.Id
}

func seedMenu(db *gorm.DB, merchantId uuid.UUID) {
	color.Yellow("\n2. Menu items")

	type item struct {
		name        string
		price       float64
		description string
		category    string
		disabled    bool
		addOns      []map[string]any
	}

	items := []item{
		{
			name:        "Nasi Lemak Ayam Goreng",
			price:       12.50,
			description: "Coconut rice with fried chicken, sambal, anchovies and peanuts",
			category:    "Rice",
			addOns:      []map[string]any{{"name": "Extra Sambal", "price": 1.0}, {"name": "Telur Mata", "price": 1.5}},
		},
		{
			name:        "Mee Goreng Mamak",
			price:       9.00,
			description: "Spicy fried noodles with tofu, egg and vegetables",
			category:    "Noodles",
		},
		{
			name:        "Teh Tarik",
			price:       3.50,
			description: "Pulled milk tea, served hot",
			category:    "Drinks",
		},
		{
			name:        "Cendol Special",
			price:       6.00,
			description: "Shaved ice with palm sugar, coconut milk and red beans",
			category:    "Desserts",
			disabled:    true, // seasonal
		},
	}

	for position, it := range items {
		addOns, _ := json.Marshal(it.addOns)
		row := model.MenuItem{
			Id:          uuid.New(),
			MerchantId:  merchantId,
			Position:    position,
			Name:        it.name,
			Price:       it.price,
			Description: it.description,
			Category:    it.category,
			Disabled:    it.disabled,
			AddOns:      datatypes.JSON(addOns),
			CreatedAt:   time.Now(),
		}
		if err := db.Create(&row).Error; err != nil {
			color.Red("Failed: %v", err)
			os.Exit(1)
		}
		color.Green("Created: %s", it.name)
	}
}
