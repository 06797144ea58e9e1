package survey

import (
	"log"

	"github.com/SchoolPulse/SP-Backend/internal/db"
	"github.com/SchoolPulse/SP-Backend/internal/sheet"
)

func Init() {
	// Ensure the survey schema exists first
	if err := db.EnsureSchema(db.DB, "survey"); err != nil {
		log.Fatal("Failed to create survey schema: ", err)
	}

	if err := db.DB.AutoMigrate(&Snapshot{}, &School{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}

	if err := LoadCatalog(); err != nil {
		log.Fatal("Failed to load category catalog: ", err)
	}

	store = NewStore(sheet.NewClientFromEnv(), ttlFromEnv(), true)
}
