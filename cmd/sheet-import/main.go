package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/SchoolPulse/SP-Backend/internal/db"
	"github.com/SchoolPulse/SP-Backend/internal/sheet"
	"github.com/SchoolPulse/SP-Backend/internal/survey"
	"github.com/joho/godotenv"
)

// sheet-import fetches the survey sheet once, prints a cleaning summary and
// optionally persists the load as a snapshot. Useful for sanity-checking an
// upstream edit before the dashboard picks it up.
func main() {
	var (
		url     = flag.String("url", "", "sheet export URL (default: SHEET_URL / SHEET_ID env)")
		persist = flag.Bool("persist", false, "write the load to Postgres as a snapshot")
	)
	flag.Parse()

	_ = godotenv.Load(".env.local")

	client := sheet.NewClientFromEnv()
	if *url != "" {
		client = sheet.NewClient(*url)
	}

	if err := survey.LoadCatalog(); err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var store *survey.Store
	if *persist {
		db.Connect()
		survey.Init()
		store = survey.NewStore(client, time.Minute, true)
	} else {
		store = survey.NewStore(client, time.Minute, false)
	}

	records, err := store.Records(ctx)
	if err != nil {
		log.Fatal(err)
	}

	summary := survey.Summarize(records)
	fmt.Printf("schools: %d\n", summary.TotalSchools)
	fmt.Printf("enrolled: %s  vacant: %s  vacancy: %.1f%%\n",
		summary.TotalEnrolledDisplay, summary.TotalVacantDisplay, summary.VacancyPercent)

	byDept := map[string]int{}
	for i := range records {
		byDept[records[i].Department]++
	}
	for _, d := range []string{survey.DeptKGBV, survey.DeptTGMS, survey.DeptPMSHRI, survey.DeptOther} {
		if n := byDept[d]; n > 0 {
			fmt.Printf("  %-16s %d\n", d, n)
		}
	}

	zero := 0
	for i := range records {
		if records[i].EnrolledStudents == 0 {
			zero++
		}
	}
	if zero > 0 {
		fmt.Printf("schools with zero enrollment (excluded from ratios): %d\n", zero)
	}
}
