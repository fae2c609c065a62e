package main

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"

	"github.com/nonsonwune/warm_db/agent"
	"github.com/nonsonwune/warm_db/importer"
	"github.com/nonsonwune/warm_db/migrations"
	"github.com/nonsonwune/warm_db/stations"
)

func init() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	// Connect to database using environment variables
	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"))

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Test connection
	err = db.Ping()
	if err != nil {
		log.Fatal(err)
	}

	// Verify the weather tables are in place
	if err := migrations.InitSchema(db); err != nil {
		log.Printf("Warning: Error verifying schema: %v", err)
	}

	logger := newLogger()
	defer logger.Sync()

	ctx := context.Background()
	warm, closeLLM, err := agent.New(ctx, db, stations.Default(), logger)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLLM()

	color.Cyan("\n=== WARM Weather Station Query Agent ===")
	fmt.Println("Ask questions about Illinois weather station data in plain English.")
	fmt.Println("Commands: 'import <file>' to load an observation CSV, 'quit' to exit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nEnter your question (or 'quit' to exit): ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch {
		case input == "quit" || input == "exit" || input == "q":
			color.Green("Thank you for using the WARM query agent!")
			return
		case strings.HasPrefix(input, "import "):
			handleImport(db, strings.TrimSpace(strings.TrimPrefix(input, "import ")))
		default:
			fmt.Println("\nProcessing natural language query...")
			displayResult(warm.Query(ctx, input))
		}
	}
}

func newLogger() *zap.Logger {
	var logger *zap.Logger
	var err error
	if os.Getenv("LOG_LEVEL") == "debug" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatal(err)
	}
	return logger
}

func handleImport(db *sql.DB, path string) {
	if path == "" {
		color.Red("Usage: import <file.csv>")
		return
	}
	summary, err := importer.ImportObservations(db, path)
	if err != nil {
		color.Red("Import failed: %v", err)
		return
	}
	color.Green("Imported %d observations (%d failed)", summary.Imported, summary.Failed)
	for _, msg := range summary.Errors {
		color.Yellow("  %s", msg)
	}
}

func displayResult(result agent.QueryResult) {
	if result.Err != "" {
		color.Red("Error: %s", result.Err)
		for _, action := range result.SuggestedActions {
			fmt.Printf("  - %s\n", action)
		}
		return
	}

	if result.Fallback {
		color.Yellow("Primary workflow failed (%s); answer produced by fallback agent.", result.PipelineError)
		fmt.Println(result.FallbackResponse)
		if result.SQLQuery != "" {
			fmt.Printf("\nSQL used:\n%s\n", result.SQLQuery)
		}
	} else {
		if result.Explanation != "" {
			color.Cyan("\n%s", result.Explanation)
		}
		if result.SQLQuery != "" {
			fmt.Printf("\nSQL Query:\n%s\n\n", result.SQLQuery)
		}
		displayRows(result.Results)
	}

	if len(result.SuggestedActions) > 0 {
		fmt.Println("\nSuggested actions:")
		for _, action := range result.SuggestedActions {
			fmt.Printf("  - %s\n", action)
		}
	}
}

// Display results in a table format
func displayRows(rows []agent.Row) {
	if len(rows) == 0 {
		fmt.Println("No results found")
		return
	}

	columns := make([]string, 0, len(rows[0]))
	for _, field := range rows[0] {
		columns = append(columns, field.Name)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(columns)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	for _, row := range rows {
		rendered := make([]string, 0, len(row))
		for _, field := range row {
			if field.Value == nil {
				rendered = append(rendered, "NULL")
			} else {
				rendered = append(rendered, fmt.Sprintf("%v", field.Value))
			}
		}
		table.Append(rendered)
	}

	table.Render()
}
