package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/simaogato/calctrail/internal/adapter/repository/csvfile"
	"github.com/simaogato/calctrail/internal/config"
	"github.com/simaogato/calctrail/internal/operation"
	"github.com/simaogato/calctrail/internal/usecase/calculator"
)

func main() {
	if err := loadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	cfg, err := config.Load(os.Getenv("CALCULATOR_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	repo := csvfile.NewHistoryRepository(cfg.HistoryFile)
	calc := calculator.New(cfg, repo, logger)
	calc.AddObserver(calculator.NewLoggingObserver(logger))
	calc.AddObserver(calculator.NewAutoSaveObserver(logger))

	catalog := operation.Default()

	repl(calc, catalog, cfg)
}

// loadDotEnv loads environment variables from .env when present.
// Existing process environment variables are not overridden.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load .env: %w", err)
}

// newLogger builds a production JSON logger writing to path.
func newLogger(path string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	return zcfg.Build()
}

// repl runs the interactive command loop until the user exits.
func repl(calc *calculator.Calculator, catalog *operation.Catalog, cfg *config.Config) {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)

	cyan.Println("Calculator started. Type 'help' for commands.")

	for {
		fmt.Print("\nEnter command: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}
		command := strings.ToLower(strings.TrimSpace(line))

		switch command {
		case "":
			continue

		case "help":
			printHelp(cyan, green, yellow)

		case "exit":
			if err := calc.SaveHistory(ctx); err != nil {
				yellow.Printf("Warning: Could not save history: %v\n", err)
			} else {
				green.Println("History saved successfully.")
			}
			red.Println("Goodbye!")
			return

		case "history":
			lines := calc.ShowHistory()
			if len(lines) == 0 {
				yellow.Println("No calculations in history")
				continue
			}
			cyan.Println("\nCalculation History:")
			for i, entry := range lines {
				fmt.Printf("%d. %s\n", i+1, entry)
			}

		case "clear":
			calc.ClearHistory()
			green.Println("History cleared")

		case "undo":
			if calc.Undo() {
				green.Println("Operation undone")
			} else {
				yellow.Println("Nothing to undo")
			}

		case "redo":
			if calc.Redo() {
				green.Println("Operation redone")
			} else {
				yellow.Println("Nothing to redo")
			}

		case "save":
			if err := calc.SaveHistory(ctx); err != nil {
				red.Printf("Error saving history: %v\n", err)
			} else {
				green.Println("History saved successfully")
			}

		case "load":
			if err := calc.LoadHistory(ctx); err != nil {
				red.Printf("Error loading history: %v\n", err)
			} else {
				green.Println("History loaded successfully")
			}

		default:
			op, err := catalog.Resolve(command)
			if err != nil {
				red.Printf("Unknown command: '%s'. Type 'help' for available commands.\n", command)
				continue
			}

			cyan.Println("\nEnter numbers (or 'cancel' to abort):")
			a, ok := readOperand(reader, "First number: ", yellow)
			if !ok {
				continue
			}
			b, ok := readOperand(reader, "Second number: ", yellow)
			if !ok {
				continue
			}

			calc.SetOperation(op)
			result, err := calc.Perform(ctx, a, b)
			if err != nil {
				red.Printf("Error: %v\n", err)
				continue
			}
			green.Printf("\nResult: %s\n", result.Round(cfg.Precision))
		}
	}
}

// readOperand prompts for one operand. Returns ok=false when the user
// cancels or input ends.
func readOperand(reader *bufio.Reader, prompt string, yellow *color.Color) (string, bool) {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", false
	}
	value := strings.TrimSpace(line)
	if strings.EqualFold(value, "cancel") {
		yellow.Println("Operation cancelled")
		return "", false
	}
	return value, true
}

func printHelp(cyan, green, yellow *color.Color) {
	cyan.Println("\nAvailable commands:")
	green.Println("  Operations:")
	fmt.Println("    add, subtract, multiply, divide, power, root, modulus, int_divide, percent, abs_diff")
	yellow.Println("  History:")
	fmt.Println("    history - Show calculation history")
	fmt.Println("    clear - Clear calculation history")
	fmt.Println("    undo - Undo the last calculation")
	fmt.Println("    redo - Redo the last undone calculation")
	fmt.Println("  File Operations:")
	fmt.Println("    save - Save calculation history to file")
	fmt.Println("    load - Load calculation history from file")
	fmt.Println("  exit - Exit the calculator")
}
