package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"plecakdb/pkg/logging"
	"plecakdb/pkg/monitor"
	"plecakdb/pkg/ui"
)

type Configuration struct {
	LogPath    string
	LogLevel   string
	ScriptFile string
	DemoRows   int
}

func main() {
	config := parseArguments()

	if err := initializeLogging(config); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.Close()

	session, err := monitor.NewSession()
	if err != nil {
		log.Fatalf("Failed to start monitor session: %v", err)
	}

	switch {
	case config.ScriptFile != "":
		if err := runScriptFile(config.ScriptFile); err != nil {
			log.Fatalf("Script run failed: %v", err)
		}
	case config.DemoRows > 0:
		runDemoMode(session, config.DemoRows)
		if err := session.Close(); err != nil {
			logging.Warn("failed to persist history", "error", err)
		}
	case !term.IsTerminal(int(os.Stdin.Fd())):
		// Piped input gets the batch path; the TUI needs a terminal.
		if err := runScript(os.Stdin); err != nil {
			log.Fatalf("Script run failed: %v", err)
		}
	default:
		showSplashScreen()
		if err := startInteractiveMode(session); err != nil {
			log.Fatalf("Failed to start UI: %v", err)
		}
	}
}

// parseArguments processes command-line flags
func parseArguments() Configuration {
	var config Configuration

	flag.StringVar(&config.LogPath, "log", "", "Log file path (default: stderr)")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&config.ScriptFile, "script", "", "SQL script to parse in batch mode")
	flag.IntVar(&config.DemoRows, "demo", 0, "Run in demo mode with N generated statements")

	flag.Parse()

	return config
}

func initializeLogging(config Configuration) error {
	return logging.Init(logging.Config{
		Level:      logging.LogLevel(strings.ToUpper(config.LogLevel)),
		OutputPath: config.LogPath,
	})
}

// showSplashScreen displays the welcome banner
func showSplashScreen() {
	splash := `
╔═══════════════════════════════════════════════════════════╗
║                                                           ║
║   ██████╗ ██╗     ███████╗ ██████╗ █████╗ ██╗  ██╗        ║
║   ██╔══██╗██║     ██╔════╝██╔════╝██╔══██╗██║ ██╔╝        ║
║   ██████╔╝██║     █████╗  ██║     ███████║█████╔╝         ║
║   ██╔═══╝ ██║     ██╔══╝  ██║     ██╔══██║██╔═██╗         ║
║   ██║     ███████╗███████╗╚██████╗██║  ██║██║  ██╗        ║
║   ╚═╝     ╚══════╝╚══════╝ ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝        ║
║                                                           ║
║                PlecakDB · SQL monitor                     ║
║                                                           ║
╚═══════════════════════════════════════════════════════════╝
`

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7C3AED")).
		Bold(true)

	fmt.Println(style.Render(splash))
}

// startInteractiveMode launches the Bubble Tea UI
func startInteractiveMode(session *monitor.Session) error {
	model := ui.NewModel(session)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %v", err)
	}

	return nil
}

// runScriptFile parses every statement of a SQL file and reports per-statement
// diagnostics on stdout.
func runScriptFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open script: %v", err)
	}
	defer f.Close()

	fmt.Printf("Parsing %s...\n", filename)
	return runScript(f)
}

func runScript(r io.Reader) error {
	results, err := monitor.RunScript(r)
	if err != nil {
		return err
	}

	successCount := 0
	for _, res := range results {
		if res.Err != nil {
			fmt.Printf("✗ %s\n  %v\n", truncateString(res.SQL, 60), res.Err)
			continue
		}
		successCount++
		fmt.Printf("✓ %-6s %s\n", res.Statement.GetType(), res.Statement.String())
	}

	fmt.Printf("%d/%d statements parsed\n", successCount, len(results))
	return nil
}

// runDemoMode feeds generated statements through the session
func runDemoMode(session *monitor.Session, rows int) {
	fmt.Printf("Demo mode: parsing %d generated statements\n\n", rows)

	for _, sql := range monitor.DemoStatements(rows) {
		res := session.Dispatch(sql)
		if res.Err != nil {
			fmt.Printf("✗ %s\n  %v\n", sql, res.Err)
			continue
		}
		fmt.Printf("✓ %-6s %s\n", res.Statement.GetType(), res.Statement.String())
	}

	fmt.Println("\nSample statements you can try interactively:")
	fmt.Println("  • SELECT id, name FROM users WHERE age >= 30;")
	fmt.Println("  • UPDATE users SET age = 31 WHERE name = 'alice';")
	fmt.Println("  • DELETE FROM users WHERE age < 21;")
}

// truncateString limits string length for display
func truncateString(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
