// Package main provides the CLI entry point for the inventory tool.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/inventory/backend/internal/client"
	"github.com/inventory/backend/internal/domain/inventory"
)

// Version information (populated at build time)
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

const defaultServerURL = "http://localhost:8080"

func main() {
	flag.Usage = printUsage
	serverURL := flag.String("server", envOr("INVENTORY_SERVER", defaultServerURL), "Base URL of the inventory server")
	timeout := flag.Duration("timeout", 30*time.Second, "Request timeout")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		printVersion()
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	c, err := client.NewClient(*serverURL, *timeout)
	if err != nil {
		fatal("invalid server URL: %v", err)
	}

	ctx := context.Background()
	command, rest := args[0], args[1:]

	switch command {
	case "list":
		err = runList(ctx, c)
	case "show":
		err = runShow(ctx, c, rest)
	case "add":
		err = runAdd(ctx, c, rest)
	case "edit":
		err = runEdit(ctx, c, rest)
	case "delete":
		err = runDelete(ctx, c, rest)
	case "status":
		err = runStatus(ctx, c, rest)
	case "settings":
		err = runSettings(rest)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fatal("%v", err)
	}
}

func printVersion() {
	fmt.Printf("inventoryctl version %s\n", version)
	fmt.Printf("  Build time: %s\n", buildTime)
	fmt.Printf("  Git commit: %s\n", gitCommit)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `inventoryctl - Inventory Management CLI

USAGE:
    inventoryctl [options] <command> [command options]

COMMANDS:
    list                  List all items, newest first
    show <id>             Show one item with its profit figures
    add                   Add a new item (-name, -cost, -price, -desc, -image)
    edit <id>             Update fields of an existing item
    delete <id>           Delete an item (asks for confirmation)
    status                Show server and database health
    settings              Get or set display preferences

OPTIONS:
    -server <url>         Server base URL (default %s, or INVENTORY_SERVER)
    -timeout <dur>        Request timeout (default 30s)
    -version              Show version information

EXAMPLES:
    # List everything
    inventoryctl list

    # Add an item
    inventoryctl add -name "Blue Mug" -cost 3.50 -price 9.99 -desc "Ceramic mug"

    # Change only the selling price
    inventoryctl edit 507f1f77bcf86cd799439011 -price 12.99

    # Delete without the confirmation prompt
    inventoryctl delete 507f1f77bcf86cd799439011 -yes

    # Poll health continuously
    inventoryctl status -watch

    # Switch to the dark theme
    inventoryctl settings set theme dark
`, defaultServerURL)
}

func runList(ctx context.Context, c *client.Client) error {
	items, err := c.ListItems(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("No items.")
		return nil
	}

	fmt.Printf("%-26s %-30s %10s %10s %8s\n", "ID", "NAME", "COST", "PRICE", "MARGIN")
	for _, item := range items {
		fmt.Printf("%-26s %-30s %10.2f %10.2f %8s\n",
			item.ID,
			truncate(item.Name, 30),
			item.CostPrice,
			item.SellingPrice,
			item.FormatProfitPercent(),
		)
	}
	fmt.Printf("\n%d item(s)\n", len(items))
	return nil
}

func runShow(ctx context.Context, c *client.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: inventoryctl show <id>")
	}

	item, err := c.GetItem(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("ID:            %s\n", item.ID)
	fmt.Printf("Name:          %s\n", item.Name)
	fmt.Printf("Cost price:    %.2f\n", item.CostPrice)
	fmt.Printf("Selling price: %.2f\n", item.SellingPrice)
	fmt.Printf("Profit:        %s\n", item.Profit().StringFixed(2))
	fmt.Printf("Margin:        %s\n", item.FormatProfitPercent())
	fmt.Printf("Description:   %s\n", item.Description)
	fmt.Printf("Images:        %d\n", len(item.Images))
	fmt.Printf("Created:       %s\n", item.CreatedAt.Format(time.RFC3339))
	fmt.Printf("Updated:       %s\n", item.UpdatedAt.Format(time.RFC3339))
	return nil
}

// imageFlags collects repeated -image flags
type imageFlags []string

func (f *imageFlags) String() string { return strings.Join(*f, ",") }

func (f *imageFlags) Set(value string) error {
	*f = append(*f, value)
	return nil
}

func runAdd(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	name := fs.String("name", "", "Item name (required)")
	cost := fs.Float64("cost", 0, "Cost price (required)")
	price := fs.Float64("price", 0, "Selling price (required)")
	desc := fs.String("desc", "", "Description (required)")
	var images imageFlags
	fs.Var(&images, "image", "Image data (repeat up to 3 times)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	draft := inventory.Draft{
		Name:         *name,
		CostPrice:    cost,
		SellingPrice: price,
		Description:  *desc,
		Images:       images,
	}
	// Validate locally so bad input fails before the request goes out
	if err := inventory.Validate(draft); err != nil {
		return err
	}

	item, err := c.CreateItem(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Printf("Created item %s (%s)\n", item.ID, item.Name)
	return nil
}

func runEdit(ctx context.Context, c *client.Client, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: inventoryctl edit <id> [options]")
	}
	id, rest := args[0], args[1:]

	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	name := fs.String("name", "", "New item name")
	cost := fs.Float64("cost", -1, "New cost price")
	price := fs.Float64("price", -1, "New selling price")
	desc := fs.String("desc", "", "New description")
	var images imageFlags
	fs.Var(&images, "image", "Replacement image data (repeat up to 3 times)")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	var patch inventory.Patch
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			patch.Name = name
		case "cost":
			patch.CostPrice = cost
		case "price":
			patch.SellingPrice = price
		case "desc":
			patch.Description = desc
		case "image":
			imgs := []string(images)
			patch.Images = &imgs
		}
	})

	if patch == (inventory.Patch{}) {
		return fmt.Errorf("nothing to change; pass at least one of -name, -cost, -price, -desc, -image")
	}

	item, err := c.UpdateItem(ctx, id, patch)
	if err != nil {
		return err
	}
	fmt.Printf("Updated item %s (%s)\n", item.ID, item.Name)
	return nil
}

func runDelete(ctx context.Context, c *client.Client, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: inventoryctl delete <id> [-yes]")
	}
	id, rest := args[0], args[1:]

	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	yes := fs.Bool("yes", false, "Skip the confirmation prompt")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	if !*yes {
		fmt.Printf("Delete item %s? [y/N]: ", id)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := c.DeleteItem(ctx, id); err != nil {
		return err
	}
	fmt.Printf("Deleted item %s\n", id)
	return nil
}

func runStatus(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	watch := fs.Bool("watch", false, "Keep polling instead of checking once")
	interval := fs.Duration("interval", client.DefaultHealthInterval, "Poll interval in watch mode")
	if err := fs.Parse(args); err != nil {
		return err
	}

	monitor := client.NewHealthMonitor(c, *interval, nil)

	printStatus(monitor.CheckNow(ctx))
	if !*watch {
		return nil
	}

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for range ticker.C {
		printStatus(monitor.CheckNow(ctx))
	}
	return nil
}

func printStatus(status client.HealthStatus) {
	stamp := status.CheckedAt.Format(time.RFC3339)
	if !status.Connected {
		fmt.Printf("%s  DISCONNECTED  %v\n", stamp, status.Err)
		return
	}
	fmt.Printf("%s  connected  %dms (%s)\n", stamp, status.LatencyMs, status.Grade)
}

func runSettings(args []string) error {
	path, err := settingsPath()
	if err != nil {
		return err
	}
	settings, err := client.LoadSettings(path)
	if err != nil {
		return err
	}

	if len(args) == 0 || args[0] == "get" {
		fmt.Printf("theme:    %s\n", settings.Theme())
		fmt.Printf("fontSize: %s\n", settings.FontSize())
		return nil
	}

	if args[0] != "set" || len(args) != 3 {
		return fmt.Errorf("usage: inventoryctl settings [get | set <theme|fontSize> <value>]")
	}

	key, value := args[1], args[2]
	switch key {
	case "theme":
		err = settings.SetTheme(value)
	case "fontSize":
		err = settings.SetFontSize(value)
	default:
		return fmt.Errorf("unknown setting %q; expected theme or fontSize", key)
	}
	if err != nil {
		return err
	}
	fmt.Printf("%s = %s\n", key, value)
	return nil
}

func settingsPath() (string, error) {
	if path := os.Getenv("INVENTORY_SETTINGS"); path != "" {
		return path, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving settings path: %w", err)
	}
	return filepath.Join(configDir, "inventoryctl", "settings.toml"), nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
