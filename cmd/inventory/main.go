package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"go-inventory-admin/internal/event"
	"go-inventory-admin/internal/importer"
	"go-inventory-admin/internal/model"
	"go-inventory-admin/internal/repository"
	"go-inventory-admin/internal/service"
	"go-inventory-admin/pkg/storage"
)

// Admin console for the inventory engine. This binary is the
// rendering layer: it owns no catalog state, it reads the derived
// views and issues mutations in response to commands.
func main() {
	// 1. Storage backend (loads .env, selects via STORAGE_BACKEND)
	store := storage.Connect()

	// 2. Dependency Injection (Wiring Layers)
	hub := event.NewHub()
	catalogRepo := repository.NewCatalogRepo(store, os.Getenv("STORAGE_KEY"))
	invService := service.NewInventoryService(catalogRepo, hub)
	viewService := service.NewViewService()

	ctx := context.Background()
	if err := invService.Load(ctx); err != nil {
		log.Println("Warning: starting with empty catalog:", err)
	}

	// 3. Re-render on any change notification
	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub.ID)
	go func() {
		for evt := range sub.C {
			log.Printf("[%s] %s", evt.Action, evt.Message)
		}
	}()

	// 4. Graceful shutdown on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down...")
		if closer, ok := store.(*storage.SQLiteStore); ok {
			if err := closer.Close(); err != nil {
				log.Println("Warning: closing store:", err)
			}
		}
		os.Exit(0)
	}()

	console(ctx, invService, viewService)
}

func console(ctx context.Context, inv service.InventoryService, views service.ViewService) {
	query := service.Query{Sort: service.SortByName}
	scanner := bufio.NewScanner(os.Stdin)

	render(inv, views, query)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		cmd, args, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")

		switch cmd {
		case "", "list":
			// fallthrough to render
		case "search":
			query.Search = args
		case "sort":
			switch service.SortOption(args) {
			case service.SortByName, service.SortByStock, service.SortByPrice:
				query.Sort = service.SortOption(args)
			default:
				fmt.Println("usage: sort name|stock|price")
			}
		case "add":
			inv.SetDraft(parseDraft(args))
			if !inv.AddProduct(ctx) {
				fmt.Println("usage: add name,stock,price[,category]")
			}
		case "del":
			if id, err := strconv.Atoi(args); err == nil {
				inv.DeleteProduct(ctx, id)
			}
		case "edit":
			id, err := strconv.Atoi(args)
			if err != nil || !inv.BeginEdit(id) {
				fmt.Println("no such product")
			} else {
				fmt.Printf("editing #%d: %+v\n", id, inv.Draft())
			}
		case "set":
			field, value, _ := strings.Cut(args, " ")
			draft := inv.Draft()
			switch field {
			case "name":
				draft.Name = value
			case "category":
				draft.Category = value
			case "stock":
				draft.Stock = value
			case "price":
				draft.Price = value
			default:
				fmt.Println("usage: set name|category|stock|price <value>")
			}
			inv.SetDraft(draft)
		case "save":
			if !inv.SaveEdit(ctx) {
				fmt.Println("nothing to save (missing fields or no edit in progress)")
			}
		case "cancel":
			inv.CancelEdit()
		case "import":
			importFile(ctx, inv, args)
		case "quit", "exit":
			return
		default:
			fmt.Println("commands: list search sort add del edit set save cancel import quit")
		}

		render(inv, views, query)
	}
}

func parseDraft(args string) model.Draft {
	fields := strings.SplitN(args, ",", 4)
	var draft model.Draft
	for i, f := range fields {
		f = strings.TrimSpace(f)
		switch i {
		case 0:
			draft.Name = f
		case 1:
			draft.Stock = f
		case 2:
			draft.Price = f
		case 3:
			draft.Category = f
		}
	}
	return draft
}

func importFile(ctx context.Context, inv service.InventoryService, path string) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Println("cannot open file:", err)
		return
	}
	defer f.Close()

	rows, err := importer.ReadRows(f)
	if err != nil {
		fmt.Println("cannot parse file:", err)
		return
	}
	inv.ImportProducts(ctx, rows)
}

func render(inv service.InventoryService, views service.ViewService, query service.Query) {
	products := inv.Products()
	summary := views.Summary(products)

	if n := summary.LowStockCount; n > 0 {
		fmt.Printf("Low Stock Alert: %d products are low in stock!\n", n)
	}
	fmt.Printf("Total Inventory Value: %s (%d products)\n", summary.TotalValue, summary.ProductCount)

	fmt.Printf("%-4s %-24s %-16s %8s %10s\n", "ID", "NAME", "CATEGORY", "STOCK", "PRICE")
	for _, p := range views.Apply(products, query) {
		marker := " "
		if p.LowStock() {
			marker = "!"
		}
		fmt.Printf("%-4d %-24s %-16s %7d%s %10.2f\n", p.ID, p.Name, p.Category, p.Stock, marker, p.Price)
	}
}
