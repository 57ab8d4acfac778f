package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"hotel_desk/internal/adapters/observability"
	"hotel_desk/internal/adapters/report"
	"hotel_desk/internal/app"
	"hotel_desk/internal/shared"
	"hotel_desk/internal/storage/jsondoc"
)

const usage = `usage: hoteldesk [-config path] <command> [args]

commands:
  create-hotel <name> <location>
  add-room <hotel> <number>
  show-hotel <hotel>
  reserve <hotel> <rez-id> <customer-id> <status> <room> <start> <end>
  cancel <hotel> <rez-id>
  reconcile <hotel>            report room/reservation inconsistencies
  repair <hotel>               reconcile and release orphaned rooms
  create-customer <id> <name> <email>
  show-customer <id>
  delete-customer <id>
  export <file.xlsx> <hotel> [hotel...]
`

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "", "path to YAML config")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	cfg, err := shared.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	store, err := jsondoc.New(cfg.DataDir, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("open document store failed")
	}
	rez := app.NewReservationService(store, log.Logger)
	hotels := app.NewHotelService(store, rez, log.Logger)
	customers := app.NewCustomerService(store, log.Logger)

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(args, cfg, hotels, customers, rez); err != nil {
		log.Fatal().Err(err).Str("command", args[0]).Msg("command failed")
	}
}

func run(args []string, cfg shared.Config, hotels *app.HotelService, customers *app.CustomerService, rez *app.ReservationService) error {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "create-hotel":
		if len(rest) != 2 {
			return fmt.Errorf("create-hotel wants <name> <location>")
		}
		h, err := hotels.Create(rest[0], rest[1])
		if err != nil {
			return err
		}
		fmt.Println(h.Display())
		return nil

	case "add-room":
		if len(rest) != 2 {
			return fmt.Errorf("add-room wants <hotel> <number>")
		}
		h, err := hotels.Load(rest[0])
		if err != nil {
			return err
		}
		number, err := strconv.Atoi(rest[1])
		if err != nil {
			return fmt.Errorf("room number: %w", err)
		}
		return hotels.AddRoom(h, number)

	case "show-hotel":
		if len(rest) != 1 {
			return fmt.Errorf("show-hotel wants <hotel>")
		}
		h, err := hotels.Load(rest[0])
		if err != nil {
			return err
		}
		fmt.Println(h.Display())
		for _, room := range h.Rooms {
			status := "Available"
			if !room.Available {
				status = "Reserved"
			}
			fmt.Printf("  Room %d: %s\n", room.Number, status)
		}
		return nil

	case "reserve":
		if len(rest) != 7 {
			return fmt.Errorf("reserve wants <hotel> <rez-id> <customer-id> <status> <room> <start> <end>")
		}
		h, err := hotels.Load(rest[0])
		if err != nil {
			return err
		}
		number, err := strconv.Atoi(rest[4])
		if err != nil {
			return fmt.Errorf("room number: %w", err)
		}
		ok, err := hotels.ReserveRoom(h, app.BookingParams{
			RezID:          rest[1],
			CustomerID:     rest[2],
			CustomerStatus: rest[3],
			RoomNumber:     number,
			StartDate:      rest[5],
			EndDate:        rest[6],
		})
		if err != nil {
			return err
		}
		if !ok {
			fmt.Printf("Room %d is not available.\n", number)
			os.Exit(1)
		}
		fmt.Println("Reservation created successfully.")
		return nil

	case "cancel":
		if len(rest) != 2 {
			return fmt.Errorf("cancel wants <hotel> <rez-id>")
		}
		h, err := hotels.Load(rest[0])
		if err != nil {
			return err
		}
		ok, err := hotels.CancelReservation(h, rest[1])
		if err != nil {
			return err
		}
		if !ok {
			fmt.Printf("Reservation with ID %s not found.\n", rest[1])
			os.Exit(1)
		}
		fmt.Println("Reservation canceled successfully.")
		return nil

	case "reconcile", "repair":
		if len(rest) != 1 {
			return fmt.Errorf("%s wants <hotel>", cmd)
		}
		h, err := hotels.Load(rest[0])
		if err != nil {
			return err
		}
		findings, err := hotels.Reconcile(h, cmd == "repair")
		if err != nil {
			return err
		}
		for _, f := range findings {
			fmt.Printf("%s: room %d %s\n", f.Kind, f.RoomNumber, f.RezID)
		}
		fmt.Printf("%d finding(s)\n", len(findings))
		return nil

	case "create-customer":
		if len(rest) != 3 {
			return fmt.Errorf("create-customer wants <id> <name> <email>")
		}
		c, err := customers.Create(rest[1], rest[2], rest[0])
		if err != nil {
			return err
		}
		fmt.Println(c.Display())
		return nil

	case "show-customer":
		if len(rest) != 1 {
			return fmt.Errorf("show-customer wants <id>")
		}
		c, err := customers.Load(rest[0])
		if err != nil {
			return err
		}
		fmt.Println(c.Display())
		return nil

	case "delete-customer":
		if len(rest) != 1 {
			return fmt.Errorf("delete-customer wants <id>")
		}
		return customers.Delete(rest[0])

	case "export":
		if len(rest) < 2 {
			return fmt.Errorf("export wants <file.xlsx> <hotel> [hotel...]")
		}
		return export(cfg, rest[0], rest[1:], hotels, rez)

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func export(cfg shared.Config, out string, names []string, hotels *app.HotelService, rez *app.ReservationService) error {
	wb := report.NewWorkbook()
	defer wb.Close()
	for _, name := range names {
		h, err := hotels.Load(name)
		if err != nil {
			return err
		}
		if err := wb.AddHotel(h); err != nil {
			return err
		}
	}
	all, err := rez.ListAll()
	if err != nil {
		return err
	}
	if err := wb.AddReservations(all); err != nil {
		return err
	}
	if !filepath.IsAbs(out) {
		if err := os.MkdirAll(cfg.ReportDir, 0o755); err != nil {
			return err
		}
		out = filepath.Join(cfg.ReportDir, out)
	}
	if err := wb.SaveToFile(out); err != nil {
		return err
	}
	log.Info().Str("path", out).Msg("workbook written")
	return nil
}
