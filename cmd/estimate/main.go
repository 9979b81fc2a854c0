// Command estimate prints a before/after route cost comparison from the command line.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fleet-route-service/internal/api/dto"
	"fleet-route-service/internal/app"
	"fleet-route-service/internal/config"
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/format"
	"fleet-route-service/internal/platform/logging"
	"fleet-route-service/internal/ports"
	"fleet-route-service/internal/services"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type options struct {
	configPath  string
	logLevel    string
	start       string
	dests       string
	capacity    float64
	load        float64
	priority    string
	vehicleType string
	fuel        string
	vehicleID   int
	fleet       bool
	asJSON      bool

	// Names of the flags given on the command line.
	set map[string]bool
}

// parseArgs parses command-line flags. Parameter flags that were not given
// keep the dataset defaults; flags that were given are passed through as-is.
func parseArgs(args []string, errOut io.Writer) (options, error) {
	o := options{set: map[string]bool{}}

	fs := flag.NewFlagSet("estimate", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&o.configPath, "config", "", "path to YAML configuration file (default $CONFIG_FILE)")
	fs.StringVar(&o.logLevel, "log-level", "error", "log level (debug, info, warn, error)")
	fs.StringVar(&o.start, "start", "", "start location (default from dataset)")
	fs.StringVar(&o.dests, "dest", "", "comma-separated destinations (default from dataset)")
	fs.Float64Var(&o.capacity, "capacity", 0, "load capacity in kg (default from dataset)")
	fs.Float64Var(&o.load, "load", 0, "current load in kg (default from dataset)")
	fs.StringVar(&o.priority, "priority", "", "balanced, fuel, distance, time or carbon")
	fs.StringVar(&o.vehicleType, "vehicle-type", "", "truck or van")
	fs.StringVar(&o.fuel, "fuel", "", "diesel, gasoline, cng or electric")
	fs.IntVar(&o.vehicleID, "vehicle", 0, "take capacity, load, type and fuel from this vehicle id")
	fs.BoolVar(&o.fleet, "fleet", false, "rank every active vehicle on the route")
	fs.BoolVar(&o.asJSON, "json", false, "print raw JSON")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })

	return o, nil
}

func main() {
	o, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "estimate:", err)
		os.Exit(2)
	}

	_ = godotenv.Load()

	if err := run(o, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "estimate:", err)
		os.Exit(1)
	}
}

func run(o options, out io.Writer) error {
	path := o.configPath
	if path == "" {
		path = config.Get("CONFIG_FILE", "")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{Level: o.logLevel, Format: "console"}, "")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	store, err := app.LoadStore(cfg.Fixtures.Path)
	if err != nil {
		return err
	}
	est, err := app.NewEstimator(cfg.Estimator, store, logger, nil)
	if err != nil {
		return err
	}

	params, err := o.parameters(store)
	if err != nil {
		return err
	}

	ctx := context.Background()

	if o.fleet {
		sum, err := services.EstimateFleet(ctx, est, store.Vehicles(ports.VehicleFilter{}), params)
		if err != nil {
			return err
		}
		if o.asJSON {
			return writeJSON(out, dto.FleetEstimateResponse{Parameters: params, FleetSummary: *sum, Currency: est.Currency()})
		}
		printFleet(out, sum, est.Currency())
		return nil
	}

	res, err := est.Estimate(ctx, params)
	if err != nil {
		return err
	}
	if o.asJSON {
		return writeJSON(out, dto.EstimateResponse{
			Parameters:         params,
			OptimizationResult: *res,
			Currency:           est.Currency(),
			FuelPricePerLiter:  est.FuelPrice(),
		})
	}
	printComparison(out, params, res, est.Currency())
	return nil
}

func (o options) parameters(data ports.ReferenceData) (domain.OptimizationParameters, error) {
	var req dto.EstimateRequest
	if o.set["start"] {
		req.StartLocation = &o.start
	}
	if o.set["dest"] {
		req.Destinations = strings.Split(o.dests, ",")
	}
	if o.set["capacity"] {
		req.LoadCapacity = &o.capacity
	}
	if o.set["load"] {
		req.CurrentLoad = &o.load
	}
	if o.set["priority"] {
		req.Priority = &o.priority
	}
	if o.set["vehicle-type"] {
		req.VehicleType = &o.vehicleType
	}
	if o.set["fuel"] {
		req.FuelType = &o.fuel
	}

	var vehicle *domain.Vehicle
	if o.set["vehicle"] {
		v, err := data.Vehicle(o.vehicleID)
		if err != nil {
			return domain.OptimizationParameters{}, err
		}
		vehicle = &v
	}
	return req.Apply(data.DefaultParameters(), vehicle), nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printComparison(out io.Writer, p domain.OptimizationParameters, res *domain.OptimizationResult, currency string) {
	c, o, s := res.Current, res.Optimized, res.Savings

	fmt.Fprintf(out, "%s -> %s (%d stops), priority %s\n\n",
		p.StartLocation, strings.Join(p.Destinations, ", "), len(p.Destinations), p.Priority)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "METRIC\tCURRENT\tOPTIMIZED\tSAVED")
	fmt.Fprintf(tw, "Distance\t%s km\t%s km\t%s%%\n", format.Number(c.Distance, 1), format.Number(o.Distance, 1), format.Number(s.DistancePercent, 1))
	fmt.Fprintf(tw, "Fuel\t%s L\t%s L\t%s%%\n", format.Number(c.Fuel, 1), format.Number(o.Fuel, 1), format.Number(s.FuelPercent, 1))
	fmt.Fprintf(tw, "Time\t%s\t%s\t%s%%\n", format.Duration(c.Time), format.Duration(o.Time), format.Number(s.TimePercent, 1))
	fmt.Fprintf(tw, "CO2\t%s kg\t%s kg\t%s%%\n", format.Number(c.CO2, 1), format.Number(o.CO2, 1), format.Number(s.CO2Percent, 1))
	fmt.Fprintf(tw, "Area Coverage\t%s km2\t%s km2\t\n", format.Number(c.Area, 0), format.Number(o.Area, 0))
	fmt.Fprintf(tw, "Load Efficiency\t%s%%\t%s%%\t\n", format.Number(c.LoadUtilization, 1), format.Number(o.LoadUtilization, 1))
	_ = tw.Flush()

	fmt.Fprintf(out, "\n%s + %s kg CO2 saved\n", format.Money(s.Cost, currency), format.Number(s.CO2, 1))
	fmt.Fprintf(out, "%s km · %s L · %s min saved\n", format.Number(s.Distance, 1), format.Number(s.Fuel, 1), format.Number(s.Time, 0))
}

func printFleet(out io.Writer, sum *services.FleetSummary, currency string) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tVEHICLE\tFUEL SAVED\tCO2 SAVED\tCOST SAVED")
	for i, r := range sum.Ranking {
		s := r.Result.Savings
		fmt.Fprintf(tw, "%d\t%s\t%s L\t%s kg\t%s\n", i+1, r.Vehicle.Name,
			format.Number(s.Fuel, 1), format.Number(s.CO2, 1), format.Money(s.Cost, currency))
	}
	_ = tw.Flush()

	fmt.Fprintf(out, "\nTotal: %s L fuel, %s kg CO2, %s\n",
		format.Number(sum.TotalFuelSaved, 1), format.Number(sum.TotalCO2Saved, 1), format.Money(sum.TotalCostSaved, currency))
	if len(sum.SkippedVehicleIDs) > 0 {
		fmt.Fprintf(out, "Skipped (not active): %v\n", sum.SkippedVehicleIDs)
	}
}
