package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/clinicmap/internal/exitcode"
	"github.com/gyeh/clinicmap/internal/geo"
	"github.com/gyeh/clinicmap/internal/logging"
	"github.com/gyeh/clinicmap/internal/model"
	"github.com/gyeh/clinicmap/internal/rank"
)

var (
	nearestLat   float64
	nearestLng   float64
	nearestLimit int
)

var nearestCmd = &cobra.Command{
	Use:   "nearest",
	Short: "Rank clinics by distance from a position",
	RunE:  runNearest,
}

func init() {
	addDatasetFlags(nearestCmd)
	f := nearestCmd.Flags()
	f.Float64Var(&nearestLat, "lat", 0, "Latitude of the user")
	f.Float64Var(&nearestLng, "lng", 0, "Longitude of the user")
	f.StringVar(&cfg.Filter, "filter", cfg.Filter, "Availability filter: all, has or none")
	f.Float64Var(&cfg.MaxRadiusKm, "radius", cfg.MaxRadiusKm, "Drop clinics farther than this many km")
	f.IntVar(&nearestLimit, "limit", 10, "Show at most this many clinics (0 for all)")
	nearestCmd.MarkFlagsRequiredTogether("lat", "lng")
	rootCmd.AddCommand(nearestCmd)
}

func runNearest(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := cmd.Context()

	validateDataset(log)

	var pos *geo.LatLng
	if cmd.Flags().Changed("lat") {
		pos = &geo.LatLng{Lat: nearestLat, Lng: nearestLng}
	}
	user, err := geo.NewStaticProvider(pos).Locate(ctx)
	if errors.Is(err, geo.ErrLocationUnavailable) {
		log.Error().Msg("--lat and --lng are required")
		os.Exit(exitcode.UsageError)
	}
	if err != nil {
		return err
	}

	res := loadClinics(ctx, log, ingestOptions())

	filter := selectedFilter()
	candidates := filter.Apply(res.Clinics)
	ranked := rank.Nearest(candidates, user, cfg.MaxRadiusKm)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Your county (inferred): %s\n", ranked.InferredUserRegion)
	printCounts(out, filter, model.CountAvailability(res.Clinics))
	if ranked.RegionFallback {
		fmt.Fprintln(out, "No clinic in your county; showing all counties.")
	}

	if _, ok := ranked.Closest(); !ok {
		fmt.Fprintln(out, "no nearby clinic found")
		return nil
	}

	shown := ranked.Ranked
	if nearestLimit > 0 && len(shown) > nearestLimit {
		shown = shown[:nearestLimit]
	}
	fmt.Fprintln(out)
	printClinics(out, shown)
	return nil
}
