package util

import (
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"ebl-server/models"
)

// PlotEventLocations generates an HTML file rendering the venues of a search
// result around the query center.
func PlotEventLocations(response *models.EventSearchResponse, centerLat, centerLng float64) {
	// The center plus one point per venue that carries a location.
	points := []opts.GeoData{
		{Name: "Center", Value: []float64{centerLng, centerLat}},
	}
	seen := map[string]bool{}
	for _, e := range response.Events {
		if e.VenueLocation == nil || seen[e.VenueID] {
			continue
		}
		seen[e.VenueID] = true
		points = append(points, opts.GeoData{
			Name:  e.VenueName,
			Value: []float64{e.VenueLocation.Longitude, e.VenueLocation.Latitude},
		})
	}

	// Create a new Geo chart.
	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Event Venues Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("Venues", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	f, err := os.Create("event_venues_map.html")
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	if err := geo.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Event venues map generated: event_venues_map.html")
}
