package main

import (
	"fmt"
	"log"

	"ebl-server/config"
	"ebl-server/di"
	services "ebl-server/service"
	"ebl-server/util"
)

// smoke-test coordinates (Montreal)
const lat = 45.5204001
const lng = -73.5540803

// testMockedEventSearch runs one search against the fixture-backed client
// and renders the venues to an HTML map.
func testMockedEventSearch(container *di.Container) {
	log.Println("Running: testMockedEventSearch")
	response, err := container.EventSearchService.SearchEvents(services.SearchParams{
		Lat:         lat,
		Lng:         lng,
		Distance:    "2500",
		AccessToken: "mock-token",
		Sort:        "time",
	})
	if err != nil {
		log.Println("Error while running testMockedEventSearch: ", err)
		return
	}

	util.PrintEventSearchResponsePartially(response)
	util.PlotEventLocations(response, lat, lng)
}

func main() {
	cfg := config.MustLoad()
	container := di.NewContainer(cfg)

	if cfg.Env != "prod" {
		testMockedEventSearch(container)
	}

	fmt.Println("starting server!")
	container.EblHttpServer.Start()
	fmt.Println("server stopped!")
}
