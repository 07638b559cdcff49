package main

import (
	"log"

	"github.com/smasonuk/pointset"
	"github.com/smasonuk/pointset/viewer"
)

func main() {
	log.Printf("Loading %s...", pointset.DefaultPointsFile)
	report, ps, err := pointset.ProcessFile(pointset.DefaultPointsFile)
	if err != nil {
		log.Fatalf("Error loading points: %v", err)
	}

	if err := viewer.Run(report, ps); err != nil {
		log.Fatal(err)
	}
}
