package main

import (
	"io"
	"log"
	"os"

	"github.com/smasonuk/pointset"
)

func main() {
	if err := run(pointset.DefaultPointsFile, os.Stdout); err != nil {
		log.Fatalf("Error processing points: %v", err)
	}
}

// run writes nothing to out unless the whole file parsed.
func run(fileName string, out io.Writer) error {
	report, _, err := pointset.ProcessFile(fileName)
	if err != nil {
		return err
	}

	_, err = report.WriteTo(out)
	return err
}
