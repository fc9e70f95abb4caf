package main

import (
	"bufio"
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/robot-dreams/gpxstream"
	"github.com/robot-dreams/gpxstream/jsonarray"
	"github.com/robot-dreams/gpxstream/pipeline"
)

func main() {
	var flagInput string
	var flagOutput string
	var flagDistinct bool
	var flagLimit int
	flag.StringVar(&flagInput, "input", "", "path to input GPX document (default stdin)")
	flag.StringVar(&flagOutput, "output", "", "path to output JSON array (default stdout)")
	flag.BoolVar(&flagDistinct, "distinct", false, "drop coordinates that were already emitted")
	flag.IntVar(&flagLimit, "limit", 0, "stop after this many coordinates (0 means no limit)")
	flag.Parse()

	var in io.Reader = os.Stdin
	if flagInput != "" {
		f, err := os.Open(flagInput)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}
	var out io.Writer = os.Stdout
	if flagOutput != "" {
		f, err := os.Create(flagOutput)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}

	start := time.Now()
	var coordinates gpxstream.CoordinateCursor = pipeline.NewCoordinates(bufio.NewReader(in))
	if flagDistinct {
		coordinates = pipeline.NewDistinct(coordinates)
	}
	if flagLimit > 0 {
		coordinates = pipeline.NewLimit(coordinates, flagLimit)
	}
	w := bufio.NewWriter(out)
	err := jsonarray.Encode(coordinates, w)
	if err != nil {
		log.Fatal(err)
	}
	err = coordinates.Close()
	if err != nil {
		log.Fatal(err)
	}
	err = w.Flush()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Done converting after %v", time.Since(start))
}
