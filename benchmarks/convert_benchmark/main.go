package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"runtime"
	"time"

	"net/http"
	_ "net/http/pprof"

	"github.com/dropbox/godropbox/math2/rand2"
	"github.com/robot-dreams/gpxstream/pipeline"
)

// gpxGenerator streams a synthetic GPX document of numRecords waypoints
// with jittered coordinates; roughly one record in ten is missing its lon
// attribute.  The document is produced on the fly, so arbitrarily large
// inputs cost no memory.
type gpxGenerator struct {
	numRecords  int
	nextRecord  int
	pending     []byte
	wroteHeader bool
	wroteFooter bool
}

func (g *gpxGenerator) Read(p []byte) (int, error) {
	if len(g.pending) == 0 {
		g.refill()
	}
	if len(g.pending) == 0 {
		return 0, io.EOF
	}
	n := copy(p, g.pending)
	g.pending = g.pending[n:]
	return n, nil
}

func (g *gpxGenerator) refill() {
	switch {
	case !g.wroteHeader:
		g.pending = []byte("<gpx>\n")
		g.wroteHeader = true
	case g.nextRecord < g.numRecords:
		lat := float64(rand2.Intn(180)-90) + float64(rand2.Intn(1000000))/1000000
		lon := float64(rand2.Intn(360)-180) + float64(rand2.Intn(1000000))/1000000
		if rand2.Intn(10) == 0 {
			g.pending = []byte(fmt.Sprintf("<wpt lat=%q/>\n", fmt.Sprint(lat)))
		} else {
			g.pending = []byte(fmt.Sprintf(
				"<wpt lat=%q lon=%q><ele>%d</ele></wpt>\n",
				fmt.Sprint(lat), fmt.Sprint(lon), rand2.Intn(9000)))
		}
		g.nextRecord++
	case !g.wroteFooter:
		g.pending = []byte("</gpx>\n")
		g.wroteFooter = true
	}
}

// countingWriter discards output but tracks how many bytes went by.
type countingWriter struct {
	numBytes int64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.numBytes += int64(len(p))
	return len(p), nil
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	var flagNumRecords int
	flag.IntVar(&flagNumRecords, "num_records", 1000000, "number of synthetic waypoints to stream")
	flag.Parse()

	out := &countingWriter{}
	start := time.Now()
	err := pipeline.Convert(&gpxGenerator{numRecords: flagNumRecords}, out)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	fmt.Printf(
		"Converted %v records in %v (%.0f records/s)\n",
		flagNumRecords,
		elapsed,
		float64(flagNumRecords)/elapsed.Seconds())
	fmt.Printf("Wrote %v output bytes\n", out.numBytes)
	fmt.Printf(
		"Heap in use: %v bytes (sys: %v bytes)\n",
		memStats.HeapInuse,
		memStats.Sys)
}
