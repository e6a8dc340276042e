package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"sort"
	"strconv"
	"strings"
	"time"

	schemaxml "github.com/wilkmaciej/schemaxml"
)

const numIterations = 5

// Feed mirrors a small product feed: a repeated "item" with the four
// fields the teacher's own perf harness used to pull through XPath
// (OfferID, ProductName, ProductPrice, CategoryID). Reading Items here
// drives the same repeated-child pump path the rest of the package tests
// exercise, just against a bigger document.
type Feed struct {
	schemaxml.DocumentElement
}

func (f *Feed) RootTag() string { return "feed" }

func (f *Feed) Schema() schemaxml.TypeSchema {
	return schemaxml.TypeSchema{
		ChildTags: map[string]schemaxml.Descriptor{
			"item": schemaxml.NewChild[Item]("item", schemaxml.Multiple()),
		},
	}
}

func (f *Feed) Items() *schemaxml.ChildView[Item, *Item] {
	return schemaxml.Children[Item](&f.Element, "item")
}

type Item struct {
	schemaxml.Element
}

func (i *Item) Schema() schemaxml.TypeSchema {
	return schemaxml.TypeSchema{
		ChildTags: map[string]schemaxml.Descriptor{
			"OfferID":      schemaxml.NewText("OfferID"),
			"ProductName":  schemaxml.NewText("ProductName"),
			"ProductPrice": schemaxml.NewText("ProductPrice"),
			"CategoryID":   schemaxml.NewText("CategoryID"),
		},
	}
}

func (i *Item) OfferID() (string, error)      { return schemaxml.ReadText(&i.Element, "OfferID") }
func (i *Item) ProductName() (string, error)  { return schemaxml.ReadText(&i.Element, "ProductName") }
func (i *Item) ProductPrice() (string, error) { return schemaxml.ReadText(&i.Element, "ProductPrice") }
func (i *Item) CategoryID() (string, error)   { return schemaxml.ReadText(&i.Element, "CategoryID") }

func main() {
	log.Println("Starting schemaxml processor test")

	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		log.Fatalf("Failed to get source file path")
	}
	baseDir := filepath.Dir(filename)

	document := generateFeed(20000)

	log.Println("Warmup run...")
	runIteration(document)
	runtime.GC()

	cpuProfileFile, err := os.Create(filepath.Join(baseDir, "cpu.profile"))
	if err != nil {
		log.Fatalf("Failed to create CPU profile: %v", err)
	}
	defer func() { _ = cpuProfileFile.Close() }()
	_ = pprof.StartCPUProfile(cpuProfileFile)
	defer pprof.StopCPUProfile()

	durations := make([]time.Duration, numIterations)
	var totalCount int

	for i := 0; i < numIterations; i++ {
		runtime.GC()
		elapsed, count := runIteration(document)
		durations[i] = elapsed
		totalCount = count
		log.Printf("Run %d: %s (%.2f items/sec)", i+1, elapsed, float64(count)/elapsed.Seconds())
	}

	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })

	var total time.Duration
	for _, d := range durations {
		total += d
	}
	avg := total / time.Duration(numIterations)
	median := durations[numIterations/2]
	min := durations[0]
	max := durations[numIterations-1]

	memProfileFile, err := os.Create(filepath.Join(baseDir, "mem.profile"))
	if err != nil {
		log.Fatalf("Failed to create memory profile: %v", err)
	}
	runtime.GC()
	_ = pprof.WriteHeapProfile(memProfileFile)
	_ = memProfileFile.Close()

	fmt.Println("\n=== Results ===")
	fmt.Printf("Items processed: %d\n", totalCount)
	fmt.Printf("Iterations: %d\n", numIterations)
	fmt.Printf("Min:    %s (%.2f items/sec)\n", min, float64(totalCount)/min.Seconds())
	fmt.Printf("Max:    %s (%.2f items/sec)\n", max, float64(totalCount)/max.Seconds())
	fmt.Printf("Avg:    %s (%.2f items/sec)\n", avg, float64(totalCount)/avg.Seconds())
	fmt.Printf("Median: %s (%.2f items/sec)\n", median, float64(totalCount)/median.Seconds())
	log.Println("schemaxml processor test completed")
}

func runIteration(document []byte) (time.Duration, int) {
	start := time.Now()
	count := 0

	source := schemaxml.NewReaderChunkSource(strings.NewReader(string(document)), 64*1024)
	feed, err := schemaxml.NewDocument[Feed](context.Background(), source)
	if err != nil {
		log.Fatalf("failed to construct feed: %v", err)
	}

	items := feed.Items()
	n, err := items.Len()
	if err != nil {
		log.Fatalf("failed to read items: %v", err)
	}
	for i := 0; i < n; i++ {
		item, err := items.At(i)
		if err != nil {
			log.Fatalf("failed to read item %d: %v", i, err)
		}
		if _, err := item.OfferID(); err != nil {
			log.Fatalf("failed to read OfferID: %v", err)
		}
		if _, err := item.ProductName(); err != nil {
			log.Fatalf("failed to read ProductName: %v", err)
		}
		if _, err := item.ProductPrice(); err != nil {
			log.Fatalf("failed to read ProductPrice: %v", err)
		}
		if _, err := item.CategoryID(); err != nil {
			log.Fatalf("failed to read CategoryID: %v", err)
		}
		count++
	}

	return time.Since(start), count
}

func generateFeed(n int) []byte {
	var b strings.Builder
	b.WriteString("<feed>")
	for i := 0; i < n; i++ {
		b.WriteString("<item>")
		b.WriteString("<OfferID>offer-" + strconv.Itoa(i) + "</OfferID>")
		b.WriteString("<ProductName>Product " + strconv.Itoa(i) + "</ProductName>")
		b.WriteString("<ProductPrice>" + strconv.Itoa(100+i%900) + ".00</ProductPrice>")
		b.WriteString("<CategoryID>cat-" + strconv.Itoa(i%50) + "</CategoryID>")
		b.WriteString("</item>")
	}
	b.WriteString("</feed>")
	return []byte(b.String())
}
