// Command batchstore is a small demo binary exercising the batch storage
// engine end to end: it writes a run of synthetic events, seals them into
// a compressed batch, assigns identifiers via identifier.Sequential, then
// performs a full read and a selective read and prints what it found.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/lanternstack/batchstore/batch"
	"github.com/lanternstack/batchstore/bitmap"
	"github.com/lanternstack/batchstore/event"
	"github.com/lanternstack/batchstore/format"
	"github.com/lanternstack/batchstore/identifier"
	"github.com/lanternstack/batchstore/log"
)

func main() {
	count := flag.Int("events", 1000, "Number of synthetic events to write")
	method := flag.String("method", "zstd", "Compression method: none, zstd, s2, lz4")
	every := flag.Int("select-every", 7, "Selective read keeps every Nth identifier")
	verbose := flag.Bool("verbose", false, "Enable debug logging")

	flag.Parse()

	m, err := parseMethod(*method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := log.Nop()
	if *verbose {
		logger = log.NewConsole("debug")
	}

	if err := run(*count, m, *every, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseMethod(s string) (format.Method, error) {
	switch s {
	case "none":
		return format.MethodIdentity, nil
	case "zstd":
		return format.MethodZstd, nil
	case "s2":
		return format.MethodSnappy, nil
	case "lz4":
		return format.MethodLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression method %q", s)
	}
}

func run(count int, method format.Method, every int, logger *zap.Logger) error {
	defer func() { _ = logger.Sync() }()

	w, err := batch.NewWriter(method, batch.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("new writer: %w", err)
	}

	evtType := event.Record(
		event.Field{Name: "host", Type: event.String()},
		event.Field{Name: "severity", Type: event.Uint64()},
	)

	start := time.Now().UTC()
	for i := 0; i < count; i++ {
		ts := start.Add(time.Duration(i) * time.Second)
		data := event.RecordData(
			event.StringData(fmt.Sprintf("host-%02d", i%32)),
			event.Uint64Data(uint64(i%10)),
		)
		w.Write(event.New(ts, evtType, data))
	}

	b, err := w.Seal()
	if err != nil {
		return fmt.Errorf("seal: %w", err)
	}

	ids := identifier.NewSequential()
	from, to, err := ids.Request(b.Events())
	if err != nil {
		return fmt.Errorf("request ids: %w", err)
	}
	if err := b.SetIDRange(from, to); err != nil {
		return fmt.Errorf("set id range: %w", err)
	}

	fmt.Printf("sealed batch: method=%s events=%d first=%s last=%s\n",
		b.Method(), b.Events(), b.First().Format(time.RFC3339), b.Last().Format(time.RFC3339))

	full, err := batch.NewReader(b)
	if err != nil {
		return fmt.Errorf("new reader: %w", err)
	}
	all, err := full.Read()
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	fmt.Printf("full read: %d events\n", len(all))

	query := bitmap.New()
	query.AppendBits(false, from)
	for id := from; id < to; id++ {
		query.AppendBit(every > 0 && (id-from)%uint64(every) == 0)
	}

	sel, err := batch.NewReader(b)
	if err != nil {
		return fmt.Errorf("new reader: %w", err)
	}
	subset, err := sel.ReadSelective(query)
	if err != nil {
		return fmt.Errorf("read selective: %w", err)
	}
	fmt.Printf("selective read: %d events (every %d-th id)\n", len(subset), every)

	return nil
}
