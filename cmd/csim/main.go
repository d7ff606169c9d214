// Package main provides csim, a trace-driven simulator for set-associative
// caches with LRU replacement.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/csim/cache"
	"github.com/sarchlab/csim/datarecording"
	"github.com/sarchlab/csim/monitoring"
	"github.com/sarchlab/csim/replay"
	"github.com/sarchlab/csim/trace"
)

var (
	setIndexBits  int
	offsetBits    int
	associativity int
	traceFile     string
	verbose       bool

	record      bool
	dbPath      string
	monitorOn   bool
	monitorPort int
	openBrowser bool
)

var rootCmd = &cobra.Command{
	Use:   "csim",
	Short: "csim replays memory access traces against a simulated cache.",
	Long: `csim replays valgrind memory access traces against a ` +
		`set-associative cache with LRU replacement and reports the hits, ` +
		`misses, and evictions a real cache would produce.`,
	SilenceUsage: true,
	RunE:         runSimulation,
}

func init() {
	flags := rootCmd.Flags()

	flags.IntVarP(&setIndexBits, "set-bits", "s", 0,
		"number of set index bits")
	flags.IntVarP(&associativity, "associativity", "E", 0,
		"number of lines per set")
	flags.IntVarP(&offsetBits, "block-bits", "b", 0,
		"number of block offset bits")
	flags.StringVarP(&traceFile, "trace", "t", "",
		"trace file to replay")
	flags.BoolVarP(&verbose, "verbose", "v", false,
		"print every access and its outcome")

	flags.BoolVar(&record, "record", false,
		"record every access into a SQLite database")
	flags.StringVar(&dbPath, "db", "",
		"name of the recording database (default from CSIM_DB, "+
			"or a generated name)")
	flags.BoolVar(&monitorOn, "monitor", false,
		"serve live progress and counters over HTTP")
	flags.IntVar(&monitorPort, "monitor-port", 0,
		"port for the monitoring server (default from CSIM_MONITOR_PORT, "+
			"or a random port)")
	flags.BoolVar(&openBrowser, "open-browser", false,
		"open the monitoring page in the local browser")

	cobra.CheckErr(rootCmd.MarkFlagRequired("set-bits"))
	cobra.CheckErr(rootCmd.MarkFlagRequired("associativity"))
	cobra.CheckErr(rootCmd.MarkFlagRequired("block-bits"))
	cobra.CheckErr(rootCmd.MarkFlagRequired("trace"))

	rootCmd.AddCommand(reportCmd)
}

func main() {
	// A missing .env file is fine. The file only supplies defaults.
	godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func runSimulation(_ *cobra.Command, _ []string) error {
	applyEnvDefaults()

	geometry := cache.Geometry{
		OffsetBits:       offsetBits,
		SetIndexBits:     setIndexBits,
		WayAssociativity: associativity,
	}
	if err := geometry.Validate(); err != nil {
		return err
	}

	file, err := os.Open(traceFile)
	if err != nil {
		return err
	}
	defer file.Close()

	comp := cache.MakeBuilder().
		WithOffsetBits(offsetBits).
		WithSetIndexBits(setIndexBits).
		WithWayAssociativity(associativity).
		Build("Cache")

	replayer := replay.NewReplayer(comp, trace.NewParser(file))

	if verbose {
		replayer.AcceptTracer(replay.NewLogTracer(log.New(os.Stdout, "", 0)))
	}

	dbTracer := setUpRecording(replayer)
	setUpMonitoring(comp, replayer)

	stats, err := replayer.Run()
	if err != nil {
		return err
	}

	if dbTracer != nil {
		dbTracer.RecordSummary(stats)
	}

	return printSummary(stats)
}

func applyEnvDefaults() {
	if dbPath == "" {
		dbPath = os.Getenv("CSIM_DB")
	}

	if monitorPort == 0 {
		if port, err := strconv.Atoi(
			os.Getenv("CSIM_MONITOR_PORT")); err == nil {
			monitorPort = port
		}
	}
}

func setUpRecording(replayer *replay.Replayer) *replay.DBTracer {
	if !record {
		return nil
	}

	tracer := replay.NewDBTracer(datarecording.NewRecorder(dbPath))
	replayer.AcceptTracer(tracer)

	return tracer
}

func setUpMonitoring(comp *cache.Comp, replayer *replay.Replayer) {
	if !monitorOn {
		return
	}

	monitor := monitoring.NewMonitor()
	if monitorPort != 0 {
		monitor.WithPortNumber(monitorPort)
	}
	monitor.RegisterCache(comp)

	bar := monitor.CreateProgressBar("Trace replay", 0)
	replayer.AcceptTracer(replay.NewProgressTracer(bar))

	monitor.StartServer(openBrowser)
}

// printSummary reports the final counters on stdout and mirrors them into
// the results file that grading and comparison scripts read.
func printSummary(stats cache.Statistics) error {
	fmt.Printf("hits:%d misses:%d evictions:%d\n",
		stats.Hits, stats.Misses, stats.Evictions)

	line := fmt.Sprintf("%d %d %d\n",
		stats.Hits, stats.Misses, stats.Evictions)

	return os.WriteFile(".csim_results", []byte(line), 0644)
}
