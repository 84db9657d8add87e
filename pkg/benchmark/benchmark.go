// Package benchmark measures throughput and latency of the cipher
// core and the transform pipeline over configurable payload sizes.
package benchmark

import (
	"fmt"
	"os"
	"time"

	"github.com/klauspost/compress/zstd"

	"blockcrypt/pkg/aes128"
	"blockcrypt/pkg/log"
	"blockcrypt/pkg/random"
	"blockcrypt/pkg/transform"
)

// Component specifies which layer to benchmark.
type Component int

const (
	ComponentBlock    Component = iota // single-block encrypt/decrypt
	ComponentCBC                       // CBC over a multi-block payload
	ComponentPipeline                  // zstd + CBC transform pipeline
)

func (c Component) String() string {
	switch c {
	case ComponentBlock:
		return "Block Transform"
	case ComponentCBC:
		return "CBC Chaining"
	case ComponentPipeline:
		return "Transform Pipeline"
	default:
		return "Unknown"
	}
}

// Options provides configuration for benchmarks.
type Options struct {
	Component   Component
	Iterations  int
	PayloadSize int // bytes per iteration; rounded up to whole blocks
	Passphrase  string
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() *Options {
	return &Options{
		Component:   ComponentCBC,
		Iterations:  1000,
		PayloadSize: 4096,
		Passphrase:  "benchmark passphrase",
	}
}

// Results holds the outcome of one benchmark run. Latencies cover one
// encrypt+decrypt round trip of the payload.
type Results struct {
	Component     Component
	Iterations    int
	PayloadSize   int
	TotalTime     time.Duration
	MinLatency    time.Duration
	MaxLatency    time.Duration
	AvgLatency    time.Duration
	MedianLatency time.Duration
	P95Latency    time.Duration
	P99Latency    time.Duration
	Throughput    float64 // plaintext bytes per second, both directions
}

// Run executes the benchmark described by opts.
func Run(opts *Options) (*Results, error) {
	if opts.Iterations <= 0 {
		return nil, fmt.Errorf("iterations must be positive, got %d", opts.Iterations)
	}
	size := opts.PayloadSize
	if rem := size % aes128.BlockSize; rem != 0 {
		size += aes128.BlockSize - rem
	}
	if size == 0 {
		size = aes128.BlockSize
	}

	switch opts.Component {
	case ComponentBlock:
		return benchmarkBlock(opts)
	case ComponentCBC:
		return benchmarkCBC(opts, size)
	case ComponentPipeline:
		return benchmarkPipeline(opts, size)
	default:
		return nil, fmt.Errorf("unknown component: %d", opts.Component)
	}
}

func benchmarkBlock(opts *Options) (*Results, error) {
	key, err := random.Bytes(aes128.KeySize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	c, err := aes128.NewCipher(key)
	if err != nil {
		return nil, err
	}

	block := make([]byte, aes128.BlockSize)
	random.Fill(block)
	out := make([]byte, aes128.BlockSize)

	latencies := make([]time.Duration, 0, opts.Iterations)
	start := time.Now()
	for i := 0; i < opts.Iterations; i++ {
		t0 := time.Now()
		c.EncryptBlock(out, block)
		c.DecryptBlock(block, out)
		latencies = append(latencies, time.Since(t0))
	}
	return calculateResults(opts.Component, aes128.BlockSize, latencies, time.Since(start)), nil
}

func benchmarkCBC(opts *Options, size int) (*Results, error) {
	key, err := random.Bytes(aes128.KeySize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	iv, err := random.Bytes(aes128.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate IV: %w", err)
	}
	c, err := aes128.NewCipher(key)
	if err != nil {
		return nil, err
	}

	payload := make([]byte, size)
	random.Fill(payload)

	latencies := make([]time.Duration, 0, opts.Iterations)
	start := time.Now()
	for i := 0; i < opts.Iterations; i++ {
		t0 := time.Now()
		ciphertext, err := c.EncryptCBC(payload, iv)
		if err != nil {
			return nil, err
		}
		if _, err := c.DecryptCBC(ciphertext, iv); err != nil {
			return nil, err
		}
		latencies = append(latencies, time.Since(t0))
	}
	return calculateResults(opts.Component, size, latencies, time.Since(start)), nil
}

func benchmarkPipeline(opts *Options, size int) (*Results, error) {
	zst, err := transform.NewZstdTransform(zstd.SpeedFastest)
	if err != nil {
		return nil, err
	}
	cbc, err := transform.NewCBCTransform(opts.Passphrase)
	if err != nil {
		return nil, err
	}
	proc, err := transform.NewPayloadProcessor([]transform.Transform{zst, cbc})
	if err != nil {
		return nil, err
	}

	payload := make([]byte, size)
	random.Fill(payload)

	latencies := make([]time.Duration, 0, opts.Iterations)
	start := time.Now()
	for i := 0; i < opts.Iterations; i++ {
		t0 := time.Now()
		wire, err := proc.PrepareOutput(payload)
		if err != nil {
			return nil, err
		}
		if _, err := proc.ParseInput(wire); err != nil {
			return nil, err
		}
		latencies = append(latencies, time.Since(t0))
	}
	return calculateResults(opts.Component, size, latencies, time.Since(start)), nil
}

func calculateResults(component Component, size int, latencies []time.Duration, totalTime time.Duration) *Results {
	r := &Results{
		Component:   component,
		Iterations:  len(latencies),
		PayloadSize: size,
		TotalTime:   totalTime,
	}
	if len(latencies) == 0 {
		return r
	}

	sortDurations(latencies)

	var sum time.Duration
	for _, latency := range latencies {
		sum += latency
	}

	r.MinLatency = latencies[0]
	r.MaxLatency = latencies[len(latencies)-1]
	r.AvgLatency = sum / time.Duration(len(latencies))
	r.MedianLatency = latencies[len(latencies)/2]
	r.P95Latency = latencies[(len(latencies)*95)/100]
	r.P99Latency = latencies[(len(latencies)*99)/100]
	if totalTime > 0 {
		// Each iteration moves the payload through encrypt and decrypt.
		r.Throughput = float64(2*size*len(latencies)) / totalTime.Seconds()
	}
	return r
}

// sortDurations sorts a slice of durations.
func sortDurations(durations []time.Duration) {
	for i := 0; i < len(durations); i++ {
		for j := i + 1; j < len(durations); j++ {
			if durations[i] > durations[j] {
				durations[i], durations[j] = durations[j], durations[i]
			}
		}
	}
}

// RunAll runs benchmarks for every component with the given base
// options.
func RunAll(baseOpts *Options) ([]*Results, error) {
	var results []*Results
	for _, component := range []Component{ComponentBlock, ComponentCBC, ComponentPipeline} {
		opts := *baseOpts
		opts.Component = component

		log.Printf("Running benchmark for %s...", component)
		result, err := Run(&opts)
		if err != nil {
			log.Error().Err(err).Stringer("component", component).Msg("benchmark failed")
			continue
		}
		results = append(results, result)
		PrintResults(result)
	}
	return results, nil
}

// PrintResults prints one benchmark result to stdout.
func PrintResults(r *Results) {
	fmt.Printf("=== Benchmark: %s ===\n", r.Component)
	fmt.Printf("Payload Size: %d bytes\n", r.PayloadSize)
	fmt.Printf("Iterations: %d\n", r.Iterations)
	fmt.Printf("Total Time: %v\n", r.TotalTime)
	fmt.Printf("Throughput: %.2f MB/s\n", r.Throughput/1e6)
	fmt.Printf("Min Latency: %v\n", r.MinLatency)
	fmt.Printf("Avg Latency: %v\n", r.AvgLatency)
	fmt.Printf("Median Latency: %v\n", r.MedianLatency)
	fmt.Printf("95th Percentile: %v\n", r.P95Latency)
	fmt.Printf("99th Percentile: %v\n", r.P99Latency)
	fmt.Printf("Max Latency: %v\n", r.MaxLatency)
	fmt.Println("==========================================")
}

// SaveResultsToFile saves benchmark results to a CSV file.
func SaveResultsToFile(results []*Results, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	f.WriteString("Component,PayloadSize,Iterations,MinLatencyNs,AvgLatencyNs,MedianLatencyNs,P95LatencyNs,P99LatencyNs,MaxLatencyNs,TotalTimeNs,ThroughputBps\n")
	for _, r := range results {
		f.WriteString(fmt.Sprintf("%s,%d,%d,%d,%d,%d,%d,%d,%d,%d,%.0f\n",
			r.Component,
			r.PayloadSize,
			r.Iterations,
			r.MinLatency.Nanoseconds(),
			r.AvgLatency.Nanoseconds(),
			r.MedianLatency.Nanoseconds(),
			r.P95Latency.Nanoseconds(),
			r.P99Latency.Nanoseconds(),
			r.MaxLatency.Nanoseconds(),
			r.TotalTime.Nanoseconds(),
			r.Throughput))
	}
	return nil
}
