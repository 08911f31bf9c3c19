package main

import (
	_ "github.com/sedmess/go-collectors/logconfig"
	"github.com/sedmess/go-collectors/maps"
	"github.com/sedmess/go-collectors/parallel"
	"github.com/sedmess/go-collectors/streams"
	"github.com/sedmess/go-ctx/ctx"
	"github.com/sedmess/go-ctx/logger"
	"github.com/spaolacci/murmur3"
)

type Reading struct {
	Sensor  string
	Payload string
}

func sensorName(reading Reading) string {
	return reading.Sensor
}

func payloadFingerprint(reading Reading) uint64 {
	return murmur3.Sum64([]byte(reading.Payload))
}

// readingRegistry keeps, per sensor, the fingerprint of the first payload
// ever seen and the fingerprint of the most recent one.
type readingRegistry struct {
	l logger.Logger `logger:""`

	chunkSize   int `env:"REGISTRY_CHUNK_SIZE" envDef:"256"`
	parallelism int `env:"REGISTRY_PARALLELISM" envDef:"4"`

	firstSeen map[string]uint64
	latest    map[string]uint64
}

func (r *readingRegistry) Init() {
	r.firstSeen = make(map[string]uint64)
	r.latest = make(map[string]uint64)
	r.l.Info("registry ready, chunk size", r.chunkSize, ", parallelism", r.parallelism)
}

func (r *readingRegistry) Ingest(batch []Reading) {
	first := parallel.CollectValues(batch, r.chunkSize, r.parallelism, sensorName, payloadFingerprint, maps.KeepFirst)
	last := parallel.CollectValues(batch, r.chunkSize, r.parallelism, sensorName, payloadFingerprint, maps.KeepLast)

	r.firstSeen = maps.Combine(maps.KeepFirst, r.firstSeen, first)
	r.latest = maps.Combine(maps.KeepLast, r.latest, last)

	r.l.Debug("ingested", len(batch), "readings covering", len(last), "sensors")
}

func (r *readingRegistry) IngestStream(feed streams.Stream[Reading]) error {
	batch, err := feed.Slice()
	if err != nil {
		r.l.Error("reading feed failed:", err)
		return err
	}
	r.Ingest(batch)
	return nil
}

func (r *readingRegistry) FirstFingerprint(sensor string) (uint64, bool) {
	fingerprint, ok := r.firstSeen[sensor]
	return fingerprint, ok
}

func (r *readingRegistry) LatestFingerprint(sensor string) (uint64, bool) {
	fingerprint, ok := r.latest[sensor]
	return fingerprint, ok
}

var Packages = []ctx.ServicePackage{
	ctx.PackageOf(
		&readingRegistry{},
	),
}

func main() {
	ctx.CreateContextualizedApplication(Packages...).Join()
}
