package main

import (
	"flag"
	"fmt"

	"github.com/bluele/gcache"
	"github.com/sirupsen/logrus"

	"github.com/halfsieve/go-bloomset/bloom"
)

func main() {
	var (
		expected  = flag.Uint64("n", 1000, "expected element count")
		rate      = flag.Float64("p", 0.01, "target false positive rate")
		algorithm = flag.String("alg", bloom.DefaultAlgorithm, "digest algorithm, see -list")
		probes    = flag.Int("probes", 20000, "absent-element probes for the measured rate")
		cacheSize = flag.Int("cache", 256, "entry capacity of the guarded cache demo")
		list      = flag.Bool("list", false, "list digest algorithms and exit")
	)
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if *list {
		for _, name := range bloom.Algorithms() {
			fmt.Println(name)
		}
		return
	}

	if err := runRateTarget(log, *expected, *rate, *algorithm, *probes); err != nil {
		log.WithError(err).Fatal("rate target run failed")
	}
	if err := runCounting(log, *algorithm); err != nil {
		log.WithError(err).Fatal("counting walkthrough failed")
	}
	if err := runCacheGuard(log, *cacheSize); err != nil {
		log.WithError(err).Fatal("cache guard demo failed")
	}
}

// runRateTarget sizes a filter from the target rate, fills it to capacity,
// and compares the predicted false positive rate with a measured one.
func runRateTarget(log *logrus.Logger, n uint64, p float64, algorithm string, probes int) error {
	cfg, err := bloom.ConfigFromFalsePositiveRate(n, p)
	if err != nil {
		return err
	}
	f, err := bloom.New(cfg, bloom.WithHashAlgorithm(algorithm))
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"m":   cfg.BitCount,
		"k":   cfg.HashCount,
		"n":   cfg.ExpectedElements,
		"alg": f.Algorithm(),
	}).Info("sized filter")

	for i := uint64(0); i < n; i++ {
		f.AddString(fmt.Sprintf("member-%08d", i))
	}
	for i := uint64(0); i < n; i++ {
		if !f.ContainsString(fmt.Sprintf("member-%08d", i)) {
			return fmt.Errorf("false negative for member-%08d", i)
		}
	}

	fp := 0
	for i := 0; i < probes; i++ {
		if f.ContainsString(fmt.Sprintf("probe-%08d", i)) {
			fp++
		}
	}
	log.WithFields(logrus.Fields{
		"expected": f.ExpectedFalsePositiveProbability(),
		"measured": float64(fp) / float64(probes),
		"fill":     f.FillRatio(),
	}).Info("false positive rate")
	return nil
}

// runCounting walks the counting variant through duplicate inserts,
// multiplicity estimates and removal.
func runCounting(log *logrus.Logger, algorithm string) error {
	cfg, err := bloom.ConfigFromFalsePositiveRate(64, 0.05)
	if err != nil {
		return err
	}
	c, err := bloom.NewCounting(cfg, bloom.WithHashAlgorithm(algorithm))
	if err != nil {
		return err
	}

	c.AddAllStrings("hello", "world", "kestrel")
	c.AddString("hello")
	log.WithFields(logrus.Fields{
		"hello":  c.CountString("hello"),
		"world":  c.CountString("world"),
		"absent": c.CountString("petrel"),
	}).Info("counts after inserts")

	removed := c.RemoveString("kestrel")
	removedAgain := c.RemoveString("kestrel")
	log.WithFields(logrus.Fields{
		"removed":  removed,
		"contains": c.ContainsString("kestrel"),
		"again":    removedAgain,
	}).Info("removal")

	log.Info(c.String())
	return nil
}

// runCacheGuard fronts an LRU cache with a filter so lookups for keys that
// were never stored skip the cache entirely. With a backing store behind the
// cache, every skip is a round trip saved.
func runCacheGuard(log *logrus.Logger, size int) error {
	if size <= 0 {
		return fmt.Errorf("cache size must be positive, got %d", size)
	}
	cfg, err := bloom.ConfigFromFalsePositiveRate(uint64(size), 0.01)
	if err != nil {
		return err
	}
	guard, err := bloom.New(cfg)
	if err != nil {
		return err
	}
	cache := gcache.New(size).LRU().Build()

	for i := 0; i < size; i++ {
		key := fmt.Sprintf("user-%05d", i)
		if err := cache.Set(key, i); err != nil {
			return err
		}
		guard.AddString(key)
	}

	hits, misses, skipped := 0, 0, 0
	for i := 0; i < 2*size; i++ {
		key := fmt.Sprintf("user-%05d", i)
		if !guard.ContainsString(key) {
			skipped++
			continue
		}
		if _, err := cache.Get(key); err != nil {
			misses++
			continue
		}
		hits++
	}
	log.WithFields(logrus.Fields{
		"hits":    hits,
		"misses":  misses,
		"skipped": skipped,
	}).Info("guarded cache lookups")
	return nil
}
