package bloomtesting

import (
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
)

type TestContext struct {
	Log *logrus.Entry
	T   *testing.T

	rng *rand.Rand
}

type TestConfig struct {
	// Seed primes the element generator. It is normal to force it to some
	// fixed value so that the generated data is the same from run to run.
	Seed            int64
	TestLabelPrefix string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)
	return TestContext{
		Log: log.WithField("test", cfg.TestLabelPrefix),
		T:   t,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

func (c *TestContext) GetLog() *logrus.Entry { return c.Log }
