package logger

import (
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAfterGetLogger(t *testing.T) {
	t.Cleanup(func() { Init("info") })

	first := GetLogger()
	require.NotNil(t, first)

	Init("debug")
	assert.Equal(t, logrus.DebugLevel, GetLogger().GetLevel())
	assert.NotSame(t, first, GetLogger())

	Init("not-a-level")
	assert.Equal(t, logrus.InfoLevel, GetLogger().GetLevel())
}

func TestInitConcurrentWithLogging(t *testing.T) {
	t.Cleanup(func() { Init("info") })

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Init("warn")
		}()
		go func(i int) {
			defer wg.Done()
			WithField("i", i).Debug("concurrent")
			assert.NotNil(t, GetLogger())
		}(i)
	}
	wg.Wait()

	assert.Equal(t, logrus.WarnLevel, GetLogger().GetLevel())
}
