package invoices

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceStartsAtFirst(t *testing.T) {
	seq := NewSequence(7)
	assert.Equal(t, int64(7), seq.Next())
	assert.Equal(t, int64(8), seq.Next())
}

func TestSequenceClampsFirstToOne(t *testing.T) {
	assert.Equal(t, int64(1), NewSequence(0).Next())
	assert.Equal(t, int64(1), NewSequence(-5).Next())
}

func TestSequenceConcurrentNumbersAreUnique(t *testing.T) {
	const workers, perWorker = 16, 64
	seq := NewSequence(1)

	var (
		mu   sync.Mutex
		seen = make(map[int64]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]int64, 0, perWorker)
			for j := 0; j < perWorker; j++ {
				local = append(local, NewWithSequence(seq).Number())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, n := range local {
				seen[n] = struct{}{}
			}
		}()
	}
	wg.Wait()

	require.Len(t, seen, workers*perWorker)
	assert.Equal(t, int64(workers*perWorker+1), seq.Next())
}
