package phoneword

import (
	"fmt"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var benchWords = []string{
	"CALL", "CAT", "CATS", "ACT", "AT", "BAT", "HOME", "GOOD", "GONE", "HOOD",
	"IN", "GO", "NOW", "ME", "MY", "PAY", "SAW", "RAW", "WAR", "JAR", "TOP",
	"FLOWER", "FLOWERS", "POWER", "TOWER", "DOG", "FOG", "LOG", "NO", "ON",
}

var benchNumbers = []string{
	"2255669", "4663", "3569377", "7292650782", "2287", "4664663", "369", "8693",
}

func TestSolverConcurrentUse(t *testing.T) {
	defer goleak.VerifyNone(t)

	s, err := NewSolver(benchWords)
	require.NoError(t, err)

	want := make(map[string][]Entry, len(benchNumbers))
	for _, n := range benchNumbers {
		want[n], err = s.Decompose(n)
		require.NoError(t, err)
	}

	configs := []struct {
		workers    int
		iterations int
	}{
		{workers: 1, iterations: 50},
		{workers: 4, iterations: 25},
		{workers: 8, iterations: 10},
	}

	for _, cfg := range configs {
		t.Run(fmt.Sprintf("workers_%d_iter_%d", cfg.workers, cfg.iterations), func(t *testing.T) {
			baseline := runtime.NumGoroutine()

			var wg sync.WaitGroup
			errs := make(chan error, cfg.workers)
			for w := 0; w < cfg.workers; w++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := 0; i < cfg.iterations; i++ {
						for _, n := range benchNumbers {
							got, err := s.Decompose(n)
							if err != nil {
								errs <- err
								return
							}
							if len(got) != len(want[n]) {
								errs <- fmt.Errorf("%s: got %d entries, want %d", n, len(got), len(want[n]))
								return
							}
						}
					}
				}()
			}
			wg.Wait()
			close(errs)

			for err := range errs {
				t.Error(err)
			}
			assert.LessOrEqual(t, runtime.NumGoroutine(), baseline+1)
		})
	}
}

func BenchmarkDecompose(b *testing.B) {
	s, err := NewSolver(benchWords)
	require.NoError(b, err)

	for _, n := range benchNumbers {
		b.Run(n, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := s.Decompose(n); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
